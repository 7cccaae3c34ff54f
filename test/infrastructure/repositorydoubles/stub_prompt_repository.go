//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// StubPromptRepository implements repositories.PromptRepository with scripted
// answers. Text answers are consumed in order and run through the prompt
// validators, a failing validator is returned as an *entities.InputError.
type StubPromptRepository struct {
	ConfirmAnswer bool
	ConfirmErr    error
	TextAnswers   []string
	TextErr       error
	SelectAnswer  string
	SelectErr     error

	// spy: what was asked
	Confirms      []string
	TextPrompts   []repositories.TextPrompt
	SelectOptions [][]string
	Printed       []string
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) Confirm(message string, _ bool) (bool, error) {
	s.Confirms = append(s.Confirms, message)
	return s.ConfirmAnswer, s.ConfirmErr
}

func (s *StubPromptRepository) Text(prompt repositories.TextPrompt) (string, error) {
	s.TextPrompts = append(s.TextPrompts, prompt)
	if s.TextErr != nil {
		return "", s.TextErr
	}
	if len(s.TextAnswers) == 0 {
		return "", &entities.InputError{Prompt: prompt.Message, Err: errors.New("no scripted answer")}
	}

	answer := s.TextAnswers[0]
	s.TextAnswers = s.TextAnswers[1:]
	if answer == "" {
		answer = prompt.Default
	}
	for _, validator := range prompt.Validators {
		if err := validator(answer); err != nil {
			return "", &entities.InputError{Prompt: prompt.Message, Err: err}
		}
	}
	return answer, nil
}

func (s *StubPromptRepository) Select(_ string, options []string) (string, error) {
	s.SelectOptions = append(s.SelectOptions, options)
	return s.SelectAnswer, s.SelectErr
}

func (s *StubPromptRepository) Println(message string) {
	s.Printed = append(s.Printed, message)
}

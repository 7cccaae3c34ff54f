package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/rios0rios0/workflow/internal/domain/entities"
	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

// SurveyPromptRepository asks questions on the terminal with survey.
type SurveyPromptRepository struct {
	out     io.Writer
	askOpts []survey.AskOpt
}

var _ repositories.PromptRepository = (*SurveyPromptRepository)(nil)

// NewSurveyPromptRepository prompts on the process standard streams.
func NewSurveyPromptRepository() *SurveyPromptRepository {
	return &SurveyPromptRepository{out: os.Stdout}
}

func (p *SurveyPromptRepository) Confirm(message string, defaultAnswer bool) (bool, error) {
	answer := defaultAnswer
	//nolint:exhaustruct // help is not needed for yes/no questions
	err := survey.AskOne(&survey.Confirm{Message: message, Default: defaultAnswer}, &answer, p.askOpts...)
	if err != nil {
		return false, inputError(message, err)
	}
	return answer, nil
}

func (p *SurveyPromptRepository) Text(prompt repositories.TextPrompt) (string, error) {
	var question survey.Prompt
	if prompt.Secret {
		//nolint:exhaustruct // survey defaults
		question = &survey.Password{Message: prompt.Message, Help: prompt.Help}
	} else {
		//nolint:exhaustruct // survey defaults
		question = &survey.Input{Message: prompt.Message, Help: prompt.Help, Default: prompt.Default}
	}

	opts := append([]survey.AskOpt{}, p.askOpts...)
	for _, validator := range prompt.Validators {
		opts = append(opts, survey.WithValidator(toSurveyValidator(validator)))
	}

	var answer string
	if err := survey.AskOne(question, &answer, opts...); err != nil {
		return "", inputError(prompt.Message, err)
	}
	return answer, nil
}

func (p *SurveyPromptRepository) Select(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", inputError(message, errors.New("nothing to choose from"))
	}

	var answer string
	//nolint:exhaustruct // survey defaults
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &answer, p.askOpts...)
	if err != nil {
		return "", inputError(message, err)
	}
	return answer, nil
}

func (p *SurveyPromptRepository) Println(message string) {
	_, _ = fmt.Fprintln(p.out, message)
}

func toSurveyValidator(validator repositories.TextValidator) survey.Validator {
	return func(answer interface{}) error {
		text, ok := answer.(string)
		if !ok {
			return fmt.Errorf("cannot validate %T", answer)
		}
		return validator(text)
	}
}

func inputError(prompt string, err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		err = entities.ErrPromptCancelled
	}
	return &entities.InputError{Prompt: prompt, Err: err}
}

package commands

import (
	"errors"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/rios0rios0/workflow/internal/domain/repositories"
)

var errValueRequired = errors.New("a value is required")

func required() repositories.TextValidator {
	return func(answer string) error {
		if answer == "" {
			return errValueRequired
		}
		return nil
	}
}

func minLength(length int) repositories.TextValidator {
	return func(answer string) error {
		if utf8.RuneCountInString(answer) < length {
			return fmt.Errorf("the value must be at least %d characters long", length)
		}
		return nil
	}
}

func absoluteURL() repositories.TextValidator {
	return func(answer string) error {
		parsed, err := url.Parse(answer)
		if err != nil {
			return err
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%q is not an absolute URL", answer)
		}
		return nil
	}
}

package repositories

// TextValidator checks a single prompt answer.
type TextValidator func(answer string) error

// TextPrompt describes a free text question.
type TextPrompt struct {
	Message    string
	Help       string
	Default    string
	Secret     bool // hide the answer while typing
	Validators []TextValidator
}

// PromptRepository asks the user questions on the terminal. Invalid answers
// are asked again, a cancelled prompt returns an *entities.InputError.
type PromptRepository interface {
	Confirm(message string, defaultAnswer bool) (bool, error)
	Text(prompt TextPrompt) (string, error)
	Select(message string, options []string) (string, error)
	// Println writes an informational line for the user.
	Println(message string)
}

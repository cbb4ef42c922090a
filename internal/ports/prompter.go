package ports

import "errors"

// ErrInterrupted is returned by a Prompter when the user aborts a question.
var ErrInterrupted = errors.New("prompt interrupted")

type Prompter interface {
	// Select returns the index of the chosen item. cursor is the preselected index.
	Select(label string, items []string, cursor int) (int, error)
	Input(label, def string) (string, error)
	Confirm(label string, def bool) (bool, error)
}

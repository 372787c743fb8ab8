package initialize

import (
	"github.com/charmbracelet/huh"
	"github.com/gradlever/gradlever/internal/tui"
)

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
	Input(title, description, value string, validate func(string) error) (string, error)
	Select(title, description string, options []huh.Option[string]) (string, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

func (p *TUIPrompter) Input(title, description, value string, validate func(string) error) (string, error) {
	return tui.Input(title, description, value, validate)
}

func (p *TUIPrompter) Select(title, description string, options []huh.Option[string]) (string, error) {
	return tui.Select(title, description, options)
}

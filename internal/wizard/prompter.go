package wizard

import (
	"github.com/charmbracelet/huh"
)

// Prompter asks one question and returns the raw answer.
type Prompter interface {
	Ask(title string) (string, error)
}

// HuhPrompter asks each question with a single-field huh form. Accessible
// mode falls back to plain line reads, which suits piped stdin.
type HuhPrompter struct {
	Accessible bool
}

// Ask implements Prompter.
func (h HuhPrompter) Ask(title string) (string, error) {
	var v string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(title).Value(&v),
		),
	).WithAccessible(h.Accessible)
	if err := form.Run(); err != nil {
		return "", err
	}
	return v, nil
}

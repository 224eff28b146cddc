package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimColor     = lipgloss.Color("#6c6c6c")
	accentColor  = lipgloss.Color("#7aa2f7")
	errorColor   = lipgloss.Color("#f7768e")
	successColor = lipgloss.Color("#9ece6a")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	warnStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

func title(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(s))
}

func success(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, successStyle.Render(s))
}

func warn(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, warnStyle.Render(s))
}

func hint(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, hintStyle.Render(s))
}

package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns the transformer the help builtin runs its
// markdown reference through: markdown in, styled ANSI out. The style
// follows the detected terminal background. If the renderer cannot be
// constructed, content passes through unchanged.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return r.Render
}

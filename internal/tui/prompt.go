package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

// NewPrompt returns the prompt renderer for an interactive session.
//
// An empty template selects the default prompt: the shell name and the
// working directory, colored when the terminal supports it. A custom
// template is rendered verbatim with {cwd} replaced by the working
// directory and no coloring applied, so overridden prompts stay
// exactly as the user wrote them.
func NewPrompt(template string) func(string) string {
	if template != "" {
		return func(cwd string) string {
			return strings.ReplaceAll(template, "{cwd}", cwd)
		}
	}

	p := termenv.ColorProfile()
	name := termenv.String("ash").Foreground(p.Color("#a78bfa")).Bold()
	return func(cwd string) string {
		dir := termenv.String(cwd).Foreground(p.Color("#818cf8"))
		return name.String() + " " + dir.String() + " > "
	}
}

package cli

import (
	"os"

	"golang.org/x/term"
)

// RunOptions contains all the configuration for the shell invocation.
type RunOptions struct {
	Debug    bool   // verbose dispatch logging on stderr
	NoBanner bool   // suppress the startup banner
	Prompt   string // prompt template override; empty keeps the default
}

// Execute handles the root command logic: probe the terminal once,
// apply the defaults that depend on it, and run the session.
func Execute(opts RunOptions) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if !interactive {
		// The banner is a terminal affordance; piped runs stay silent
		// regardless of flags so script output is not polluted.
		opts.NoBanner = true
	}
	return RunShell(opts, interactive)
}

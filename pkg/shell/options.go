package shell

import (
	"io"
	"log/slog"
)

// PromptFunc renders the prompt for the current working directory.
// It runs once per loop iteration, so a cd is reflected immediately.
type PromptFunc func(cwd string) string

// DefaultPrompt is the plain, uncolored prompt: the shell name, the
// working directory, and a trailing marker.
func DefaultPrompt(cwd string) string {
	return "ash " + cwd + " > "
}

// Option defines a functional option for configuring the Shell.
type Option func(*Shell)

// WithLineSource sets where the loop reads its lines from. The shell
// takes ownership and closes the source when Run returns.
func WithLineSource(src LineSource) Option {
	return func(s *Shell) {
		s.source = src
	}
}

// WithInput sets the reader handed to external child processes as
// their standard input. It does not affect the shell's own line
// reading, which goes through the LineSource.
func WithInput(r io.Reader) Option {
	return func(s *Shell) {
		s.in = r
	}
}

// WithOutput directs command output to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithErrorOutput directs error reports to w instead of os.Stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.errOut = w
	}
}

// WithPrompt sets the prompt renderer.
func WithPrompt(f PromptFunc) Option {
	return func(s *Shell) {
		s.prompt = f
	}
}

// WithLogger configures the structured logger for dispatch tracing.
// The logger must write somewhere other than the shell's stdout, or
// log lines will interleave with command output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewAt builds a text logger writing to w at the given level.
// It standardizes common keys (e.g., "error" -> "err").
func NewAt(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// New returns the session logger. Verbose mode emits debug records on
// Stderr; otherwise records are discarded. Either way nothing reaches
// Stdout, which belongs to the prompt and command output.
func New(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return NewAt(os.Stderr, slog.LevelDebug)
}

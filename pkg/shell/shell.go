package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/ash/pkg/domain"
	"github.com/aretw0/ash/pkg/registry"
)

// Shell drives the read and dispatch loop over a command registry and
// a shared session. Construct it with New; the zero value is not
// usable.
type Shell struct {
	registry *registry.Registry
	session  *domain.Session
	source   LineSource
	prompt   PromptFunc
	logger   *slog.Logger

	// in is handed to child processes; out and errOut carry command
	// output and error reports.
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// New builds a shell over the given registry and session. Without
// options it reads os.Stdin line by line (no editing) and writes to
// os.Stdout and os.Stderr.
func New(reg *registry.Registry, sess *domain.Session, opts ...Option) *Shell {
	s := &Shell{
		registry: reg,
		session:  sess,
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewScannerSource(s.in)
	}
	if s.prompt == nil {
		s.prompt = DefaultPrompt
	}
	return s
}

// Session returns the session state the shell mutates while running.
func (s *Shell) Session() *domain.Session {
	return s.session
}

// Run executes the loop until the exit command, the end of input, or a
// read failure. An interrupt during editing discards the pending line
// and re-issues the prompt; it never terminates the loop. Command
// failures are reported on the error stream and the loop continues.
//
// The context is checked between iterations. It does not unblock an
// in-progress read; cancelling it stops the loop at the next prompt.
func (s *Shell) Run(ctx context.Context) error {
	defer s.source.Close()

	signals := NewSignalManager()
	defer signals.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		signals.Clear()

		line, err := s.source.ReadLine(s.prompt(s.session.WorkingDir()))
		switch {
		case errors.Is(err, domain.ErrInterrupted):
			s.logger.Debug("read interrupted, discarding line")
			continue
		case errors.Is(err, io.EOF):
			s.logger.Debug("end of input")
			return nil
		case err != nil:
			if signals.Interrupted() {
				// The interrupt landed outside the editor and broke
				// the read. Treat it like a discarded line.
				s.logger.Debug("read failed under interrupt, re-prompting", "err", err)
				continue
			}
			return fmt.Errorf("reading input: %w", err)
		}

		inv, ok := domain.Tokenize(line)
		if !ok {
			// Blank input: no history entry, no dispatch, no error.
			continue
		}
		s.session.AppendHistory(strings.TrimSpace(line))

		if status := s.dispatch(inv); status == domain.StatusExit {
			s.logger.Debug("exit requested")
			return nil
		}
	}
}

// dispatch resolves the invocation against the builtin registry and
// falls through to an external process on a miss.
func (s *Shell) dispatch(inv domain.Invocation) domain.Status {
	if cmd, ok := s.registry.Lookup(inv.Name); ok {
		s.logger.Debug("dispatching builtin", "cmd", inv.Name, "args", inv.Args)
		err := cmd.Execute(inv.Args, s.session)
		switch {
		case err == nil:
			return domain.StatusContinue
		case errors.Is(err, domain.ErrExit):
			return domain.StatusExit
		default:
			s.report(err)
			return domain.StatusFailure
		}
	}

	s.logger.Debug("dispatching external", "cmd", inv.Name, "args", inv.Args)
	if err := s.spawnExternal(inv); err != nil {
		s.report(err)
		return domain.StatusFailure
	}
	return domain.StatusContinue
}

// report is the single formatting point for failures: one line on the
// error stream, plus the usage hint for malformed invocations.
func (s *Shell) report(err error) {
	fmt.Fprintf(s.errOut, "ash: %s\n", err)

	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Usage != "" {
		fmt.Fprintf(s.errOut, "usage: %s\n", cmdErr.Usage)
	}
}

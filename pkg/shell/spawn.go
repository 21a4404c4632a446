package shell

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aretw0/ash/pkg/domain"
)

// spawnExternal runs inv.Name as a child process with the shell's
// standard streams and the session working directory. It blocks until
// the child exits.
//
// A non-zero exit is the child's business: the status is surfaced as
// plain text and nil is returned. The error return is reserved for
// launch failures, command-not-found above all.
//
// Interrupt policy: the child shares the terminal's process group, so
// a Ctrl+C reaches it directly. The shell does not forward or shield
// anything; it waits for the child to die of the signal and resumes,
// kept alive by its own SignalManager.
func (s *Shell) spawnExternal(inv domain.Invocation) error {
	path, err := s.resolveExecutable(inv.Name)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, inv.Args...)
	cmd.Dir = s.session.WorkingDir()
	cmd.Stdin = s.in
	cmd.Stdout = s.out
	cmd.Stderr = s.errOut

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Renders as "exit status N", or "signal: interrupt" when
			// the child was killed.
			s.logger.Debug("external command failed", "cmd", inv.Name, "err", exitErr)
			fmt.Fprintf(s.errOut, "ash: %s: %s\n", inv.Name, exitErr)
			return nil
		}
		return domain.NewCommandError(inv.Name, "", err)
	}

	s.logger.Debug("external command finished", "cmd", inv.Name)
	return nil
}

// resolveExecutable locates the binary for name. Bare names go through
// PATH; names containing a separator resolve against the session
// working directory, because the shell never chdirs the process it
// runs in.
func (s *Shell) resolveExecutable(name string) (string, error) {
	if strings.Contains(name, "/") {
		return s.session.Resolve(name), nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", domain.NewCommandError(name, "", domain.ErrCommandNotFound)
	}
	return path, nil
}

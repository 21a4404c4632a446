package domain

import (
	"errors"
	"io/fs"
)

// ErrExit is returned by a command to request a clean session shutdown.
var ErrExit = errors.New("exit")

// ErrInterrupted is returned by a line source when the pending line was
// discarded by an interrupt (Ctrl+C). The read loop treats it as "start
// over", never as a reason to stop.
var ErrInterrupted = errors.New("interrupted")

// ErrCommandNotFound is reported when a name matches no builtin and no
// executable on PATH.
var ErrCommandNotFound = errors.New("command not found")

// ErrIsDirectory is reported when a file operation is applied to a directory.
var ErrIsDirectory = errors.New("is a directory")

// ErrNotDirectory is reported when a directory operation is applied to a file.
var ErrNotDirectory = errors.New("not a directory")

// CommandError is the uniform failure report for a command: the command
// name, the operand the failure refers to (if any), and a short reason.
// It renders as "cmd: target: reason", the shape shells traditionally
// print.
type CommandError struct {
	Cmd    string // Command name, e.g. "cd"
	Target string // Operand the failure refers to, usually a path. Optional.
	Reason string // Human-readable reason. Derived from Err when empty.
	Usage  string // Usage hint shown after the message. Optional.
	Err    error  // Underlying cause, if any
}

func (e *CommandError) Error() string {
	msg := e.Cmd
	if e.Target != "" {
		msg += ": " + e.Target
	}
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = Reason(e.Err)
	}
	if reason != "" {
		msg += ": " + reason
	}
	return msg
}

// Unwrap exposes the underlying cause so errors.Is and errors.As see
// through the report.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError builds the standard failure for cmd acting on target.
func NewCommandError(cmd, target string, err error) *CommandError {
	return &CommandError{Cmd: cmd, Target: target, Err: err}
}

// UsageError reports a malformed invocation along with the expected usage.
func UsageError(cmd, usage, reason string) *CommandError {
	return &CommandError{Cmd: cmd, Reason: reason, Usage: usage}
}

// Reason maps an error to the short form shells traditionally print.
// Unrecognized errors pass through as their own message.
func Reason(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "no such file or directory"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, fs.ErrExist):
		return "file exists"
	}
	return err.Error()
}

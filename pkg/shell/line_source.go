package shell

import (
	"bufio"
	"errors"
	"io"

	"github.com/chzyer/readline"

	"github.com/aretw0/ash/pkg/domain"
)

// DefaultHistoryLimit caps the navigable history a readline source keeps.
const DefaultHistoryLimit = 500

// LineSource acquires one raw line of input per call. It is the port
// the loop blocks on; everything else in the shell is non-blocking.
type LineSource interface {
	// ReadLine blocks until a full line is submitted and returns it
	// without the trailing newline. It returns io.EOF when the input
	// is exhausted and domain.ErrInterrupted when the pending line was
	// discarded by an interrupt. The prompt is advisory; sources
	// reading non-terminal input ignore it.
	ReadLine(prompt string) (string, error)

	// Close releases any terminal state held by the source.
	Close() error
}

// ReadlineSource reads from the controlling terminal with history
// navigation and edit-in-place, backed by chzyer/readline.
//
// Ctrl+C during editing echoes "^C", discards the pending line, and
// surfaces domain.ErrInterrupted. Ctrl+D on an empty line echoes
// "exit" and surfaces io.EOF. Submitted lines enter the navigable
// history automatically; interrupted ones never do.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource opens the terminal for editing. It fails when
// stdin is not a terminal readline can drive; callers should fall back
// to NewScannerSource then.
func NewReadlineSource() (*ReadlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ", // replaced on every read
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    DefaultHistoryLimit,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineSource{rl: rl}, nil
}

func (s *ReadlineSource) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)

	line, err := s.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", domain.ErrInterrupted
	case err != nil:
		// io.EOF passes through untouched.
		return "", err
	}
	return line, nil
}

func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}

// ScannerSource reads plain lines from any reader. It is the source
// for piped input: no editing, no history navigation, and the prompt
// is never echoed, so scripted output stays clean.
type ScannerSource struct {
	sc *bufio.Scanner
}

// NewScannerSource wraps r in a line scanner.
func NewScannerSource(r io.Reader) *ScannerSource {
	return &ScannerSource{sc: bufio.NewScanner(r)}
}

func (s *ScannerSource) ReadLine(prompt string) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

func (s *ScannerSource) Close() error {
	return nil
}

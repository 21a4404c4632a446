package testutils

import (
	"io"

	"github.com/aretw0/ash/pkg/domain"
)

// ReadEvent is one scripted result of a line source read.
type ReadEvent struct {
	Line string
	Err  error
}

// Line scripts a successfully submitted line.
func Line(text string) ReadEvent {
	return ReadEvent{Line: text}
}

// Interrupt scripts a read discarded by Ctrl+C.
func Interrupt() ReadEvent {
	return ReadEvent{Err: domain.ErrInterrupted}
}

// ReadError scripts a failing read.
func ReadError(err error) ReadEvent {
	return ReadEvent{Err: err}
}

// ScriptSource plays back a fixed sequence of read results, then
// reports end of input, mimicking a user typing at the terminal. It
// satisfies the shell's LineSource port and records every prompt it
// was shown, so tests can assert on prompt recomputation and on the
// shell closing its source.
type ScriptSource struct {
	events  []ReadEvent
	pos     int
	Prompts []string
	Closed  bool
}

// NewScriptSource builds a source that replays events in order.
func NewScriptSource(events ...ReadEvent) *ScriptSource {
	return &ScriptSource{events: events}
}

func (s *ScriptSource) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.pos >= len(s.events) {
		return "", io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev.Line, ev.Err
}

func (s *ScriptSource) Close() error {
	s.Closed = true
	return nil
}

package builtin

import (
	"io"
	"os"

	"github.com/aretw0/ash/pkg/registry"
)

// Renderer transforms help content before it is printed.
// This allows for TUI rendering (markdown to ANSI) without coupling
// the command set to a presentation package.
type Renderer func(string) (string, error)

// Option configures the builtin set at registration time.
type Option func(*settings)

type settings struct {
	out    io.Writer
	render Renderer
}

func newSettings(opts []Option) *settings {
	s := &settings{out: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithOutput directs normal command output to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		s.out = w
	}
}

// WithRenderer sets the transformer applied to help content before it
// is printed.
func WithRenderer(r Renderer) Option {
	return func(s *settings) {
		s.render = r
	}
}

// RegisterAll wires every builtin command into reg.
func RegisterAll(reg *registry.Registry, opts ...Option) {
	cfg := newSettings(opts)

	reg.Register(cdCommand{})
	reg.Register(&pwdCommand{out: cfg.out})
	reg.Register(&echoCommand{out: cfg.out})
	reg.Register(&dateCommand{out: cfg.out})
	reg.Register(&lsCommand{out: cfg.out})
	reg.Register(&catCommand{out: cfg.out})
	reg.Register(mkdirCommand{})
	reg.Register(touchCommand{})
	reg.Register(rmCommand{})
	reg.Register(cpCommand{})
	reg.Register(mvCommand{})
	reg.Register(&grepCommand{out: cfg.out})
	reg.Register(&historyCommand{out: cfg.out})
	reg.Register(&helpCommand{out: cfg.out, reg: reg, render: cfg.render})
	reg.Register(exitCommand{})
}

package ash

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ash/pkg/builtin"
	"github.com/aretw0/ash/pkg/domain"
	"github.com/aretw0/ash/pkg/registry"
	"github.com/aretw0/ash/pkg/shell"
)

// Version is the release version, sourced from the VERSION file.
//
//go:embed VERSION
var Version string

// config gathers everything New needs before it can assemble a shell.
// Options mutate it; unset fields fall back to process defaults.
type config struct {
	session  *domain.Session
	source   shell.LineSource
	prompt   shell.PromptFunc
	renderer builtin.Renderer
	logger   *slog.Logger
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
}

// Option defines a functional option for configuring the shell.
type Option func(*config)

// WithSession injects a prepared session, bypassing the default one
// rooted at the process working directory.
func WithSession(sess *domain.Session) Option {
	return func(c *config) {
		c.session = sess
	}
}

// WithLineSource sets where the loop reads its input lines from. The
// default is a plain line reader over standard input; interactive
// hosts pass a readline-backed source instead.
func WithLineSource(src shell.LineSource) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithPrompt sets the prompt renderer. It is called with the session
// working directory before every read.
func WithPrompt(f shell.PromptFunc) Option {
	return func(c *config) {
		c.prompt = f
	}
}

// WithRenderer sets the transformer applied to help output, typically
// a markdown renderer.
func WithRenderer(r builtin.Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithLogger sets a custom structured logger for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithInput sets the reader external child processes inherit as their
// standard input.
func WithInput(r io.Reader) Option {
	return func(c *config) {
		c.in = r
	}
}

// WithOutput directs command output to w instead of os.Stdout. The
// builtin set and spawned processes share the writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithErrorOutput directs error reports to w instead of os.Stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(c *config) {
		c.errOut = w
	}
}

// New assembles a ready-to-run shell: a session rooted at the current
// working directory, the full builtin command set, and the read loop
// wired over them. Call Run on the result to start the session.
func New(opts ...Option) (*shell.Shell, error) {
	cfg := &config{out: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.session == nil {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		// A missing home directory is not fatal; the cd builtin
		// reports it when someone actually asks for it.
		home, err := os.UserHomeDir()
		if err != nil {
			home = ""
		}
		cfg.session = domain.NewSession(wd, home)
	}

	reg := registry.New()
	builtinOpts := []builtin.Option{builtin.WithOutput(cfg.out)}
	if cfg.renderer != nil {
		builtinOpts = append(builtinOpts, builtin.WithRenderer(cfg.renderer))
	}
	builtin.RegisterAll(reg, builtinOpts...)

	shellOpts := []shell.Option{shell.WithOutput(cfg.out)}
	if cfg.source != nil {
		shellOpts = append(shellOpts, shell.WithLineSource(cfg.source))
	}
	if cfg.prompt != nil {
		shellOpts = append(shellOpts, shell.WithPrompt(cfg.prompt))
	}
	if cfg.logger != nil {
		shellOpts = append(shellOpts, shell.WithLogger(cfg.logger))
	}
	if cfg.in != nil {
		shellOpts = append(shellOpts, shell.WithInput(cfg.in))
	}
	if cfg.errOut != nil {
		shellOpts = append(shellOpts, shell.WithErrorOutput(cfg.errOut))
	}

	return shell.New(reg, cfg.session, shellOpts...), nil
}

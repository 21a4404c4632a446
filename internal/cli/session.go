package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/ash"
	"github.com/aretw0/ash/internal/logging"
	"github.com/aretw0/ash/internal/tui"
	"github.com/aretw0/ash/pkg/shell"
)

// RunShell assembles and runs one shell session. The interactive flag
// selects the line editor and the terminal niceties; Execute decides
// it so the terminal is probed exactly once.
func RunShell(opts RunOptions, interactive bool) error {
	logger := logging.New(opts.Debug)

	if interactive && !opts.NoBanner {
		tui.PrintBanner(ash.Version)
	}

	ashOpts := []ash.Option{
		ash.WithLogger(logger),
	}

	if interactive {
		source, err := shell.NewReadlineSource()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		ashOpts = append(ashOpts,
			ash.WithLineSource(source),
			ash.WithPrompt(tui.NewPrompt(opts.Prompt)),
			ash.WithRenderer(tui.NewRenderer()),
		)
	}

	sh, err := ash.New(ashOpts...)
	if err != nil {
		return err
	}

	logger.Debug("session starting",
		"cwd", sh.Session().WorkingDir(),
		"interactive", interactive,
	)
	return handleExecutionError(sh.Run(context.Background()))
}

package builtin

import (
	"os"
	"time"

	"github.com/aretw0/ash/pkg/domain"
)

type touchCommand struct{}

func (touchCommand) Name() string        { return "touch" }
func (touchCommand) Usage() string       { return "touch <file>..." }
func (touchCommand) Description() string { return "Create files or update their timestamps" }

func (c touchCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) == 0 {
		return domain.UsageError(c.Name(), c.Usage(), "missing operand")
	}

	for _, arg := range args {
		path := sess.Resolve(arg)

		// Existing files keep their contents; only the timestamps move.
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return domain.NewCommandError(c.Name(), arg, err)
		}
		f.Close()

		now := time.Now()
		if err := os.Chtimes(path, now, now); err != nil {
			return domain.NewCommandError(c.Name(), arg, err)
		}
	}
	return nil
}

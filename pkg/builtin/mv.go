package builtin

import (
	"os"
	"path/filepath"

	"github.com/aretw0/ash/pkg/domain"
)

type mvCommand struct{}

func (mvCommand) Name() string        { return "mv" }
func (mvCommand) Usage() string       { return "mv <source> <dest>" }
func (mvCommand) Description() string { return "Move or rename a file or directory" }

func (c mvCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) < 2 {
		return domain.UsageError(c.Name(), c.Usage(), "missing operand")
	}
	if len(args) > 2 {
		return domain.UsageError(c.Name(), c.Usage(), "too many arguments")
	}

	src := sess.Resolve(args[0])
	dst := sess.Resolve(args[1])

	if _, err := os.Stat(src); err != nil {
		return domain.NewCommandError(c.Name(), args[0], err)
	}

	// Moving into an existing directory keeps the source name.
	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	if err := os.Rename(src, dst); err != nil {
		return domain.NewCommandError(c.Name(), args[1], err)
	}
	return nil
}

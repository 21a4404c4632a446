package builtin

import (
	"io/fs"
	"os"

	"github.com/aretw0/ash/pkg/domain"
)

type mkdirCommand struct{}

func (mkdirCommand) Name() string        { return "mkdir" }
func (mkdirCommand) Usage() string       { return "mkdir <dir>..." }
func (mkdirCommand) Description() string { return "Create directories, with parents as needed" }

func (c mkdirCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) == 0 {
		return domain.UsageError(c.Name(), c.Usage(), "missing operand")
	}

	for _, arg := range args {
		path := sess.Resolve(arg)
		if _, err := os.Stat(path); err == nil {
			return domain.NewCommandError(c.Name(), arg, fs.ErrExist)
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return domain.NewCommandError(c.Name(), arg, err)
		}
	}
	return nil
}

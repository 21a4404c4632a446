package builtin

import (
	"os"

	"github.com/aretw0/ash/pkg/domain"
)

type rmCommand struct{}

func (rmCommand) Name() string        { return "rm" }
func (rmCommand) Usage() string       { return "rm [-r] <path>..." }
func (rmCommand) Description() string { return "Remove files and directories" }

func (c rmCommand) Execute(args []string, sess *domain.Session) error {
	// -r is accepted and ignored; directories are always removed
	// recursively.
	operands := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-r" {
			continue
		}
		operands = append(operands, arg)
	}

	if len(operands) == 0 {
		return domain.UsageError(c.Name(), c.Usage(), "missing operand")
	}

	for _, arg := range operands {
		path := sess.Resolve(arg)
		if _, err := os.Stat(path); err != nil {
			return domain.NewCommandError(c.Name(), arg, err)
		}
		if err := os.RemoveAll(path); err != nil {
			return domain.NewCommandError(c.Name(), arg, err)
		}
	}
	return nil
}

package builtin

import (
	"io"
	"os"

	"github.com/aretw0/ash/pkg/domain"
)

type catCommand struct {
	out io.Writer
}

func (*catCommand) Name() string        { return "cat" }
func (*catCommand) Usage() string       { return "cat <file>..." }
func (*catCommand) Description() string { return "Print file contents" }

func (c *catCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) == 0 {
		return domain.UsageError(c.Name(), c.Usage(), "missing operand")
	}

	// Stops at the first file that cannot be printed.
	for _, arg := range args {
		if err := c.printFile(arg, sess); err != nil {
			return err
		}
	}
	return nil
}

func (c *catCommand) printFile(arg string, sess *domain.Session) error {
	path := sess.Resolve(arg)

	info, err := os.Stat(path)
	if err != nil {
		return domain.NewCommandError(c.Name(), arg, err)
	}
	if info.IsDir() {
		return domain.NewCommandError(c.Name(), arg, domain.ErrIsDirectory)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.NewCommandError(c.Name(), arg, err)
	}
	defer f.Close()

	if _, err := io.Copy(c.out, f); err != nil {
		return domain.NewCommandError(c.Name(), arg, err)
	}
	return nil
}

package builtin

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/ash/pkg/domain"
)

type lsCommand struct {
	out io.Writer
}

func (*lsCommand) Name() string        { return "ls" }
func (*lsCommand) Usage() string       { return "ls [dir]" }
func (*lsCommand) Description() string { return "List directory contents" }

func (c *lsCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) > 1 {
		return domain.UsageError(c.Name(), c.Usage(), "too many arguments")
	}

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	dir := sess.Resolve(target)

	info, err := os.Stat(dir)
	if err != nil {
		return domain.NewCommandError(c.Name(), target, err)
	}
	if !info.IsDir() {
		return domain.NewCommandError(c.Name(), target, domain.ErrNotDirectory)
	}

	// os.ReadDir already sorts entries by name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.NewCommandError(c.Name(), target, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	fmt.Fprintln(c.out, strings.Join(names, "  "))
	return nil
}

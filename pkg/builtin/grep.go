package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/ash/pkg/domain"
)

type grepCommand struct {
	out io.Writer
}

func (*grepCommand) Name() string        { return "grep" }
func (*grepCommand) Usage() string       { return "grep <pattern> <file>" }
func (*grepCommand) Description() string { return "Print lines of a file containing a pattern" }

func (c *grepCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) < 2 {
		return domain.UsageError(c.Name(), c.Usage(), "missing operand")
	}
	if len(args) > 2 {
		return domain.UsageError(c.Name(), c.Usage(), "too many arguments")
	}

	pattern, name := args[0], args[1]
	path := sess.Resolve(name)

	info, err := os.Stat(path)
	if err != nil {
		return domain.NewCommandError(c.Name(), name, err)
	}
	if info.IsDir() {
		return domain.NewCommandError(c.Name(), name, domain.ErrIsDirectory)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.NewCommandError(c.Name(), name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.Contains(line, pattern) {
			fmt.Fprintf(c.out, "%s:%d: %s\n", name, n, line)
		}
	}
	if err := sc.Err(); err != nil {
		return domain.NewCommandError(c.Name(), name, err)
	}
	return nil
}

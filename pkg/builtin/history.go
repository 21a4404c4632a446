package builtin

import (
	"fmt"
	"io"

	"github.com/aretw0/ash/pkg/domain"
)

type historyCommand struct {
	out io.Writer
}

func (*historyCommand) Name() string        { return "history" }
func (*historyCommand) Usage() string       { return "history" }
func (*historyCommand) Description() string { return "Show the commands entered this session" }

func (c *historyCommand) Execute(args []string, sess *domain.Session) error {
	entries := sess.History()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No command history available")
		return nil
	}
	for i, entry := range entries {
		fmt.Fprintf(c.out, "%d: %s\n", i+1, entry)
	}
	return nil
}

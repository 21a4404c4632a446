package builtin

import (
	"fmt"
	"io"

	"github.com/aretw0/ash/pkg/domain"
)

type pwdCommand struct {
	out io.Writer
}

func (*pwdCommand) Name() string        { return "pwd" }
func (*pwdCommand) Usage() string       { return "pwd" }
func (*pwdCommand) Description() string { return "Print the working directory" }

func (c *pwdCommand) Execute(args []string, sess *domain.Session) error {
	fmt.Fprintln(c.out, sess.WorkingDir())
	return nil
}

package builtin

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/ash/pkg/domain"
)

type echoCommand struct {
	out io.Writer
}

func (*echoCommand) Name() string        { return "echo" }
func (*echoCommand) Usage() string       { return "echo [text]..." }
func (*echoCommand) Description() string { return "Print arguments separated by spaces" }

func (c *echoCommand) Execute(args []string, sess *domain.Session) error {
	fmt.Fprintln(c.out, strings.Join(args, " "))
	return nil
}

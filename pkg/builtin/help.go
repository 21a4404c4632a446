package builtin

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/ash/pkg/domain"
	"github.com/aretw0/ash/pkg/registry"
)

type helpCommand struct {
	out    io.Writer
	reg    *registry.Registry
	render Renderer
}

func (*helpCommand) Name() string        { return "help" }
func (*helpCommand) Usage() string       { return "help" }
func (*helpCommand) Description() string { return "Show this help" }

func (c *helpCommand) Execute(args []string, sess *domain.Session) error {
	var b strings.Builder
	b.WriteString("# ash\n\n")
	b.WriteString("A small interactive shell. Builtins run in-process; any other\n")
	b.WriteString("name is spawned as an external command.\n\n")
	b.WriteString("## Builtins\n\n")
	for _, cmd := range c.reg.Commands() {
		fmt.Fprintf(&b, "- `%s`: %s\n", cmd.Usage(), cmd.Description())
	}

	content := b.String()
	if c.render != nil {
		if rendered, err := c.render(content); err == nil {
			content = rendered
		}
	}
	fmt.Fprintln(c.out, strings.TrimSpace(content))
	return nil
}

package builtin

import (
	"fmt"
	"io"
	"time"

	"github.com/aretw0/ash/pkg/domain"
)

// dateLayout is the classic "YYYY-MM-DD HH:MM:SS" wall clock format.
const dateLayout = "2006-01-02 15:04:05"

type dateCommand struct {
	out io.Writer
}

func (*dateCommand) Name() string        { return "date" }
func (*dateCommand) Usage() string       { return "date" }
func (*dateCommand) Description() string { return "Print the current date and time" }

func (c *dateCommand) Execute(args []string, sess *domain.Session) error {
	fmt.Fprintln(c.out, time.Now().Format(dateLayout))
	return nil
}

package builtin

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/ash/pkg/domain"
)

type cpCommand struct{}

func (cpCommand) Name() string        { return "cp" }
func (cpCommand) Usage() string       { return "cp <source> <dest>" }
func (cpCommand) Description() string { return "Copy a file" }

func (c cpCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) < 2 {
		return domain.UsageError(c.Name(), c.Usage(), "missing operand")
	}
	if len(args) > 2 {
		return domain.UsageError(c.Name(), c.Usage(), "too many arguments")
	}

	src := sess.Resolve(args[0])
	dst := sess.Resolve(args[1])

	srcInfo, err := os.Stat(src)
	if err != nil {
		return domain.NewCommandError(c.Name(), args[0], err)
	}
	if srcInfo.IsDir() {
		return domain.NewCommandError(c.Name(), args[0], domain.ErrIsDirectory)
	}

	// Copying into an existing directory keeps the source name.
	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	in, err := os.Open(src)
	if err != nil {
		return domain.NewCommandError(c.Name(), args[0], err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return domain.NewCommandError(c.Name(), args[1], err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return domain.NewCommandError(c.Name(), args[1], err)
	}
	if err := out.Close(); err != nil {
		return domain.NewCommandError(c.Name(), args[1], err)
	}
	return nil
}

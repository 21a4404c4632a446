package builtin

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/ash/pkg/domain"
)

type cdCommand struct{}

func (cdCommand) Name() string        { return "cd" }
func (cdCommand) Usage() string       { return "cd [dir]" }
func (cdCommand) Description() string { return "Change the working directory" }

func (c cdCommand) Execute(args []string, sess *domain.Session) error {
	if len(args) > 1 {
		return domain.UsageError(c.Name(), c.Usage(), "too many arguments")
	}

	target, err := cdTarget(args, sess)
	if err != nil {
		return err
	}

	dir := sess.Resolve(target)
	info, err := os.Stat(dir)
	if err != nil {
		return domain.NewCommandError(c.Name(), target, err)
	}
	if !info.IsDir() {
		return domain.NewCommandError(c.Name(), target, domain.ErrNotDirectory)
	}

	sess.SetWorkingDir(dir)
	return nil
}

// cdTarget applies the defaulting rules: no argument or a bare ~ means
// the home directory, and a ~/ prefix is expanded against it.
func cdTarget(args []string, sess *domain.Session) (string, error) {
	if len(args) == 0 || args[0] == "~" {
		if sess.Home() == "" {
			return "", &domain.CommandError{Cmd: "cd", Reason: "HOME not set"}
		}
		return sess.Home(), nil
	}
	if rest, ok := strings.CutPrefix(args[0], "~/"); ok {
		if sess.Home() == "" {
			return "", &domain.CommandError{Cmd: "cd", Reason: "HOME not set"}
		}
		return filepath.Join(sess.Home(), rest), nil
	}
	return args[0], nil
}

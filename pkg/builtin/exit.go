package builtin

import "github.com/aretw0/ash/pkg/domain"

type exitCommand struct{}

func (exitCommand) Name() string        { return "exit" }
func (exitCommand) Usage() string       { return "exit" }
func (exitCommand) Description() string { return "Exit the shell" }

func (c exitCommand) Execute(args []string, sess *domain.Session) error {
	return domain.ErrExit
}

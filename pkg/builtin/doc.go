/*
Package builtin implements the commands the ash shell runs in-process.

Each command is a small type satisfying registry.Command. Commands
write their normal output to the writer configured at registration
time and return failures as *domain.CommandError values; the shell is
responsible for reporting them. Paths are resolved against the shared
session, never against the process working directory, so several
shells can coexist in one process.

RegisterAll wires the full set into a registry:

	reg := registry.New()
	builtin.RegisterAll(reg, builtin.WithOutput(os.Stdout))
*/
package builtin

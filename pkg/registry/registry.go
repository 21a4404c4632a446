package registry

import (
	"sort"
	"sync"

	"github.com/aretw0/ash/pkg/domain"
)

// Command is implemented by every command the shell can run in-process.
type Command interface {
	// Name is the token the command is dispatched under.
	Name() string

	// Usage is the one-line invocation synopsis, e.g. "cp <source> <dest>".
	Usage() string

	// Description is a short sentence for help listings.
	Description() string

	// Execute runs the command against the shared session. Normal
	// output goes to the command's own writer; failures are returned,
	// not printed, so the shell can report them uniformly.
	Execute(args []string, sess *domain.Session) error
}

// Registry manages the available builtin commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry, keyed by its name.
// If a command with the same name exists, it is overwritten.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds[cmd.Name()] = cmd
}

// Lookup returns the command registered under name.
// The second result is false when the name is not a builtin, which is
// how the shell decides to try an external process instead.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names
}

// Commands returns the registered commands sorted by name, for help
// listings.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmds := make([]Command, 0, len(r.cmds))
	for _, cmd := range r.cmds {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

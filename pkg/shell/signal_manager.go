package shell

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
)

// SignalManager owns the process-wide interrupt handling for the read
// loop. Arming it replaces the default die-on-SIGINT disposition, so a
// Ctrl+C aimed at a foreground child process no longer takes the shell
// down with it. SIGTERM is deliberately left alone; it should still
// terminate the process.
//
// The manager records interrupts as a flag the loop reads and clears
// once per iteration, keeping the loop itself single-threaded.
type SignalManager struct {
	ch       chan os.Signal
	done     chan struct{}
	fired    atomic.Bool
	stopOnce sync.Once
}

// NewSignalManager arms the handler and immediately starts recording
// interrupts.
func NewSignalManager() *SignalManager {
	sm := &SignalManager{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(sm.ch, os.Interrupt)
	go sm.watch()
	return sm
}

func (sm *SignalManager) watch() {
	for {
		select {
		case <-sm.ch:
			sm.fired.Store(true)
		case <-sm.done:
			return
		}
	}
}

// Interrupted reports whether an interrupt arrived since the last Clear.
func (sm *SignalManager) Interrupted() bool {
	return sm.fired.Load()
}

// Clear resets the interrupt flag. The loop calls it before each read
// so stale interrupts from a previous iteration are not mistaken for
// fresh ones.
func (sm *SignalManager) Clear() {
	sm.fired.Store(false)
}

// Stop detaches the handler and restores default signal delivery.
// Safe to call more than once.
func (sm *SignalManager) Stop() {
	sm.stopOnce.Do(func() {
		signal.Stop(sm.ch)
		close(sm.done)
	})
}

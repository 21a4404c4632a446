/*
Package ash is an embeddable interactive shell: a read, evaluate and dispatch loop over a set of builtin commands with fallthrough to external processes.

It separates the loop mechanics (reading, interrupt handling, dispatch) from the command set and the session state, so hosts can embed the same core under different front ends.

# Concept

Ash treats a shell session as three cooperating parts. The Session holds the mutable state (working directory, history) that commands share by reference. The Registry maps command names to builtin implementations. The Shell owns the loop: it prompts, reads a line, tokenizes it, and dispatches to a builtin or, when the name is not registered, to an external process found on PATH. A SIGINT during editing discards the pending line and re-issues the prompt; it never terminates the session.

# Key Features

  - Builtin command set: cd, ls, cat, mkdir, touch, rm, cp, mv, grep, pwd, echo, date, history, help, exit.
  - External fallthrough: unregistered names run as child processes with inherited standard streams.
  - Interrupt safety: Ctrl+C cancels the current line, not the shell.
  - Pluggable I/O: line sources, prompts, and output writers are injected, so the loop is fully testable.

# Usage

Assemble a shell with New and drive it with Run. By default it reads standard input and writes to standard output; hosts that want line editing pass a readline-backed source.

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/ash"
		"github.com/aretw0/ash/pkg/shell"
	)

	func main() {
		// Line editing, history and ^C handling on a real terminal.
		source, err := shell.NewReadlineSource()
		if err != nil {
			log.Fatal(err)
		}

		sh, err := ash.New(ash.WithLineSource(source))
		if err != nil {
			log.Fatal(err)
		}

		// Blocks until "exit" or end of input.
		if err := sh.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package ash

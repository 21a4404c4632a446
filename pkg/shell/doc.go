/*
Package shell implements the read and dispatch loop of the ash shell.

It connects a LineSource (where lines come from) to a command registry
(what runs them). Each loop iteration reads one line, tokenizes it, and
dispatches the result to a builtin or an external process. Failures are
reported on the error stream and the loop keeps going; only the exit
command or the end of input stops it.

# Key Components

  - Shell: the loop itself, configured with functional options.
  - LineSource: the input port, with a readline implementation for
    terminals and a scanner implementation for piped input.
  - SignalManager: process-wide interrupt handling, armed once per Run.

# Usage

	reg := registry.New()
	builtin.RegisterAll(reg)
	sess := domain.NewSession("/work", "/home/ada")

	sh := shell.New(reg, sess,
		shell.WithLineSource(shell.NewScannerSource(os.Stdin)),
	)

	if err := sh.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
*/
package shell

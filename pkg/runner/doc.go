/*
Package runner implements the interactive command loop.

A Loop prints a listing of its options, reads one line through an
IOHandler, tokenizes it and dispatches the first token to the matching
option's handler. It repeats until the break trigger (or an empty line,
when allowed) is accepted, then returns the last handler result.

# Key Components

  - Loop: the state machine. Configure it with functional options.
  - IOHandler: decouples how the loop talks to the user.
  - TextHandler: line-based terminal I/O.
  - JSONHandler: JSON-Lines I/O for scripted sessions.
  - Nested, Confirm, Print: helpers for handlers running inside a loop.

# Usage

	result, err := runner.New(options,
		runner.WithName("Top Loop"),
		runner.WithIOHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	).Run(ctx)
*/
package runner

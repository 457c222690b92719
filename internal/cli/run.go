package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	MenuPath    string // empty runs the built-in demo
	Debug       bool
	Plain       bool
	JSON        bool
	Suggest     bool
	MetricsFile string

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

func (o RunOptions) streams() (io.Reader, io.Writer) {
	in, out := o.Stdin, o.Stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}

// Execute handles the 'run' command: it runs one session under a signal
// context and maps interruptions and closed input to a clean exit.
func Execute(opts RunOptions) error {
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	type outcome struct {
		result any
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := RunSession(sigCtx, opts)
		done <- outcome{res, err}
	}()

	var o outcome
	select {
	case o = <-done:
	case <-sigCtx.Done():
		// A blocked read on stdin cannot be cancelled; the session
		// goroutine is abandoned and exits with the process.
		o.err = sigCtx.Err()
	}

	_, out := opts.streams()
	logCompletion(out, o.result, o.err, opts.JSON, sigCtx.Signal())
	if err := handleExecutionError(o.err); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}

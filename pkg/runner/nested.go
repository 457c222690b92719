package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/token"
)

// frame carries the settings a running loop shares with loops started
// from inside its handlers.
type frame struct {
	handler IOHandler
	parser  token.Parser
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	suggest bool
	depth   int
}

type frameKey struct{}

func withFrame(ctx context.Context, f frame) context.Context {
	return context.WithValue(ctx, frameKey{}, f)
}

func frameFrom(ctx context.Context) (frame, bool) {
	if ctx == nil {
		return frame{}, false
	}
	f, ok := ctx.Value(frameKey{}).(frame)
	return f, ok
}

// Nested runs a loop from inside a handler. The new loop shares the I/O
// handler, parser, logger and hooks of the loop that invoked the handler,
// unless opts override them.
func Nested(ctx context.Context, options []domain.Option, opts ...Option) (any, error) {
	return New(options, opts...).Run(ctx)
}

// Depth reports how many loops enclose the current one: 0 inside the
// handlers of a top-level loop, -1 outside any loop.
func Depth(ctx context.Context) int {
	f, ok := frameFrom(ctx)
	if !ok {
		return -1
	}
	return f.depth
}

// Print writes content through the I/O handler of the running loop, or to
// standard output when called outside a loop.
func Print(ctx context.Context, content string) error {
	f, ok := frameFrom(ctx)
	if !ok {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	return f.handler.Output(ctx, content)
}

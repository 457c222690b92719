package menuloop

import (
	"context"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/menu"
	"github.com/aretw0/menuloop/pkg/registry"
	"github.com/aretw0/menuloop/pkg/runner"
)

// Run runs a loop over options and returns its result.
// Inside a handler, it runs a nested loop sharing the caller's I/O.
func Run(ctx context.Context, options []domain.Option, opts ...runner.Option) (any, error) {
	return runner.New(options, opts...).Run(ctx)
}

// RunFile loads a menu file and runs it. A nil registry means
// registry.Builtin().
func RunFile(ctx context.Context, path string, reg *registry.Registry, opts ...runner.Option) (any, error) {
	def, err := menu.Load(path)
	if err != nil {
		return nil, err
	}
	loop, err := menu.NewLoop(def, reg, opts)
	if err != nil {
		return nil, err
	}
	return loop.Run(ctx)
}

// Confirm asks the user to accept selection. See runner.Confirm.
func Confirm(ctx context.Context, selection any) (bool, error) {
	return runner.Confirm(ctx, selection)
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/menuloop/internal/presentation/tui"
	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/menu"
	"github.com/aretw0/menuloop/pkg/observability"
	"github.com/aretw0/menuloop/pkg/registry"
	"github.com/aretw0/menuloop/pkg/runner"
)

// RunSession loads the menu, wires I/O, logging and metrics, and runs the
// top loop until it returns.
func RunSession(ctx context.Context, opts RunOptions) (any, error) {
	logger := createLogger(opts.Debug)
	in, out := opts.streams()
	rich := !opts.Plain && !opts.JSON && opts.Stdout == nil && tui.IsTerminal()

	var render runner.ContentRenderer
	if rich {
		render = tui.NewRenderer()
		tui.PrintBanner(out)
	}
	handler, jsonHandler := newHandler(opts, in, out, render)

	var hooks []domain.LifecycleHooks
	if opts.Debug {
		hooks = append(hooks, observability.LogHooks(logger))
	}
	var metrics *observability.Metrics
	if opts.MetricsFile != "" {
		metrics = observability.NewMetrics()
		hooks = append(hooks, metrics.Hooks())
	}

	runnerOpts := []runner.Option{
		runner.WithIOHandler(handler),
		runner.WithLogger(logger),
		runner.WithSuggestions(opts.Suggest),
		runner.WithHooks(domain.MergeHooks(hooks...)),
	}

	loop, err := loadLoop(opts, render, runnerOpts)
	if err != nil {
		return nil, err
	}

	logger.Debug("session start", "menu", opts.MenuPath, "loop", loop.Name())
	res, runErr := loop.Run(ctx)

	if metrics != nil {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", "path", opts.MetricsFile, "error", err)
		}
	}
	if runErr == nil && jsonHandler != nil {
		if err := jsonHandler.Result(res); err != nil {
			return res, err
		}
	}
	return res, runErr
}

// newHandler picks the I/O handler for the session. A non-nil render
// marks rich mode: handler output goes through it and warnings are styled.
// The JSON handler is also returned on its own so the caller can emit the
// final result.
func newHandler(opts RunOptions, in io.Reader, out io.Writer, render runner.ContentRenderer) (runner.IOHandler, *runner.JSONHandler) {
	if opts.JSON {
		h := runner.NewJSONHandler(in, out)
		return h, h
	}
	var textOpts []runner.TextHandlerOption
	if render != nil {
		textOpts = append(textOpts,
			runner.WithTextHandlerRenderer(render),
			runner.WithTextHandlerStyler(tui.Warn),
		)
	}
	return runner.NewTextHandler(in, out, textOpts...), nil
}

func loadLoop(opts RunOptions, render runner.ContentRenderer, runnerOpts []runner.Option) (*runner.Loop, error) {
	if opts.MenuPath == "" {
		return runner.New(DemoOptions(), append([]runner.Option{runner.WithName("Top Loop")}, runnerOpts...)...), nil
	}

	def, err := menu.Load(opts.MenuPath)
	if err != nil {
		return nil, err
	}
	var buildOpts []menu.BuildOption
	if render != nil {
		buildOpts = append(buildOpts, menu.WithInstructionsRenderer(render))
	}
	loop, err := menu.NewLoop(def, registry.Builtin(registry.WithLogger(createLogger(opts.Debug))), runnerOpts, buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid menu %s: %w", opts.MenuPath, err)
	}
	return loop, nil
}

/*
Package menuloop is a small engine for interactive command menus.

A loop shows a list of options, each bound to a trigger (a literal token, a
set of tokens, or a token type) and a handler. It reads a line, splits it
into typed tokens, resolves the first token to an option and calls its
handler with all the tokens. The loop repeats until the break trigger is
entered and then returns the last handler result.

# Building blocks

  - pkg/domain: values, triggers, options, handlers and lifecycle hooks.
  - pkg/token: turns words into typed values.
  - pkg/runner: the loop itself, I/O handlers, nested loops and confirmation.
  - pkg/dsl: a fluent builder for option lists.
  - pkg/menu: loop definitions loaded from YAML.
  - pkg/registry: named actions referenced by menu files.
  - pkg/observability: Prometheus metrics and log hooks.

# Usage

	options := []domain.Option{
		domain.NewOption("Add", domain.Func(add), domain.Strings("add", "a").OrKind(domain.KindInt)),
	}
	result, err := menuloop.Run(ctx, options, runner.WithName("Top Loop"))
*/
package menuloop

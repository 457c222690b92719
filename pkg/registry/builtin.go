package registry

import (
	"context"
	"strings"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/runner"
)

// Builtin returns a registry holding the stock actions:
//
//   - echo: returns the arguments after the command, joined by spaces.
//   - print: prints the arguments through the running loop; returns nothing.
//   - sum: adds the numeric arguments. The result is an int64 unless a
//     float is involved.
func Builtin(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	r.Register("echo", domain.Func(echo))
	r.Register("print", domain.Func(printArgs))
	r.Register("sum", domain.Func(sum))
	return r
}

func joinArgs(args []domain.Value) string {
	if len(args) < 2 {
		return ""
	}
	words := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		words = append(words, a.String())
	}
	return strings.Join(words, " ")
}

func echo(_ context.Context, args []domain.Value) (any, error) {
	return joinArgs(args), nil
}

func printArgs(ctx context.Context, args []domain.Value) (any, error) {
	return nil, runner.Print(ctx, joinArgs(args))
}

func sum(_ context.Context, args []domain.Value) (any, error) {
	var (
		total  int64
		frac   float64
		floats bool
	)
	for _, a := range args[min(1, len(args)):] {
		if n, ok := a.AsInt(); ok {
			total += n
			continue
		}
		if f, ok := a.AsFloat(); ok {
			frac += f
			floats = true
		}
	}
	if floats {
		return frac + float64(total), nil
	}
	return total, nil
}

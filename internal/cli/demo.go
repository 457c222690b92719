package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/dsl"
	"github.com/aretw0/menuloop/pkg/runner"
)

// DemoOptions is the menu run when no file is given: "1" opens a deeper
// loop that echoes any number typed into it.
func DemoOptions() []domain.Option {
	top := dsl.New()
	top.Add("Go a loop deeper").
		OnValue(domain.Int(1)).
		Run(deeperLoop)
	return top.MustBuild()
}

func deeperLoop(ctx context.Context) (any, error) {
	deeper := dsl.New()
	deeper.Add("Input a number to call a function and print that number").
		OnKind(domain.KindInt).
		Do(printNumber)

	res, err := runner.Nested(ctx, deeper.MustBuild(), runner.WithName("Deeper Loop"))
	if err != nil {
		return nil, err
	}
	if err := runner.Print(ctx, fmt.Sprintf("In the Deeper Loop, the function returned: %v", res)); err != nil {
		return nil, err
	}
	return res, nil
}

func printNumber(ctx context.Context, args []domain.Value) (any, error) {
	if err := runner.Print(ctx, "SUCCESS"); err != nil {
		return nil, err
	}
	n, _ := args[0].AsInt()
	return n, nil
}

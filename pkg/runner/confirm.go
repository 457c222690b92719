package runner

import (
	"context"
	"fmt"

	"github.com/aretw0/menuloop/pkg/domain"
)

// ConfirmOptions returns the options of the confirmation prompt: "y" or an
// empty line accept, "n" declines. Input is lower-cased before matching.
func ConfirmOptions() []domain.Option {
	return []domain.Option{
		domain.NewOption("Yes", domain.Returns(true), domain.Strings("y", "")).WithModifier(domain.Lowercase),
		domain.NewOption("No", domain.Returns(false), domain.Exact(domain.Str("n"))).WithModifier(domain.Lowercase),
	}
}

// ConfirmName is the name of every confirmation loop. The question itself
// is shown as the loop's instructions.
const ConfirmName = "Confirm"

// Confirm asks whether selection is acceptable. It runs as a nested loop
// without a break trigger, so it returns after one valid answer.
func Confirm(ctx context.Context, selection any) (bool, error) {
	question := fmt.Sprintf("Is '%v' ok?", selection)
	res, err := Nested(ctx, ConfirmOptions(),
		WithName(ConfirmName),
		WithInstructions(question),
		WithoutBreak(),
		WithAllowNothing(true),
		WithRequireReturn(false),
		WithDefault(true),
		WithConfirm(false),
		WithSuggestions(false),
	)
	if err != nil {
		return false, err
	}
	ok, _ := res.(bool)
	return ok, nil
}

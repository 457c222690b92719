package dsl

import (
	"context"
	"fmt"

	"github.com/aretw0/menuloop/pkg/domain"
)

// OptionBuilder provides a fluent API for configuring an option.
type OptionBuilder struct {
	name       string
	values     []domain.Value
	kinds      []domain.Kind
	collection bool
	handler    domain.Handler
	modifier   domain.InputModifier
}

// On adds string triggers. More than one trigger makes a collection.
func (o *OptionBuilder) On(words ...string) *OptionBuilder {
	for _, w := range words {
		o.values = append(o.values, domain.Str(w))
	}
	return o
}

// OnValue adds typed triggers, e.g. domain.Int(1).
func (o *OptionBuilder) OnValue(values ...domain.Value) *OptionBuilder {
	o.values = append(o.values, values...)
	return o
}

// OnKind makes every value of the kind a trigger.
func (o *OptionBuilder) OnKind(kinds ...domain.Kind) *OptionBuilder {
	o.kinds = append(o.kinds, kinds...)
	return o
}

// AsCollection forces a collection trigger even for a single entry.
func (o *OptionBuilder) AsCollection() *OptionBuilder {
	o.collection = true
	return o
}

// Do binds a handler that receives the line's tokens.
func (o *OptionBuilder) Do(fn domain.HandlerFunc) *OptionBuilder {
	o.handler = domain.Func(fn)
	return o
}

// Run binds a handler that takes no arguments.
func (o *OptionBuilder) Run(fn func(ctx context.Context) (any, error)) *OptionBuilder {
	o.handler = domain.Thunk(fn)
	return o
}

// Returns binds a handler yielding v.
func (o *OptionBuilder) Returns(v any) *OptionBuilder {
	o.handler = domain.Returns(v)
	return o
}

// Handler binds a prebuilt handler, e.g. one from a registry.
func (o *OptionBuilder) Handler(h domain.Handler) *OptionBuilder {
	o.handler = h
	return o
}

// Lowercase lower-cases string input before equality matching.
func (o *OptionBuilder) Lowercase() *OptionBuilder {
	return o.Modifier(domain.Lowercase)
}

// Modifier sets the input modifier.
func (o *OptionBuilder) Modifier(m domain.InputModifier) *OptionBuilder {
	o.modifier = m
	return o
}

// Trigger returns the trigger described so far.
func (o *OptionBuilder) Trigger() domain.Trigger {
	switch {
	case len(o.values)+len(o.kinds) == 0:
		return domain.Trigger{}
	case !o.collection && len(o.values) == 1 && len(o.kinds) == 0:
		return domain.Exact(o.values[0])
	case !o.collection && len(o.values) == 0 && len(o.kinds) == 1:
		return domain.OfType(o.kinds[0])
	}
	t := domain.OneOf(o.values...)
	if len(o.kinds) > 0 {
		t = t.OrKind(o.kinds...)
	}
	return t
}

// Build returns the configured domain.Option.
func (o *OptionBuilder) Build() (domain.Option, error) {
	trigger := o.Trigger()
	if trigger.IsZero() {
		return domain.Option{}, fmt.Errorf("%q: %w", o.name, ErrNoTrigger)
	}
	if o.handler.IsZero() {
		return domain.Option{}, fmt.Errorf("%q: %w", o.name, ErrNoHandler)
	}
	opt := domain.NewOption(o.name, o.handler, trigger)
	if o.modifier != nil {
		opt = opt.WithModifier(o.modifier)
	}
	return opt, nil
}

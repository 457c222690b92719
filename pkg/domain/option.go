package domain

import "fmt"

// InputModifier normalizes a candidate value before an equality check.
// It must return non-string values untouched rather than fail.
type InputModifier func(Value) Value

// Option binds a display name, a trigger and a handler.
type Option struct {
	Name          string
	Trigger       Trigger
	Handler       Handler
	InputModifier InputModifier
}

// NewOption creates an option without an input modifier.
func NewOption(name string, handler Handler, trigger Trigger) Option {
	return Option{Name: name, Handler: handler, Trigger: trigger}
}

// WithModifier returns a copy of the option using the given modifier for
// equality checks.
func (o Option) WithModifier(m InputModifier) Option {
	o.InputModifier = m
	return o
}

// Lookup returns the handler if v matches the trigger.
// The input modifier is not applied.
func (o Option) Lookup(v Value) (Handler, error) {
	if o.Trigger.Matches(v) {
		return o.Handler, nil
	}
	return Handler{}, fmt.Errorf("%w: '%s' has no function in triggers %s", ErrOptionMismatch, v, o.Trigger)
}

// Equals is the equality-style comparison: the modifier (if any) is applied
// to v before matching.
func (o Option) Equals(v Value) bool {
	if o.InputModifier != nil {
		v = o.InputModifier(v)
	}
	_, err := o.Lookup(v)
	return err == nil
}

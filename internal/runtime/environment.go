package runtime

import (
	"fmt"

	"github.com/aretw0/menuloop/pkg/domain"
)

// Environment is the ordered set of options active for one loop session.
// Lookups walk the options in registration order and the first match wins.
type Environment struct {
	options []domain.Option
}

// NewEnvironment copies the option list so later changes by the caller
// cannot leak into a running session.
func NewEnvironment(options []domain.Option) *Environment {
	return &Environment{options: append([]domain.Option(nil), options...)}
}

// Options returns a copy of the options in order.
func (e *Environment) Options() []domain.Option {
	return append([]domain.Option(nil), e.options...)
}

// Len returns the number of options.
func (e *Environment) Len() int { return len(e.options) }

// Resolve returns the first option whose trigger matches v, by value or by
// kind. Input modifiers are ignored.
func (e *Environment) Resolve(v domain.Value) (domain.Option, error) {
	for _, opt := range e.options {
		if _, err := opt.Lookup(v); err == nil {
			return opt, nil
		}
	}
	return domain.Option{}, fmt.Errorf("%w: '%s'", domain.ErrKeyNotFound, v)
}

// ResolveKind uses the kind itself as the lookup key: it returns the first
// option whose trigger lists k.
func (e *Environment) ResolveKind(k domain.Kind) (domain.Option, error) {
	for _, opt := range e.options {
		if opt.Trigger.MatchesKind(k) {
			return opt, nil
		}
	}
	return domain.Option{}, fmt.Errorf("%w: <%s>", domain.ErrKeyNotFound, k)
}

// Select is the equality-style lookup: each option applies its input
// modifier to v before matching. It only finds more than Resolve for
// options that carry a modifier.
func (e *Environment) Select(v domain.Value) (domain.Option, error) {
	for _, opt := range e.options {
		if opt.Equals(v) {
			return opt, nil
		}
	}
	return domain.Option{}, fmt.Errorf("%w: '%s'", domain.ErrKeyNotFound, v)
}

// Find resolves v by value, then by kind, then by equality.
func (e *Environment) Find(v domain.Value) (domain.Option, error) {
	if opt, err := e.Resolve(v); err == nil {
		return opt, nil
	}
	if opt, err := e.ResolveKind(v.Kind()); err == nil {
		return opt, nil
	}
	return e.Select(v)
}

// Contains reports whether a lookup for v would succeed.
func (e *Environment) Contains(v domain.Value) bool {
	_, err := e.Find(v)
	return err == nil
}

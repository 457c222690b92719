package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/menuloop/pkg/domain"
)

var (
	ErrNoTrigger = errors.New("option has no trigger")
	ErrNoHandler = errors.New("option has no handler")
)

// Builder collects options in insertion order.
type Builder struct {
	order []*OptionBuilder
	index map[string]*OptionBuilder
}

// New creates a new option list builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]*OptionBuilder),
	}
}

// Add creates a new option.
// If an option with that name already exists, it returns the existing builder.
func (b *Builder) Add(name string) *OptionBuilder {
	if ob, ok := b.index[name]; ok {
		return ob
	}
	ob := &OptionBuilder{name: name}
	b.index[name] = ob
	b.order = append(b.order, ob)
	return ob
}

// Build compiles every option. Problems with individual options are
// reported together.
func (b *Builder) Build() ([]domain.Option, error) {
	options := make([]domain.Option, 0, len(b.order))
	var errs []error
	for _, ob := range b.order {
		opt, err := ob.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		options = append(options, opt)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build options: %w", errors.Join(errs...))
	}
	return options, nil
}

// MustBuild is Build for statically known option lists.
func (b *Builder) MustBuild() []domain.Option {
	options, err := b.Build()
	if err != nil {
		panic(err)
	}
	return options
}

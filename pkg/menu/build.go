package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/dsl"
	"github.com/aretw0/menuloop/pkg/registry"
	"github.com/aretw0/menuloop/pkg/runner"
)

// BuildOption configures Build.
type BuildOption func(*builder)

type builder struct {
	reg    *registry.Registry
	render runner.ContentRenderer
}

// WithInstructionsRenderer transforms instructions (e.g. markdown to ANSI)
// before they become part of the listing.
func WithInstructionsRenderer(render runner.ContentRenderer) BuildOption {
	return func(b *builder) {
		b.render = render
	}
}

// Build turns a definition into the options and loop settings of its top
// menu. Nested menus become handlers running runner.Nested.
// A nil registry means registry.Builtin().
func Build(def *Definition, reg *registry.Registry, opts ...BuildOption) ([]domain.Option, []runner.Option, error) {
	if reg == nil {
		reg = registry.Builtin()
	}
	b := &builder{reg: reg}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(def)
}

// NewLoop is Build followed by runner.New. Extra options are applied after
// the ones derived from the definition.
func NewLoop(def *Definition, reg *registry.Registry, extra []runner.Option, opts ...BuildOption) (*runner.Loop, error) {
	options, settings, err := Build(def, reg, opts...)
	if err != nil {
		return nil, err
	}
	return runner.New(options, append(settings, extra...)...), nil
}

func (b *builder) build(def *Definition) ([]domain.Option, []runner.Option, error) {
	list := dsl.New()
	seen := make(map[string]bool, len(def.Options))
	var errs []error
	for i := range def.Options {
		od := &def.Options[i]
		if od.Name != "" && seen[od.Name] {
			errs = append(errs, fmt.Errorf("%s: %q: %w", def.Name, od.Name, ErrDuplicateName))
			continue
		}
		seen[od.Name] = true
		if err := b.option(list, od); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", def.Name, err))
		}
	}
	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}

	options, err := list.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", def.Name, err)
	}
	settings, err := b.settings(def)
	if err != nil {
		return nil, nil, err
	}
	return options, settings, nil
}

func (b *builder) option(list *dsl.Builder, od *OptionDef) error {
	if od.Name == "" {
		return ErrMissingName
	}
	ob := list.Add(od.Name)

	values, err := triggerValues(od.Trigger)
	if err != nil {
		return fmt.Errorf("%q: %w", od.Name, err)
	}
	ob.OnValue(values...)
	if _, isList := od.Trigger.([]any); isList {
		ob.AsCollection()
	}
	for _, name := range od.Kinds {
		k, ok := domain.ParseKind(name)
		if !ok {
			return fmt.Errorf("%q: %w: %s", od.Name, ErrUnknownKind, name)
		}
		ob.OnKind(k)
	}
	if od.Lowercase {
		ob.Lowercase()
	}

	switch od.bodies() {
	case 0:
		return fmt.Errorf("%q: %w", od.Name, ErrNoBody)
	case 1:
	default:
		return fmt.Errorf("%q: %w", od.Name, ErrAmbiguousBody)
	}

	switch {
	case od.Action != "":
		h, err := b.reg.Lookup(od.Action)
		if err != nil {
			return fmt.Errorf("%q: %w", od.Name, err)
		}
		ob.Handler(h)
	case od.Menu != nil:
		options, settings, err := b.build(od.Menu)
		if err != nil {
			return err
		}
		ob.Run(func(ctx context.Context) (any, error) {
			return runner.Nested(ctx, options, settings...)
		})
	default:
		ob.Returns(od.Returns)
	}
	return nil
}

func (od *OptionDef) bodies() int {
	n := 0
	if od.Action != "" {
		n++
	}
	if od.Returns != nil {
		n++
	}
	if od.Menu != nil {
		n++
	}
	return n
}

func (b *builder) settings(def *Definition) ([]runner.Option, error) {
	var opts []runner.Option
	if def.Name != "" {
		opts = append(opts, runner.WithName(def.Name))
	}
	if def.Instructions != "" {
		text := def.Instructions
		if b.render != nil {
			rendered, err := b.render(text)
			if err != nil {
				return nil, fmt.Errorf("%s: failed to render instructions: %w", def.Name, err)
			}
			text = rendered
		}
		opts = append(opts, runner.WithInstructions(text))
	}
	if def.Break != nil {
		if *def.Break == "" {
			opts = append(opts, runner.WithoutBreak())
		} else {
			opts = append(opts, runner.WithBreak(*def.Break))
		}
	}
	if def.BreakText != "" {
		opts = append(opts, runner.WithBreakText(def.BreakText))
	}
	if def.RequireReturn != nil {
		opts = append(opts, runner.WithRequireReturn(*def.RequireReturn))
	}
	opts = append(opts,
		runner.WithAllowNothing(def.AllowNothing),
		runner.WithConfirm(def.Confirm),
	)
	if def.Default != nil {
		opts = append(opts, runner.WithDefault(def.Default))
	}
	return opts, nil
}

// triggerValues converts a scalar or list trigger into values.
// YAML strings stay strings: "1" in quotes is the string "1".
func triggerValues(raw any) ([]domain.Value, error) {
	if raw == nil {
		return nil, nil
	}
	items, isList := raw.([]any)
	if !isList {
		items = []any{raw}
	}
	values := make([]domain.Value, 0, len(items))
	for _, item := range items {
		v, ok := domain.ValueOf(item)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidTrigger, item, item)
		}
		values = append(values, v)
	}
	return values, nil
}

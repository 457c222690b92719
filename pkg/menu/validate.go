package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/aretw0/menuloop/pkg/dsl"
	"github.com/aretw0/menuloop/pkg/registry"
	"github.com/aretw0/menuloop/pkg/runner"
)

// Validate reports every problem in the definition: the errors Build would
// return plus options that can never be selected because the break trigger
// or earlier options already claim all of their triggers.
func Validate(def *Definition, reg *registry.Registry) error {
	var errs []error
	if _, _, err := Build(def, reg); err != nil {
		errs = append(errs, err)
	}
	def.Walk(func(_ []string, d *Definition) {
		errs = append(errs, shadowed(d)...)
	})
	return errors.Join(errs...)
}

func shadowed(def *Definition) []error {
	brk := runner.DefaultBreak
	if def.Break != nil {
		brk = *def.Break
	}

	var errs []error
	var earlier []domain.Option
	for _, od := range def.Options {
		t, ok := triggerOf(od)
		if !ok {
			continue
		}
		if values := t.Values(); len(values) > 0 && len(t.Kinds()) == 0 {
			if by := claimedBy(values, brk, earlier); by != "" {
				errs = append(errs, fmt.Errorf("%s: %q: %w by %s", def.Name, od.Name, ErrShadowed, by))
			}
		}
		earlier = append(earlier, domain.Option{Name: od.Name, Trigger: t})
	}
	return errs
}

// claimedBy names what takes every value first, or returns "".
func claimedBy(values []domain.Value, brk string, earlier []domain.Option) string {
	var owners []string
	for _, v := range values {
		owner := ""
		if s, ok := v.AsString(); ok && brk != "" && strings.EqualFold(strings.TrimSpace(s), brk) {
			owner = "break trigger"
		}
		for _, opt := range earlier {
			if owner != "" {
				break
			}
			if opt.Trigger.Matches(v) {
				owner = fmt.Sprintf("%q", opt.Name)
			}
		}
		if owner == "" {
			return ""
		}
		owners = append(owners, owner)
	}
	return strings.Join(dedupe(owners), ", ")
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func triggerOf(od OptionDef) (domain.Trigger, bool) {
	values, err := triggerValues(od.Trigger)
	if err != nil {
		return domain.Trigger{}, false
	}
	ob := dsl.New().Add(od.Name).OnValue(values...)
	if _, isList := od.Trigger.([]any); isList {
		ob.AsCollection()
	}
	for _, name := range od.Kinds {
		k, ok := domain.ParseKind(name)
		if !ok {
			return domain.Trigger{}, false
		}
		ob.OnKind(k)
	}
	t := ob.Trigger()
	return t, !t.IsZero()
}

package domain

import (
	"strings"
)

type triggerMode uint8

const (
	triggerNone triggerMode = iota
	triggerExact
	triggerOneOf
	triggerOfType
)

// Trigger selects which resolved tokens activate an Option.
// It is one of Exact(value), OneOf(values...) or OfType(kind).
// A OneOf collection may also list kinds (see OrKind), in which case any
// value of that kind is a member.
type Trigger struct {
	mode   triggerMode
	values []Value
	kinds  []Kind
}

// Exact matches a single value.
func Exact(v Value) Trigger {
	return Trigger{mode: triggerExact, values: []Value{v}}
}

// OneOf matches any value of the collection.
func OneOf(values ...Value) Trigger {
	return Trigger{mode: triggerOneOf, values: append([]Value(nil), values...)}
}

// Strings is OneOf over plain string values.
func Strings(words ...string) Trigger {
	values := make([]Value, len(words))
	for i, w := range words {
		values[i] = Str(w)
	}
	return Trigger{mode: triggerOneOf, values: values}
}

// OfType matches any value of the given kind.
func OfType(k Kind) Trigger {
	return Trigger{mode: triggerOfType, kinds: []Kind{k}}
}

// OrKind returns a collection trigger that also accepts any value of the
// given kinds. A scalar trigger is promoted to a collection.
func (t Trigger) OrKind(kinds ...Kind) Trigger {
	next := Trigger{
		mode:   triggerOneOf,
		values: append([]Value(nil), t.values...),
		kinds:  append(append([]Kind(nil), t.kinds...), kinds...),
	}
	return next
}

// IsZero reports whether the trigger was never set.
func (t Trigger) IsZero() bool { return t.mode == triggerNone }

// IsCollection reports whether the trigger was built with OneOf.
func (t Trigger) IsCollection() bool { return t.mode == triggerOneOf }

// Values returns a copy of the literal values the trigger lists.
func (t Trigger) Values() []Value { return append([]Value(nil), t.values...) }

// Kinds returns a copy of the kinds the trigger lists.
func (t Trigger) Kinds() []Kind { return append([]Kind(nil), t.kinds...) }

// Matches applies the matching rule in priority order:
// collection membership by value, then by kind, then scalar equality by
// value, then by kind.
func (t Trigger) Matches(v Value) bool {
	switch t.mode {
	case triggerOneOf:
		for _, candidate := range t.values {
			if candidate == v {
				return true
			}
		}
		return t.hasKind(v.Kind())
	case triggerExact:
		return t.values[0] == v
	case triggerOfType:
		return t.kinds[0] == v.Kind()
	}
	return false
}

// MatchesKind reports whether the trigger accepts the kind itself as a key,
// i.e. the kind is listed in the collection or is the scalar type trigger.
func (t Trigger) MatchesKind(k Kind) bool {
	switch t.mode {
	case triggerOneOf, triggerOfType:
		return t.hasKind(k)
	}
	return false
}

func (t Trigger) hasKind(k Kind) bool {
	for _, candidate := range t.kinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// String renders the trigger for help text: "q", "[add a]" or "<int>".
func (t Trigger) String() string {
	switch t.mode {
	case triggerExact:
		return t.values[0].Quote()
	case triggerOfType:
		return "<" + t.kinds[0].String() + ">"
	case triggerOneOf:
		parts := make([]string, 0, len(t.values)+len(t.kinds))
		for _, v := range t.values {
			parts = append(parts, v.Quote())
		}
		for _, k := range t.kinds {
			parts = append(parts, "<"+k.String()+">")
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return "<none>"
}

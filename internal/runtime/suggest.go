package runtime

import (
	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/sahilm/fuzzy"
)

// MaxSuggestions caps how many candidates Suggest returns.
const MaxSuggestions = 3

// Suggest returns the string triggers of the environment that fuzzily match
// word, best first. Option names are not candidates since they cannot be
// typed as commands.
func (e *Environment) Suggest(word string) []string {
	if word == "" {
		return nil
	}
	candidates := e.candidates()
	if len(candidates) == 0 {
		return nil
	}

	matches := fuzzy.Find(word, candidates)
	out := make([]string, 0, MaxSuggestions)
	for _, m := range matches {
		if m.Str == word {
			continue
		}
		out = append(out, m.Str)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

func (e *Environment) candidates() []string {
	seen := make(map[string]bool)
	var out []string
	for _, opt := range e.options {
		for _, v := range opt.Trigger.Values() {
			s, ok := v.AsString()
			if !ok || s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// SuggestFor is Suggest keyed by a parsed value; non-string values get no
// suggestions.
func (e *Environment) SuggestFor(v domain.Value) []string {
	s, ok := v.AsString()
	if !ok {
		return nil
	}
	return e.Suggest(s)
}

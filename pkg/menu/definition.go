package menu

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName    = errors.New("option has no name")
	ErrDuplicateName  = errors.New("option name used twice")
	ErrNoBody         = errors.New("option needs one of action, returns or menu")
	ErrAmbiguousBody  = errors.New("option sets more than one of action, returns and menu")
	ErrInvalidTrigger = errors.New("invalid trigger")
	ErrUnknownKind    = errors.New("unknown kind")
	ErrShadowed       = errors.New("option is shadowed")
)

// Definition describes one loop in a menu file.
// A nil Break keeps the default trigger; an empty string removes it.
type Definition struct {
	Name          string      `mapstructure:"name" yaml:"name,omitempty"`
	Instructions  string      `mapstructure:"instructions" yaml:"instructions,omitempty"`
	Break         *string     `mapstructure:"break" yaml:"break,omitempty"`
	BreakText     string      `mapstructure:"break_text" yaml:"break_text,omitempty"`
	RequireReturn *bool       `mapstructure:"require_return" yaml:"require_return,omitempty"`
	AllowNothing  bool        `mapstructure:"allow_nothing" yaml:"allow_nothing,omitempty"`
	Confirm       bool        `mapstructure:"confirm" yaml:"confirm,omitempty"`
	Default       any         `mapstructure:"default" yaml:"default,omitempty"`
	Options       []OptionDef `mapstructure:"options" yaml:"options"`
}

// OptionDef describes one option. Trigger is a scalar (exact match) or a
// list (collection); Kinds adds "any value of this kind" entries.
type OptionDef struct {
	Name      string      `mapstructure:"name" yaml:"name"`
	Trigger   any         `mapstructure:"trigger" yaml:"trigger,omitempty"`
	Kinds     []string    `mapstructure:"kinds" yaml:"kinds,omitempty"`
	Action    string      `mapstructure:"action" yaml:"action,omitempty"`
	Returns   any         `mapstructure:"returns" yaml:"returns,omitempty"`
	Lowercase bool        `mapstructure:"lowercase" yaml:"lowercase,omitempty"`
	Menu      *Definition `mapstructure:"menu" yaml:"menu,omitempty"`
}

// Load reads a menu file. JSON files are accepted since JSON is valid YAML.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a menu document.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}
	if raw == nil {
		return nil, errors.New("empty menu document")
	}
	return Decode(raw)
}

// Decode converts a generic map (e.g. frontmatter) into a Definition.
// Unknown keys are rejected.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	def.inheritNames()
	return &def, nil
}

// inheritNames names untitled nested menus after the option opening them.
func (d *Definition) inheritNames() {
	for i := range d.Options {
		opt := &d.Options[i]
		if opt.Menu == nil {
			continue
		}
		if opt.Menu.Name == "" {
			opt.Menu.Name = opt.Name
		}
		opt.Menu.inheritNames()
	}
}

// Marshal renders the definition back to YAML.
func (d *Definition) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Walk visits the definition and every nested menu, depth first.
// path holds the names of the enclosing menus.
func (d *Definition) Walk(fn func(path []string, def *Definition)) {
	d.walk(nil, fn)
}

func (d *Definition) walk(path []string, fn func([]string, *Definition)) {
	fn(path, d)
	next := append(append([]string(nil), path...), d.Name)
	for _, opt := range d.Options {
		if opt.Menu != nil {
			opt.Menu.walk(next, fn)
		}
	}
}

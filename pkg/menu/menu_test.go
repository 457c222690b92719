package menu

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/menuloop/pkg/dsl"
	"github.com/aretw0/menuloop/pkg/registry"
	"github.com/aretw0/menuloop/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calculator = `
name: Top Loop
instructions: Pick an option.
options:
  - name: Add
    trigger: [add, a]
    kinds: [int]
    action: sum
  - name: Settings
    trigger: s
    menu:
      break: b
      options:
        - name: Verbose
          trigger: v
          returns: verbose
        - name: Level
          trigger: 1
          returns: 10
`

func run(t *testing.T, def *Definition, input string) (any, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	loop, err := NewLoop(def, nil, []runner.Option{
		runner.WithIOHandler(runner.NewTextHandler(strings.NewReader(input), out)),
	})
	require.NoError(t, err)
	res, err := loop.Run(context.Background())
	return res, out.String(), err
}

func TestParse(t *testing.T) {
	def, err := Parse([]byte(calculator))
	require.NoError(t, err)

	assert.Equal(t, "Top Loop", def.Name)
	require.Len(t, def.Options, 2)
	assert.Equal(t, []any{"add", "a"}, def.Options[0].Trigger)
	assert.Equal(t, []string{"int"}, def.Options[0].Kinds)

	sub := def.Options[1].Menu
	require.NotNil(t, sub)
	assert.Equal(t, "Settings", sub.Name, "nested menus inherit the option name")
	require.NotNil(t, sub.Break)
	assert.Equal(t, "b", *sub.Break)
	assert.Equal(t, 10, sub.Options[1].Returns)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("name: X\noptionz: []\n"))
	assert.ErrorContains(t, err, "optionz")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte(""))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "J", "options": [{"name": "One", "trigger": 1, "returns": "one"}]}`), 0o644))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "J", def.Name)
	assert.Equal(t, 1, def.Options[0].Trigger)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild_RunsNestedMenus(t *testing.T) {
	def, err := Parse([]byte(calculator))
	require.NoError(t, err)

	res, out, err := run(t, def, "add 1 2\ns\nv\nb\nq\n")
	require.NoError(t, err)
	assert.Equal(t, "verbose", res)
	assert.Contains(t, out, "Pick an option.\n[add a <int>]: Add\ns: Settings\nq: Quit Top Loop")
	assert.Contains(t, out, "b: Quit Settings")

	res, _, err = run(t, def, "add 1 2\nq\n")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res)
}

func TestBuild_Settings(t *testing.T) {
	def, err := Parse([]byte(`
name: Pick
break: ""
allow_nothing: true
require_return: false
default: none
options:
  - name: One
    trigger: 1
    returns: one
`))
	require.NoError(t, err)

	res, out, err := run(t, def, "\n")
	require.NoError(t, err)
	assert.Equal(t, "none", res)
	assert.NotContains(t, out, "Quit")

	res, _, err = run(t, def, "1\n")
	require.NoError(t, err)
	assert.Equal(t, "one", res)
}

func TestBuild_RendersInstructions(t *testing.T) {
	def := &Definition{Name: "R", Instructions: "# Title", Options: []OptionDef{{Name: "One", Trigger: 1, Returns: 1}}}
	loop, err := NewLoop(def, nil, nil, WithInstructionsRenderer(func(s string) (string, error) {
		return strings.ToUpper(s), nil
	}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(loop.Help(), "# TITLE\n"))
}

func TestBuild_Errors(t *testing.T) {
	def, err := Parse([]byte(`
name: Broken
options:
  - trigger: x
    returns: 1
  - name: NoBody
    trigger: y
  - name: Both
    trigger: z
    returns: 1
    action: echo
  - name: Unknown
    trigger: u
    action: nope
  - name: BadKind
    trigger: k
    kinds: [complex]
    returns: 1
  - name: Unknown
    trigger: w
    returns: 2
`))
	require.NoError(t, err)

	_, _, err = Build(def, registry.Builtin())
	require.Error(t, err)
	for _, target := range []error{ErrMissingName, ErrNoBody, ErrAmbiguousBody, registry.ErrActionNotFound, ErrUnknownKind, ErrDuplicateName} {
		assert.ErrorIs(t, err, target)
	}
}

func TestBuild_MissingTrigger(t *testing.T) {
	def := &Definition{Name: "T", Options: []OptionDef{{Name: "Lost", Returns: 1}}}
	_, _, err := Build(def, nil)
	assert.ErrorIs(t, err, dsl.ErrNoTrigger)
}

func TestValidate_Shadowed(t *testing.T) {
	def, err := Parse([]byte(`
name: Shadows
options:
  - name: First
    trigger: [a, b]
    returns: 1
  - name: Second
    trigger: a
    returns: 2
  - name: Third
    trigger: [b, c]
    returns: 3
  - name: Quit
    trigger: Q
    returns: 4
  - name: Numbers
    kinds: [int]
    returns: 5
  - name: One
    trigger: 1
    returns: 6
`))
	require.NoError(t, err)

	err = Validate(def, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShadowed)

	msg := err.Error()
	assert.Contains(t, msg, `"Second": option is shadowed by "First"`)
	assert.Contains(t, msg, `"Quit": option is shadowed by break trigger`)
	assert.Contains(t, msg, `"One": option is shadowed by "Numbers"`)
	assert.NotContains(t, msg, `"Third"`)
}

func TestValidate_Clean(t *testing.T) {
	def, err := Parse([]byte(calculator))
	require.NoError(t, err)
	assert.NoError(t, Validate(def, nil))
}

func TestWalk(t *testing.T) {
	def, err := Parse([]byte(calculator))
	require.NoError(t, err)

	var visited []string
	def.Walk(func(path []string, d *Definition) {
		visited = append(visited, strings.Join(append(path, d.Name), "/"))
	})
	assert.Equal(t, []string{"Top Loop", "Top Loop/Settings"}, visited)
}

func TestMarshal(t *testing.T) {
	def, err := Parse([]byte(calculator))
	require.NoError(t, err)

	data, err := def.Marshal()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, def.Options[1].Menu.Options[0].Returns, again.Options[1].Menu.Options[0].Returns)
}

package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/menuloop/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Output(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewJSONHandler(strings.NewReader(""), out)
	ctx := context.Background()

	require.NoError(t, h.Listing(ctx, "q: Quit"))
	require.NoError(t, h.Output(ctx, "SUCCESS"))
	require.NoError(t, h.SystemOutput(ctx, "Input required"))

	dec := json.NewDecoder(out)
	var got []Message
	for {
		var m Message
		if err := dec.Decode(&m); err == io.EOF {
			break
		} else {
			require.NoError(t, err)
		}
		got = append(got, m)
	}
	assert.Equal(t, []Message{
		{Type: MessageListing, Text: "q: Quit"},
		{Type: MessageContent, Text: "SUCCESS"},
		{Type: MessageSystem, Text: "Input required"},
	}, got)
}

func TestJSONHandler_Input(t *testing.T) {
	h := NewJSONHandler(strings.NewReader("\"add 1 2\"\nraw text\n\"q\""), io.Discard)
	ctx := context.Background()

	for _, want := range []string{"add 1 2", "raw text", "q"} {
		line, err := h.Input(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_InputKeepsNonStringJSONRaw(t *testing.T) {
	h := NewJSONHandler(strings.NewReader("null\n42\n\"\"\n"), io.Discard)
	ctx := context.Background()

	for _, want := range []string{"null", "42", ""} {
		line, err := h.Input(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
}

func TestJSONHandler_NullIsNotABreak(t *testing.T) {
	opt := domain.NewOption("Add", domain.Returns("added"), domain.Strings("add"))
	out := &bytes.Buffer{}
	res, err := New([]domain.Option{opt},
		WithoutBreak(),
		WithAllowNothing(true),
		WithRequireReturn(false),
		WithIOHandler(NewJSONHandler(strings.NewReader("null\n\"add\"\n"), out)),
	).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "added", res)
	assert.Contains(t, out.String(), "not in environment")
}

func TestJSONHandler_DrivesLoop(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewJSONHandler(strings.NewReader("\"zzz\"\n\"add\"\n\"q\"\n"), out)

	res, err := New([]domain.Option{addOption()}, WithIOHandler(h)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "added", res)
	assert.Contains(t, out.String(), `{"type":"system","text":"'zzz' not in environment"}`)
}

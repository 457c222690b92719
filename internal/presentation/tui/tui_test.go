package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf)
	assert.Equal(t, 7, strings.Count(buf.String(), "\n"))
}

func TestRenderer(t *testing.T) {
	out, err := NewRenderer()("# Title\n\nSome *text*.")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestWarn(t *testing.T) {
	assert.Contains(t, Warn("Selection required"), "Selection required")
}

package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")

	assert.Contains(t, buf.String(), "version 1.2.3")
	assert.Contains(t, buf.String(), "__| |_ __(_) | |___")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer()
	require.NoError(t, err)

	out, err := render("| user | done |\n|---|---|\n| 1 | 3 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "user")
	assert.Contains(t, out, "3")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}

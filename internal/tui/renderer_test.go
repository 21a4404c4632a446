package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererKeepsContent(t *testing.T) {
	render := NewRenderer()

	out, err := render("# Builtins\n\n- `pwd`: print the working directory\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Builtins")
	assert.Contains(t, out, "pwd")
}

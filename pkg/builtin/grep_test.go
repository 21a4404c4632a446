package builtin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ash/pkg/domain"
)

func TestGrepPrintsMatchesWithLineNumbers(t *testing.T) {
	f := newFixture(t)
	f.write(t, "notes.txt", "alpha match\nnothing here\ngamma match\n")

	require.NoError(t, f.run(t, "grep", "match", "notes.txt"))
	assert.Equal(t, "notes.txt:1: alpha match\nnotes.txt:3: gamma match\n", f.out.String())
}

func TestGrepUsesNameAsTyped(t *testing.T) {
	// The output echoes the operand, not the resolved absolute path.
	f := newFixture(t)
	require.NoError(t, f.run(t, "mkdir", "sub"))
	f.write(t, "sub/data.txt", "needle\n")
	f.out.Reset()

	require.NoError(t, f.run(t, "grep", "needle", "sub/data.txt"))
	assert.Equal(t, "sub/data.txt:1: needle\n", f.out.String())
}

func TestGrepNoMatchIsSilent(t *testing.T) {
	f := newFixture(t)
	f.write(t, "notes.txt", "nothing interesting\n")

	require.NoError(t, f.run(t, "grep", "absent", "notes.txt"))
	assert.Empty(t, f.out.String())
}

func TestGrepSubstringNotWord(t *testing.T) {
	f := newFixture(t)
	f.write(t, "notes.txt", "overmatched\n")

	require.NoError(t, f.run(t, "grep", "match", "notes.txt"))
	assert.Equal(t, "notes.txt:1: overmatched\n", f.out.String())
}

func TestGrepMissingFile(t *testing.T) {
	f := newFixture(t)

	err := f.run(t, "grep", "pattern", "ghost.txt")
	require.Error(t, err)
	assert.Equal(t, "grep: ghost.txt: no such file or directory", err.Error())
}

func TestGrepDirectory(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "mkdir", "sub"))

	err := f.run(t, "grep", "pattern", "sub")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIsDirectory))
}

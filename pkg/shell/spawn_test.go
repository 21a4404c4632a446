package shell

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ash/pkg/domain"
	"github.com/aretw0/ash/pkg/registry"
)

func newSpawnShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	sess := domain.NewSession(t.TempDir(), "")
	s := New(registry.New(), sess,
		WithInput(strings.NewReader("")),
		WithOutput(out),
		WithErrorOutput(errOut),
	)
	return s, out, errOut
}

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available on this system")
	}
}

func TestSpawnCommandNotFound(t *testing.T) {
	s, _, _ := newSpawnShell(t)

	err := s.spawnExternal(domain.Invocation{Name: "zzzcmd-no-such-binary"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandNotFound)

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "zzzcmd-no-such-binary: command not found", cmdErr.Error())
}

func TestSpawnWiresStandardStreams(t *testing.T) {
	requireSh(t)
	s, out, _ := newSpawnShell(t)

	err := s.spawnExternal(domain.Invocation{Name: "sh", Args: []string{"-c", "echo from-child"}})
	require.NoError(t, err)
	assert.Equal(t, "from-child\n", out.String())
}

func TestSpawnRunsInSessionDirectory(t *testing.T) {
	requireSh(t)
	s, out, _ := newSpawnShell(t)

	err := s.spawnExternal(domain.Invocation{Name: "sh", Args: []string{"-c", "pwd"}})
	require.NoError(t, err)

	// t.TempDir may sit behind a symlink; compare physical paths.
	want, werr := filepath.EvalSymlinks(s.session.WorkingDir())
	require.NoError(t, werr)
	assert.Equal(t, want, strings.TrimSpace(out.String()))
}

func TestSpawnNonZeroExitSurfacedAsText(t *testing.T) {
	requireSh(t)
	s, _, errOut := newSpawnShell(t)

	err := s.spawnExternal(domain.Invocation{Name: "sh", Args: []string{"-c", "exit 7"}})
	require.NoError(t, err, "a failing child is not a spawn failure")
	assert.Equal(t, "ash: sh: exit status 7\n", errOut.String())
}

func TestSpawnRelativePathResolvesAgainstSession(t *testing.T) {
	requireSh(t)
	s, out, _ := newSpawnShell(t)

	script := filepath.Join(s.session.WorkingDir(), "hello.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho scripted\n"), 0o755))

	// The process cwd differs from the session cwd here: resolution
	// must go through the session, not the process.
	err := s.spawnExternal(domain.Invocation{Name: "./hello.sh"})
	require.NoError(t, err)
	assert.Equal(t, "scripted\n", out.String())
}

func TestSpawnNonExecutableReported(t *testing.T) {
	requireSh(t)
	s, _, _ := newSpawnShell(t)

	plain := filepath.Join(s.session.WorkingDir(), "data.txt")
	require.NoError(t, os.WriteFile(plain, []byte("not a program"), 0o644))

	err := s.spawnExternal(domain.Invocation{Name: "./data.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

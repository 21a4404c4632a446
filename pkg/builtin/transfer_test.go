package builtin

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ash/pkg/domain"
)

func TestCpFile(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "src.txt", "copy me")
	require.NoError(t, os.Chmod(src, 0o600))

	require.NoError(t, f.run(t, "cp", "src.txt", "dst.txt"))

	data, err := os.ReadFile(filepath.Join(f.sess.WorkingDir(), "dst.txt"))
	require.NoError(t, err)
	assert.Equal(t, "copy me", string(data))

	info, err := os.Stat(filepath.Join(f.sess.WorkingDir(), "dst.txt"))
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestCpIntoDirectory(t *testing.T) {
	f := newFixture(t)
	f.write(t, "src.txt", "payload")
	require.NoError(t, os.Mkdir(filepath.Join(f.sess.WorkingDir(), "dest"), 0o755))

	require.NoError(t, f.run(t, "cp", "src.txt", "dest"))

	data, err := os.ReadFile(filepath.Join(f.sess.WorkingDir(), "dest", "src.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestCpOverwritesDestination(t *testing.T) {
	f := newFixture(t)
	f.write(t, "src.txt", "new")
	f.write(t, "dst.txt", "old and longer")

	require.NoError(t, f.run(t, "cp", "src.txt", "dst.txt"))

	data, err := os.ReadFile(filepath.Join(f.sess.WorkingDir(), "dst.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCpMissingSource(t *testing.T) {
	f := newFixture(t)

	err := f.run(t, "cp", "ghost.txt", "dst.txt")
	require.Error(t, err)
	assert.Equal(t, "cp: ghost.txt: no such file or directory", err.Error())
}

func TestCpDirectorySource(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Mkdir(filepath.Join(f.sess.WorkingDir(), "dir"), 0o755))

	err := f.run(t, "cp", "dir", "elsewhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIsDirectory))
}

func TestMvRenamesFile(t *testing.T) {
	f := newFixture(t)
	src := f.write(t, "old.txt", "moved")

	require.NoError(t, f.run(t, "mv", "old.txt", "new.txt"))

	_, err := os.Stat(src)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	data, err := os.ReadFile(filepath.Join(f.sess.WorkingDir(), "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "moved", string(data))
}

func TestMvIntoDirectory(t *testing.T) {
	f := newFixture(t)
	f.write(t, "item.txt", "x")
	require.NoError(t, os.Mkdir(filepath.Join(f.sess.WorkingDir(), "box"), 0o755))

	require.NoError(t, f.run(t, "mv", "item.txt", "box"))

	_, err := os.Stat(filepath.Join(f.sess.WorkingDir(), "box", "item.txt"))
	assert.NoError(t, err)
}

func TestMvRenamesDirectory(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Mkdir(filepath.Join(f.sess.WorkingDir(), "olddir"), 0o755))

	require.NoError(t, f.run(t, "mv", "olddir", "newdir"))

	info, err := os.Stat(filepath.Join(f.sess.WorkingDir(), "newdir"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMvMissingSource(t *testing.T) {
	f := newFixture(t)

	err := f.run(t, "mv", "ghost.txt", "anywhere.txt")
	require.Error(t, err)
	assert.Equal(t, "mv: ghost.txt: no such file or directory", err.Error())
}

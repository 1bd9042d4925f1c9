package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RunPublishOpen(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	run, err := s.NewRun()
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	assert.DirExists(t, run.Dir)

	src := run.Path("out.xlsx")
	require.NoError(t, os.WriteFile(src, []byte("v1"), 0o644))
	require.NoError(t, s.Publish(src, "out.xlsx"))
	assert.NoFileExists(t, src)

	f, err := s.Open("out.xlsx")
	require.NoError(t, err)
	defer f.Close()

	b, err := os.ReadFile(s.Path("out.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(b))

	require.NoError(t, run.Close())
	assert.NoDirExists(t, run.Dir)
}

func TestStore_PublishReplaces(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, v := range []string{"first", "second"} {
		run, err := s.NewRun()
		require.NoError(t, err)
		src := run.Path("f")
		require.NoError(t, os.WriteFile(src, []byte(v), 0o644))
		require.NoError(t, s.Publish(src, "f"))
		require.NoError(t, run.Close())
	}

	b, err := os.ReadFile(s.Path("f"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}

func TestStore_RunsAreIsolated(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	a, err := s.NewRun()
	require.NoError(t, err)
	b, err := s.NewRun()
	require.NoError(t, err)
	assert.NotEqual(t, a.Dir, b.Dir)
}

func TestStore_OpenMissing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Open("Employee_Dashboard.xlsx")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Stat(runsDir)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PathStripsDirectories(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root(), "x.xlsx"), s.Path("../../x.xlsx"))
}

func TestNew_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := New(filepath.Join(blocker, "sub"))
	require.ErrorIs(t, err, ErrUnwritable)
}

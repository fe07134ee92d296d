package ops

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestore_RoundTrip(t *testing.T) {
	src := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(src, 0o755))

	tasksJSON := `[{"id":"4be1edf8-8a5d-4e38-b37e-0df54fe9c8ad","title":"Buy milk","description":"Two liters","status":"to-do","created_at":"2026-08-20T09:15:00","modified_at":"2026-08-20T09:15:00"}]`
	require.NoError(t, os.WriteFile(filepath.Join(src, "tasks.json"), []byte(tasksJSON), 0o644))

	archive := filepath.Join(t.TempDir(), "tracker.tar.gz")
	require.NoError(t, Backup(src, archive))

	restored := filepath.Join(t.TempDir(), "restored")
	require.NoError(t, Restore(archive, restored))

	got, err := os.ReadFile(filepath.Join(restored, "tasks.json"))
	require.NoError(t, err)
	assert.Equal(t, tasksJSON, string(got))
}

func TestBackup_MissingSourceFails(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "out.tar.gz")
	err := Backup(filepath.Join(t.TempDir(), "nope"), archive)
	require.Error(t, err)
}

func TestRestore_RejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.tar.gz")
	f, err := os.Create(archive)
	require.NoError(t, err)

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	content := []byte("evil")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: "../escape.json",
		Mode: 0o644,
		Size: int64(len(content)),
	}))
	_, err = tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	target := filepath.Join(t.TempDir(), "target")
	err = Restore(archive, target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes target")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(target), "escape.json"))
	assert.True(t, os.IsNotExist(statErr))
}

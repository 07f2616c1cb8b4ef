package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s := NewLocalStorage(root, "/media")

	name := "uploads/influencer/abc.jpg"
	require.NoError(t, s.Save(ctx, name, strings.NewReader("payload")))

	onDisk := filepath.Join(root, "uploads", "influencer", "abc.jpg")
	assert.Equal(t, onDisk, s.Path(name))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	entries, err := os.ReadDir(filepath.Dir(onDisk))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed away")

	assert.Equal(t, "/media/uploads/influencer/abc.jpg", s.URL(name))

	require.NoError(t, s.Delete(ctx, name))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, name), "deleting a missing file is not an error")
}

func TestLocalStoragePathStaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root, "/media/")

	assert.Equal(t, filepath.Join(root, "etc", "passwd"), s.Path("../../etc/passwd"))
}

func TestLocalStorageHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewLocalStorage(t.TempDir(), "/media/")
	assert.ErrorIs(t, s.Save(ctx, "x.png", strings.NewReader("x")), context.Canceled)
}

func TestGCSURL(t *testing.T) {
	s := &GCSStorage{bucket: "media-bucket"}
	assert.Equal(t, "https://storage.googleapis.com/media-bucket/uploads/influencer/a.png", s.URL("uploads/influencer/a.png"))
}

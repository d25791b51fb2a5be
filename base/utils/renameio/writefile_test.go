package renameio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "out", "globe.png")

	wantData := []byte("not really a png")
	wantPerm := os.FileMode(0o0640)
	require.NoError(t, WriteFile(filename, wantData, wantPerm))

	gotData, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, wantData, gotData)

	fi, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, wantPerm, fi.Mode()&os.ModePerm)
}

func TestEncodeFailureKeepsDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	filename := filepath.Join(dir, "globe.gif")
	require.NoError(t, os.WriteFile(filename, []byte("old"), 0o644))

	errEncode := errors.New("encoder broke")
	err := Encode(filename, 0o644, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errEncode
	})
	require.ErrorIs(t, err, errEncode)

	gotData, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "old", string(gotData))

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

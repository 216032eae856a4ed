package fileio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	content := []byte{0x01, 0x02, 0x03, 0x04}
	require.NoError(t, os.WriteFile(path, content, 0644))

	blob, err := readFileContents(path, 0)
	require.NoError(t, err)
	assert.Equal(t, content, blob)
}

func TestReadFileContentsMissingIsNull(t *testing.T) {
	blob, err := readFileContents(filepath.Join(t.TempDir(), "nope.txt"), 0)

	// Missing files are a silent null, never an error.
	assert.NoError(t, err)
	assert.Nil(t, blob)
}

func TestReadFileContentsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	blob, err := readFileContents(path, 0)
	require.NoError(t, err)
	assert.NotNil(t, blob)
	assert.Len(t, blob, 0)
}

func TestReadFileContentsTooBig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0644))

	blob, err := readFileContents(path, 16)
	assert.ErrorIs(t, err, ErrTooBig)
	assert.Nil(t, blob)
}

func TestReadFileTool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	p := NewProvider(0)
	result, err := p.ReadFile(context.Background(), map[string]interface{}{
		"path": path,
	}, nil)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []byte("hello"), result.Data["content"])
	assert.Equal(t, 5, result.Data["size"])
}

func TestReadFileToolMissingPath(t *testing.T) {
	p := NewProvider(0)

	result, err := p.ReadFile(context.Background(), map[string]interface{}{
		"path": filepath.Join(t.TempDir(), "absent"),
	}, nil)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Nil(t, result.Data["content"])
}

func TestReadFileToolTooBig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 128), 0644))

	p := NewProvider(32)
	result, err := p.ReadFile(context.Background(), map[string]interface{}{
		"path": path,
	}, nil)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "maximum blob size")
}

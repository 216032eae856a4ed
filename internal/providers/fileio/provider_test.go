package fileio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition(t *testing.T) {
	p := NewProvider(0)
	def := p.Definition()

	assert.Equal(t, "fileio", def.ID)
	assert.Equal(t, 6, len(def.Tools))

	toolIDs := make(map[string]bool)
	for _, tool := range def.Tools {
		toolIDs[tool.ID] = true
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	assert.True(t, toolIDs["fileio.lsmode"])
	assert.True(t, toolIDs["fileio.mkdir"])
	assert.True(t, toolIDs["fileio.readfile"])
	assert.True(t, toolIDs["fileio.symlink"])
	assert.True(t, toolIDs["fileio.writefile"])
	assert.True(t, toolIDs["fileio.stat"])
}

func TestDefinitionDeterminism(t *testing.T) {
	p := NewProvider(0)

	// Only lsmode is pure; everything else touches the filesystem and
	// must not be cached across invocations.
	for _, tool := range p.Definition().Tools {
		if tool.ID == "fileio.lsmode" {
			assert.True(t, tool.Deterministic, tool.ID)
		} else {
			assert.False(t, tool.Deterministic, tool.ID)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	p := NewProvider(0)

	result, err := p.Execute(context.Background(), "fileio.lsmode", map[string]interface{}{
		"mode": float64(0040755),
	}, nil)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "drwxr-xr-x", result.Data["mode"])
}

func TestExecuteUnknownTool(t *testing.T) {
	p := NewProvider(0)

	result, err := p.Execute(context.Background(), "fileio.nope", nil, nil)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "unknown tool")
}

func TestWriteThenReadThroughExecute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "round", "trip.bin")
	content := []byte{9, 8, 7, 6, 5}

	p := NewProvider(0)
	ctx := context.Background()

	wres, err := p.Execute(ctx, "fileio.writefile", map[string]interface{}{
		"path":    path,
		"content": content,
	}, nil)
	require.NoError(t, err)
	require.True(t, wres.Success)
	assert.Equal(t, int64(5), wres.Data["written"])

	rres, err := p.Execute(ctx, "fileio.readfile", map[string]interface{}{
		"path": path,
	}, nil)
	require.NoError(t, err)
	require.True(t, rres.Success)
	assert.Equal(t, content, rres.Data["content"])
}

func TestWriteBigReadBackTooBig(t *testing.T) {
	// The write ceiling and read ceiling are independent: a blob larger
	// than the read limit still writes fine, then fails on read.
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")

	p := NewProvider(16)
	ctx := context.Background()

	wres, err := p.Execute(ctx, "fileio.writefile", map[string]interface{}{
		"path":    path,
		"content": make([]byte, 64),
	}, nil)
	require.NoError(t, err)
	assert.True(t, wres.Success)

	rres, err := p.Execute(ctx, "fileio.readfile", map[string]interface{}{
		"path": path,
	}, nil)
	require.NoError(t, err)
	assert.False(t, rres.Success)
}

func TestStatTool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stat.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0644))

	p := NewProvider(0)
	result, err := p.Stat(context.Background(), map[string]interface{}{
		"path": path,
	}, nil)

	assert.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, int64(5), result.Data["size"])
	assert.NotZero(t, result.Data["mtime"])

	perms, ok := result.Data["perms"].(string)
	require.True(t, ok)
	assert.Len(t, perms, 10)
	assert.Equal(t, byte('-'), perms[0])
}

func TestStatToolMissing(t *testing.T) {
	p := NewProvider(0)

	result, err := p.Stat(context.Background(), map[string]interface{}{
		"path": filepath.Join(t.TempDir(), "absent"),
	}, nil)

	assert.NoError(t, err)
	assert.False(t, result.Success)
}

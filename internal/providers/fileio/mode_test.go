package fileio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMode(t *testing.T) {
	tests := []struct {
		name string
		mode int64
		want string
	}{
		{"regular all bits", 0100777, "-rwxrwxrwx"},
		{"bare directory", 0040000, "d---------"},
		{"directory rwxr-xr-x", 0040755, "drwxr-xr-x"},
		{"regular rw-r--r--", 0100644, "-rw-r--r--"},
		{"regular rwxr-xr--", 0100754, "-rwxr-xr--"},
		{"symlink", 0120777, "lrwxrwxrwx"},
		{"unknown kind", 0777, "?rwxrwxrwx"},
		{"zero", 0, "?---------"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMode(tt.mode))
		})
	}
}

func TestLsmodeTool(t *testing.T) {
	p := NewProvider(0)

	result, err := p.Lsmode(context.Background(), map[string]interface{}{
		"mode": float64(0100644),
	}, nil)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "-rw-r--r--", result.Data["mode"])
}

func TestLsmodeToolMissingMode(t *testing.T) {
	p := NewProvider(0)

	result, err := p.Lsmode(context.Background(), map[string]interface{}{}, nil)

	assert.NoError(t, err)
	assert.False(t, result.Success)
}

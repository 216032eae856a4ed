package fileio

import (
	"context"
	"fmt"

	"github.com/veldtdb/fileiod/internal/types"
)

// DefaultMaxBlobSize caps readfile results when no engine limit is
// configured. Matches the engine's default maximum result length.
const DefaultMaxBlobSize = 1_000_000_000

// Provider exposes filesystem primitives as engine-callable tools
type Provider struct {
	maxBlobSize int64
}

// NewProvider creates a fileio provider. maxBlobSize is the engine's
// configured maximum result size; values <= 0 fall back to the default.
func NewProvider(maxBlobSize int64) *Provider {
	if maxBlobSize <= 0 {
		maxBlobSize = DefaultMaxBlobSize
	}
	return &Provider{maxBlobSize: maxBlobSize}
}

// Definition returns service metadata with all tool definitions
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "fileio",
		Name:        "File I/O Service",
		Description: "Filesystem primitives (read, write, mkdir, symlink, mode formatting)",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"read",
			"write",
			"mkdir",
			"symlink",
			"stat",
		},
		Tools: []types.Tool{
			{
				ID:          "fileio.lsmode",
				Name:        "Format Mode",
				Description: "Render a raw stat mode as an ls -l style permission string",
				Parameters: []types.Parameter{
					{Name: "mode", Type: "integer", Description: "Raw stat mode bitmask", Required: true},
				},
				Returns:       "string",
				Deterministic: true,
			},
			{
				ID:          "fileio.mkdir",
				Name:        "Create Directory",
				Description: "Create a directory with explicit permission bits",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
					{Name: "perm", Type: "integer", Description: "Permission bits (default 0777)", Required: false},
				},
				Returns: "null",
			},
			{
				ID:          "fileio.readfile",
				Name:        "Read File",
				Description: "Read entire file contents as a blob; null if missing or unreadable",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "blob",
			},
			{
				ID:          "fileio.symlink",
				Name:        "Create Symlink",
				Description: "Create a symbolic link pointing to a target path",
				Parameters: []types.Parameter{
					{Name: "target", Type: "string", Description: "Target path", Required: true},
					{Name: "link", Type: "string", Description: "Symlink path", Required: true},
				},
				Returns: "null",
			},
			{
				ID:          "fileio.writefile",
				Name:        "Write File",
				Description: "Write a blob to a file, creating missing parent directories",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
					{Name: "content", Type: "blob", Description: "Content to write (null writes an empty file)", Required: false},
					{Name: "perm", Type: "integer", Description: "Permission bits (default 0666)", Required: false},
					{Name: "mtime", Type: "integer", Description: "Modification time, unix seconds", Required: false},
				},
				Returns: "integer",
			},
			{
				ID:          "fileio.stat",
				Name:        "File Stats",
				Description: "Normalized file metadata with UTC timestamps",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute routes a tool invocation to its operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "fileio.lsmode":
		return p.Lsmode(ctx, params, appCtx)
	case "fileio.mkdir":
		return p.Mkdir(ctx, params, appCtx)
	case "fileio.readfile":
		return p.ReadFile(ctx, params, appCtx)
	case "fileio.symlink":
		return p.Symlink(ctx, params, appCtx)
	case "fileio.writefile":
		return p.WriteFile(ctx, params, appCtx)
	case "fileio.stat":
		return p.Stat(ctx, params, appCtx)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// intParam reads an optional integer parameter. JSON-decoded params carry
// numbers as float64; engine-side callers may pass native ints.
func intParam(params map[string]interface{}, name string) (int64, bool, error) {
	v, ok := params[name]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case int:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case float64:
		return int64(n), true, nil
	default:
		return 0, false, fmt.Errorf("%s parameter must be an integer", name)
	}
}

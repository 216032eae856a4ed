package fileio

import (
	"context"
	"fmt"

	"github.com/veldtdb/fileiod/internal/types"
)

// FileStat is normalized stat metadata. Timestamps are unix seconds and
// UTC on every platform; the platform adapters (stat_unix.go,
// stat_windows.go) take care of the difference.
type FileStat struct {
	Size  int64
	Mode  uint32
	Mtime int64
	Atime int64
	Ctime int64
}

// IsDir reports whether the entry is a directory.
func (s FileStat) IsDir() bool {
	return s.Mode&modeTypeMask == modeDir
}

// Stat implements the stat tool
func (p *Provider) Stat(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	st, err := statFile(path)
	if err != nil {
		return Failure(fmt.Sprintf("stat failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":  path,
		"size":  st.Size,
		"mode":  int64(st.Mode),
		"perms": FormatMode(int64(st.Mode)),
		"mtime": st.Mtime,
		"atime": st.Atime,
		"ctime": st.Ctime,
	})
}

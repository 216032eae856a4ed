package fileio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/veldtdb/fileiod/internal/types"
)

// writeFile writes content to path, creating or truncating the file.
// perm, when nonzero, is applied to the file after the write. mtime >= 0
// sets the file's modification time afterwards, with access time set to
// now; failing to set the time is a hard error distinct from the write
// itself. An open that fails because an ancestor directory is missing is
// retried exactly once after ensureParentDirs fills in the ancestors.
// A nil content writes an empty file and reports 0 bytes written.
func writeFile(path string, content []byte, perm os.FileMode, mtime int64) (int64, error) {
	n, err := writeFileOnce(path, content, perm)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		if ensureParentDirs(path) == nil {
			n, err = writeFileOnce(path, content, perm)
		}
	}
	if err != nil {
		if !errors.Is(err, ErrWriteFailed) {
			err = fmt.Errorf("%w: cannot open %s: %v", ErrWriteFailed, path, err)
		}
		return 0, err
	}

	if mtime >= 0 {
		if err := os.Chtimes(path, time.Now(), time.Unix(mtime, 0)); err != nil {
			return 0, fmt.Errorf("%w: cannot set modification time on %s: %v", ErrGeneric, path, err)
		}
	}
	return n, nil
}

// writeFileOnce performs a single open-write-chmod sequence. An open
// failure caused by a missing ancestor is returned unwrapped so the
// caller can recognize it and retry after building the parents.
func writeFileOnce(path string, content []byte, perm os.FileMode) (int64, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: cannot open %s: %v", ErrWriteFailed, path, err)
	}

	var n int
	if content != nil {
		n, err = f.Write(content)
		if err == nil && n != len(content) {
			err = io.ErrShortWrite
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	if perm != 0 {
		if err := os.Chmod(path, perm&fs.ModePerm); err != nil {
			return 0, fmt.Errorf("%w: cannot chmod %s: %v", ErrWriteFailed, path, err)
		}
	}
	return int64(n), nil
}

// WriteFile implements the writefile tool
func (p *Provider) WriteFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	var content []byte
	switch v := params["content"].(type) {
	case nil:
		// Null blob: the file is created or truncated, 0 bytes written.
	case []byte:
		content = v
	case string:
		content = []byte(v)
	default:
		return Failure("content parameter must be blob or null")
	}

	perm, hasPerm, err := intParam(params, "perm")
	if err != nil {
		return Failure(err.Error())
	}
	mtime, hasMtime, err := intParam(params, "mtime")
	if err != nil {
		return Failure(err.Error())
	}
	if !hasMtime {
		mtime = -1
	}

	var permBits os.FileMode
	if hasPerm {
		permBits = os.FileMode(perm)
	}

	n, werr := writeFile(path, content, permBits, mtime)
	if werr != nil {
		// Legacy verbosity rule: the path appears in the message only
		// when the caller supplied permission bits.
		if hasPerm {
			return Failure(fmt.Sprintf("failed to write file: %s", path))
		}
		return Failure("failed to write file")
	}

	return Success(map[string]interface{}{"path": path, "written": n})
}

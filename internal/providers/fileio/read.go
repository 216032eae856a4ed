package fileio

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/veldtdb/fileiod/internal/types"
)

// readFileContents loads the entire file at path. A file that cannot be
// opened is not an error: the result is a nil blob, which callers surface
// as null. Content larger than maxSize fails with ErrTooBig before any
// bytes are read. A read that returns the wrong number of bytes fails
// with ErrIO; partial data is never returned.
func readFileContents(path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		// Missing or unreadable, a valid silent outcome.
		return nil, nil
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if maxSize > 0 && size > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrTooBig, path, size, maxSize)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	if err != nil || int64(n) != size {
		return nil, fmt.Errorf("%w: read %d of %d bytes from %s", ErrIO, n, size, path)
	}
	return buf, nil
}

// ReadFile implements the readfile tool
func (p *Provider) ReadFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	blob, err := readFileContents(path, p.maxBlobSize)
	if err != nil {
		return Failure(err.Error())
	}
	if blob == nil {
		return Success(map[string]interface{}{"path": path, "content": nil})
	}

	return Success(map[string]interface{}{
		"path":    path,
		"content": blob,
		"size":    len(blob),
	})
}

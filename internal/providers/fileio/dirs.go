package fileio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/veldtdb/fileiod/internal/types"
)

// ensureParentDirs creates every missing ancestor directory of filePath.
// The final path component names the file itself and is never created.
// Each ancestor prefix is stat-probed first: a miss is created with 0777
// (subject to the process umask), an existing non-directory fails the
// walk. Safe to call when some or all ancestors already exist.
func ensureParentDirs(filePath string) error {
	for i := 1; i < len(filePath); i++ {
		if !os.IsPathSeparator(filePath[i]) {
			continue
		}
		dir := filePath[:i]

		st, err := statFile(dir)
		if err != nil {
			if err := os.Mkdir(dir, 0777); err != nil {
				return fmt.Errorf("%w: cannot create directory %s: %v", ErrGeneric, dir, err)
			}
		} else if !st.IsDir() {
			return fmt.Errorf("%w: %s exists and is not a directory", ErrGeneric, dir)
		}
	}
	return nil
}

// makeDirectory creates a directory with the given permission bits. A
// failed create is still a success when a directory already exists at the
// path and its permission bits either match the request or can be changed
// to match with chmod; any other existing entry is an error.
func makeDirectory(path string, perm os.FileMode) error {
	err := os.Mkdir(path, perm)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %v", ErrGeneric, err)
	}

	st, serr := statFile(path)
	if serr != nil || !st.IsDir() {
		return fmt.Errorf("%w: %s exists and is not a directory", ErrGeneric, path)
	}
	if os.FileMode(st.Mode)&fs.ModePerm != perm&fs.ModePerm {
		if cerr := os.Chmod(path, perm&fs.ModePerm); cerr != nil {
			return fmt.Errorf("%w: %v", ErrGeneric, cerr)
		}
	}
	return nil
}

// Mkdir implements the mkdir tool
func (p *Provider) Mkdir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	perm, ok, err := intParam(params, "perm")
	if err != nil {
		return Failure(err.Error())
	}
	if !ok {
		perm = 0777
	}

	if err := makeDirectory(path, os.FileMode(perm)); err != nil {
		return Failure(fmt.Sprintf("failed to create directory: %s", path))
	}

	return Success(map[string]interface{}{"path": path, "created": true})
}

// Symlink implements the symlink tool
func (p *Provider) Symlink(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	target, ok := params["target"].(string)
	if !ok || target == "" {
		return Failure("target parameter required")
	}

	link, ok := params["link"].(string)
	if !ok || link == "" {
		return Failure("link parameter required")
	}

	if err := makeSymlink(target, link); err != nil {
		return Failure(fmt.Sprintf("failed to create symlink to: %s", target))
	}

	return Success(map[string]interface{}{"target": target, "link": link, "created": true})
}

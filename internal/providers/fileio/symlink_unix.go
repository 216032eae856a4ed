//go:build !windows

package fileio

import (
	"fmt"
	"os"
)

// makeSymlink creates a symbolic link at linkPath pointing to target.
func makeSymlink(target, linkPath string) error {
	if err := os.Symlink(target, linkPath); err != nil {
		return fmt.Errorf("%w: %v", ErrGeneric, err)
	}
	return nil
}

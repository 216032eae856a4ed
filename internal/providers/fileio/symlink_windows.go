//go:build windows

package fileio

// makeSymlink is a no-op on Windows, where creating symlinks requires
// elevated privileges or developer mode. The operation reports success
// without creating anything; this is a documented limitation.
func makeSymlink(target, linkPath string) error {
	return nil
}

//go:build !windows

package fileio

import (
	"os"
	"syscall"
)

// statFile returns normalized metadata for path. Unix stat timestamps are
// already UTC, so the raw values pass through unchanged.
func statFile(path string) (FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileStat{}, err
	}

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return FileStat{
			Size:  info.Size(),
			Mode:  unixMode(info.Mode()),
			Mtime: info.ModTime().Unix(),
		}, nil
	}

	atime, ctime := statTimes(st)
	return FileStat{
		Size:  info.Size(),
		Mode:  uint32(st.Mode),
		Mtime: info.ModTime().Unix(),
		Atime: atime,
		Ctime: ctime,
	}, nil
}

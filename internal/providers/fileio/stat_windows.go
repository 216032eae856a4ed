//go:build windows

package fileio

import (
	"os"
	"syscall"
)

// statFile returns normalized metadata for path. The C runtime on Windows
// reports stat timestamps in local time, so the values here come from the
// directory entry's FILETIME attributes instead, which are UTC by
// definition.
func statFile(path string) (FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileStat{}, err
	}

	st := FileStat{
		Size:  info.Size(),
		Mode:  unixMode(info.Mode()),
		Mtime: info.ModTime().Unix(),
	}
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		st.Ctime = filetimeToUnix(d.CreationTime)
		st.Atime = filetimeToUnix(d.LastAccessTime)
		st.Mtime = filetimeToUnix(d.LastWriteTime)
	}
	return st, nil
}

func filetimeToUnix(ft syscall.Filetime) int64 {
	return ft.Nanoseconds() / 1e9
}

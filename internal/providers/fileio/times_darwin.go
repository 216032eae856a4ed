//go:build darwin

package fileio

import "syscall"

func statTimes(st *syscall.Stat_t) (atime, ctime int64) {
	return st.Atimespec.Sec, st.Ctimespec.Sec
}

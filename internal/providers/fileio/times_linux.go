//go:build linux

package fileio

import "syscall"

func statTimes(st *syscall.Stat_t) (atime, ctime int64) {
	return st.Atim.Sec, st.Ctim.Sec
}

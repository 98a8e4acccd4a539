//go:build linux

package procbarrier

import "golang.org/x/sys/unix"

func query() (uint32, error) {
	r1, _, errno := unix.Syscall(unix.SYS_MEMBARRIER, cmdQuery, 0, 0)
	if errno != 0 {
		return 0, newErrno("QUERY", errno)
	}
	return uint32(r1), nil
}

func barrier(op string, cmd uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_MEMBARRIER, cmd, 0, 0)
	if errno != 0 {
		return newErrno(op, errno)
	}
	return nil
}

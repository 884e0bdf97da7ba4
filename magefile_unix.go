//go:build mage && !windows
// +build mage,!windows

package main

import (
	"syscall"
)

const minOpenFiles = 4096

// setULimit raises the open file limit for tests that open many peer connections.
func setULimit() error {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		return err
	}
	if rLimit.Cur >= minOpenFiles {
		return nil
	}
	rLimit.Cur = minOpenFiles
	if rLimit.Max < minOpenFiles {
		rLimit.Max = minOpenFiles
	}
	return syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
}

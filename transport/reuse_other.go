//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package transport

import "syscall"

// Only one peer per host can bind the group port here.
func reuseAddress(_, _ string, _ syscall.RawConn) error {
	return nil
}

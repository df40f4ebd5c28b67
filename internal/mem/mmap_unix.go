//go:build unix

package mem

import "golang.org/x/sys/unix"

func osPageSize() uintptr { return uintptr(unix.Getpagesize()) }

func mapPage(size uintptr) ([]byte, error) {
	return unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapPage(page []byte) error { return unix.Munmap(page) }

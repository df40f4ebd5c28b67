//go:build !unix

package mem

import (
	"os"
	"unsafe"
)

func osPageSize() uintptr { return uintptr(os.Getpagesize()) }

// mapPage falls back to pointer-free Go storage, kept alive by the arena.
func mapPage(size uintptr) ([]byte, error) {
	words := make([]uint64, size/Align)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size), nil
}

func unmapPage([]byte) error { return nil }

package mem

import (
	"errors"
	"fmt"
)

// Align is the minimum alignment of every block handed out by an Allocator.
const Align = 8

func align(size uintptr) uintptr {
	if size == 0 {
		return Align
	}
	return (size + Align - 1) &^ (Align - 1)
}

// checkSize panics with a MapError when rounding size up to a multiple of
// unit would wrap around the address space.
func checkSize(size, unit uintptr) {
	if size > ^uintptr(0)-unit+1 {
		panic(MapError{Size: size, Err: ErrTooLarge})
	}
}

func roundUp(size, to uintptr) uintptr {
	return (size + to - 1) / to * to
}

// pageTable tracks the address ranges of mapped pages, kept sorted by base
// address. Pages never overlap, but may have gaps between them.
type pageTable struct {
	bases []uintptr
	sizes []uintptr
}

// LimitError indicates that an allocation would exceed an arena's limit.
type LimitError struct {
	Size  uintptr
	Used  uintptr
	Limit uintptr
	Op    string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v of %v bytes (%v/%v in use)",
		lim.Op, lim.Size, lim.Used, lim.Limit)
}

// ErrTooLarge is wrapped by the MapError raised for a request that no address
// space could hold.
var ErrTooLarge = errors.New("request exceeds the address space")

// MapError indicates that the operating system refused to map a page.
type MapError struct {
	Size uintptr
	Err  error
}

func (me MapError) Error() string {
	return fmt.Sprintf("unable to map %v byte page: %v", me.Size, me.Err)
}

func (me MapError) Unwrap() error { return me.Err }

func (pt *pageTable) findPage(addr uintptr) int {
	i, j := 0, len(pt.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(pt.bases) && pt.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

func (pt *pageTable) insertPage(base, size uintptr) int {
	pageID := pt.findPage(base)
	if pageID < len(pt.bases) && pt.bases[pageID] < base {
		pageID++
	}
	pt.bases = append(pt.bases, 0)
	pt.sizes = append(pt.sizes, 0)
	copy(pt.bases[pageID+1:], pt.bases[pageID:])
	copy(pt.sizes[pageID+1:], pt.sizes[pageID:])
	pt.bases[pageID] = base
	pt.sizes[pageID] = size
	return pageID
}

func (pt *pageTable) contains(addr uintptr) bool {
	if len(pt.bases) == 0 {
		return false
	}
	pageID := pt.findPage(addr)
	base := pt.bases[pageID]
	return base <= addr && addr-base < pt.sizes[pageID]
}

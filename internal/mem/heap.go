package mem

import (
	"reflect"
	"unsafe"
)

// Heap is an Allocator backed by the Go collector: blocks are reclaimed once
// nothing references them any more.
type Heap struct {
	// Logf, when set, receives a trace line for every allocation.
	Logf func(mess string, args ...interface{})

	blocks int
	bytes  uintptr
}

// Alloc returns pointer-free word storage of at least size bytes.
func (h *Heap) Alloc(size uintptr) unsafe.Pointer {
	checkSize(size, Align)
	size = align(size)
	words := make([]uint64, size/Align)
	p := unsafe.Pointer(unsafe.SliceData(words))
	h.track(p, size)
	return p
}

// AllocType returns typed storage that the Go collector scans for pointers.
func (h *Heap) AllocType(t reflect.Type) unsafe.Pointer {
	if t.Size() == 0 {
		return h.Alloc(0)
	}
	p := reflect.New(t).UnsafePointer()
	h.track(p, align(t.Size()))
	return p
}

// Stats returns allocation counters; Heap maps no pages of its own.
func (h *Heap) Stats() Stats {
	return Stats{Blocks: h.blocks, Used: h.bytes}
}

func (h *Heap) track(p unsafe.Pointer, size uintptr) {
	h.blocks++
	h.bytes += size
	if h.Logf != nil {
		h.Logf("heap alloc %v bytes @%p", size, p)
	}
}

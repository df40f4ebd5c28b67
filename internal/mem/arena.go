package mem

import (
	"fmt"
	"reflect"
	"unsafe"
)

// DefaultArenaPageSize provides a default for Arena.PageSize.
const DefaultArenaPageSize = 1 << 20

// Arena is an Allocator over pages mapped outside of the Go heap.
//
// Blocks are bump allocated from the most recently mapped page; requests
// larger than PageSize get a dedicated page. Every block is registered so
// that a collector may later scan or reclaim it. Since the Go collector
// never scans arena pages, values placed here may only point at other arena
// blocks or at static data, such as top-level functions.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	// PageSize specifies the length for newly mapped pages; it is rounded up
	// to a multiple of the operating system page size.
	PageSize uintptr

	// Limit specifies a limit on the total size of blocks, past which any
	// allocation panics with a LimitError.
	Limit uintptr

	// Logf, when set, receives a trace line for every allocation and mapping.
	Logf func(mess string, args ...interface{})

	pageTable
	pages  [][]byte
	free   []byte
	blocks []Block
	mapped uintptr
	used   uintptr
}

// Block describes one allocation made by an arena.
type Block struct {
	Addr uintptr
	Size uintptr
}

func (b Block) String() string { return fmt.Sprintf("%#x+%v", b.Addr, b.Size) }

// Stats summarizes the storage held by an allocator.
type Stats struct {
	Pages  int
	Blocks int
	Mapped uintptr
	Used   uintptr
}

// Alloc returns size zeroed bytes, aligned to Align.
// Exhausting the Limit, or failing to map a page, panics.
func (a *Arena) Alloc(size uintptr) unsafe.Pointer {
	checkSize(size, osPageSize())
	size = align(size)
	if lim := a.Limit; lim != 0 && (size > lim || a.used > lim-size) {
		panic(LimitError{Size: size, Used: a.used, Limit: lim, Op: "alloc"})
	}

	var block []byte
	if size > a.pageSize() {
		block = a.mapPage(size)
	} else {
		if uintptr(len(a.free)) < size {
			a.free = a.mapPage(a.pageSize())
		}
		block, a.free = a.free[:size:size], a.free[size:]
	}

	p := unsafe.Pointer(unsafe.SliceData(block))
	a.used += size
	a.blocks = append(a.blocks, Block{uintptr(p), size})
	a.logf("alloc %v bytes @%p", size, p)
	return p
}

// AllocType returns storage sized and aligned for one value of type t.
func (a *Arena) AllocType(t reflect.Type) unsafe.Pointer {
	if t.Align() > Align {
		panic(fmt.Sprintf("arena cannot align %v to %v bytes", t, t.Align()))
	}
	return a.Alloc(t.Size())
}

// Owns returns true if p points into a page mapped by the arena.
func (a *Arena) Owns(p unsafe.Pointer) bool {
	return a.contains(uintptr(p))
}

// Blocks returns every block allocated so far, in allocation order.
func (a *Arena) Blocks() []Block {
	return a.blocks
}

// Stats returns a summary of mapped pages and allocated blocks.
func (a *Arena) Stats() Stats {
	return Stats{
		Pages:  len(a.pages),
		Blocks: len(a.blocks),
		Mapped: a.mapped,
		Used:   a.used,
	}
}

// Close unmaps every page. Any value still placed in the arena becomes
// invalid; only whole-process teardown and tests should do this.
func (a *Arena) Close() (err error) {
	for i := len(a.pages) - 1; i >= 0; i-- {
		if uerr := unmapPage(a.pages[i]); err == nil {
			err = uerr
		}
	}
	a.pageTable = pageTable{}
	a.pages = nil
	a.free = nil
	a.blocks = nil
	a.mapped, a.used = 0, 0
	return err
}

func (a *Arena) pageSize() uintptr {
	if a.PageSize == 0 {
		a.PageSize = DefaultArenaPageSize
	}
	if ps := osPageSize(); a.PageSize%ps != 0 {
		checkSize(a.PageSize, ps)
		a.PageSize = roundUp(a.PageSize, ps)
	}
	return a.PageSize
}

func (a *Arena) mapPage(size uintptr) []byte {
	checkSize(size, osPageSize())
	size = roundUp(size, osPageSize())
	page, err := mapPage(size)
	if err != nil {
		panic(MapError{Size: size, Err: err})
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(page)))
	a.insertPage(base, size)
	a.pages = append(a.pages, page)
	a.mapped += size
	a.logf("map page %#x+%v", base, size)
	return page
}

func (a *Arena) logf(mess string, args ...interface{}) {
	if a.Logf != nil {
		a.Logf(mess, args...)
	}
}

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/ein-lang/einrt/internal/mem"
)

type heapDumper struct {
	out   io.Writer
	alloc mem.Allocator
}

func (dump heapDumper) dump() {
	fmt.Fprintf(dump.out, "# Heap Dump\n")
	switch a := dump.alloc.(type) {
	case *mem.Arena:
		dump.dumpStats(a.Stats())
		dump.dumpPages(a.Dump())
	case interface{ Stats() mem.Stats }:
		dump.dumpStats(a.Stats())
	default:
		fmt.Fprintf(dump.out, "  allocator: %T\n", a)
	}
}

func (dump heapDumper) dumpStats(st mem.Stats) {
	fmt.Fprintf(dump.out, "  pages: %v mapped: %v\n", st.Pages, st.Mapped)
	fmt.Fprintf(dump.out, "  blocks: %v used: %v\n", st.Blocks, st.Used)
}

// dumpPages lists the blocks of every page by offset, since addresses
// differ from run to run.
func (dump heapDumper) dumpPages(d mem.ArenaDump) {
	blocks := append([]mem.Block(nil), d.Blocks...)
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Addr < blocks[j].Addr })

	j := 0
	for pageID, base := range d.Bases {
		end := base + d.Sizes[pageID]
		fmt.Fprintf(dump.out, "## Page %v size: %v\n", pageID, d.Sizes[pageID])
		for ; j < len(blocks) && blocks[j].Addr < end; j++ {
			fmt.Fprintf(dump.out, "  +%v %v\n", blocks[j].Addr-base, blocks[j].Size)
		}
	}
	fmt.Fprintf(dump.out, "  free: %v\n", d.Free)
}

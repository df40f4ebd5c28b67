package mem

// ArenaDump provides data for testing and inspection.
type ArenaDump struct {
	Bases  []uintptr
	Sizes  []uintptr
	Blocks []Block
	Free   uintptr
}

// Dump arena page and block data.
func (a *Arena) Dump() (d ArenaDump) {
	d.Bases = a.bases
	d.Sizes = a.sizes
	d.Blocks = a.blocks
	d.Free = uintptr(len(a.free))
	return d
}

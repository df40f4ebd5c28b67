package core

import (
	"unsafe"

	"github.com/ein-lang/einrt/internal/mem"
)

// Closure pairs an entry function with its payload. See the package
// documentation for its layout.
type Closure[E, P any] struct {
	Entry   E
	Payload P
}

// Forced is the shape of a closure holding an already computed value.
type Forced[P any] = Closure[func(*P) *P, P]

// MakeClosure pairs entry and payload; it is up to the caller that entry
// accepts the payload.
func MakeClosure[E, P any](entry E, payload P) Closure[E, P] {
	return Closure[E, P]{Entry: entry, Payload: payload}
}

// NewClosure is like MakeClosure, but places the closure in storage from a.
func NewClosure[E, P any](a mem.Allocator, entry E, payload P) *Closure[E, P] {
	c := mem.New[Closure[E, P]](a)
	c.Entry = entry
	c.Payload = payload
	return c
}

// Identity is the entry of every forced value.
func Identity[P any](p *P) *P { return p }

// IdentityEntry returns the shared Identity entry for payloads of type P.
func IdentityEntry[P any]() func(*P) *P {
	return staticEntry[P]("identity", Identity[P])
}

// MakeForced wraps a ready-made payload.
func MakeForced[P any](payload P) Forced[P] {
	return MakeClosure(IdentityEntry[P](), payload)
}

// IsForced returns true if c's entry is the shared identity entry.
func IsForced[P any](c *Forced[P]) bool {
	return sameEntry(c.Entry, IdentityEntry[P]())
}

// Force invokes c's entry on its own payload.
func Force[P any](c *Forced[P]) *P {
	return c.Entry(&c.Payload)
}

// AsThunk views a forced value as a zero argument thunk returning a pointer
// to its payload. Both shapes share one layout, and their entries take and
// return a single pointer, so the view may be evaluated like any other thunk.
func AsThunk[P any](c *Forced[P]) *Thunk[*P] {
	return (*Thunk[*P])(unsafe.Pointer(c))
}

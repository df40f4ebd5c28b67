package mem

import (
	"errors"
	"reflect"
	"unsafe"
)

// Allocator hands out collector-tracked storage.
//
// Alloc returns at least size zeroed bytes, aligned to Align, distinct from
// any other live block. Such raw storage must not be used to hold pointers
// into the Go heap: no allocator promises that the Go collector scans it.
//
// AllocType returns zeroed storage for a single value of type t.
// Allocators backed by the Go heap return typed storage that the Go
// collector scans; off-heap allocators only honor size and alignment.
type Allocator interface {
	Alloc(size uintptr) unsafe.Pointer
	AllocType(t reflect.Type) unsafe.Pointer
}

// New places a zero T in storage obtained from a.
func New[T any](a Allocator) *T {
	return (*T)(a.AllocType(reflect.TypeFor[T]()))
}

// ErrInstalled is returned by Install once a process-wide allocator exists.
var ErrInstalled = errors.New("process allocator already installed")

var installed Allocator

// Install makes a the process-wide allocator. It may succeed only once, and
// must happen before any call to Installed; the allocator then lives for the
// rest of the process.
func Install(a Allocator) error {
	if installed != nil {
		return ErrInstalled
	}
	installed = a
	return nil
}

// Installed returns the process-wide allocator, installing a Heap if none
// was installed yet.
func Installed() Allocator {
	if installed == nil {
		installed = &Heap{}
	}
	return installed
}

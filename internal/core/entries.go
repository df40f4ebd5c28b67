package core

import (
	"reflect"
	"sync"
	"unsafe"
)

// entries holds every entry func value the runtime creates from generic
// code. Such func values may be allocated on the Go heap; keeping them
// reachable from here lets closures placed off the Go heap refer to them,
// and gives each entry one stable identity.
var entries sync.Map

type entryKey struct {
	name string
	of   reflect.Type
}

func staticEntry[P, F any](name string, f F) F {
	key := entryKey{name, reflect.TypeFor[P]()}
	if v, ok := entries.Load(key); ok {
		return v.(F)
	}
	v, _ := entries.LoadOrStore(key, f)
	return v.(F)
}

func sameEntry[F any](a, b F) bool {
	return *(*unsafe.Pointer)(unsafe.Pointer(&a)) == *(*unsafe.Pointer)(unsafe.Pointer(&b))
}

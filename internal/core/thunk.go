package core

import (
	"unsafe"

	"github.com/ein-lang/einrt/internal/mem"
)

// Environment marks the captured variables of a thunk. Its shape is up to
// whoever built the thunk; the runtime only ever handles it by reference.
type Environment struct {
	_ [0]byte
}

// Thunk is the shape of a closure computing R from its environment.
type Thunk[R any] = Closure[func(*Environment) R, Environment]

// Func is the shape of a closure taking one argument.
type Func[A, R any] = Closure[func(*Environment, A) R, Environment]

// Func2 is the shape of a closure taking two arguments.
type Func2[A, B, R any] = Closure[func(*Environment, A, B) R, Environment]

// NewThunk places entry along with its environment record env in storage
// from a, returning the unsized view of the closure.
func NewThunk[F, E any](a mem.Allocator, entry F, env E) *Closure[F, Environment] {
	return (*Closure[F, Environment])(unsafe.Pointer(NewClosure(a, entry, env)))
}

// EnvOf recovers the environment record of a thunk built by NewThunk.
func EnvOf[E any](env *Environment) *E {
	return (*E)(unsafe.Pointer(env))
}

// Eval invokes a thunk.
func Eval[R any](t *Thunk[R]) R {
	return t.Entry(&t.Payload)
}

// Apply invokes a one argument closure.
func Apply[A, R any](f *Func[A, R], a A) R {
	return f.Entry(&f.Payload, a)
}

// Apply2 invokes a two argument closure.
func Apply2[A, B, R any](f *Func2[A, B, R], a A, b B) R {
	return f.Entry(&f.Payload, a, b)
}

// lazy is the environment record of an updatable thunk.
type lazy[E, R any] struct {
	compute func(*E) R
	env     E
	value   R
}

// NewLazy returns an updatable thunk: its first evaluation stores
// compute(&env) in the closure and rewrites the entry so that every later
// evaluation returns the stored value without computing again.
//
// When a is off-heap, compute must be a top-level function.
func NewLazy[E, R any](a mem.Allocator, compute func(*E) R, env E) *Thunk[*R] {
	entry := staticEntry[lazy[E, R]]("lazy", lazyEntry[E, R])
	return NewThunk(a, entry, lazy[E, R]{compute: compute, env: env})
}

func lazyEntry[E, R any](env *Environment) *R {
	l := EnvOf[lazy[E, R]](env)
	l.value = l.compute(&l.env)

	t := (*Thunk[*R])(unsafe.Add(unsafe.Pointer(env), -int(unsafe.Offsetof(Thunk[*R]{}.Payload))))
	t.Entry = normalFormEntry[E, R]()
	return &l.value
}

func normalFormEntry[E, R any]() func(*Environment) *R {
	return staticEntry[lazy[E, R]]("normal form", func(env *Environment) *R {
		return &EnvOf[lazy[E, R]](env).value
	})
}

// IsEvaluated returns true once an updatable thunk built by NewLazy with an
// environment of type E has stored its value.
func IsEvaluated[E, R any](t *Thunk[*R]) bool {
	return sameEntry(t.Entry, normalFormEntry[E, R]())
}

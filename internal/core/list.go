package core

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ein-lang/einrt/internal/mem"
)

// ListTag distinguishes the variants of a ListValue.
type ListTag uint32

// List variants, numbered as generated code expects them.
const (
	Cons ListTag = iota
	Nil
)

func (tag ListTag) String() string {
	switch tag {
	case Cons:
		return "Cons"
	case Nil:
		return "Nil"
	}
	return fmt.Sprintf("ListTag(%d)", uint32(tag))
}

// ListValue is the payload of a List: either Cons, with a head element and a
// tail, or Nil with neither. A tail, once set, is never changed.
type ListValue[T any] struct {
	Tag  ListTag
	Head *T
	Tail *List[T]
}

// List is a forced closure over a ListValue.
type List[T any] Closure[func(*ListValue[T]) *ListValue[T], ListValue[T]]

// ConsValue returns a Cons payload.
func ConsValue[T any](head *T, tail *List[T]) ListValue[T] {
	return ListValue[T]{Tag: Cons, Head: head, Tail: tail}
}

// NilValue returns the Nil payload.
func NilValue[T any]() ListValue[T] {
	return ListValue[T]{Tag: Nil}
}

// MakeList wraps a ready-made payload as a forced List.
func MakeList[T any](v ListValue[T]) List[T] {
	return List[T]{Entry: IdentityEntry[ListValue[T]](), Payload: v}
}

// NewList is like MakeList, but places the List in storage from a.
func NewList[T any](a mem.Allocator, v ListValue[T]) *List[T] {
	l := mem.New[List[T]](a)
	*l = MakeList(v)
	return l
}

// Place copies x into storage from a.
func Place[T any](a mem.Allocator, x T) *T {
	p := mem.New[T](a)
	*p = x
	return p
}

// ListOf converts xs into a List, converting every element with conv.
//
// The list is built from its last element back to its first, so that
// traversal yields elements in the order of xs. Every element and every node
// is placed in storage from a, and so lives as long as the list does.
func ListOf[T, S any](a mem.Allocator, xs []S, conv func(mem.Allocator, S) *T) *List[T] {
	l := NewList(a, NilValue[T]())
	for i := len(xs) - 1; i >= 0; i-- {
		l = NewList(a, ConsValue(conv(a, xs[i]), l))
	}
	return l
}

// NumberList converts fs into a List of Numbers.
func NumberList(a mem.Allocator, fs []float64) *List[Number] {
	return ListOf(a, fs, NewNumber)
}

// Floats unwraps every Number in l.
func Floats(l *List[Number]) []float64 {
	var fs []float64
	for n := range l.All() {
		fs = append(fs, n.Float())
	}
	return fs
}

// Forced returns l in its generic closure shape.
func (l *List[T]) Forced() *Forced[ListValue[T]] {
	return (*Forced[ListValue[T]])(l)
}

// Value forces l, returning its payload.
func (l *List[T]) Value() *ListValue[T] {
	return l.Entry(&l.Payload)
}

// IsNil returns true if l is the empty list.
func (l *List[T]) IsNil() bool {
	return l.Value().Tag == Nil
}

// Uncons returns the head and tail of a Cons, or false for Nil.
func (l *List[T]) Uncons() (head *T, tail *List[T], ok bool) {
	v := l.Value()
	if v.Tag != Cons {
		return nil, nil, false
	}
	return v.Head, v.Tail, true
}

// All returns an iterator over the elements of l, first to last.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for v := l.Value(); v.Tag == Cons; v = v.Tail.Value() {
			if !yield(v.Head) {
				return
			}
		}
	}
}

// Len counts the elements of l.
func (l *List[T]) Len() (n int) {
	for range l.All() {
		n++
	}
	return n
}

// String renders l like "Cons(1, Cons(2, Nil))".
func (l *List[T]) String() string {
	var sb strings.Builder
	n := 0
	for x := range l.All() {
		fmt.Fprintf(&sb, "Cons(%v, ", x)
		n++
	}
	sb.WriteString("Nil")
	sb.WriteString(strings.Repeat(")", n))
	return sb.String()
}

package core_test

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/ein-lang/einrt/internal/core"
	"github.com/ein-lang/einrt/internal/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberList(t *testing.T) {
	eachAllocator(t, func(t *testing.T, a mem.Allocator) {
		for _, tc := range []struct {
			name string
			in   []float64
			str  string
		}{
			{"empty", nil, "Nil"},
			{"empty slice", []float64{}, "Nil"},
			{"one", []float64{42}, "Cons(42, Nil)"},
			{"three", []float64{1, 2, 3}, "Cons(1, Cons(2, Cons(3, Nil)))"},
			{"negative", []float64{-0.5, 2.25}, "Cons(-0.5, Cons(2.25, Nil))"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				l := core.NumberList(a, tc.in)
				assert.Equal(t, tc.str, l.String())
				assert.Equal(t, len(tc.in), l.Len())
				assert.Equal(t, len(tc.in) == 0, l.IsNil())
				if len(tc.in) == 0 {
					assert.Equal(t, core.NilValue[core.Number](), *l.Value(), "expected Nil and nothing else")
					assert.Nil(t, core.Floats(l))
				} else {
					assert.Equal(t, tc.in, core.Floats(l), "expected order to be preserved")
				}
			})
		}
	})
}

func TestListOf_placement(t *testing.T) {
	eachAllocator(t, func(t *testing.T, a mem.Allocator) {
		l := core.NumberList(a, []float64{1, 2, 3})

		nodes := 0
		for node := l; ; nodes++ {
			expectOwned(t, a, unsafePointer(node), "list node")
			assert.True(t, core.IsForced(node.Forced()), "list nodes are forced values")
			head, tail, ok := node.Uncons()
			if !ok {
				break
			}
			expectOwned(t, a, unsafePointer(head), "list element")
			node = tail
		}
		assert.Equal(t, 3, nodes)
	})
}

func TestListOf_collected(t *testing.T) {
	var h mem.Heap
	l := core.NumberList(&h, []float64{1, 2, 3, 4})
	for i := 0; i < 3; i++ {
		core.NumberList(&h, make([]float64, 1000))
		runtime.GC()
	}
	assert.Equal(t, []float64{1, 2, 3, 4}, core.Floats(l), "nodes must survive collection")
}

func TestListOf_roundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	eachAllocator(t, func(t *testing.T, a mem.Allocator) {
		for i := 0; i < 50; i++ {
			in := make([]float64, rng.Intn(64))
			for j := range in {
				in[j] = rng.NormFloat64() * 1e6
			}
			l := core.NumberList(a, in)
			require.Equal(t, len(in), l.Len())
			if len(in) > 0 {
				require.Equal(t, in, core.Floats(l), "round trip #%v", i)
			}
		}
	})
}

func TestListOf_nested(t *testing.T) {
	eachAllocator(t, func(t *testing.T, a mem.Allocator) {
		l := core.ListOf(a, [][]float64{{1}, {}, {2, 3}}, core.NumberList)
		assert.Equal(t, "Cons(Cons(1, Nil), Cons(Nil, Cons(Cons(2, Cons(3, Nil)), Nil)))", l.String())

		var lens []int
		for inner := range l.All() {
			lens = append(lens, inner.Len())
		}
		assert.Equal(t, []int{1, 0, 2}, lens)
	})
}

func TestListOf_values(t *testing.T) {
	eachAllocator(t, func(t *testing.T, a mem.Allocator) {
		in := []point{{1, 2}, {3, 4}}
		l := core.ListOf(a, in, core.Place[point])
		in[0].x = 99

		var out []point
		for p := range l.All() {
			out = append(out, *p)
		}
		assert.Equal(t, []point{{1, 2}, {3, 4}}, out, "elements must be copies of the source")
	})
}

func TestList_persistent(t *testing.T) {
	eachAllocator(t, func(t *testing.T, a mem.Allocator) {
		tail := core.NumberList(a, []float64{2, 3})
		one := core.NewList(a, core.ConsValue(core.NewNumber(a, 1), tail))
		zero := core.NewList(a, core.ConsValue(core.NewNumber(a, 0), tail))

		assert.Equal(t, "Cons(1, Cons(2, Cons(3, Nil)))", one.String())
		assert.Equal(t, "Cons(0, Cons(2, Cons(3, Nil)))", zero.String())
		assert.Equal(t, "Cons(2, Cons(3, Nil))", tail.String(), "shared tails must not change")

		_, gotTail, ok := one.Uncons()
		require.True(t, ok)
		assert.Same(t, tail, gotTail)
	})
}

func TestList_All_break(t *testing.T) {
	l := core.NumberList(&mem.Heap{}, []float64{1, 2, 3, 4})
	var seen []float64
	for n := range l.All() {
		seen = append(seen, n.Float())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []float64{1, 2}, seen)
}

func TestMakeList(t *testing.T) {
	nilList := core.MakeList(core.NilValue[core.Number]())
	assert.True(t, nilList.IsNil())

	one := core.MakeNumber(7)
	l := core.MakeList(core.ConsValue(&one, &nilList))
	assert.Equal(t, "Cons(7, Nil)", l.String())
	assert.Equal(t, []float64{7}, core.Floats(&l))
}

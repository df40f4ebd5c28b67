package core_test

import (
	"math"
	"testing"

	"github.com/ein-lang/einrt/internal/core"
	"github.com/ein-lang/einrt/internal/mem"
	"github.com/stretchr/testify/assert"
)

func TestNumber_roundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		x    float64
	}{
		{"zero", 0},
		{"negative zero", math.Copysign(0, -1)},
		{"one", 1},
		{"fraction", -1.0 / 3},
		{"max", math.MaxFloat64},
		{"smallest denormal", math.SmallestNonzeroFloat64},
		{"+inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
		{"nan", math.NaN()},
		{"nan payload", math.Float64frombits(0x7ff80000deadbeef)},
		{"negative nan payload", math.Float64frombits(0xfff8000000000123)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := math.Float64bits(tc.x)

			n := core.MakeNumber(tc.x)
			assert.Equal(t, want, math.Float64bits(n.Float()), "expected bit identical value")

			eachAllocator(t, func(t *testing.T, a mem.Allocator) {
				p := core.NewNumber(a, tc.x)
				expectOwned(t, a, unsafePointer(p), "number")
				assert.Equal(t, want, math.Float64bits(p.Float()), "expected bit identical value")
			})
		})
	}
}

func TestNumber(t *testing.T) {
	n := core.MakeNumber(1.5)
	assert.True(t, core.IsForced(n.Forced()), "numbers are forced values")
	assert.Same(t, &n.Payload, core.Force(n.Forced()))
	assert.Equal(t, "1.5", n.String())
	assert.Equal(t, "NaN", core.NewNumber(&mem.Heap{}, math.NaN()).String())
}

package core

import (
	"strconv"

	"github.com/ein-lang/einrt/internal/mem"
)

// NumberValue is the payload of a Number.
type NumberValue float64

// Number is a forced closure over a double precision value.
type Number Closure[func(*NumberValue) *NumberValue, NumberValue]

func numberEntry(n *NumberValue) *NumberValue { return n }

// MakeNumber wraps f as a forced Number. Every float64, NaN payloads and
// signed zeros included, is kept bit for bit.
func MakeNumber(f float64) Number {
	return Number{Entry: numberEntry, Payload: NumberValue(f)}
}

// NewNumber is like MakeNumber, but places the Number in storage from a.
func NewNumber(a mem.Allocator, f float64) *Number {
	n := mem.New[Number](a)
	*n = MakeNumber(f)
	return n
}

// Forced returns n in its generic closure shape.
func (n *Number) Forced() *Forced[NumberValue] {
	return (*Forced[NumberValue])(n)
}

// Float forces n and unwraps its value.
func (n *Number) Float() float64 {
	return float64(*n.Entry(&n.Payload))
}

func (n *Number) String() string {
	return strconv.FormatFloat(n.Float(), 'g', -1, 64)
}

func init() {
	// numberEntry is the identity entry shared by every Number
	staticEntry[NumberValue]("identity", numberEntry)
}

package abi

import (
	"bytes"
	"sort"
	"strings"
	"testing"
	"unsafe"

	"github.com/ein-lang/einrt/internal/fatal"
	"github.com/ein-lang/einrt/internal/mem"
	"github.com/ein-lang/einrt/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestSetupFromEnv(t *testing.T) {
	var traced []string
	logf := func(mess string, args ...interface{}) { traced = append(traced, mess) }

	require.NoError(t, SetupFromEnv(env(map[string]string{
		PageSizeEnv: "0x2000",
		MemLimitEnv: "4096",
		TraceEnv:    "true",
	}), logf))
	defer boundary.Close()

	assert.Same(t, boundary, mem.Installed(), "expected the arena to be installed")
	assert.Equal(t, uintptr(0x2000), boundary.PageSize)
	assert.Equal(t, uintptr(4096), boundary.Limit)

	seen := make(map[uintptr]bool)
	for n := uintptr(1); n <= 64; n++ {
		p := Alloc(n)
		require.NotNil(t, p)
		assert.Zero(t, uintptr(p)%8, "expected 8-byte alignment for %v bytes", n)
		assert.True(t, boundary.Owns(p), "expected storage outside the Go heap")
		b := unsafe.Slice((*byte)(p), n)
		for i := range b {
			require.Zero(t, b[i], "expected zeroed storage")
			b[i] = byte(n)
		}
		require.False(t, seen[uintptr(p)], "expected distinct blocks")
		seen[uintptr(p)] = true
	}
	assert.NotEmpty(t, traced, "expected trace lines")

	err := panicerr.Recover("core_alloc", func() error {
		Alloc(8192)
		return nil
	})
	val, ok := panicerr.PanicValue(err)
	require.True(t, ok, "expected exhaustion to panic, got %v", err)
	assert.IsType(t, mem.LimitError{}, val)

	err = panicerr.Recover("core_alloc", func() error {
		Alloc(^uintptr(0) - 3)
		return nil
	})
	assert.ErrorIs(t, err, mem.ErrTooLarge, "expected a wrapping request to abort")
	next := Alloc(8)
	assert.False(t, seen[uintptr(next)], "expected a distinct block after an aborted request")
	expectDisjoint(t, boundary.Blocks())

	installed := boundary
	require.NoError(t, Setup(&mem.Arena{}), "an installed arena is adopted")
	assert.Same(t, installed, boundary, "expected the installed arena to stay the boundary")
}

func expectDisjoint(t *testing.T, blocks []mem.Block) {
	sorted := append([]mem.Block(nil), blocks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Addr < sorted[j].Addr })
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		require.Greater(t, next.Addr, prev.Addr, "blocks %v and %v must be distinct", prev, next)
		require.LessOrEqual(t, prev.Addr+prev.Size, next.Addr, "blocks %v and %v must not overlap", prev, next)
	}
}

func TestSetupFromEnv_invalid(t *testing.T) {
	err := SetupFromEnv(env(map[string]string{PageSizeEnv: "lots"}), nil)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid "+PageSizeEnv+": "), "got %v", err)
}

func TestPanic(t *testing.T) {
	defer func(prior *fatal.Reporter) { reporter = prior }(reporter)

	var out bytes.Buffer
	reporter = fatal.New(fatal.WithOutput(&out), fatal.WithExit(panicerr.Exit))

	err := panicerr.Recover("core_panic", func() error {
		Panic()
		return nil
	})
	code, ok := panicerr.ExitCode(err)
	require.True(t, ok, "expected an exit, got %v", err)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Match error!\n", out.String())
}

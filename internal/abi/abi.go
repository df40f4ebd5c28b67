// Package abi implements the entry points that generated code calls with the
// platform C calling convention: core_alloc and core_panic.
//
// Go heap pointers may not be handed to foreign code, so the boundary
// allocator is an arena mapped outside of the Go heap, installed as the
// process-wide allocator.
package abi

import (
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/ein-lang/einrt/internal/fatal"
	"github.com/ein-lang/einrt/internal/mem"
)

// Environment variables read by SetupFromEnv.
const (
	PageSizeEnv = "EINRT_PAGE_SIZE"
	MemLimitEnv = "EINRT_MEM_LIMIT"
	TraceEnv    = "EINRT_TRACE"
)

var (
	boundary *mem.Arena
	reporter = fatal.New()
)

// ErrNotArena is returned by Setup when some other allocator was installed
// before the boundary arena.
var ErrNotArena = errors.New("process allocator is not an arena")

// Setup installs a as the process-wide allocator behind Alloc. When an arena
// is already installed, that arena serves Alloc instead and a is left unused.
func Setup(a *mem.Arena) error {
	err := mem.Install(a)
	if errors.Is(err, mem.ErrInstalled) {
		installed, ok := mem.Installed().(*mem.Arena)
		if !ok {
			return ErrNotArena
		}
		a, err = installed, nil
	}
	if err != nil {
		return err
	}
	boundary = a
	return nil
}

// SetupFromEnv configures an arena from the environment, then installs it.
// When tracing is enabled, trace lines go to logf.
func SetupFromEnv(getenv func(string) string, logf func(mess string, args ...interface{})) error {
	var a mem.Arena
	var err error
	if a.PageSize, err = sizeFromEnv(getenv, PageSizeEnv); err != nil {
		return err
	}
	if a.Limit, err = sizeFromEnv(getenv, MemLimitEnv); err != nil {
		return err
	}
	if trace, _ := strconv.ParseBool(getenv(TraceEnv)); trace {
		a.Logf = logf
	}
	return Setup(&a)
}

func sizeFromEnv(getenv func(string) string, name string) (uintptr, error) {
	s := getenv(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}
	return uintptr(n), nil
}

// Alloc implements core_alloc: it returns at least size bytes of zeroed,
// 8-byte aligned, collector-tracked storage. Exhaustion panics, aborting
// the process.
func Alloc(size uintptr) unsafe.Pointer {
	if boundary == nil {
		if err := Setup(&mem.Arena{}); err != nil {
			panic(fmt.Sprintf("core_alloc: %v", err))
		}
	}
	return boundary.Alloc(size)
}

// Panic implements core_panic: it reports a match failure and exits.
func Panic() {
	reporter.MatchError()
}

// Command libeinrt builds the runtime as a C archive or shared library that
// compiled programs link against:
//
//	go build -buildmode=c-archive -o libeinrt.a ./cmd/libeinrt
//
// It exports:
//
//	void *core_alloc(size_t size);
//	void core_panic(void);
//
// The boundary arena is configured by the EINRT_PAGE_SIZE, EINRT_MEM_LIMIT,
// and EINRT_TRACE environment variables. Callers must be single-threaded.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/ein-lang/einrt/internal/abi"
	"github.com/ein-lang/einrt/internal/logio"
)

func init() {
	log := logio.NewLogger(os.Stderr)
	if err := abi.SetupFromEnv(os.Getenv, log.Leveledf("TRACE")); err != nil {
		fmt.Fprintf(os.Stderr, "einrt: %v\n", err)
		os.Exit(2)
	}
}

//export core_alloc
func core_alloc(size C.size_t) unsafe.Pointer {
	return abi.Alloc(uintptr(size))
}

//export core_panic
func core_panic() {
	abi.Panic()
}

func main() {}

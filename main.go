package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ein-lang/einrt/internal/fatal"
	"github.com/ein-lang/einrt/internal/logio"
	"github.com/ein-lang/einrt/internal/mem"
)

func main() {
	var (
		heap     string
		pageSize uint64
		memLimit uint64
		trace    bool
		color    string
		tee      string
	)
	flag.StringVar(&heap, "heap", "arena", "allocator to place values with: arena or go")
	flag.Uint64Var(&pageSize, "page-size", mem.DefaultArenaPageSize, "arena page size in bytes")
	flag.Uint64Var(&memLimit, "mem-limit", 0, "enable arena memory limit, in bytes")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&color, "color", "auto", "color the match error: auto, always, or never")
	flag.StringVar(&tee, "tee", "", "also write results to the named file")
	flag.Parse()

	log := logio.NewLogger(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var logf func(mess string, args ...interface{})
	if trace {
		logf = log.Leveledf("TRACE")
	}

	alloc, err := newAllocator(heap, uintptr(pageSize), uintptr(memLimit), logf)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	if err := mem.Install(alloc); err != nil {
		log.Errorf("%v", err)
		return
	}
	if arena, ok := alloc.(*mem.Arena); ok {
		defer arena.Close()
	}

	reporter, err := newReporter(color)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	opts := []Option{
		WithOutput(os.Stdout),
		WithAllocator(alloc),
		WithReporter(reporter),
	}
	if logf != nil {
		opts = append(opts, WithLogf(logf))
	}
	if tee != "" {
		f, err := os.Create(tee)
		if err != nil {
			log.Errorf("unable to create tee file: %v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithTee(f))
	}
	s := New(opts...)

	if flag.NArg() == 0 {
		if fatal.IsTerminal(os.Stdin) {
			log.ErrorIf(s.REPL())
		} else {
			log.ErrorIf(s.Run(os.Stdin))
		}
		return
	}

	var inputs []io.Reader
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.Errorf("%v", err)
			continue
		}
		inputs = append(inputs, f)
	}
	log.ErrorIf(s.Run(inputs...))
}

func newAllocator(kind string, pageSize, limit uintptr, logf func(mess string, args ...interface{})) (mem.Allocator, error) {
	switch kind {
	case "arena":
		return &mem.Arena{PageSize: pageSize, Limit: limit, Logf: logf}, nil
	case "go":
		if limit != 0 {
			return nil, fmt.Errorf("-mem-limit requires -heap arena")
		}
		return &mem.Heap{Logf: logf}, nil
	}
	return nil, fmt.Errorf("invalid -heap %q, expected arena or go", kind)
}

func newReporter(mode string) (*fatal.Reporter, error) {
	switch mode {
	case "auto":
		return fatal.New(), nil
	case "always":
		return fatal.New(fatal.WithColor(true)), nil
	case "never":
		return fatal.New(fatal.WithColor(false)), nil
	}
	return nil, fmt.Errorf("invalid -color %q, expected auto, always, or never", mode)
}

package main

import (
	"errors"
	"io"

	"github.com/ein-lang/einrt/internal/fatal"
	"github.com/ein-lang/einrt/internal/fileinput"
	"github.com/ein-lang/einrt/internal/mem"
	"github.com/ein-lang/einrt/internal/panicerr"
)

// New creates an inspector session.
func New(opts ...Option) *Session {
	var s Session
	s.apply(opts...)
	if s.alloc == nil {
		s.alloc = mem.Installed()
	}
	if s.reporter == nil {
		s.reporter = fatal.New()
	}
	return &s
}

// Run reads forms from every input in turn, printing the runtime value built
// for each. A panic while building, such as allocator exhaustion, ends the
// run with an error.
func (s *Session) Run(inputs ...io.Reader) error {
	in := fileinput.Input{Queue: inputs}
	defer in.Close()
	err := panicerr.Recover("inspector", func() error {
		return s.run(&in)
	})
	if ferr := s.out.Flush(); err == nil {
		err = ferr
	}
	if errors.Is(err, errQuit) {
		err = nil
	}
	return err
}

func WithOutput(w io.Writer) Option         { return withOutput(w) }
func WithTee(w io.Writer) Option            { return teeOption{w} }
func WithAllocator(a mem.Allocator) Option  { return allocatorOption{a} }
func WithReporter(r *fatal.Reporter) Option { return reporterOption{r} }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

package main

import (
	"io"

	"github.com/ein-lang/einrt/internal/fatal"
	"github.com/ein-lang/einrt/internal/flushio"
	"github.com/ein-lang/einrt/internal/mem"
)

// Option configures a Session.
type Option interface{ apply(s *Session) }

var defaults = []Option{
	withOutput(io.Discard),
}

func (s *Session) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(s)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(s)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(s *Session) {
	s.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type allocatorOption struct{ mem.Allocator }
type reporterOption struct{ *fatal.Reporter }

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (o outputOption) apply(s *Session) {
	if s.out != nil {
		s.out.Flush()
	}
	s.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(s *Session) {
	s.out = flushio.WriteFlushers(s.out, flushio.NewWriteFlusher(o.Writer))
}

func (o allocatorOption) apply(s *Session) {
	s.alloc = o.Allocator
}

func (o reporterOption) apply(s *Session) {
	s.reporter = o.Reporter
}

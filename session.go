package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ein-lang/einrt/internal/core"
	"github.com/ein-lang/einrt/internal/fatal"
	"github.com/ein-lang/einrt/internal/fileinput"
	"github.com/ein-lang/einrt/internal/flushio"
	"github.com/ein-lang/einrt/internal/mem"
	"github.com/steelseries/golisp"
)

// Session builds runtime values from literal forms: a number becomes a
// Number, a list of numbers a List of Numbers, and a list of such lists a
// List of Lists of Numbers.
type Session struct {
	logging
	alloc    mem.Allocator
	out      flushio.WriteFlusher
	reporter *fatal.Reporter
	env      *golisp.SymbolTableFrame

	// beforeExit runs before the match failure path ends the process.
	beforeExit func()
}

var (
	errQuit        = errors.New("quit")
	errUnsupported = errors.New("unsupported form")
)

func (s *Session) run(in *fileinput.Input) error {
	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := s.Eval(line); errors.Is(err, errQuit) {
			return err
		} else if err != nil {
			return in.Errorf("%w", err)
		}
	}
}

// Eval handles one line of input: blank lines and ';' comments are skipped,
// lines starting with ':' are commands, anything else is a literal form.
func (s *Session) Eval(line string) error {
	line = strings.TrimSpace(line)
	switch {
	case line == "", strings.HasPrefix(line, ";"):
		return nil
	case strings.HasPrefix(line, ":"):
		return s.command(strings.Fields(line)[0])
	}

	s.logf(">", "%v", line)
	val, err := s.Build(line)
	if err != nil {
		return err
	}
	s.logf("=", "%v", val)
	_, err = fmt.Fprintln(s.out, val)
	return err
}

func (s *Session) command(name string) error {
	switch name {
	case ":quit":
		return errQuit
	case ":heap":
		heapDumper{out: s.out, alloc: s.alloc}.dump()
		return nil
	case ":match":
		s.logf("!", "match error")
		s.out.Flush()
		if s.beforeExit != nil {
			s.beforeExit()
		}
		s.reporter.MatchError()
		return nil
	}
	return fmt.Errorf("unknown command %q", name)
}

// Build reads one literal form and converts it into a runtime value placed
// in the session's allocator.
func (s *Session) Build(src string) (fmt.Stringer, error) {
	d, err := s.read(src)
	if err != nil {
		return nil, err
	}

	if x, ok := number(d); ok {
		return core.NewNumber(s.alloc, x), nil
	}
	if !golisp.NilP(d) && !golisp.PairP(d) {
		return nil, fmt.Errorf("%w: %v", errUnsupported, show(d))
	}
	if golisp.NilP(d) || isNumber(golisp.Car(d)) {
		xs, err := numbers(d)
		if err != nil {
			return nil, err
		}
		return core.NumberList(s.alloc, xs), nil
	}

	var rows [][]float64
	for c := d; golisp.NotNilP(c); c = golisp.Cdr(c) {
		row, err := numbers(golisp.Car(c))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return core.ListOf(s.alloc, rows, core.NumberList), nil
}

func (s *Session) read(src string) (*golisp.Data, error) {
	if s.env == nil {
		s.env = golisp.NewSymbolTableFrameBelow(golisp.Global, "einrt")
	}
	form, err := literal(src)
	if err != nil {
		return nil, err
	}
	d, err := golisp.ParseAndEvalInEnvironment("(quote "+form+")", s.env)
	if err != nil {
		return nil, fmt.Errorf("unable to read %q: %w", src, err)
	}
	return d, nil
}

func numbers(d *golisp.Data) ([]float64, error) {
	if !golisp.NilP(d) && !golisp.PairP(d) {
		return nil, fmt.Errorf("%w: %v is not a list", errUnsupported, show(d))
	}
	var xs []float64
	for c := d; golisp.NotNilP(c); c = golisp.Cdr(c) {
		x, ok := number(golisp.Car(c))
		if !ok {
			return nil, fmt.Errorf("%w: %v is not a number", errUnsupported, show(golisp.Car(c)))
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func isNumber(d *golisp.Data) bool {
	_, ok := number(d)
	return ok
}

// number unwraps the number atoms that literal turned into strings.
func number(d *golisp.Data) (float64, bool) {
	if !golisp.StringP(d) {
		return 0, false
	}
	x, err := strconv.ParseFloat(golisp.StringValue(d), 64)
	return x, err == nil
}

func show(d *golisp.Data) string {
	if isNumber(d) {
		return golisp.StringValue(d)
	}
	return golisp.String(d)
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}

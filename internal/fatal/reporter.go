// Package fatal reports unrecoverable failures of compiled programs.
//
// A failed pattern match is an invariant violation, not an error value: it is
// reported once and ends the process. Nothing here returns or panics, so no
// recover() in the program can intercept it.
package fatal

import (
	"fmt"
	"io"
	"os"

	"github.com/ein-lang/einrt/internal/flushio"
	"github.com/xyproto/vt"
	"golang.org/x/term"
)

// Message is the diagnostic written when no match arm applies.
const Message = "Match error!"

// ExitCode is the process status after a match failure.
const ExitCode = 1

// Reporter writes fatal diagnostics and ends the process.
type Reporter struct {
	out   io.Writer
	exit  func(code int)
	color *bool
}

// Option configures a Reporter.
type Option interface{ apply(r *Reporter) }

type outputOption struct{ io.Writer }
type exitOption func(code int)
type colorOption bool

// WithOutput sets the diagnostic stream; os.Stderr by default.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithExit replaces os.Exit, e.g. with panicerr.Exit under test.
func WithExit(exit func(code int)) Option { return exitOption(exit) }

// WithColor forces colored output on or off, instead of coloring only when
// the output is a terminal.
func WithColor(color bool) Option { return colorOption(color) }

func (o outputOption) apply(r *Reporter) { r.out = o.Writer }
func (o exitOption) apply(r *Reporter)   { r.exit = o }
func (o colorOption) apply(r *Reporter) {
	color := bool(o)
	r.color = &color
}

// New returns a Reporter writing to standard error.
func New(opts ...Option) *Reporter {
	r := Reporter{out: os.Stderr, exit: os.Exit}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&r)
		}
	}
	return &r
}

// MatchError reports that a compiled pattern match found no matching arm,
// then exits with ExitCode. It never returns.
func (r *Reporter) MatchError() {
	wf := flushio.NewWriteFlusher(r.out)
	mess := Message
	if r.colored() {
		mess = vt.Red.Get(mess)
	}
	// the process ends regardless; write errors have nowhere to go
	fmt.Fprintln(wf, mess)
	wf.Flush()

	r.exit(ExitCode)
	os.Exit(ExitCode)
}

func (r *Reporter) colored() bool {
	if r.color != nil {
		return *r.color
	}
	return IsTerminal(r.out)
}

// IsTerminal returns true if w is a file descriptor attached to a terminal.
func IsTerminal(w interface{}) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// MatchError reports a match failure on standard error and exits.
func MatchError() {
	New().MatchError()
}

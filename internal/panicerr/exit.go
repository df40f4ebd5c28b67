package panicerr

import (
	"errors"
	"fmt"
)

// Exit is a stand-in for os.Exit: it unwinds the calling goroutine, which
// must be running under Recover, and surfaces code through ExitCode.
func Exit(code int) {
	panic(exitRequest(code))
}

type exitRequest int

func recoverGoexit(name string, errch chan<- error) {
	select {
	case errch <- exitError{name: name, code: -1}:
	default:
		// assumes that that the happy path does a (maybe nil) send
	}
}

type exitError struct {
	name string
	code int
}

func (xe exitError) Error() string {
	what := "runtime.Goexit"
	if xe.code >= 0 {
		what = fmt.Sprintf("exit(%v)", xe.code)
	}
	if xe.name == "" {
		return what + " called"
	}
	return fmt.Sprintf("%v called %v", xe.name, what)
}

// IsExit returns true if err indicates a recovered goroutine exit, either by
// runtime.Goexit or Exit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// ExitCode returns the code passed to Exit, -1 for a runtime.Goexit, and
// false if err is not a recovered exit at all.
func ExitCode(err error) (int, bool) {
	var xe exitError
	if errors.As(err, &xe) {
		return xe.code, true
	}
	return 0, false
}

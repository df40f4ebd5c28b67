package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Error annotates an error with the Location of the line that caused it.
type Error struct {
	Location
	Err error
}

func (err Error) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Err) }
func (err Error) Unwrap() error { return err.Err }

// Input implements sequential line reading through a Queue of one or more
// input streams, tracking the Location of the last line read.
type Input struct {
	Queue []io.Reader
	Last  Location

	sc  *bufio.Scanner
	cur io.Reader
}

// ReadLine returns the next line, without its line ending, moving on to the
// next queued stream at the end of each one. Returns io.EOF once the Queue is
// exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.sc == nil && !in.nextIn() {
			return "", io.EOF
		}
		if in.sc.Scan() {
			in.Last.Line++
			return in.sc.Text(), nil
		}
		if err := in.sc.Err(); err != nil {
			return "", in.Errorf("%w", err)
		}
		in.closeIn()
	}
}

// Errorf returns an error located at the last line read.
func (in *Input) Errorf(mess string, args ...interface{}) error {
	return Error{in.Last, fmt.Errorf(mess, args...)}
}

// Close closes the current stream, and any queued ones, where they are
// io.Closer-s.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.sc = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.sc = bufio.NewScanner(in.cur)
	in.Last = Location{Name: nameOf(in.cur)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

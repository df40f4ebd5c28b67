package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ein-lang/einrt/internal/panicerr"
	"github.com/peterh/liner"
	"github.com/xyproto/vt"
)

const replPrompt = "einrt> "

// REPL reads forms interactively until end of input or ":quit". Errors are
// printed in red and do not end the loop.
func (s *Session) REPL() error {
	ln := liner.NewLiner()
	closed := false
	closeLiner := func() {
		if !closed {
			closed = true
			ln.Close()
		}
	}
	defer closeLiner()
	ln.SetCtrlCAborts(true)

	s.beforeExit = closeLiner
	defer func() { s.beforeExit = nil }()

	history := historyPath()
	if f, err := os.Open(history); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
		ln.AppendHistory(line)

		err = panicerr.Recover("repl", func() error { return s.Eval(line) })
		s.out.Flush()
		if errors.Is(err, errQuit) {
			break
		} else if err != nil {
			fmt.Fprintln(os.Stderr, vt.Red.Get(err.Error()))
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".einrt_history")
}

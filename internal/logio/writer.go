package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function, such as
// testing.T.Logf, emitting one call per line written.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then logs any completed lines while holding a lock, so that
// writing is safe from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.logLines(false)
	return len(p), nil
}

// Close logs any partial line remaining in the buffer.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.logLines(true)
	return nil
}

func (lw *Writer) logLines(all bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			lw.Logf("%s", string(line[:i]))
			lw.buf.Next(i + 1)
		} else if all {
			lw.Logf("%s", string(line))
			lw.buf.Reset()
		} else {
			break
		}
	}
}

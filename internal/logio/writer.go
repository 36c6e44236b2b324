package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that hands each complete line written to it to
// Logf, without its line feed. It is safe to use from multiple goroutines.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	for {
		line, _, found := bytes.Cut(lw.buf.Bytes(), []byte{'\n'})
		if !found {
			break
		}
		lw.Logf("%s", line)
		lw.buf.Next(len(line) + 1)
	}
	return len(p), nil
}

// Close logs any final partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.buf.Len() > 0 {
		lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
	}
	return nil
}

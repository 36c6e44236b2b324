// Package flushio provides buffered writers that are flushed explicitly,
// one or many at a time.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher returns w if it already is a WriteFlusher. In-memory
// buffers, such as bytes.Buffer or strings.Builder, and io.Discard get a
// no-op Flush; anything else is wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return discardWriteFlusher
	}
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if _, isBuffer := w.(interface {
		io.Writer
		Len() int
		Reset()
	}); isBuffer {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }

// WriteFlushers combines any number of WriteFlusher-s into one that writes
// to, and flushes, all of them in order. Nil elements are skipped.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all teeFlusher
	for _, wf := range wfs {
		if tee, ok := wf.(teeFlusher); ok {
			all = append(all, tee...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type teeFlusher []WriteFlusher

func (tee teeFlusher) Write(p []byte) (int, error) {
	for _, wf := range tee {
		if n, err := wf.Write(p); err != nil {
			return n, err
		} else if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// Flush flushes every writer, returning the first error.
func (tee teeFlusher) Flush() (err error) {
	for _, wf := range tee {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

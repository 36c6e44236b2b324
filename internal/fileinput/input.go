package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads lines sequentially through a Queue of one or more input
// streams, tracking where each line came from. Each stream is closed, if it
// is an io.Closer, once it has been read to its end.
type Input struct {
	Queue []io.Reader

	cur io.Reader
	br  *bufio.Reader
	loc Location
}

// ReadLine reads through the end of the next line, returning its text
// without line ending along with where it was read from. The last line of
// each stream need not end in a line feed. Returns io.EOF only after every
// queued stream is exhausted.
func (in *Input) ReadLine() (string, Location, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", in.loc, io.EOF
		}
		text, err := in.br.ReadString('\n')
		if err == io.EOF {
			if cerr := in.closeIn(); cerr != nil {
				return "", in.loc, cerr
			}
			if text == "" {
				continue
			}
		} else if err != nil {
			return "", in.loc, err
		}
		in.loc.Line++
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
		return text, in.loc, nil
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	err = in.closeIn()
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

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(in.cur)
	in.loc = Location{Name: nameOf(in.cur)}
	return true
}

func (in *Input) closeIn() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur, in.br = nil, nil
	return err
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

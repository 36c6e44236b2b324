package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/gosorth/internal/fileinput"
	"github.com/jcorbin/gosorth/internal/flushio"
	"github.com/jcorbin/gosorth/internal/logio"
	"github.com/jcorbin/gosorth/internal/panicerr"
)

// session feeds lines of program text to a VM, writing each line's output
// and logging each line's error; errors do not end a session.
type session struct {
	vm  *VM
	out flushio.WriteFlusher
	log *logio.Logger
}

type sourceLine struct {
	text string
	loc  fileinput.Location
}

var errSessionDone = errors.New("session done")

// eval runs one line; any error other than ctx being done is logged.
func (sess *session) eval(ctx context.Context, text string, loc fileinput.Location) (string, error) {
	out, err := sess.vm.EvalContext(ctx, text)
	if err != nil && ctx.Err() == nil {
		if panicerr.IsPanic(err) {
			sess.log.Errorf("%v: %+v", loc, err)
		} else {
			sess.log.Errorf("%v: %v", loc, err)
		}
		return "", nil
	}
	return out, err
}

func (sess *session) emit(out string) error {
	if out != "" {
		io.WriteString(sess.out, out)
		io.WriteString(sess.out, "\n")
	}
	return sess.out.Flush()
}

// pump evaluates every line read from in until input runs out, bye ends
// the session, or ctx is done.
//
// The reader only notices that evaluation has stopped once it has another
// line to hand over, so a blocked stdin may delay the return.
func (sess *session) pump(ctx context.Context, in *fileinput.Input) error {
	eg, ctx := errgroup.WithContext(ctx)
	lines := make(chan sourceLine)

	eg.Go(func() error {
		defer close(lines)
		for {
			text, loc, err := in.ReadLine()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}
			select {
			case lines <- sourceLine{text, loc}:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		for {
			var line sourceLine
			select {
			case <-ctx.Done():
				return ctx.Err()
			case next, ok := <-lines:
				if !ok {
					return nil
				}
				line = next
			}
			out, err := sess.eval(ctx, line.text, line.loc)
			if err != nil {
				return err
			}
			if err := sess.emit(out); err != nil {
				return err
			}
			if !sess.vm.Running() {
				return errSessionDone
			}
		}
	})

	if err := eg.Wait(); err != nil && err != errSessionDone {
		return err
	}
	return nil
}

const replPrompt = "> "

// repl runs an interactive session on the terminal. Interrupting a running
// line abandons it without ending the session.
func (sess *session) repl(ctx context.Context, historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	loc := fileinput.Location{Name: "<stdin>"}
	prompt := replPrompt
	for sess.vm.Running() {
		text, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		} else if err == io.EOF {
			io.WriteString(sess.out, "\n")
			return sess.out.Flush()
		} else if err != nil {
			return err
		}
		loc.Line++

		if !sess.vm.Awaiting() && strings.TrimSpace(text) != "" {
			ln.AppendHistory(text)
		}

		lineCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		out, err := sess.eval(lineCtx, text, loc)
		stop()
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			sess.log.Errorf("%v: interrupted", loc)
		}

		prompt = replPrompt
		if sess.vm.Awaiting() {
			prompt = out + " "
		} else if err := sess.emit(out); err != nil {
			return err
		}
	}
	return sess.out.Flush()
}

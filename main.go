package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/gosorth/internal/fileinput"
	"github.com/jcorbin/gosorth/internal/flushio"
	"github.com/jcorbin/gosorth/internal/logio"
	"github.com/jcorbin/gosorth/internal/panicerr"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	log.ErrorIf(panicerr.Recover("sorth", func() error {
		return run(&log, os.Args[1:])
	}))
	os.Exit(log.ExitCode())
}

func run(log *logio.Logger, args []string) error {
	ctx := context.Background()

	flags := flag.NewFlagSet("sorth", flag.ContinueOnError)
	var (
		timeout    time.Duration
		trace      bool
		silent     bool
		depthLimit int
		loose      bool
		dump       bool
		history    string
		tee        string
	)
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.BoolVar(&silent, "silent", false, "start without the Ok. marker")
	flags.IntVar(&depthLimit, "depth-limit", 0, "limit definition call depth")
	flags.BoolVar(&loose, "loose", false, "let any leading text of a definition call it")
	flags.BoolVar(&dump, "dump", false, "dump VM state after the session")
	flags.StringVar(&history, "history", defaultHistory(), "interactive history file")
	flags.StringVar(&tee, "tee", "", "also write output to this file")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: sorth [options] [script ...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err == flag.ErrHelp {
		return nil
	} else if err != nil {
		return err
	}

	opts := VMOptions(
		WithSilent(silent),
		WithDepthLimit(depthLimit),
		WithLoosePrefix(loose),
	)
	if trace {
		opts = VMOptions(opts, WithLogf(log.Leveledf("TRACE")))
	}
	vm := New(opts)

	out := flushio.NewWriteFlusher(os.Stdout)
	if tee != "" {
		f, err := os.Create(tee)
		if err != nil {
			return err
		}
		defer f.Close()
		out = flushio.WriteFlushers(out, flushio.NewWriteFlusher(f))
	}
	defer out.Flush()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if dump {
		defer func() {
			lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
			vmDumper{vm: vm, out: lw}.dump()
			lw.Close()
		}()
	}

	sess := session{vm: vm, out: out, log: log}

	var in fileinput.Input
	defer in.Close()
	for _, name := range flags.Args() {
		if name == "-" {
			in.Queue = append(in.Queue, os.Stdin)
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		in.Queue = append(in.Queue, f)
	}
	if len(in.Queue) > 0 {
		return sess.pump(ctx, &in)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		in.Queue = append(in.Queue, os.Stdin)
		return sess.pump(ctx, &in)
	}
	return sess.repl(ctx, history)
}

func defaultHistory() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + string(os.PathSeparator) + ".sorth_history"
	}
	return ""
}

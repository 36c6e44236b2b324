package main

import (
	"context"
	"strings"

	"github.com/jcorbin/gosorth/internal/panicerr"
)

// VM holds all state for one sorth session: the value stack, variables,
// compiled definitions, control flow stacks, and the stack of token frames
// currently being evaluated.
type VM struct {
	logging

	running  bool // cleared by a top level bye
	awaiting bool // next Eval line is data for input
	silent   bool // no Ok. marker

	mode mode

	// The main stack is the sole data channel between words.
	stack []Value

	// Variables are addressed by their index, which @name pushes. A let
	// removes any older variable of the same name, shifting the indices of
	// every later one.
	vars []variable

	// Control flow state, shared by every frame so that definitions can be
	// called from within a loop body and see its index.
	conds []cond
	loops []loop

	// Each Eval call, and each definition run from one, pushes a frame over
	// its token sequence; only the top frame is active.
	frames []*frame

	// Definitions are stored as "name body..." text, found by prefix.
	defs    []string
	pending []string // tokens of the definition being compiled
	strbuf  []string // tokens of the string literal being read

	depthLimit  int
	loosePrefix bool
}

type variable struct {
	name   string
	values []Value
}

type frame struct {
	ctx    context.Context
	tokens []string
	at     int
	leave  bool // bye from within a definition
}

func (fr *frame) token() string {
	if fr.at >= 0 && fr.at < len(fr.tokens) {
		return fr.tokens[fr.at]
	}
	return ""
}

type mode uint8

const (
	modeNormal mode = iota
	modeCompile
	modeString
	modeComment
	modeSee
	modeMax
)

var modeNames = [modeMax]string{
	"normal",
	"compile",
	"string",
	"comment",
	"see",
}

func (m mode) String() string { return modeNames[m] }

// Running returns false once bye has been evaluated outside any definition.
func (vm *VM) Running() bool { return vm.running }

// Awaiting returns true after input has emitted its prompt, until the next
// line is supplied to Eval.
func (vm *VM) Awaiting() bool { return vm.awaiting }

// Eval evaluates one line of program text, returning its output.
func (vm *VM) Eval(line string) (string, error) {
	return vm.EvalContext(context.Background(), line)
}

// EvalContext is like Eval, but stops with ctx's error once it is done;
// the context is checked before every word.
func (vm *VM) EvalContext(ctx context.Context, line string) (out string, err error) {
	if vm.awaiting {
		vm.awaiting = false
		line = strings.TrimRight(line, "\r\n")
		vm.logf(">", "input %q", line)
		vm.push(Str(line))
		return "", nil
	}

	vm.logf(">", "eval %q", line)
	err = panicerr.Catch("eval", func() (err error) {
		out, err = vm.eval(ctx, strings.Fields(line))
		return err
	})
	if err != nil {
		vm.logf("!", "error: %v", err)
		return "", err
	}
	return out, nil
}

func (vm *VM) eval(ctx context.Context, tokens []string) (string, error) {
	if lim := vm.depthLimit; lim != 0 && len(vm.frames) >= lim {
		return "", ErrDepthLimit
	}

	fr := &frame{ctx: ctx, tokens: tokens, at: -1}
	vm.frames = append(vm.frames, fr)
	defer func() {
		vm.frames[len(vm.frames)-1] = nil
		vm.frames = vm.frames[:len(vm.frames)-1]
	}()
	if vm.logfn != nil && len(vm.frames) > 1 {
		defer vm.withLogPrefix("\t")()
	}

	var out outBuffer
	for fr.at+1 < len(fr.tokens) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fr.at++
		token := fr.tokens[fr.at]

		w := vm.lookup(token)
		if w == nil {
			return "", unknownWordError(token)
		}
		if vm.logfn != nil {
			vm.logf("@", "%v %v %q -- s:%v", vm.mode, w.name, token, vm.stack)
		}

		s, err := w.run(vm, token)
		if err != nil {
			return "", wordError{token, err}
		}
		out.add(s)

		if fr.leave || vm.awaiting || !vm.running {
			return out.String(), nil
		}
	}

	if len(vm.frames) == 1 && !vm.silent {
		out.add("Ok.")
	}
	return out.String(), nil
}

// lookup returns the first word of the current mode's table that
// recognizes token, or nil.
func (vm *VM) lookup(token string) *word {
	table := wordTables[vm.mode]
	for i := range table {
		if table[i].match(vm, token) {
			return &table[i]
		}
	}
	return nil
}

func (vm *VM) frame() *frame {
	return vm.frames[len(vm.frames)-1]
}

//// Session words

// Name    Function
// bye     end the session, or just the running definition
func (vm *VM) bye(string) (string, error) {
	if len(vm.frames) > 1 {
		vm.frame().leave = true
	} else {
		vm.running = false
	}
	return "", nil
}

// Name    Function
// silent  toggle the Ok. marker after each line
func (vm *VM) toggleSilent(string) (string, error) {
	vm.silent = !vm.silent
	return "", nil
}

// Name    Function
// input   pop a prompt string, emit it, and take the next line as a string
func (vm *VM) input(word string) (string, error) {
	prompt, err := vm.popStr(word)
	if err != nil {
		return "", err
	}
	vm.awaiting = true
	return string(prompt), nil
}

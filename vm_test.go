package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		t.Run(vmt.name, vmt.run)
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []VMOption
	lines   []string
	expect  []func(t *testing.T, res vmResult)
	timeout time.Duration
	wantErr error
	anyErr  bool

	exclusive bool
}

// vmResult is what a vmTestCase run leaves for its expectations.
type vmResult struct {
	*VM
	outs []string
	err  error
}

func (vmt vmTestCase) apply(wraps ...func(vmTestCase) vmTestCase) vmTestCase {
	for _, wrap := range wraps {
		vmt = wrap(vmt)
	}
	return vmt
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	vmt.opts = append(vmt.opts, opts...)
	return vmt
}

func (vmt vmTestCase) withStack(values ...Value) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.stack = append(vm.stack, values...)
	}))
	return vmt
}

func (vmt vmTestCase) withVar(name string, values ...Value) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.vars = append(vm.vars, variable{name, append([]Value(nil), values...)})
	}))
	return vmt
}

func (vmt vmTestCase) withDefs(texts ...string) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.defs = append(vm.defs, texts...)
	}))
	return vmt
}

func (vmt vmTestCase) eval(lines ...string) vmTestCase {
	vmt.lines = append(vmt.lines, lines...)
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectErrorText(text string) vmTestCase {
	vmt.anyErr = true
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		if assert.Error(t, res.err, "expected an error") {
			assert.Equal(t, text, res.err.Error(), "expected error text")
		}
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(outs ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		if outs == nil {
			outs = []string{}
		}
		assert.Equal(t, outs, res.outs, "expected line outputs")
	})
	return vmt
}

func (vmt vmTestCase) expectStack(values ...Value) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		if values == nil {
			values = []Value{}
		}
		stack := res.stack
		if stack == nil {
			stack = []Value{}
		}
		assert.Equal(t, values, stack, "expected stack values")
	})
	return vmt
}

func (vmt vmTestCase) expectVar(name string, values ...Value) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		i := res.findVar(name)
		if !assert.True(t, i >= 0, "expected variable %q to be defined", name) {
			return
		}
		got := res.vars[i].values
		if got == nil {
			got = []Value{}
		}
		if values == nil {
			values = []Value{}
		}
		assert.Equal(t, values, got, "expected variable %q values", name)
	})
	return vmt
}

func (vmt vmTestCase) expectVarNames(names ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		got := []string{}
		for _, v := range res.vars {
			got = append(got, v.name)
		}
		if names == nil {
			names = []string{}
		}
		assert.Equal(t, names, got, "expected variable names")
	})
	return vmt
}

func (vmt vmTestCase) expectDefs(texts ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		defs := res.defs
		if defs == nil {
			defs = []string{}
		}
		if texts == nil {
			texts = []string{}
		}
		assert.Equal(t, texts, defs, "expected definitions")
	})
	return vmt
}

func (vmt vmTestCase) expectMode(m mode) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		assert.Equal(t, m, res.mode, "expected mode")
	})
	return vmt
}

func (vmt vmTestCase) expectRunning(running bool) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		assert.Equal(t, running, res.Running(), "expected running")
	})
	return vmt
}

func (vmt vmTestCase) expectAwaiting(awaiting bool) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		assert.Equal(t, awaiting, res.Awaiting(), "expected awaiting input")
	})
	return vmt
}

func (vmt vmTestCase) expectConds(conds ...cond) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		assert.Equal(t, len(conds), len(res.conds), "expected conditional depth")
		if len(conds) > 0 {
			assert.Equal(t, conds, res.conds, "expected conditionals")
		}
	})
	return vmt
}

func (vmt vmTestCase) expectLoops(loops ...loop) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		assert.Equal(t, len(loops), len(res.loops), "expected loop depth")
		if len(loops) > 0 {
			assert.Equal(t, loops, res.loops, "expected loops")
		}
	})
	return vmt
}

func (vmt vmTestCase) expectDump(dump string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, res vmResult) {
		var out strings.Builder
		vmDumper{
			vm:  res.VM,
			out: &out,
		}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	var trace traceLog
	vm := vmt.buildVM()
	WithLogf(trace.logf).apply(vm)
	defer func() {
		if t.Failed() {
			trace.dumpTo(t)
		}
	}()
	vmt.runVMTest(context.Background(), t, vm)
}

func (vmt vmTestCase) runVMTest(ctx context.Context, t *testing.T, vm *VM) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			vmt.dumpToTest(t, vm)
		}
	}()

	outs, err := vm.EvalAll(ctx, vmt.lines...)
	if vmt.wantErr != nil {
		assert.True(t, errors.Is(err, vmt.wantErr), "expected error: %v\ngot: %+v", vmt.wantErr, err)
	} else if !vmt.anyErr {
		assert.NoError(t, err, "unexpected eval error")
	}

	res := vmResult{VM: vm, outs: outs, err: err}
	if res.outs == nil {
		res.outs = []string{}
	}
	for _, expect := range vmt.expect {
		expect(t, res)
	}
}

func (vmt vmTestCase) buildVM() *VM {
	return New(vmt.opts...)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	var out strings.Builder
	vmDumper{vm: vm, out: &out}.dump()
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		t.Log(line)
	}
}

//// utilities

type traceLog struct {
	mu    sync.Mutex
	lines []string
}

func (tl *traceLog) logf(mess string, args ...interface{}) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.lines = append(tl.lines, fmt.Sprintf(mess, args...))
}

func (tl *traceLog) dumpTo(t *testing.T) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	for _, line := range tl.lines {
		t.Log(line)
	}
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

package main

import "context"

// New creates a VM ready to Eval its first line.
func New(opts ...VMOption) *VM {
	vm := &VM{running: true}
	VMOptions(opts...).apply(vm)
	return vm
}

// EvalAll evaluates each line in turn, stopping at the first error or once
// bye ends the session. Outputs are returned one per evaluated line.
func (vm *VM) EvalAll(ctx context.Context, lines ...string) ([]string, error) {
	outs := make([]string, 0, len(lines))
	for _, line := range lines {
		if !vm.running {
			break
		}
		out, err := vm.EvalContext(ctx, line)
		if err != nil {
			return outs, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

// WithLogf enables trace logging of every dispatched word.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// WithSilent starts the VM with the Ok. marker turned off, as if silent had
// already been evaluated.
func WithSilent(silent bool) VMOption { return silentOption(silent) }

// WithDepthLimit bounds how deeply definitions may call each other; zero
// means no limit.
func WithDepthLimit(limit int) VMOption { return depthLimitOption(limit) }

// WithLoosePrefix lets any leading text of a definition invoke it, so "s"
// would run a definition of "sq" with "q" left at the head of its body.
func WithLoosePrefix(loose bool) VMOption { return loosePrefixOption(loose) }

package main

type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one; nil options are
// ignored, later ones override earlier ones.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type silentOption bool
type depthLimitOption int
type loosePrefixOption bool

func (silent silentOption) apply(vm *VM)     { vm.silent = bool(silent) }
func (lim depthLimitOption) apply(vm *VM)    { vm.depthLimit = int(lim) }
func (loose loosePrefixOption) apply(vm *VM) { vm.loosePrefix = bool(loose) }

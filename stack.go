package main

// Every stack word checks depth before it pops anything, so a word that
// fails on underflow leaves the stack as it found it.

func (vm *VM) push(vals ...Value) {
	vm.stack = append(vm.stack, vals...)
}

func (vm *VM) need(n int) error {
	if len(vm.stack) < n {
		return ErrStackUnderflow
	}
	return nil
}

func (vm *VM) pop() (Value, error) {
	i := len(vm.stack) - 1
	if i < 0 {
		return nil, ErrStackUnderflow
	}
	val := vm.stack[i]
	vm.stack[i] = nil
	vm.stack = vm.stack[:i]
	return val, nil
}

// top returns the value n places below the top of the stack.
func (vm *VM) top(n int) Value {
	return vm.stack[len(vm.stack)-1-n]
}

func (vm *VM) drops(n int) {
	for i := len(vm.stack) - n; i < len(vm.stack); i++ {
		vm.stack[i] = nil
	}
	vm.stack = vm.stack[:len(vm.stack)-n]
}

// popInt pops an Int, failing without popping on underflow or any other kind.
func (vm *VM) popInt(word string) (Int, error) {
	if err := vm.need(1); err != nil {
		return 0, err
	}
	v, ok := vm.top(0).(Int)
	if !ok {
		return 0, kindError{word, vm.top(0).Kind()}
	}
	vm.drops(1)
	return v, nil
}

// popStr pops a Str, failing without popping on underflow or any other kind.
func (vm *VM) popStr(word string) (Str, error) {
	if err := vm.need(1); err != nil {
		return "", err
	}
	v, ok := vm.top(0).(Str)
	if !ok {
		return "", kindError{word, vm.top(0).Kind()}
	}
	vm.drops(1)
	return v, nil
}

//// Stack words

// Symbol  Name   Function
//   .     dot    pop and output the top of the stack
func (vm *VM) dot(string) (string, error) {
	v, err := vm.pop()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Name    Function
// peek    output the top of the stack, leaving it there
func (vm *VM) peek(string) (string, error) {
	if err := vm.need(1); err != nil {
		return "", err
	}
	return vm.top(0).String(), nil
}

// Name    Function
// dup     ( a -- a a )
func (vm *VM) dup(string) (string, error) {
	if err := vm.need(1); err != nil {
		return "", err
	}
	vm.push(vm.top(0))
	return "", nil
}

// Name    Function
// 2dup    ( a b -- a b a b )
func (vm *VM) twoDup(string) (string, error) {
	if err := vm.need(2); err != nil {
		return "", err
	}
	vm.push(vm.top(1), vm.top(0))
	return "", nil
}

// Name    Function
// drop    ( a -- )
func (vm *VM) drop(string) (string, error) {
	_, err := vm.pop()
	return "", err
}

// Name    Function
// swap    ( a b -- b a )
func (vm *VM) swap(string) (string, error) {
	if err := vm.need(2); err != nil {
		return "", err
	}
	n := len(vm.stack)
	vm.stack[n-1], vm.stack[n-2] = vm.stack[n-2], vm.stack[n-1]
	return "", nil
}

// Name    Function
// rot     ( a b c -- b c a )
func (vm *VM) rot(string) (string, error) {
	if err := vm.need(3); err != nil {
		return "", err
	}
	n := len(vm.stack)
	a, b, c := vm.stack[n-3], vm.stack[n-2], vm.stack[n-1]
	vm.stack[n-3], vm.stack[n-2], vm.stack[n-1] = b, c, a
	return "", nil
}

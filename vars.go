package main

// Name    Function
// let     create the variable named by the next token, replacing any other
func (vm *VM) let(string) (string, error) {
	fr := vm.frame()
	if fr.at+1 >= len(fr.tokens) {
		return "", ErrMissingName
	}
	fr.at++
	name := fr.tokens[fr.at]
	if i := vm.findVar(name); i >= 0 {
		vm.vars = append(vm.vars[:i], vm.vars[i+1:]...)
	}
	vm.vars = append(vm.vars, variable{name: name})
	return "", nil
}

// Name    Function
// @name   ( -- var ) push the address of variable name
func (vm *VM) varAddr(token string) (string, error) {
	name := token[1:]
	i := vm.findVar(name)
	if i < 0 {
		return "", variableError{err: ErrVariableNotDefined, name: name}
	}
	vm.push(Int(i))
	return "", nil
}

// Name    Function
// push    ( var v -- ) append v to var
func (vm *VM) varPush(word string) (string, error) {
	if err := vm.need(2); err != nil {
		return "", err
	}
	v, err := vm.varAt(word, vm.top(1))
	if err != nil {
		return "", err
	}
	v.values = append(v.values, vm.top(0))
	vm.drops(2)
	return "", nil
}

// Name    Function
// pop     ( var -- v ) remove the last value of var
func (vm *VM) varPop(word string) (string, error) {
	if err := vm.need(1); err != nil {
		return "", err
	}
	v, err := vm.varAt(word, vm.top(0))
	if err != nil {
		return "", err
	}
	i := len(v.values) - 1
	if i < 0 {
		return "", ErrStackUnderflow
	}
	val := v.values[i]
	v.values[i] = nil
	v.values = v.values[:i]
	vm.drops(1)
	vm.push(val)
	return "", nil
}

// Name    Function
// get     ( var idx -- v ) copy out the value at idx of var
func (vm *VM) varGet(word string) (string, error) {
	if err := vm.need(2); err != nil {
		return "", err
	}
	v, err := vm.varAt(word, vm.top(1))
	if err != nil {
		return "", err
	}
	i, err := v.index(word, vm.top(0))
	if err != nil {
		return "", err
	}
	vm.drops(2)
	vm.push(v.values[i])
	return "", nil
}

// Name    Function
// set     ( var idx v -- ) overwrite the value at idx of var
func (vm *VM) varSet(word string) (string, error) {
	if err := vm.need(3); err != nil {
		return "", err
	}
	v, err := vm.varAt(word, vm.top(2))
	if err != nil {
		return "", err
	}
	i, err := v.index(word, vm.top(1))
	if err != nil {
		return "", err
	}
	v.values[i] = vm.top(0)
	vm.drops(3)
	return "", nil
}

// Name    Function
// len     ( var -- n ) push the number of values in var
func (vm *VM) varLen(word string) (string, error) {
	if err := vm.need(1); err != nil {
		return "", err
	}
	v, err := vm.varAt(word, vm.top(0))
	if err != nil {
		return "", err
	}
	vm.drops(1)
	vm.push(Int(len(v.values)))
	return "", nil
}

func (vm *VM) findVar(name string) int {
	for i := range vm.vars {
		if vm.vars[i].name == name {
			return i
		}
	}
	return -1
}

// varAt resolves an address pushed by @name.
func (vm *VM) varAt(word string, addr Value) (*variable, error) {
	i, ok := addr.(Int)
	if !ok {
		return nil, kindError{word, addr.Kind()}
	}
	if i < 0 || int(i) >= len(vm.vars) {
		return nil, variableError{err: ErrVariableNotDefined, index: int(i)}
	}
	return &vm.vars[i], nil
}

// index resolves a numeric element index within v.
func (v *variable) index(word string, idx Value) (int, error) {
	if idx.Kind() == KindStr {
		return 0, kindError{word, idx.Kind()}
	}
	i := toLong(idx)
	if i < 0 || i >= Long(len(v.values)) {
		return 0, variableError{err: ErrVariableIndexOutOfRange, name: v.name, index: int(i)}
	}
	return int(i), nil
}

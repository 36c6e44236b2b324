package main

import "strings"

// Symbol  Name     Function
//   :     compile  start compiling a definition, named by the next token
func (vm *VM) startCompile(string) (string, error) {
	vm.mode = modeCompile
	vm.pending = vm.pending[:0]
	return "", nil
}

func (vm *VM) compileToken(token string) (string, error) {
	vm.pending = append(vm.pending, token)
	return "", nil
}

// Symbol  Name     Function
//   ;     end      store the compiled definition, replacing any of the same name
func (vm *VM) endCompile(string) (string, error) {
	text := strings.TrimSpace(strings.Join(vm.pending, " "))
	vm.pending = vm.pending[:0]
	vm.mode = modeNormal

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", ErrMissingName
	}
	name := fields[0]
	if i := vm.findDef(name); i >= 0 {
		vm.logf("#", "redefine %v", name)
		vm.defs[i] = text
	} else {
		vm.logf("#", "define %v", name)
		vm.defs = append(vm.defs, text)
	}
	return "", nil
}

// findDef returns the index of the first definition that token names, or
// -1. A definition is named by the first word of its text; under the loose
// option any leading text of a definition names it.
func (vm *VM) findDef(token string) int {
	for i, text := range vm.defs {
		if !strings.HasPrefix(text, token) {
			continue
		}
		if vm.loosePrefix || len(text) == len(token) || text[len(token)] == ' ' {
			return i
		}
	}
	return -1
}

// runDef evaluates the body of the definition named by token within a new
// frame, returning its output.
func (vm *VM) runDef(token string) (string, error) {
	text := vm.defs[vm.findDef(token)]
	return vm.eval(vm.frame().ctx, strings.Fields(text[len(token):]))
}

// Name    Function
// see     output the definition named by the next token
func (vm *VM) startSee(string) (string, error) {
	vm.mode = modeSee
	return "", nil
}

func (vm *VM) see(token string) (string, error) {
	vm.mode = modeNormal
	i := vm.findDef(token)
	if i < 0 {
		return "", unknownWordError(token)
	}
	return ": " + vm.defs[i] + " ;", nil
}

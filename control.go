package main

import "slices"

// cond records the outcome of one open if.
type cond uint8

const (
	condTrue       cond = iota // running the taken branch
	condFalse                  // skipping to else
	condSuppressed             // skipping to then
)

var condNames = [...]string{"true", "false", "suppressed"}

func (c cond) String() string { return condNames[c] }

// loop is one open for loop; index counts up towards limit.
type loop struct {
	limit, index Int
}

// skipping is true inside any branch that is not being run.
func (vm *VM) skipping() bool {
	return len(vm.conds) > 0 && vm.conds[len(vm.conds)-1] != condTrue
}

//// Conditionals

// Name    Function
// if      ( flag -- ) run up to else or then only if flag is non-zero
func (vm *VM) ifWord(word string) (string, error) {
	if vm.skipping() {
		vm.conds = append(vm.conds, condSuppressed)
		return "", nil
	}
	flag, err := vm.popInt(word)
	if err != nil {
		return "", err
	}
	if flag != 0 {
		vm.conds = append(vm.conds, condTrue)
	} else {
		vm.conds = append(vm.conds, condFalse)
	}
	return "", nil
}

// Name    Function
// else    switch from the taken branch to the other one
func (vm *VM) elseWord(string) (string, error) {
	i := len(vm.conds) - 1
	if i < 0 {
		return "", ErrConditionalUnderflow
	}
	switch vm.conds[i] {
	case condTrue:
		vm.conds[i] = condSuppressed
	case condFalse:
		vm.conds[i] = condTrue
	}
	return "", nil
}

// Name    Function
// then    close the innermost if
func (vm *VM) thenWord(string) (string, error) {
	i := len(vm.conds) - 1
	if i < 0 {
		return "", ErrConditionalUnderflow
	}
	vm.conds = vm.conds[:i]
	return "", nil
}

//// Loops
//
// Loops re-run their body by moving the cursor of the current frame back
// to the opening word. Matching open and close words are found by counting
// only the words of the same loop kind, so for loops may nest within do
// loops and the other way around.

// Name    Function
// for     ( limit index -- ) run up to next while index < limit
func (vm *VM) forWord(word string) (string, error) {
	if err := vm.need(2); err != nil {
		return "", err
	}
	limit, lok := vm.top(1).(Int)
	index, iok := vm.top(0).(Int)
	if !lok || !iok {
		return "", typeError{word, vm.top(1).Kind(), vm.top(0).Kind()}
	}
	vm.drops(2)
	vm.loops = append(vm.loops, loop{limit: limit, index: index})
	return "", nil
}

// Name    Function
// next    step the innermost for loop by one
func (vm *VM) next(string) (string, error) {
	if len(vm.loops) == 0 {
		return "", ErrLoopControlUnderflow
	}
	return "", vm.step(1)
}

// Name    Function
// bynext  ( step -- ) step the innermost for loop by step
func (vm *VM) bynext(word string) (string, error) {
	if len(vm.loops) == 0 {
		return "", ErrLoopControlUnderflow
	}
	by, err := vm.popInt(word)
	if err != nil {
		return "", err
	}
	return "", vm.step(by)
}

func (vm *VM) step(by Int) error {
	i := len(vm.loops) - 1
	lp := &vm.loops[i]
	lp.index += by
	if lp.index < lp.limit {
		return vm.rewind("for", "next", "bynext")
	}
	vm.loops = vm.loops[:i]
	return nil
}

// Name    Function
// i       ( -- index ) push the index of the innermost for loop
func (vm *VM) loopIndex(string) (string, error) {
	if len(vm.loops) == 0 {
		return "", ErrLoopControlUnderflow
	}
	vm.push(vm.loops[len(vm.loops)-1].index)
	return "", nil
}

// Name    Function
// while   mark the top of a do loop, where its condition begins
func (vm *VM) while(string) (string, error) { return "", nil }

// Name    Function
// do      ( flag -- ) run the body up to again, or leave the loop if flag is 0
func (vm *VM) do(word string) (string, error) {
	flag, err := vm.popInt(word)
	if err != nil || flag != 0 {
		return "", err
	}
	return "", vm.skipForward("again", "while")
}

// Name    Function
// again   go back to the matching while
func (vm *VM) again(string) (string, error) {
	return "", vm.rewind("while", "again")
}

// rewind moves the cursor back onto the open word matching the close word
// under it; any of the close words nests one level deeper.
func (vm *VM) rewind(open string, closers ...string) error {
	fr := vm.frame()
	depth := 0
	for at := fr.at - 1; at >= 0; at-- {
		switch token := fr.tokens[at]; {
		case token == open:
			if depth == 0 {
				fr.at = at
				return nil
			}
			depth--
		case slices.Contains(closers, token):
			depth++
		}
	}
	return ErrUnbalancedLoop
}

// skipForward moves the cursor onto the closer matching the loop it is in;
// nested occurrences of opener need their own closer first.
func (vm *VM) skipForward(closer, opener string) error {
	fr := vm.frame()
	depth := 0
	for at := fr.at + 1; at < len(fr.tokens); at++ {
		switch fr.tokens[at] {
		case closer:
			if depth == 0 {
				fr.at = at
				return nil
			}
			depth--
		case opener:
			depth++
		}
	}
	return ErrUnbalancedLoop
}

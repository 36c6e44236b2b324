package main

import (
	"strconv"
	"strings"
)

//// Arithmetic and logic

// Symbol  Function
//  + - * /  pop rhs then lhs, push lhs op rhs in the wider of their kinds
func arithWord(op arithOp) func(vm *VM, token string) (string, error) {
	return func(vm *VM, _ string) (string, error) {
		if err := vm.need(2); err != nil {
			return "", err
		}
		val, err := arith(op, vm.top(1), vm.top(0))
		if err != nil {
			return "", err
		}
		vm.drops(2)
		vm.push(val)
		return "", nil
	}
}

// Symbol  Function
//  == != > <  pop two values, push -1 if "top op under" holds, else 0
//
// So "2 3 >" is true: the comparison reads from the top of the stack down.
func relWord(op relOp) func(vm *VM, token string) (string, error) {
	return func(vm *VM, _ string) (string, error) {
		if err := vm.need(2); err != nil {
			return "", err
		}
		holds, err := relate(op, vm.top(0), vm.top(1))
		if err != nil {
			return "", err
		}
		vm.drops(2)
		vm.push(boolFlag(holds))
		return "", nil
	}
}

func (vm *VM) flags(word string) (a, b Int, err error) {
	if err := vm.need(2); err != nil {
		return 0, 0, err
	}
	a, aok := vm.top(1).(Int)
	b, bok := vm.top(0).(Int)
	if !aok || !bok {
		return 0, 0, typeError{word, vm.top(1).Kind(), vm.top(0).Kind()}
	}
	vm.drops(2)
	return a, b, nil
}

// Name    Function
// and     push -1 if both flags are true
func (vm *VM) and(word string) (string, error) {
	a, b, err := vm.flags(word)
	if err == nil {
		vm.push(boolFlag(a == True && b == True))
	}
	return "", err
}

// Name    Function
// or      push -1 if either flag is true
func (vm *VM) or(word string) (string, error) {
	a, b, err := vm.flags(word)
	if err == nil {
		vm.push(boolFlag(a == True || b == True))
	}
	return "", err
}

// Name    Function
// not     push -1 unless the flag is true
func (vm *VM) not(word string) (string, error) {
	a, err := vm.popInt(word)
	if err == nil {
		vm.push(boolFlag(a != True))
	}
	return "", err
}

//// Conversions

// Name       Function
// to_<kind>  convert the top of the stack, parsing strings
func convertWord(to Kind) func(vm *VM, token string) (string, error) {
	return func(vm *VM, word string) (string, error) {
		if err := vm.need(1); err != nil {
			return "", err
		}
		val, err := convert(word, vm.top(0), to)
		if err != nil {
			return "", err
		}
		vm.drops(1)
		vm.push(val)
		return "", nil
	}
}

func convert(word string, v Value, to Kind) (Value, error) {
	if to == KindStr {
		return Str(v.String()), nil
	}
	if s, ok := v.(Str); ok {
		return parseStr(word, string(s), to)
	}
	switch to {
	case KindByte:
		return toByte(v), nil
	case KindInt:
		return toInt(v), nil
	case KindLong:
		return toLong(v), nil
	case KindFloat:
		return toFloat(v), nil
	default:
		return toDouble(v), nil
	}
}

// parseStr reads s as decimal, or as hexadecimal for bytes.
func parseStr(word, s string, to Kind) (Value, error) {
	var (
		val Value
		err error
	)
	switch to {
	case KindByte:
		var n uint64
		n, err = strconv.ParseUint(s, 16, 8)
		val = Byte(n)
	case KindInt:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		val = Int(n)
	case KindLong:
		var n int64
		n, err = strconv.ParseInt(s, 10, 64)
		val = Long(n)
	case KindFloat:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		val = Float(f)
	default:
		var f float64
		f, err = strconv.ParseFloat(s, 64)
		val = Double(f)
	}
	if err != nil {
		return nil, conversionError{word, s}
	}
	return val, nil
}

//// Strings

// Name    Function
// concat  ( a b -- ab ) join two strings
func (vm *VM) concat(word string) (string, error) {
	if err := vm.need(2); err != nil {
		return "", err
	}
	a, aok := vm.top(1).(Str)
	b, bok := vm.top(0).(Str)
	if !aok || !bok {
		return "", typeError{word, vm.top(1).Kind(), vm.top(0).Kind()}
	}
	vm.drops(2)
	vm.push(a + b)
	return "", nil
}

// Name    Function
// split   ( s sep -- parts... n ) split s around sep
func (vm *VM) split(word string) (string, error) {
	if err := vm.need(2); err != nil {
		return "", err
	}
	s, sok := vm.top(1).(Str)
	sep, sepok := vm.top(0).(Str)
	if !sok || !sepok {
		return "", typeError{word, vm.top(1).Kind(), vm.top(0).Kind()}
	}
	vm.drops(2)
	vm.pushParts(strings.Split(string(s), string(sep)))
	return "", nil
}

// Name    Function
// wsplit  ( s -- parts... n ) split s around runs of whitespace
func (vm *VM) wsplit(word string) (string, error) {
	s, err := vm.popStr(word)
	if err == nil {
		vm.pushParts(strings.Fields(string(s)))
	}
	return "", err
}

func (vm *VM) pushParts(parts []string) {
	for _, part := range parts {
		vm.push(Str(part))
	}
	vm.push(Int(len(parts)))
}

// A string literal is either one quoted token, like "abc", or the tokens
// between two lone " tokens, rejoined with single spaces.

func isStringLiteral(_ *VM, token string) bool {
	return len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"'
}

func (vm *VM) stringLiteral(token string) (string, error) {
	vm.push(Str(token[1 : len(token)-1]))
	return "", nil
}

func (vm *VM) startString(string) (string, error) {
	vm.mode = modeString
	vm.strbuf = vm.strbuf[:0]
	return "", nil
}

func (vm *VM) stringToken(token string) (string, error) {
	vm.strbuf = append(vm.strbuf, token)
	return "", nil
}

func (vm *VM) endString(string) (string, error) {
	if !vm.skipping() {
		vm.push(Str(strings.Join(vm.strbuf, " ")))
	}
	vm.strbuf = vm.strbuf[:0]
	vm.mode = modeNormal
	return "", nil
}

//// Number literals

func literal(parse func(string) (Value, bool)) func(vm *VM, token string) bool {
	return func(_ *VM, token string) bool {
		_, ok := parse(token)
		return ok
	}
}

func pushLiteral(parse func(string) (Value, bool)) func(vm *VM, token string) (string, error) {
	return func(vm *VM, token string) (string, error) {
		val, _ := parse(token)
		vm.push(val)
		return "", nil
	}
}

func parseInt(token string) (Value, bool) {
	n, err := strconv.ParseInt(token, 10, 32)
	return Int(n), err == nil
}

func parseLong(token string) (Value, bool) {
	digits, ok := cutSuffixFold(token, 'l')
	if !ok {
		return nil, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	return Long(n), err == nil
}

func parseFloat(token string) (Value, bool) {
	digits, ok := cutSuffixFold(token, 'f')
	if !ok || !decimal(digits) {
		return nil, false
	}
	f, err := strconv.ParseFloat(digits, 32)
	return Float(f), err == nil
}

func parseDouble(token string) (Value, bool) {
	if !decimal(token) {
		return nil, false
	}
	f, err := strconv.ParseFloat(token, 64)
	return Double(f), err == nil
}

// parseByte reads exactly two hex digits after 0x, like 0x2a.
func parseByte(token string) (Value, bool) {
	if len(token) != 4 || !strings.HasPrefix(token, "0x") {
		return nil, false
	}
	n, err := strconv.ParseUint(token[2:], 16, 8)
	return Byte(n), err == nil
}

// decimal rules out the words ParseFloat knows, like inf or nan.
func decimal(token string) bool {
	token = strings.TrimLeft(token, "+-")
	return token != "" && (token[0] == '.' || '0' <= token[0] && token[0] <= '9')
}

func cutSuffixFold(token string, suffix byte) (string, bool) {
	if n := len(token) - 1; n > 0 && (token[n]|0x20) == suffix {
		return token[:n], true
	}
	return "", false
}

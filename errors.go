package main

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow          = errors.New("stack underflow")
	ErrInvalidType             = errors.New("invalid type")
	ErrUnknownWord             = errors.New("unknown word")
	ErrVariableNotDefined      = errors.New("variable not defined")
	ErrVariableIndexOutOfRange = errors.New("variable index out of range")
	ErrTypeConversion          = errors.New("type conversion failed")
	ErrConditionalUnderflow    = errors.New("conditional stack underflow")
	ErrLoopControlUnderflow    = errors.New("loop control stack underflow")
	ErrUnbalancedLoop          = errors.New("unbalanced loop")
	ErrDivisionByZero          = errors.New("division by zero")
	ErrMissingName             = errors.New("missing name")
	ErrDepthLimit              = errors.New("definition depth limit exceeded")
)

type unknownWordError string

func (token unknownWordError) Error() string { return fmt.Sprintf("unknown word: %v", string(token)) }
func (unknownWordError) Unwrap() error       { return ErrUnknownWord }

// typeError reports operand kinds that an operator cannot combine.
type typeError struct {
	op   string
	a, b Kind
}

func (te typeError) Error() string {
	return fmt.Sprintf("invalid type: %v %v %v", te.a, te.op, te.b)
}
func (typeError) Unwrap() error { return ErrInvalidType }

// kindError reports a single operand of the wrong kind.
type kindError struct {
	word string
	kind Kind
}

func (ke kindError) Error() string {
	return fmt.Sprintf("invalid type: %v cannot take %v", ke.word, ke.kind)
}
func (kindError) Unwrap() error { return ErrInvalidType }

type conversionError struct {
	word string
	str  string
}

func (ce conversionError) Error() string {
	return fmt.Sprintf("type conversion failed: %v %q", ce.word, ce.str)
}
func (conversionError) Unwrap() error { return ErrTypeConversion }

type variableError struct {
	err   error
	name  string
	index int
}

func (ve variableError) Error() string {
	if ve.err == ErrVariableIndexOutOfRange {
		return fmt.Sprintf("%v: %v[%v]", ve.err, ve.name, ve.index)
	}
	if ve.name != "" {
		return fmt.Sprintf("%v: %v", ve.err, ve.name)
	}
	return fmt.Sprintf("%v: %v", ve.err, ve.index)
}
func (ve variableError) Unwrap() error { return ve.err }

// wordError annotates an error with the word that raised it.
type wordError struct {
	word string
	err  error
}

func (we wordError) Error() string { return fmt.Sprintf("%v: %v", we.word, we.err) }
func (we wordError) Unwrap() error { return we.err }

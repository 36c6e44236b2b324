package main

import "strings"

// A word pairs a recognizer with the handler it selects. Each mode has its
// own ordered table, and the first recognizer to accept a token wins, so
// table order is part of the language: conditional words come before the
// conditional skip, which comes before every ordinary word, and literals
// are only tried once nothing else matched.
type word struct {
	name  string
	match func(vm *VM, token string) bool
	run   func(vm *VM, token string) (string, error)
}

var wordTables [modeMax][]word

func is(name string) func(vm *VM, token string) bool {
	return func(vm *VM, token string) bool { return token == name }
}

func anyToken(*VM, string) bool { return true }

func builtin(name string, run func(vm *VM, token string) (string, error)) word {
	return word{name, is(name), run}
}

func init() {
	wordTables[modeNormal] = []word{
		// comments and spaced strings hide their tokens even while skipping
		builtin("(", (*VM).startComment),
		builtin(`"`, (*VM).startString),

		// conditionals run even while skipping, to keep nesting balanced
		builtin("if", (*VM).ifWord),
		builtin("else", (*VM).elseWord),
		builtin("then", (*VM).thenWord),
		{"skip", func(vm *VM, _ string) bool { return vm.skipping() }, (*VM).skip},

		// loops
		builtin("for", (*VM).forWord),
		builtin("next", (*VM).next),
		builtin("bynext", (*VM).bynext),
		builtin("while", (*VM).while),
		builtin("do", (*VM).do),
		builtin("again", (*VM).again),
		builtin("i", (*VM).loopIndex),

		// variables
		builtin("let", (*VM).let),
		{"@var", func(vm *VM, token string) bool { return strings.HasPrefix(token, "@") }, (*VM).varAddr},
		builtin("push", (*VM).varPush),
		builtin("pop", (*VM).varPop),
		builtin("get", (*VM).varGet),
		builtin("set", (*VM).varSet),
		builtin("len", (*VM).varLen),

		// arithmetic
		builtin("+", arithWord(opAdd)),
		builtin("-", arithWord(opSub)),
		builtin("*", arithWord(opMul)),
		builtin("/", arithWord(opDiv)),

		// logic
		builtin("==", relWord(relEq)),
		builtin("!=", relWord(relNe)),
		builtin("and", (*VM).and),
		builtin("or", (*VM).or),
		builtin("not", (*VM).not),
		builtin(">", relWord(relGt)),
		builtin("<", relWord(relLt)),

		// stack
		builtin(".", (*VM).dot),
		builtin("dup", (*VM).dup),
		builtin("2dup", (*VM).twoDup),
		builtin("drop", (*VM).drop),
		builtin("swap", (*VM).swap),
		builtin("rot", (*VM).rot),
		builtin("peek", (*VM).peek),

		// definitions
		builtin(":", (*VM).startCompile),
		builtin("see", (*VM).startSee),
		{"defined", func(vm *VM, token string) bool { return vm.findDef(token) >= 0 }, (*VM).runDef},

		// session
		builtin("bye", (*VM).bye),
		builtin("silent", (*VM).toggleSilent),
		builtin("input", (*VM).input),

		// conversions
		builtin("to_int", convertWord(KindInt)),
		builtin("to_long", convertWord(KindLong)),
		builtin("to_float", convertWord(KindFloat)),
		builtin("to_double", convertWord(KindDouble)),
		builtin("to_byte", convertWord(KindByte)),
		builtin("to_str", convertWord(KindStr)),

		// strings
		builtin("concat", (*VM).concat),
		builtin("split", (*VM).split),
		builtin("wsplit", (*VM).wsplit),
		{"string", isStringLiteral, (*VM).stringLiteral},

		// literals
		{"int", literal(parseInt), pushLiteral(parseInt)},
		{"long", literal(parseLong), pushLiteral(parseLong)},
		{"float", literal(parseFloat), pushLiteral(parseFloat)},
		{"double", literal(parseDouble), pushLiteral(parseDouble)},
		{"byte", literal(parseByte), pushLiteral(parseByte)},
	}

	wordTables[modeCompile] = []word{
		{"compile", func(vm *VM, token string) bool { return token != ";" }, (*VM).compileToken},
		builtin(";", (*VM).endCompile),
	}

	wordTables[modeString] = []word{
		builtin(`"`, (*VM).endString),
		{"strtok", anyToken, (*VM).stringToken},
	}

	wordTables[modeComment] = []word{
		builtin(")", (*VM).endComment),
		{"comment", anyToken, (*VM).skip},
	}

	wordTables[modeSee] = []word{
		{"see", anyToken, (*VM).see},
	}
}

// Name    Function
// skip    consume a token without effect
func (vm *VM) skip(string) (string, error) { return "", nil }

// Symbol  Name     Function
//   (     comment  ignore tokens up to the next )
func (vm *VM) startComment(string) (string, error) { vm.mode = modeComment; return "", nil }
func (vm *VM) endComment(string) (string, error)   { vm.mode = modeNormal; return "", nil }

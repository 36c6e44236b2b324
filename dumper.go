package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	nameWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  mode: %v running: %v awaiting: %v silent: %v\n",
		dump.vm.mode, dump.vm.running, dump.vm.awaiting, dump.vm.silent)
	if len(dump.vm.pending) > 0 {
		fmt.Fprintf(dump.out, "  pending: %q\n", strings.Join(dump.vm.pending, " "))
	}

	dump.dumpStack()
	dump.dumpControl()
	dump.dumpVars()
	dump.dumpDefs()
}

func (dump *vmDumper) dumpStack() {
	var buf strings.Builder
	for i, val := range dump.vm.stack {
		if i > 0 {
			buf.WriteByte(' ')
		}
		formatValue(&buf, val)
	}
	fmt.Fprintf(dump.out, "  stack: [%v]\n", buf.String())
}

func (dump *vmDumper) dumpControl() {
	if len(dump.vm.conds) > 0 {
		fmt.Fprintf(dump.out, "  conds: %v\n", dump.vm.conds)
	}
	for i, lp := range dump.vm.loops {
		fmt.Fprintf(dump.out, "  loop_%v: %v/%v\n", i, lp.index, lp.limit)
	}
}

func (dump *vmDumper) dumpVars() {
	if len(dump.vm.vars) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Variables\n")
	if dump.nameWidth == 0 {
		for _, v := range dump.vm.vars {
			dump.nameWidth = max(dump.nameWidth, len(v.name))
		}
	}
	var buf strings.Builder
	for i, v := range dump.vm.vars {
		buf.Reset()
		for j, val := range v.values {
			if j > 0 {
				buf.WriteByte(' ')
			}
			formatValue(&buf, val)
		}
		fmt.Fprintf(dump.out, "  @%v %-*v [%v]\n", i, dump.nameWidth, v.name, buf.String())
	}
}

func (dump *vmDumper) dumpDefs() {
	if len(dump.vm.defs) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Definitions\n")
	for _, text := range dump.vm.defs {
		fmt.Fprintf(dump.out, "  : %v ;\n", text)
	}
}

// formatValue writes val tagged with its kind, quoting strings.
func formatValue(buf *strings.Builder, val Value) {
	if s, ok := val.(Str); ok {
		buf.WriteString(strconv.Quote(string(s)))
		return
	}
	buf.WriteString(val.String())
	buf.WriteByte(':')
	buf.WriteString(val.Kind().String())
}

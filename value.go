package main

import (
	"cmp"
	"strconv"
	"strings"
)

// Kind names the variant held by a Value. Numeric kinds are declared in
// widening order, so the wider of two kinds is simply the greater one.
type Kind uint8

const (
	KindByte Kind = iota
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindStr
)

var kindNames = [...]string{
	"byte",
	"int",
	"long",
	"float",
	"double",
	"str",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the closed union of everything that may live on a stack or in a
// variable: Int, Long, Float, Double, Byte and Str. Values are plain Go
// values, so moving one between stacks copies it.
type Value interface {
	Kind() Kind
	String() string
}

type (
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Byte   uint8
	Str    string
)

func (Int) Kind() Kind    { return KindInt }
func (Long) Kind() Kind   { return KindLong }
func (Float) Kind() Kind  { return KindFloat }
func (Double) Kind() Kind { return KindDouble }
func (Byte) Kind() Kind   { return KindByte }
func (Str) Kind() Kind    { return KindStr }

func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v Long) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string  { return strconv.FormatFloat(float64(v), 'f', -1, 32) }
func (v Double) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v Byte) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Str) String() string    { return string(v) }

// Canonical flags: true is -1, false is 0.
const (
	True  = Int(-1)
	False = Int(0)
)

func boolFlag(b bool) Int {
	if b {
		return True
	}
	return False
}

// numeric conversions; callers must have ruled out Str already

func toByte(v Value) Byte {
	switch v := v.(type) {
	case Int:
		return Byte(v)
	case Long:
		return Byte(v)
	case Float:
		return Byte(v)
	case Double:
		return Byte(v)
	case Byte:
		return v
	}
	return 0
}

func toInt(v Value) Int {
	switch v := v.(type) {
	case Int:
		return v
	case Long:
		return Int(v)
	case Float:
		return Int(v)
	case Double:
		return Int(v)
	case Byte:
		return Int(v)
	}
	return 0
}

func toLong(v Value) Long {
	switch v := v.(type) {
	case Int:
		return Long(v)
	case Long:
		return v
	case Float:
		return Long(v)
	case Double:
		return Long(v)
	case Byte:
		return Long(v)
	}
	return 0
}

func toFloat(v Value) Float {
	switch v := v.(type) {
	case Int:
		return Float(v)
	case Long:
		return Float(v)
	case Float:
		return v
	case Double:
		return Float(v)
	case Byte:
		return Float(v)
	}
	return 0
}

func toDouble(v Value) Double {
	switch v := v.(type) {
	case Int:
		return Double(v)
	case Long:
		return Double(v)
	case Float:
		return Double(v)
	case Double:
		return v
	case Byte:
		return Double(v)
	}
	return 0
}

//// Arithmetic

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

var arithNames = [...]string{"+", "-", "*", "/"}

func (op arithOp) String() string { return arithNames[op] }

// arith applies op to lhs and rhs after widening both to the wider kind.
// Two bytes only stay a byte under division; sums, differences and
// products of bytes are computed as Int.
func arith(op arithOp, lhs, rhs Value) (Value, error) {
	lk, rk := lhs.Kind(), rhs.Kind()
	if lk == KindStr || rk == KindStr {
		if op == opAdd && lk == KindStr && rk == KindStr {
			return Str(strings.TrimSpace(string(lhs.(Str))) + " " + strings.TrimSpace(string(rhs.(Str)))), nil
		}
		return nil, typeError{op.String(), lk, rk}
	}

	k := max(lk, rk)
	if k == KindByte && op != opDiv {
		k = KindInt
	}

	switch k {
	case KindByte:
		r, err := intArith(op, toByte(lhs), toByte(rhs))
		return r, err
	case KindInt:
		r, err := intArith(op, toInt(lhs), toInt(rhs))
		return r, err
	case KindLong:
		r, err := intArith(op, toLong(lhs), toLong(rhs))
		return r, err
	case KindFloat:
		return floatArith(op, toFloat(lhs), toFloat(rhs)), nil
	default:
		return floatArith(op, toDouble(lhs), toDouble(rhs)), nil
	}
}

func intArith[T Byte | Int | Long](op arithOp, x, y T) (T, error) {
	switch op {
	case opAdd:
		return x + y, nil
	case opSub:
		return x - y, nil
	case opMul:
		return x * y, nil
	default:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	}
}

func floatArith[T Float | Double](op arithOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	default:
		return x / y
	}
}

//// Relations

type relOp uint8

const (
	relEq relOp = iota
	relNe
	relGt
	relLt
)

var relNames = [...]string{"==", "!=", ">", "<"}

func (op relOp) String() string { return relNames[op] }

// relate reports whether "a op b" holds, widening numeric operands like
// arith does. Strings only relate to strings, lexicographically.
func relate(op relOp, a, b Value) (bool, error) {
	ak, bk := a.Kind(), b.Kind()
	if ak == KindStr || bk == KindStr {
		if ak != bk {
			return false, typeError{op.String(), ak, bk}
		}
		return ordered(op, a.(Str), b.(Str)), nil
	}
	switch max(ak, bk) {
	case KindByte:
		return ordered(op, toByte(a), toByte(b)), nil
	case KindInt:
		return ordered(op, toInt(a), toInt(b)), nil
	case KindLong:
		return ordered(op, toLong(a), toLong(b)), nil
	case KindFloat:
		return ordered(op, toFloat(a), toFloat(b)), nil
	default:
		return ordered(op, toDouble(a), toDouble(b)), nil
	}
}

func ordered[T cmp.Ordered](op relOp, x, y T) bool {
	switch op {
	case relEq:
		return x == y
	case relNe:
		return x != y
	case relGt:
		return x > y
	default:
		return x < y
	}
}

package calculator

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Op is one of the operations the calculator knows. The set is closed; the
// zero value OpNone is not an operation.
type Op int8

const (
	OpNone Op = iota

	OpAdd  // a + b
	OpSub  // a - b
	OpMul  // a * b
	OpDiv  // a / b, b != 0
	OpSqrt // square root, a >= 0
	OpSin  // sine, radians
	OpCos  // cosine, radians
	OpLog  // base-10 logarithm, a > 0
	OpLn   // natural logarithm, a > 0

	opCount
)

type opinfo struct {
	// sym is the name used to request the operation.
	sym string
	// arity is the number of operands, 1 or 2.
	arity int
	// monadic and dyadic implement the operation. Exactly one is set,
	// according to arity.
	monadic func(a float64) (float64, error)
	dyadic  func(a, b float64) (float64, error)
}

var optab = [opCount]opinfo{
	OpAdd: {sym: "+", arity: 2, dyadic: func(a, b float64) (float64, error) { return a + b, nil }},
	OpSub: {sym: "-", arity: 2, dyadic: func(a, b float64) (float64, error) { return a - b, nil }},
	OpMul: {sym: "*", arity: 2, dyadic: func(a, b float64) (float64, error) { return a * b, nil }},
	OpDiv: {sym: "/", arity: 2, dyadic: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, domainError(OpDiv, msgDivZero)
		}
		return a / b, nil
	}},
	OpSqrt: {sym: "sqrt", arity: 1, monadic: func(a float64) (float64, error) {
		if !(a >= 0) {
			return 0, domainError(OpSqrt, msgSqrtNeg)
		}
		return math.Sqrt(a), nil
	}},
	OpSin: {sym: "sin", arity: 1, monadic: func(a float64) (float64, error) { return math.Sin(a), nil }},
	OpCos: {sym: "cos", arity: 1, monadic: func(a float64) (float64, error) { return math.Cos(a), nil }},
	OpLog: {sym: "log", arity: 1, monadic: func(a float64) (float64, error) {
		if !(a > 0) {
			return 0, domainError(OpLog, msgLogNonPos)
		}
		return log10(a), nil
	}},
	OpLn: {sym: "ln", arity: 1, monadic: func(a float64) (float64, error) {
		if !(a > 0) {
			return 0, domainError(OpLn, msgLogNonPos)
		}
		return ln(a), nil
	}},
}

// String returns the symbol used to name the operation.
func (op Op) String() string {
	if !op.valid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return optab[op].sym
}

// Arity returns the number of operands the operation takes, or 0 for OpNone.
func (op Op) Arity() int {
	if !op.valid() {
		return 0
	}
	return optab[op].arity
}

func (op Op) valid() bool {
	return OpNone < op && op < opCount
}

// Lookup returns the operation named by sym. Names are matched exactly.
func Lookup(sym string) (Op, bool) {
	for op := OpNone + 1; op < opCount; op++ {
		if optab[op].sym == sym {
			return op, true
		}
	}
	return OpNone, false
}

// Ops returns every operation in a fixed order: the binary arithmetic
// operations first, then the scientific functions.
func Ops() []Op {
	r := make([]Op, 0, opCount-1)
	for op := OpNone + 1; op < opCount; op++ {
		r = append(r, op)
	}
	return r
}

// logprec is the working precision of logarithms. It leaves enough guard bits
// that rounding to float64 gives exact results for exact powers of ten.
const logprec = 64

// ln computes the natural logarithm of a positive x.
func ln(x float64) float64 {
	if x == 1 {
		return 0
	}
	if math.IsNaN(x) || math.IsInf(x, 1) {
		return math.Log(x)
	}
	in := new(big.Float).SetPrec(logprec).SetFloat64(x)
	out := new(big.Float).SetPrec(logprec)
	bigfloat.Log(out, in)
	r, _ := out.Float64()
	return r
}

// log10 computes the base-10 logarithm of a positive x.
func log10(x float64) float64 {
	if x == 1 {
		return 0
	}
	if math.IsNaN(x) || math.IsInf(x, 1) {
		return math.Log10(x)
	}
	in := new(big.Float).SetPrec(logprec).SetFloat64(x)
	out := new(big.Float).SetPrec(logprec)
	bigfloat.Log(out, in)
	ten := new(big.Float).SetPrec(logprec).SetFloat64(10)
	d := new(big.Float).SetPrec(logprec)
	bigfloat.Log(d, ten)
	r, _ := out.Quo(out, d).Float64()
	return r
}

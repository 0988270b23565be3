package bracer

import (
	"math/cmplx"
	"strconv"
)

// funcKind identifies a library function. The set is closed; eval switches
// over every member.
type funcKind int8

const (
	funcNone funcKind = iota

	funcAbs
	funcAcos
	funcArg
	funcAsin
	funcAtan
	funcConj
	funcCos
	funcCosh
	funcExp
	funcImag
	funcLog
	funcNeg
	funcPow
	funcReal
	funcSin
	funcSinh
	funcSqrt
	funcTan
	funcTanh

	funcCount
)

var funcNames = [funcCount]string{
	funcNone: "",
	funcAbs:  "abs",
	funcAcos: "acos",
	funcArg:  "arg",
	funcAsin: "asin",
	funcAtan: "atan",
	funcConj: "conj",
	funcCos:  "cos",
	funcCosh: "cosh",
	funcExp:  "exp",
	funcImag: "imag",
	funcLog:  "log",
	funcNeg:  "neg",
	funcPow:  "pow",
	funcReal: "real",
	funcSin:  "sin",
	funcSinh: "sinh",
	funcSqrt: "sqrt",
	funcTan:  "tan",
	funcTanh: "tanh",
}

var funcsByName = func() map[string]funcKind {
	m := make(map[string]funcKind, funcCount-1)
	for k := funcNone + 1; k < funcCount; k++ {
		m[funcNames[k]] = k
	}
	return m
}()

func (f funcKind) String() string {
	if f <= funcNone || f >= funcCount {
		return "funcKind(" + strconv.Itoa(int(f)) + ")"
	}
	return funcNames[f]
}

// lookupFunc returns the function with the given name, or funcNone.
func lookupFunc(name string) funcKind {
	return funcsByName[name]
}

// Functions returns the names of the library functions in sorted order.
func Functions() []string {
	r := make([]string, 0, funcCount-1)
	for k := funcNone + 1; k < funcCount; k++ {
		r = append(r, funcNames[k])
	}
	return r
}

// arity is the number of operands the function consumes.
func (f funcKind) arity() int {
	if f == funcPow {
		return 2
	}
	return 1
}

// call applies a unary function to a. For pow, b is the base and a the
// exponent; b is ignored otherwise.
func (f funcKind) call(b, a complex128) complex128 {
	switch f {
	case funcAbs:
		return complex(cmplx.Abs(a), 0)
	case funcAcos:
		return cmplx.Acos(a)
	case funcArg:
		return complex(cmplx.Phase(a), 0)
	case funcAsin:
		return cmplx.Asin(a)
	case funcAtan:
		return cmplx.Atan(a)
	case funcConj:
		return cmplx.Conj(a)
	case funcCos:
		return cmplx.Cos(a)
	case funcCosh:
		return cmplx.Cosh(a)
	case funcExp:
		return cmplx.Exp(a)
	case funcImag:
		return complex(imag(a), 0)
	case funcLog:
		return cmplx.Log(a)
	case funcNeg:
		return -a
	case funcPow:
		return cmplx.Pow(b, a)
	case funcReal:
		return complex(real(a), 0)
	case funcSin:
		return cmplx.Sin(a)
	case funcSinh:
		return cmplx.Sinh(a)
	case funcSqrt:
		return cmplx.Sqrt(a)
	case funcTan:
		return cmplx.Tan(a)
	case funcTanh:
		return cmplx.Tanh(a)
	default:
		panic("bracer: invalid function " + f.String())
	}
}

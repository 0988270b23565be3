package bracer

import (
	"slices"
	"strconv"
)

// evaluate reduces a postfix sequence to a single value. If x is nil, the
// sequence must not use the variable; otherwise each use is replaced by the
// text of *x. The result of every operator and function is rounded to prec
// digits after the decimal point before it is used again. seq is not modified.
func evaluate(seq []rpnToken, x *float64, prec int) (complex128, error) {
	if len(seq) == 0 {
		return 0, emptyExpression(ErrCodeEval)
	}
	work := slices.Clone(seq)
	for i, t := range work {
		if t.kind != tokenVar {
			continue
		}
		if x == nil {
			return 0, unboundVariable()
		}
		work[i] = rpnToken{text: strconv.FormatFloat(*x, 'g', -1, 64), kind: tokenNum}
	}

	var stack []complex128
	pop := func() complex128 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return r
	}
	push := func(z complex128) error {
		r, err := round(z, prec)
		if err != nil {
			return err
		}
		stack = append(stack, r)
		return nil
	}
	for len(work) > 0 {
		t := work[len(work)-1]
		work = work[:len(work)-1]
		switch t.kind {
		case tokenNum:
			z, err := ParseComplex(t.text)
			if err != nil {
				return 0, err
			}
			stack = append(stack, z)
		case tokenOp:
			if len(stack) < 2 {
				return 0, missingOperand(t.text)
			}
			a := pop()
			b := pop()
			if err := push(binary(t.text, b, a)); err != nil {
				return 0, err
			}
		case tokenFunc:
			if len(stack) < t.fn.arity() {
				return 0, missingOperand(t.text)
			}
			a := pop()
			var b complex128
			if t.fn.arity() == 2 {
				b = pop()
			}
			if err := push(t.fn.call(b, a)); err != nil {
				return 0, err
			}
		default:
			panic("bracer: invalid postfix entry " + t.kind.String() + ":" + t.text)
		}
	}

	switch len(stack) {
	case 0:
		return 0, emptyExpression(ErrCodeEval)
	case 1:
		return stack[0], nil
	default:
		return 0, missingOperator(len(stack))
	}
}

// round rounds both parts of z to prec digits after the decimal point, giving
// exactly the value that FormatComplex shows.
func round(z complex128, prec int) (complex128, error) {
	return ParseComplex(FormatComplex(z, prec))
}

// binary computes l op r.
func binary(op string, l, r complex128) complex128 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	default:
		panic("bracer: invalid operator " + op)
	}
}

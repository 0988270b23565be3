package bracer

import (
	"slices"
	"strings"
)

// rpnToken is an entry in a postfix sequence.
type rpnToken struct {
	text string
	kind tokenKind
	// fn is the function for tokenFunc entries.
	fn funcKind
}

func (t rpnToken) String() string {
	return t.text
}

func postfix(tok lexToken) rpnToken {
	t := rpnToken{text: tok.text, kind: tok.kind}
	if tok.kind == tokenFunc {
		t.fn = lookupFunc(tok.text)
	}
	return t
}

// precedence gets the binding strength of a binary operator. Higher is more
// binding. All operators are left-associative.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		panic("bracer: invalid operator " + op)
	}
}

// toPostfix converts an infix expression to a postfix sequence using the
// shunting-yard algorithm. The sequence is built in postfix order and
// reversed once at the end, so evaluation consumes it from the back. Complex
// literals are normalized through FormatComplex at prec.
func toPostfix(src string, prec int) ([]rpnToken, error) {
	scan := lex(src)
	var (
		ops []lexToken
		out []rpnToken
	)
	top := func() lexToken {
		return ops[len(ops)-1]
	}
	pop := func() {
		out = append(out, postfix(top()))
		ops = ops[:len(ops)-1]
	}
	n := 0
	for {
		tok, ok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		n++
		switch tok.kind {
		case tokenSep:
			for len(ops) > 0 && top().kind != tokenOpen {
				pop()
			}
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for len(ops) > 0 && top().kind != tokenOpen {
				pop()
			}
			if len(ops) == 0 {
				return nil, mismatchedBracket(ErrMsgUnmatchedClose, tok.text, tok.pos)
			}
			ops = ops[:len(ops)-1]
			// A function before the bracket takes the reduced argument list.
			if len(ops) > 0 && top().kind == tokenFunc {
				pop()
			}
		case tokenNum:
			t, err := literal(tok.text, prec)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		case tokenVar:
			out = append(out, postfix(tok))
		case tokenOp:
			p := precedence(tok.text)
			for len(ops) > 0 && top().kind == tokenOp && precedence(top().text) >= p {
				pop()
			}
			ops = append(ops, tok)
		case tokenFunc:
			ops = append(ops, tok)
		default:
			return nil, unrecognizedToken(tok.text, tok.pos)
		}
	}
	if n == 0 {
		return nil, emptyExpression(ErrCodeParse)
	}
	for len(ops) > 0 {
		if t := top(); t.kind == tokenOpen {
			return nil, mismatchedBracket(ErrMsgUnmatchedOpen, t.text, t.pos)
		}
		pop()
	}
	slices.Reverse(out)
	return out, nil
}

// literal creates the postfix entry for a number token. Tokens containing the
// imaginary marker are stored in canonical formatted form.
func literal(text string, prec int) (rpnToken, error) {
	switch {
	case text == Imaginary:
		text = FormatComplex(1i, prec)
	case strings.Contains(text, Imaginary):
		z, err := ParseComplex("0+" + text)
		if err != nil {
			return rpnToken{}, err
		}
		text = FormatComplex(z, prec)
	}
	return rpnToken{text: text, kind: tokenNum}, nil
}

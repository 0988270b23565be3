package bracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"blank", " \t\r\n ", ""},
		{"spaces-around-ops", " 2 + 3 * 4 ", "2+3*4"},
		{"spaces-between-terms", "2 3", "2 3"},
		{"spaces-run", "2 \t 3", "2 3"},
		{"spaces-in-call", "sin ( 0 )", "sin(0)"},
		{"spaces-in-name", "si n(0)", "si n(0)"},
		{"leading-minus", "-3+5", "0-3+5"},
		{"leading-plus", "+3", "0+3"},
		{"leading-minus-spaced", "  - 3", "0-3"},
		{"bracket-minus", "(-3)", "(0-3)"},
		{"bracket-plus", "(+3)", "(0+3)"},
		{"bracket-minus-spaced", "( - 3)", "(0-3)"},
		{"sep-minus", "pow(22,-1)", "pow(22,0-1)"},
		{"sep-plus", "pow(22,+1)", "pow(22,0+1)"},
		{"after-func-name", "sin-1", "sin-1"},
		{"after-operator", "2*-1", "2*-1"},
		{"degree", "90°", "90*3.141592653589793/180"},
		{"degree-in-call", "sin(-90°)", "sin(0-90*3.141592653589793/180)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, prepare(c.src))
		})
	}
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []lexToken
		errcol int
	}{
		{"empty", "", nil, 0},
		{"num", "12.5", []lexToken{{text: "12.5", kind: tokenNum, pos: 1}}, 0},
		{"exp-num", "1e5", []lexToken{{text: "1e5", kind: tokenNum, pos: 1}}, 0},
		{"imag", "4I", []lexToken{{text: "4I", kind: tokenNum, pos: 1}}, 0},
		{"unit", "I", []lexToken{{text: "I", kind: tokenNum, pos: 1}}, 0},
		{"var", "var", []lexToken{{text: "var", kind: tokenVar, pos: 1}}, 0},
		{"terms", "2 3", []lexToken{
			{text: "2", kind: tokenNum, pos: 1},
			{text: "3", kind: tokenNum, pos: 3},
		}, 0},
		{"call", "sin(3+4I)", []lexToken{
			{text: "sin", kind: tokenFunc, pos: 1},
			{text: "(", kind: tokenOpen, pos: 4},
			{text: "3", kind: tokenNum, pos: 5},
			{text: "+", kind: tokenOp, pos: 6},
			{text: "4I", kind: tokenNum, pos: 7},
			{text: ")", kind: tokenClose, pos: 9},
		}, 0},
		{"args", "pow(var,2)", []lexToken{
			{text: "pow", kind: tokenFunc, pos: 1},
			{text: "(", kind: tokenOpen, pos: 4},
			{text: "var", kind: tokenVar, pos: 5},
			{text: ",", kind: tokenSep, pos: 8},
			{text: "2", kind: tokenNum, pos: 9},
			{text: ")", kind: tokenClose, pos: 10},
		}, 0},
		{"ops", "1*2/3", []lexToken{
			{text: "1", kind: tokenNum, pos: 1},
			{text: "*", kind: tokenOp, pos: 2},
			{text: "2", kind: tokenNum, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "3", kind: tokenNum, pos: 5},
		}, 0},
		{"unary", "-1", []lexToken{
			{text: "0", kind: tokenNum, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "1", kind: tokenNum, pos: 3},
		}, 0},
		{"unknown-name", "foo", nil, 1},
		{"unknown-symbol", "2+$", []lexToken{
			{text: "2", kind: tokenNum, pos: 1},
			{text: "+", kind: tokenOp, pos: 2},
		}, 3},
		{"split-exponent", "1e-5", nil, 1},
		{"boolean", "true", nil, 1},
		{"split-name", "si n(0)", nil, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := lex(c.src)
			var got []lexToken
			var err error
			for {
				var tok lexToken
				var ok bool
				tok, ok, err = scan.next()
				if err != nil || !ok {
					break
				}
				got = append(got, tok)
			}
			assert.Equal(t, c.tokens, got)
			if c.errcol == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsKind(err, UnrecognizedToken))
			col, ok := Column(err)
			require.True(t, ok)
			assert.Equal(t, c.errcol, col)
		})
	}
}

func TestLexExhausted(t *testing.T) {
	scan := lex("1")
	_, ok, err := scan.next()
	require.NoError(t, err)
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		_, ok, err = scan.next()
		assert.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]tokenKind{
		"var":      tokenVar,
		"sin":      tokenFunc,
		"pow":      tokenFunc,
		"2":        tokenNum,
		".5":       tokenNum,
		"2.5I":     tokenNum,
		"II":       tokenNum,
		"Inf":      tokenNum,
		"inf":      tokenNum,
		"nan":      tokenNum,
		"0x1p3":    tokenNum,
		"infinity": tokenNum,
		"x":        tokenNone,
		"Sin":      tokenNone,
		"and":      tokenNone,
	}
	for text, want := range cases {
		assert.Equal(t, want, classify(text), "classify(%q)", text)
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "Num", tokenNum.String())
	assert.Equal(t, "Sep", tokenSep.String())
	assert.Equal(t, "tokenKind(99)", tokenKind(99).String())
	assert.Equal(t, "Op:+@2", lexToken{text: "+", kind: tokenOp, pos: 2}.String())
}

package bracer

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zephyrtronium/bigfloat"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a real literal or a literal containing the imaginary unit.
	tokenNum
	// tokenVar is the free variable.
	tokenVar
	// tokenOp is one of the binary operators.
	tokenOp
	// tokenFunc is one of the library function names.
	tokenFunc
	// tokenOpen is an open bracket, (.
	tokenOpen
	// tokenClose is a close bracket, ).
	tokenClose
	// tokenSep is the function argument separator, ,.
	tokenSep
)

var tokenKindNames = [...]string{
	tokenNone:  "None",
	tokenNum:   "Num",
	tokenVar:   "Var",
	tokenOp:    "Op",
	tokenFunc:  "Func",
	tokenOpen:  "Open",
	tokenClose: "Close",
	tokenSep:   "Sep",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

const (
	// Operators contains the binary operator characters.
	Operators = "+-*/"
	// Separator separates function arguments.
	Separator = ","
	// Imaginary is the imaginary unit marker in literals and formatted results.
	Imaginary = "I"
	// Variable is the name of the free variable.
	Variable = "var"
	// Degree marks a value in degrees. It is rewritten as a multiplication by
	// pi/180 before tokenizing.
	Degree = "°"
)

const delimiters = Operators + Separator + "()"

// degreeFactor is the text that replaces Degree.
var degreeFactor = "*" + piText() + "/180"

// piText returns the shortest decimal text that reads back as the float64
// nearest to pi.
func piText() string {
	pi := bigfloat.Pi(new(big.Float).SetPrec(53))
	f, _ := pi.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// unaryRewrites turns a sign directly after an open bracket or separator into
// a binary operation on zero.
var unaryRewrites = strings.NewReplacer(
	"(-", "(0-",
	",-", ",0-",
	"(+", "(0+",
	",+", ",0+",
)

// prepare applies the textual rewrites that run before splitting. Whitespace
// next to a delimiter or at either end is removed; any other run of whitespace
// is kept as a single space, which ends a token without producing one.
func prepare(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	space := false
	for _, r := range src {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			space = false
			if b.Len() > 0 && !strings.ContainsRune(delimiters, r) && !endsWithDelim(b.String()) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	s := b.String()
	s = strings.ReplaceAll(s, Degree, degreeFactor)
	s = unaryRewrites.Replace(s)
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = "0" + s
	}
	return s
}

func endsWithDelim(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return strings.ContainsRune(delimiters, r)
}

type lexer struct {
	src string
	off int
	col int
}

// lex creates a lexer over the prepared form of src.
func lex(src string) *lexer {
	return &lexer{src: prepare(src), col: 1}
}

// next scans the next token. The second result is false once the input is
// exhausted. An unclassifiable token is returned along with an
// UnrecognizedToken error.
func (l *lexer) next() (lexToken, bool, error) {
	for l.off < len(l.src) && l.src[l.off] == ' ' {
		l.off++
		l.col++
	}
	if l.off >= len(l.src) {
		return lexToken{}, false, nil
	}
	tok := lexToken{pos: l.col}
	c := l.src[l.off]
	if strings.IndexByte(delimiters, c) >= 0 {
		l.off++
		l.col++
		tok.text = string(c)
		switch c {
		case '(':
			tok.kind = tokenOpen
		case ')':
			tok.kind = tokenClose
		case ',':
			tok.kind = tokenSep
		default:
			tok.kind = tokenOp
		}
		return tok, true, nil
	}
	start := l.off
	for l.off < len(l.src) {
		c := l.src[l.off]
		if c == ' ' || strings.IndexByte(delimiters, c) >= 0 {
			break
		}
		_, sz := utf8.DecodeRuneInString(l.src[l.off:])
		l.off += sz
		l.col++
	}
	tok.text = l.src[start:l.off]
	tok.kind = classify(tok.text)
	if tok.kind == tokenNone {
		return tok, true, unrecognizedToken(tok.text, tok.pos)
	}
	return tok, true, nil
}

// classify determines the kind of a token that is not a delimiter.
func classify(text string) tokenKind {
	switch {
	case text == Variable:
		return tokenVar
	case lookupFunc(text) != funcNone:
		return tokenFunc
	case strings.Contains(text, Imaginary):
		return tokenNum
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return tokenNum
	}
	return tokenNone
}

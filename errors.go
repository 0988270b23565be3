package bracer

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// ErrorKind classifies a failure to parse or evaluate an expression.
type ErrorKind string

const (
	// UnrecognizedToken is a token that is not a number, the variable, a
	// function, an operator, a bracket, or a separator. It is also reported
	// when an expression using the variable is evaluated without a value.
	UnrecognizedToken ErrorKind = "unrecognized_token"
	// MissingOperator means operands remained after evaluation, e.g. "2 3".
	MissingOperator ErrorKind = "missing_operator"
	// MissingOperand means an operator or function had too few operands.
	MissingOperand ErrorKind = "missing_operand"
	// MalformedNumber is a literal that cannot be read as a complex number.
	MalformedNumber ErrorKind = "malformed_number"
	// MismatchedBracket is a close bracket with no open bracket or the
	// reverse.
	MismatchedBracket ErrorKind = "mismatched_bracket"
	// EmptyExpression means there is nothing to parse or evaluate.
	EmptyExpression ErrorKind = "empty_expression"
)

// Error message constants.
const (
	ErrMsgUnrecognizedToken = "unrecognized token"
	ErrMsgUnboundVariable   = "expression uses " + Variable + " but no value was given"
	ErrMsgMissingOperator   = "some operator is missing"
	ErrMsgMissingOperand    = "too few operands"
	ErrMsgMalformedNumber   = "malformed number"
	ErrMsgUnmatchedClose    = "close bracket with no open bracket"
	ErrMsgUnmatchedOpen     = "open bracket with no close bracket"
	ErrMsgEmptyExpression   = "empty expression"
)

// Error code constants for categorization.
const (
	ErrCodeParse = "BRACER_PARSE"
	ErrCodeEval  = "BRACER_EVAL"
)

// Metadata keys attached to errors.
const (
	MetaKeyKind     = "kind"
	MetaKeyToken    = "token"
	MetaKeyColumn   = "column"
	MetaKeyOperands = "operands"
)

func unrecognizedToken(text string, col int) error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgUnrecognizedToken+" "+strconv.Quote(text)).
		WithMetadata(MetaKeyKind, string(UnrecognizedToken)).
		WithMetadata(MetaKeyToken, text).
		WithMetadata(MetaKeyColumn, strconv.Itoa(col))
}

func unboundVariable() error {
	return cuserr.NewValidationError(ErrCodeEval, ErrMsgUnboundVariable).
		WithMetadata(MetaKeyKind, string(UnrecognizedToken)).
		WithMetadata(MetaKeyToken, Variable)
}

func missingOperator(left int) error {
	return cuserr.NewValidationError(ErrCodeEval, ErrMsgMissingOperator).
		WithMetadata(MetaKeyKind, string(MissingOperator)).
		WithMetadata(MetaKeyOperands, strconv.Itoa(left))
}

func missingOperand(token string) error {
	return cuserr.NewValidationError(ErrCodeEval, ErrMsgMissingOperand+" for "+strconv.Quote(token)).
		WithMetadata(MetaKeyKind, string(MissingOperand)).
		WithMetadata(MetaKeyToken, token)
}

// malformedNumber reports text that is not a complex number. cause, if not
// nil, is the error from reading one of the parts.
func malformedNumber(text string, cause error) error {
	msg := ErrMsgMalformedNumber + " " + strconv.Quote(text)
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return err.
		WithMetadata(MetaKeyKind, string(MalformedNumber)).
		WithMetadata(MetaKeyToken, text)
}

func mismatchedBracket(msg, bracket string, col int) error {
	return cuserr.NewValidationError(ErrCodeParse, msg).
		WithMetadata(MetaKeyKind, string(MismatchedBracket)).
		WithMetadata(MetaKeyToken, bracket).
		WithMetadata(MetaKeyColumn, strconv.Itoa(col))
}

func emptyExpression(code string) error {
	return cuserr.NewValidationError(code, ErrMsgEmptyExpression).
		WithMetadata(MetaKeyKind, string(EmptyExpression))
}

// KindOf returns the kind of an error from this package, or the empty string
// if err is nil or not from this package.
func KindOf(err error) ErrorKind {
	var ce *cuserr.CustomError
	if !errors.As(err, &ce) {
		return ""
	}
	k, ok := ce.GetMetadata(MetaKeyKind)
	if !ok {
		return ""
	}
	return ErrorKind(k)
}

// IsKind reports whether err is an error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// Column returns the 1-based column in the prepared expression at which err
// occurred, if known.
func Column(err error) (int, bool) {
	var ce *cuserr.CustomError
	if !errors.As(err, &ce) {
		return 0, false
	}
	s, ok := ce.GetMetadata(MetaKeyColumn)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

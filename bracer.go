package bracer

import (
	"go.uber.org/zap"
)

// Log message constants.
const (
	LogMsgParserCreated = "parser created"
	LogMsgParseStart    = "starting parse"
	LogMsgParseEnd      = "parse complete"
	LogMsgParseFailed   = "parse failed"
	LogMsgEvalStart     = "starting evaluation"
	LogMsgEvalEnd       = "evaluation complete"
	LogMsgEvalFailed    = "evaluation failed"
	LogMsgPrecision     = "precision set"
)

// Log field constants.
const (
	LogFieldSource    = "source_length"
	LogFieldPostfix   = "postfix_length"
	LogFieldPrecision = "precision"
	LogFieldVariable  = "variable_bound"
	LogFieldResult    = "result"
)

// Parser parses and evaluates expressions over complex numbers. The most
// recently parsed expression is kept so that it can be evaluated any number of
// times with different variable values. It is not safe to use a Parser
// concurrently.
type Parser struct {
	rpn  []rpnToken
	prec int
	log  *zap.Logger
}

// Option is an option used when creating a Parser.
type Option interface {
	parserOption()
}

type loggeropt struct {
	l *zap.Logger
}

func (loggeropt) parserOption() {}

// Logger sets the logger that receives debug events. The default discards
// them.
func Logger(l *zap.Logger) Option {
	return loggeropt{l}
}

// New creates a Parser which formats results with prec digits after the
// decimal point.
func New(prec int, opts ...Option) *Parser {
	p := Parser{log: zap.NewNop()}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case loggeropt:
			if opt.l != nil {
				p.log = opt.l
			}
		default:
			panic("bracer: unknown option type")
		}
	}
	p.SetPrecision(prec)
	p.log.Debug(LogMsgParserCreated, zap.Int(LogFieldPrecision, p.prec))
	return &p
}

// SetPrecision sets the number of digits after the decimal point in both parts
// of formatted numbers and of intermediate results. Negative values are
// treated as zero. Changing the precision does not require parsing again.
func (p *Parser) SetPrecision(prec int) {
	if prec < 0 {
		prec = 0
	}
	p.prec = prec
	p.log.Debug(LogMsgPrecision, zap.Int(LogFieldPrecision, prec))
}

// Precision returns the number of digits after the decimal point in formatted
// numbers.
func (p *Parser) Precision() int {
	return p.prec
}

// Parse parses an expression and stores it for evaluation. If Parse returns
// an error, the previously stored expression, if any, is kept.
//
// Brackets must balance: an open bracket that is never closed is a
// MismatchedBracket error rather than being ignored.
func (p *Parser) Parse(expr string) error {
	p.log.Debug(LogMsgParseStart, zap.Int(LogFieldSource, len(expr)))
	rpn, err := toPostfix(expr, p.prec)
	if err != nil {
		p.log.Debug(LogMsgParseFailed, zap.Error(err))
		return err
	}
	p.rpn = rpn
	p.log.Debug(LogMsgParseEnd, zap.Int(LogFieldPostfix, len(rpn)))
	return nil
}

// Evaluate evaluates the parsed expression and formats the result. It is an
// UnrecognizedToken error if the expression uses the variable.
func (p *Parser) Evaluate() (string, error) {
	z, err := p.eval(nil)
	if err != nil {
		return "", err
	}
	return p.Format(z), nil
}

// EvaluateVar evaluates the parsed expression with the variable set to x and
// formats the result.
func (p *Parser) EvaluateVar(x float64) (string, error) {
	z, err := p.eval(&x)
	if err != nil {
		return "", err
	}
	return p.Format(z), nil
}

// EvaluateComplex is like Evaluate, but it returns the formatted result read
// back as a complex number, so both parts are rounded to the precision.
func (p *Parser) EvaluateComplex() (complex128, error) {
	s, err := p.Evaluate()
	if err != nil {
		return 0, err
	}
	return ParseComplex(s)
}

// EvaluateComplexVar is like EvaluateVar, but it returns the formatted result
// read back as a complex number.
func (p *Parser) EvaluateComplexVar(x float64) (complex128, error) {
	s, err := p.EvaluateVar(x)
	if err != nil {
		return 0, err
	}
	return ParseComplex(s)
}

func (p *Parser) eval(x *float64) (complex128, error) {
	p.log.Debug(LogMsgEvalStart, zap.Bool(LogFieldVariable, x != nil))
	z, err := evaluate(p.rpn, x, p.prec)
	if err != nil {
		p.log.Debug(LogMsgEvalFailed, zap.Error(err))
		return 0, err
	}
	p.log.Debug(LogMsgEvalEnd, zap.Complex128(LogFieldResult, z))
	return z, nil
}

// Format formats z with the parser's precision.
func (p *Parser) Format(z complex128) string {
	return FormatComplex(z, p.prec)
}

// RPN returns the stored postfix sequence in stored order: the last entry is
// evaluated first.
func (p *Parser) RPN() []string {
	r := make([]string, len(p.rpn))
	for i, t := range p.rpn {
		r[i] = t.text
	}
	return r
}

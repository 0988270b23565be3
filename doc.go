// Package bracer parses and evaluates math expressions over complex numbers.
//
// Expressions use the operators + - * / with the usual precedence, round
// brackets, and calls to a fixed set of functions such as sin(x) or
// pow(x, y). A literal containing I is imaginary, so "3+4I" is a complex
// number, and a value followed by ° is in degrees. The name var is a free
// variable.
//
// An expression is converted to postfix form once by Parse and can then be
// evaluated any number of times, with different values for var:
//
//	p := bracer.New(3)
//	if err := p.Parse("var*2 + 1I"); err != nil {
//		// ...
//	}
//	s, err := p.EvaluateVar(5) // "10.000 + 1.000I"
//
// Results are formatted with a fixed number of digits after the decimal point
// in both the real and imaginary parts. The result of each operation is
// rounded the same way before it is used again, so at precision 3, 1/3*3 is
// 0.999.
package bracer

package bracer

import (
	"math"
	"strconv"
	"strings"
)

// FormatComplex formats z as "<re> + <im>I" or "<re> - <im>I", with prec
// digits after the decimal point in both parts. A negative prec is treated as
// zero.
func FormatComplex(z complex128, prec int) string {
	if prec < 0 {
		prec = 0
	}
	var b strings.Builder
	b.WriteString(formatPart(real(z), prec))
	im := formatPart(math.Abs(imag(z)), prec)
	if imag(z) < 0 && !zeroText(im) {
		b.WriteString(" - ")
	} else {
		b.WriteString(" + ")
	}
	b.WriteString(im)
	b.WriteString(Imaginary)
	return b.String()
}

func formatPart(x float64, prec int) string {
	switch {
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(x, 'f', prec, 64)
	// Values that round to zero lose their sign.
	if s[0] == '-' && zeroText(s[1:]) {
		s = s[1:]
	}
	return s
}

// zeroText reports whether a formatted magnitude is all zeros.
func zeroText(s string) bool {
	return strings.Trim(s, "0.") == ""
}

// ParseComplex reads a complex number in the form written by FormatComplex.
// It also accepts a bare real part, a bare imaginary part such as "4I", "I",
// or "-I", and omitted spaces around the sign. Errors are MalformedNumber.
func ParseComplex(s string) (complex128, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, malformedNumber(s, nil)
	}
	if !strings.HasSuffix(t, Imaginary) {
		re, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, malformedNumber(s, err)
		}
		return complex(re, 0), nil
	}
	t = strings.TrimSpace(strings.TrimSuffix(t, Imaginary))
	var re float64
	if k := signIndex(t); k > 0 {
		r, err := strconv.ParseFloat(strings.TrimSpace(t[:k]), 64)
		if err != nil {
			return 0, malformedNumber(s, err)
		}
		re = r
		t = t[k:]
	}
	im, err := parseImag(strings.ReplaceAll(t, " ", ""))
	if err != nil {
		return 0, malformedNumber(s, err)
	}
	return complex(re, im), nil
}

// signIndex finds the sign separating the real and imaginary parts of t,
// which has had the imaginary marker removed. The result is -1 if t has no
// real part.
func signIndex(t string) int {
	for i := len(t) - 1; i > 0; i-- {
		if t[i] != '+' && t[i] != '-' {
			continue
		}
		j := i - 1
		for j > 0 && t[j] == ' ' {
			j--
		}
		if t[j] == 'e' || t[j] == 'E' {
			// Exponent sign.
			continue
		}
		if t[j] == ' ' || t[j] == '+' || t[j] == '-' {
			// Sign of the real part itself, or a doubled sign.
			return -1
		}
		return i
	}
	return -1
}

// parseImag reads the coefficient of the imaginary unit. An empty coefficient
// or bare sign means 1 or -1.
func parseImag(t string) (float64, error) {
	switch t {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	// strconv rejects "+NaN".
	return strconv.ParseFloat(strings.TrimPrefix(t, "+"), 64)
}

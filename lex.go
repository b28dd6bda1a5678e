package calculator

import (
	"errors"
	"strconv"
	"unicode"
)

// field is one whitespace-separated field of an expression.
type field struct {
	text string
	// pos is the 1-based rune column of the first rune of the field.
	pos int
}

func (f field) String() string {
	return f.text + "@" + strconv.Itoa(f.pos)
}

// fields splits src around runs of whitespace, recording where each field
// starts. Whitespace is as defined by unicode.IsSpace.
func fields(src string) []field {
	var v []field
	start, col, pos := -1, 0, 0
	for i, r := range src {
		col++
		if unicode.IsSpace(r) {
			if start >= 0 {
				v = append(v, field{text: src[start:i], pos: pos})
				start = -1
			}
			continue
		}
		if start < 0 {
			start, pos = i, col
		}
	}
	if start >= 0 {
		v = append(v, field{text: src[start:], pos: pos})
	}
	return v
}

// isNumber reports whether s is a decimal number: an optional sign, digits
// with an optional fraction, and an optional exponent with its own optional
// sign. There must be at least one digit before the exponent.
func isNumber(s string) bool {
	var dig, dot, e, le, ed bool
	for i, r := range s {
		switch r {
		case '+', '-':
			// A sign is part of the number only at the very start or
			// immediately following an exponent marker.
			if i != 0 && !le {
				return false
			}
			le = false
		case '.':
			if dot || e {
				return false
			}
			dot = true
		case 'e', 'E':
			if !dig || e {
				return false
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return false
		}
	}
	return dig && (!e || ed)
}

// ParseOperand parses s as a single operand with the same grammar as the
// operands of an expression. Surrounding whitespace is not allowed.
func ParseOperand(s string) (float64, error) {
	return operand(field{text: s})
}

// operand parses a field as a number. Magnitudes too large for a float64 give
// an infinity of the same sign and magnitudes too small round toward zero.
func operand(f field) (float64, error) {
	if !isNumber(f.text) {
		return 0, formatError(f.pos)
	}
	x, err := strconv.ParseFloat(f.text, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// ParseFloat already gives ±Inf or the nearest representable value.
	default:
		return 0, formatError(f.pos)
	}
	return x, nil
}

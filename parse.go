package calculator

import "strconv"

// Expr = num ' ' binop ' ' num
// num = ['+' | '-'] digits ['.' [digits]] [('e' | 'E') ['+' | '-'] digits] | ['+' | '-'] '.' digits [...]
// binop = '+' | '-' | '*' | '/'
//
// Fields are separated by any amount of whitespace. There is exactly one
// operator; "5 + 3 * 2" is not an expression.

// Expr is a parsed expression that can be evaluated any number of times.
type Expr struct {
	// Op is the binary operation.
	Op Op
	// A and B are the left and right operands.
	A, B float64
}

// Parse parses an expression of the form "a op b". Any other shape, an
// operand that is not a decimal number, or an operator other than + - * /
// gives an *Error of kind InvalidArgument with the message "Invalid
// expression format".
func Parse(src string) (*Expr, error) {
	v := fields(src)
	if len(v) != 3 {
		return nil, formatError(0)
	}
	a, err := operand(v[0])
	if err != nil {
		return nil, err
	}
	op := binop(v[1].text)
	if op == OpNone {
		return nil, formatError(v[1].pos)
	}
	b, err := operand(v[2])
	if err != nil {
		return nil, err
	}
	return &Expr{Op: op, A: a, B: b}, nil
}

// Eval evaluates the expression with the same rules as Calculate.
func (e *Expr) Eval() (float64, error) {
	return e.Op.Apply(e.A, e.B)
}

// String formats the expression with single spaces between fields.
func (e *Expr) String() string {
	return fmtnum(e.A) + " " + e.Op.String() + " " + fmtnum(e.B)
}

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// binop gets the operation for an operator field. If there is no such binary
// operator, then the result is OpNone.
func binop(text string) Op {
	switch text {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	case "/":
		return OpDiv
	default:
		return OpNone
	}
}

package calculator

// Calculate applies the operation named by name to operands. Binary
// operations take exactly two operands and unary operations exactly one.
//
// An unknown name or a wrong operand count gives an *Error of kind
// InvalidArgument. An operand outside the operation's domain, such as a zero
// divisor, gives an *Error of kind DomainError; the result is never a NaN or
// infinite stand-in for such a failure.
func Calculate(name string, operands ...float64) (float64, error) {
	op, ok := Lookup(name)
	if !ok {
		return 0, unknownOpError(name)
	}
	return op.Apply(operands...)
}

// Apply evaluates the operation on operands. Panics if op is not one of the
// defined operations.
func (op Op) Apply(operands ...float64) (float64, error) {
	if !op.valid() {
		panic("calculator: Apply on invalid operation " + op.String())
	}
	f := &optab[op]
	if len(operands) != f.arity {
		return 0, arityError(op)
	}
	if f.arity == 1 {
		return f.monadic(operands[0])
	}
	return f.dyadic(operands[0], operands[1])
}

// EvaluateExpression is a shortcut to parse and evaluate an expression of the
// form "a op b".
func EvaluateExpression(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

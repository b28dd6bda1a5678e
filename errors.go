package calculator

import "strconv"

// Kind classifies an Error.
type Kind int8

const (
	kindNone Kind = iota
	// InvalidArgument is a request the calculator cannot interpret: an
	// unknown operation, the wrong number of operands, or a malformed
	// expression.
	InvalidArgument
	// DomainError is a well-formed request whose result is mathematically
	// undefined, e.g. division by zero.
	DomainError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case DomainError:
		return "domain_error"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is the error type returned by every calculator operation. Its message
// is exactly the text in Msg, so callers may match on it, but Kind is the
// reliable way to tell failures apart.
type Error struct {
	// Kind is the class of failure.
	Kind Kind
	// Op is the operation that failed, or OpNone if the failure happened
	// before an operation was resolved.
	Op Op
	// Msg is the human-readable message.
	Msg string
	// Col is the 1-based rune column of the expression field that caused the
	// error. It is 0 for errors that are not tied to a single field.
	Col int
}

func (err *Error) Error() string {
	return err.Msg
}

// Pos returns the column of the field that caused the error, if any.
func (err *Error) Pos() int {
	return err.Col
}

// Is reports whether target is the sentinel for err's kind.
func (err *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return err.Kind == InvalidArgument
	case ErrDomain:
		return err.Kind == DomainError
	}
	return false
}

// Sentinels for use with errors.Is. Every *Error matches exactly one of them.
var (
	ErrInvalidArgument error = &Error{Kind: InvalidArgument, Msg: "invalid argument"}
	ErrDomain          error = &Error{Kind: DomainError, Msg: "argument outside domain"}
)

const (
	msgDivZero     = "Division by zero"
	msgSqrtNeg     = "Cannot calculate square root of negative number"
	msgLogNonPos   = "Cannot calculate logarithm of non-positive number"
	msgFormat      = "Invalid expression format"
	msgUnknownOpPf = "Unknown operation: "
)

func domainError(op Op, msg string) error {
	return &Error{Kind: DomainError, Op: op, Msg: msg}
}

func unknownOpError(name string) error {
	return &Error{Kind: InvalidArgument, Msg: msgUnknownOpPf + name}
}

func arityError(op Op) error {
	n := "two operands"
	if op.Arity() == 1 {
		n = "one operand"
	}
	return &Error{Kind: InvalidArgument, Op: op, Msg: "Operation " + op.String() + " requires " + n}
}

// formatError is a shortcut to create a malformed expression error at a
// column.
func formatError(col int) error {
	return &Error{Kind: InvalidArgument, Msg: msgFormat, Col: col}
}

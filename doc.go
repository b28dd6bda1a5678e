// Package calculator implements a small float64 calculator.
//
// Calculate applies one named operation to its operands: the arithmetic
// operators "+", "-", "*" and "/", and the functions "sqrt", "sin", "cos",
// "log" (base 10) and "ln". EvaluateExpression reads text like "3.14 * 2",
// exactly one operator between two numbers separated by whitespace, and
// evaluates it with the same rules.
//
// Every failure is an *Error. Its Kind tells a malformed request
// (InvalidArgument) apart from one whose result is undefined (DomainError).
// Nothing in the package holds state, so everything is safe for concurrent
// use.
package calculator

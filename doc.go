// Package smartcalc implements an arbitrary-precision integer calculator with
// variables.
//
// Expressions use + - * / and parentheses with the usual precedence, and
// operators of equal precedence group left to right, so "8-3-2" is 3.
// Division truncates toward zero. Runs of signs fold into one sign: "5---2"
// is "5-2" and "5-+-2" is "5+2". A sign where an operand is expected applies
// to that operand, as in "-5", "2*-x", or "-(1+2)". Doubled ** and // are
// errors.
//
// Parsing never builds a tree. An expression is checked for structure,
// reordered into postfix with an operator stack, and evaluated with an
// operand stack against the variable table of a Context.
//
// Every error is one of five kinds, which callers can test for with errors.Is:
// ErrInvalidIdentifier, ErrInvalidAssignment, ErrUnknownVariable,
// ErrInvalidExpression, and ErrDivisionByZero.
package smartcalc

package smartcalc

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	// ErrInvalidIdentifier is the kind of an assignment to a name that is
	// not an identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrInvalidAssignment is the kind of an assignment whose value is
	// neither an integer literal nor an identifier.
	ErrInvalidAssignment = errors.New("invalid assignment")
	// ErrUnknownVariable is the kind of a reference to a variable that has
	// not been assigned.
	ErrUnknownVariable = errors.New("unknown variable")
	// ErrInvalidExpression is the kind of any malformed expression.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrDivisionByZero is the kind of an integer division by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// NameError is an error from a lookup for a variable that is missing from the
// variable table.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "unknown variable: " + strconv.Quote(err.Name)
}

func (err *NameError) Is(target error) bool {
	return target == ErrUnknownVariable
}

// IdentifierError indicates an assignment target that is not made of Latin
// letters only.
type IdentifierError struct {
	// Name is the rejected assignment target.
	Name string
}

func (err *IdentifierError) Error() string {
	return "invalid identifier: " + strconv.Quote(err.Name)
}

func (err *IdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// AssignmentError indicates an assignment value that is neither an integer
// literal nor an identifier, optionally signed.
type AssignmentError struct {
	// Value is the rejected right-hand side.
	Value string
}

func (err *AssignmentError) Error() string {
	return "invalid assignment of " + strconv.Quote(err.Value)
}

func (err *AssignmentError) Is(target error) bool {
	return target == ErrInvalidAssignment
}

// DivisionError indicates a division by zero during evaluation.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator in a place where it is not
// allowed, e.g. ** or an operator where an operand should be. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the offending operator text.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unexpected operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Open is true if the unmatched bracket is an open bracket.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression, e.g. an
// empty line or a trailing operator.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating a token that cannot follow the previous
// one, e.g. two operands without an operator between them.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Text is the offending token.
	Text string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "malformed expression")
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// a malformed expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, counted in the
	// sign-normalized expression.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*DivisionError)(nil)
)

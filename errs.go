package polynomial

import "errors"

// ErrDivisionByZero is matched by every *DivisionByZeroError under errors.Is.
var ErrDivisionByZero = errors.New("division by zero")

// DivisionByZeroError is an error indicating a quotient whose divisor is
// zero.
type DivisionByZeroError struct {
	// Op is the operation which found the zero divisor, either "evaluate" or
	// "simplify".
	Op string
	// Expr is the quotient node. For simplify, its operands are the
	// simplified operands, so the divisor is the constant 0.
	Expr *Expr
}

func (err *DivisionByZeroError) Error() string {
	return err.Op + ": division by zero in " + err.Expr.String()
}

// Is returns whether target is ErrDivisionByZero.
func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

var _ error = (*DivisionByZeroError)(nil)

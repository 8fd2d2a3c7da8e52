// Package polynomial implements integer arithmetic expressions in one
// variable.
//
// An expression is a tree built from the variable X, integer constants of
// any size, and the operators +, -, *, and /. Trees are built with the
// constructors in this package and are never modified afterward, so the same
// tree can be displayed, evaluated at many values of X, and simplified, all
// concurrently.
//
// Division is integer division rounding toward negative infinity, so -7 / 2
// is -4. Dividing by zero is an error, reported as a *DivisionByZeroError
// from Eval, or from Simplify when both operands of a quotient fold to
// constants.
//
package polynomial

package polynomial

import (
	"math/big"
)

// Eval evaluates the expression with x substituted for the variable. All
// arithmetic is exact; division rounds toward negative infinity. If any
// divisor evaluates to zero, the result is nil and the error is a
// *DivisionByZeroError. x must not be nil and is not modified.
func (e *Expr) Eval(x *big.Int) (*big.Int, error) {
	r := new(big.Int)
	if err := e.eval(r, x); err != nil {
		return nil, err
	}
	return r, nil
}

// EvalInt is a shortcut to evaluate an expression at a machine integer.
func (e *Expr) EvalInt(x int64) (*big.Int, error) {
	return e.Eval(big.NewInt(x))
}

// eval sets r to the node's value.
func (e *Expr) eval(r, x *big.Int) error {
	switch e.kind {
	case KindVar:
		r.Set(x)
		return nil
	case KindConst:
		r.Set(e.val)
		return nil
	case KindAdd, KindSub, KindMul, KindDiv:
		// handled below
	default:
		panic("polynomial: invalid expression kind " + e.kind.String())
	}
	if err := e.left.eval(r, x); err != nil {
		return err
	}
	var v big.Int
	if err := e.right.eval(&v, x); err != nil {
		return err
	}
	switch e.kind {
	case KindAdd:
		r.Add(r, &v)
	case KindSub:
		r.Sub(r, &v)
	case KindMul:
		r.Mul(r, &v)
	case KindDiv:
		if v.Sign() == 0 {
			return &DivisionByZeroError{Op: "evaluate", Expr: e}
		}
		floorQuo(r, r, &v)
	}
	return nil
}

// floorQuo sets z to the quotient x/y rounded toward negative infinity and
// returns z. y must be nonzero. Unlike big.Int.Div, the result does not
// depend on the sign of y: 7/-2 is -4, not -3.
func floorQuo(z, x, y *big.Int) *big.Int {
	var m big.Int
	z.QuoRem(x, y, &m)
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		z.Sub(z, bigOne)
	}
	return z
}

var bigOne = big.NewInt(1)

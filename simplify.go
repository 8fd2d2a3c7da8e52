package polynomial

import "math/big"

// Simplify returns an equivalent expression with constant subexpressions
// folded and the identities
//
//	0 + a = a + 0 = a
//	0 * a = a * 0 = 0
//	1 * a = a * 1 = a
//	a - 0 = a
//	a / 1 = a
//	0 / a = 0
//
// eliminated. Operands are simplified before their operator. The result may
// share subtrees with e.
//
// Note that 0 / a simplifies to 0 even when a would evaluate to zero, so a
// simplified expression can evaluate successfully where the original
// expression would fail. If folding produces a quotient of two constants with
// a zero divisor, the result is nil and the error is a *DivisionByZeroError.
func (e *Expr) Simplify() (*Expr, error) {
	switch e.kind {
	case KindVar, KindConst:
		return e, nil
	case KindAdd, KindSub, KindMul, KindDiv:
		// handled below
	default:
		panic("polynomial: invalid expression kind " + e.kind.String())
	}
	l, err := e.left.Simplify()
	if err != nil {
		return nil, err
	}
	r, err := e.right.Simplify()
	if err != nil {
		return nil, err
	}
	folds := l.kind == KindConst && r.kind == KindConst
	switch e.kind {
	case KindAdd:
		switch {
		case folds:
			return &Expr{kind: KindConst, val: new(big.Int).Add(l.val, r.val)}, nil
		case l.isConst(0):
			return r, nil
		case r.isConst(0):
			return l, nil
		}
	case KindSub:
		switch {
		case folds:
			return &Expr{kind: KindConst, val: new(big.Int).Sub(l.val, r.val)}, nil
		case r.isConst(0):
			return l, nil
		}
	case KindMul:
		switch {
		case folds:
			return &Expr{kind: KindConst, val: new(big.Int).Mul(l.val, r.val)}, nil
		case l.isConst(0), r.isConst(0):
			return Int(0), nil
		case l.isConst(1):
			return r, nil
		case r.isConst(1):
			return l, nil
		}
	case KindDiv:
		switch {
		case folds:
			if r.val.Sign() == 0 {
				return nil, &DivisionByZeroError{Op: "simplify", Expr: Div(l, r)}
			}
			return &Expr{kind: KindConst, val: floorQuo(new(big.Int), l.val, r.val)}, nil
		case r.isConst(1):
			return l, nil
		case l.isConst(0):
			return Int(0), nil
		}
	}
	if l == e.left && r == e.right {
		// Nothing changed below, and e is immutable.
		return e, nil
	}
	return binary(e.kind, l, r), nil
}

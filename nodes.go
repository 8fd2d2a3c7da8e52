package polynomial

import (
	"math/big"
	"strings"
)

// Expr is an immutable expression tree over the variable X and integer
// constants. Exprs are created with X, Int, BigInt, Add, Sub, Mul, and Div;
// the zero value is not a valid expression. Because no operation modifies an
// Expr, it is safe to use one concurrently.
type Expr struct {
	kind Kind

	// val is the payload of a KindConst node.
	val *big.Int

	left  *Expr
	right *Expr
}

// Kind is the variant of an expression node.
type Kind int8

const (
	KindNone Kind = iota

	KindVar   // X
	KindConst // integer literal
	KindAdd   // left + right
	KindSub   // left - right
	KindMul   // left * right
	KindDiv   // floor(left / right)
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

// Var is the token used to display the variable.
const Var = "X"

// variable is shared by every variable leaf; leaves carry no state.
var variable = &Expr{kind: KindVar}

// X returns the variable.
func X() *Expr {
	return variable
}

// Int returns a constant.
func Int(v int64) *Expr {
	return &Expr{kind: KindConst, val: big.NewInt(v)}
}

// BigInt returns a constant with a copy of v.
func BigInt(v *big.Int) *Expr {
	if v == nil {
		panic("polynomial: nil value for BigInt")
	}
	return &Expr{kind: KindConst, val: new(big.Int).Set(v)}
}

// Add returns the sum l + r.
func Add(l, r *Expr) *Expr {
	return binary(KindAdd, l, r)
}

// Sub returns the difference l - r.
func Sub(l, r *Expr) *Expr {
	return binary(KindSub, l, r)
}

// Mul returns the product l * r.
func Mul(l, r *Expr) *Expr {
	return binary(KindMul, l, r)
}

// Div returns the floor quotient of l by r.
func Div(l, r *Expr) *Expr {
	return binary(KindDiv, l, r)
}

func binary(kind Kind, l, r *Expr) *Expr {
	if l == nil || r == nil {
		panic("polynomial: nil operand to " + kind.String())
	}
	return &Expr{kind: kind, left: l, right: r}
}

// Kind returns the variant of the root of e.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Left returns the left operand of a binary node, or nil for a leaf.
func (e *Expr) Left() *Expr {
	return e.left
}

// Right returns the right operand of a binary node, or nil for a leaf.
func (e *Expr) Right() *Expr {
	return e.right
}

// Value returns a copy of the value of a constant. The result is nil if e is
// not a constant.
func (e *Expr) Value() *big.Int {
	if e.kind != KindConst {
		return nil
	}
	return new(big.Int).Set(e.val)
}

// Binary returns whether e is an operator node.
func (e *Expr) Binary() bool {
	switch e.kind {
	case KindAdd, KindSub, KindMul, KindDiv:
		return true
	}
	return false
}

// Equal reports whether e and f have the same structure and constants.
func (e *Expr) Equal(f *Expr) bool {
	if e == f {
		return true
	}
	if e == nil || f == nil || e.kind != f.kind {
		return false
	}
	switch e.kind {
	case KindVar:
		return true
	case KindConst:
		return e.val.Cmp(f.val) == 0
	case KindAdd, KindSub, KindMul, KindDiv:
		return e.left.Equal(f.left) && e.right.Equal(f.right)
	default:
		panic("polynomial: invalid expression kind " + e.kind.String())
	}
}

// isConst reports whether e is the constant v.
func (e *Expr) isConst(v int64) bool {
	return e.kind == KindConst && e.val.IsInt64() && e.val.Int64() == v
}

// String formats the expression with each operator surrounded by spaces.
// Operands are parenthesized as "( expr )" according to the operator:
//
//	a + b	never
//	a * b	either operand that is a sum
//	a - b	a if it is a sum, difference, or quotient; b if it is any operator
//	a / b	either operand that is any operator
//
// Note that a difference under a product is not parenthesized, so that
// (1 - 2) * 3 is displayed as "1 - 2 * 3".
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	switch e.kind {
	case KindVar:
		b.WriteString(Var)
	case KindConst:
		b.WriteString(e.val.String())
	case KindAdd:
		e.fmtop(b, " + ")
	case KindSub:
		e.fmtop(b, " - ")
	case KindMul:
		e.fmtop(b, " * ")
	case KindDiv:
		e.fmtop(b, " / ")
	default:
		panic("polynomial: invalid expression kind " + e.kind.String() + " after writing " + b.String())
	}
}

func (e *Expr) fmtop(b *strings.Builder, op string) {
	e.left.fmtgroup(b, e.wraps(e.left, false))
	b.WriteString(op)
	e.right.fmtgroup(b, e.wraps(e.right, true))
}

func (e *Expr) fmtgroup(b *strings.Builder, paren bool) {
	if !paren {
		e.fmt(b)
		return
	}
	b.WriteString("( ")
	e.fmt(b)
	b.WriteString(" )")
}

// wraps reports whether the operand c of e is parenthesized when displayed.
// right indicates whether c is the right operand.
func (e *Expr) wraps(c *Expr, right bool) bool {
	switch e.kind {
	case KindMul:
		return c.kind == KindAdd
	case KindSub:
		if right {
			return c.Binary()
		}
		return c.kind == KindAdd || c.kind == KindSub || c.kind == KindDiv
	case KindDiv:
		return c.Binary()
	}
	return false
}

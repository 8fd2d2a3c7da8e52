package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/polynomial"
)

type sample struct {
	name string
	expr *polynomial.Expr
}

// original is 4 + 3 + X + 1 * (X * X + 1).
func original() *polynomial.Expr {
	X, I := polynomial.X, polynomial.Int
	return polynomial.Add(
		polynomial.Add(I(4), I(3)),
		polynomial.Add(X(), polynomial.Mul(I(1), polynomial.Add(polynomial.Mul(X(), X()), I(1)))),
	)
}

// mixed is 2 * X - 1 + 6 / 2.
func mixed() *polynomial.Expr {
	X, I := polynomial.X, polynomial.Int
	return polynomial.Add(polynomial.Sub(polynomial.Mul(I(2), X()), I(1)), polynomial.Div(I(6), I(2)))
}

var samples = []sample{
	{"original", original()},
	{"mixed", mixed()},
	{"sub", polynomial.Sub(polynomial.Int(10), polynomial.Int(3))},
	{"div", polynomial.Div(polynomial.Int(15), polynomial.Int(3))},
	{"add-zero", polynomial.Add(polynomial.Int(0), polynomial.X())},
	{"mul-one", polynomial.Mul(polynomial.Int(1), polynomial.Add(polynomial.Int(2), polynomial.Int(3)))},
	{"div-const", polynomial.Div(polynomial.Int(6), polynomial.Int(2))},
	{"sub-const", polynomial.Sub(polynomial.Int(5), polynomial.Int(3))},
	{"floor", polynomial.Div(polynomial.Int(-7), polynomial.Int(2))},
	{"reciprocal", polynomial.Div(polynomial.Int(1), polynomial.X())},
	{"div-zero", polynomial.Div(polynomial.Int(15), polynomial.Int(0))},
}

// lookupSamples returns the named samples in order, or all samples if names
// is empty.
func lookupSamples(names []string) ([]sample, error) {
	if len(names) == 0 {
		return samples, nil
	}
	r := make([]sample, 0, len(names))
outer:
	for _, name := range names {
		for _, s := range samples {
			if s.name == name {
				r = append(r, s)
				continue outer
			}
		}
		return nil, errors.Errorf("unknown sample %q", name)
	}
	return r, nil
}

func samplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the sample expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, s := range samples {
				fmt.Fprintf(w, "%s\t%v\n", s.name, s.expr)
			}
			return w.Flush()
		},
	}
}

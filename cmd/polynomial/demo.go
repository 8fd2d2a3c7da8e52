package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/polynomial"
)

func demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a tour of displaying, evaluating, and simplifying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo(cmd.OutOrStdout())
		},
	}
}

func demo(w io.Writer) error {
	X, I := polynomial.X, polynomial.Int
	poly := original()
	fmt.Fprintln(w, "Original polynomial:", poly)

	fmt.Fprintln(w, "\n--- Subtraction and division ---")
	fmt.Fprintln(w, "Subtraction:", polynomial.Sub(I(10), I(3)))
	fmt.Fprintln(w, "Division:", polynomial.Div(I(15), I(3)))

	fmt.Fprintln(w, "\n--- Evaluation ---")
	m := mixed()
	fmt.Fprintln(w, "Test polynomial:", m)
	r, err := m.EvalInt(4)
	if err != nil {
		return errors.Wrapf(err, "evaluating %v", m)
	}
	fmt.Fprintf(w, "Evaluation for X=4: %v\n", r)
	r, err = poly.EvalInt(2)
	if err != nil {
		return errors.Wrapf(err, "evaluating %v", poly)
	}
	fmt.Fprintf(w, "Original polynomial evaluation for X=2: %v\n", r)

	fmt.Fprintln(w, "\n--- Simplification ---")
	for _, e := range []*polynomial.Expr{
		polynomial.Add(I(0), X()),
		polynomial.Mul(I(1), polynomial.Add(I(2), I(3))),
		polynomial.Div(I(6), I(2)),
		polynomial.Sub(I(5), I(3)),
	} {
		s, err := e.Simplify()
		if err != nil {
			return errors.Wrapf(err, "simplifying %v", e)
		}
		logrus.Debugf("Simplified %v to %v", e, s)
		fmt.Fprintf(w, "%v simplifies to: %v\n", e, s)
	}
	return nil
}

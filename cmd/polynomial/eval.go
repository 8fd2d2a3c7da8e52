package main

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func evalCommand(opts *options) *cobra.Command {
	var xs bigIntsValue
	cmd := &cobra.Command{
		Use:   "eval [sample...]",
		Short: "Evaluate sample expressions",
		Long: `Evaluate sample expressions at each value of X.

Every named sample, or every sample if none are named, is evaluated at each
--x value. Values default to those in the config file, or to 2. Failed
evaluations are reported after all others have been printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := lookupSamples(args)
			if err != nil {
				return err
			}
			if !cmd.Flag("x").Changed {
				xs, err = defaultXs(opts.cfg)
				if err != nil {
					return err
				}
			}
			var result *multierror.Error
			out := cmd.OutOrStdout()
			for _, s := range ss {
				for _, x := range xs {
					logrus.Debugf("Evaluating %s (%v) at X = %v", s.name, s.expr, x)
					r, err := s.expr.Eval(x)
					if err != nil {
						logrus.Warnf("Evaluating %s at X = %v: %v", s.name, x, err)
						fmt.Fprintf(out, "%s\tX = %v\t%v\n", s.name, x, err)
						result = multierror.Append(result, errors.Wrapf(err, "sample %s at X = %v", s.name, x))
						continue
					}
					fmt.Fprintf(out, "%s\tX = %v\t%v\n", s.name, x, r)
				}
			}
			return result.ErrorOrNil()
		},
	}
	cmd.Flags().Var(&xs, "x", "Value of X (may be set multiple times)")
	return cmd
}

// defaultXs returns the values of X from the config, or 2 if it has none.
func defaultXs(cfg config) (bigIntsValue, error) {
	if len(cfg.X) == 0 {
		return bigIntsValue{big.NewInt(2)}, nil
	}
	var xs bigIntsValue
	for _, s := range cfg.X {
		if err := xs.Set(s); err != nil {
			return nil, errors.Wrapf(err, "config value for x")
		}
	}
	return xs, nil
}

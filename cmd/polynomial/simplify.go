package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func simplifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify [sample...]",
		Short: "Simplify sample expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := lookupSamples(args)
			if err != nil {
				return err
			}
			var result *multierror.Error
			out := cmd.OutOrStdout()
			for _, s := range ss {
				r, err := s.expr.Simplify()
				if err != nil {
					logrus.Warnf("Simplifying %s: %v", s.name, err)
					fmt.Fprintf(out, "%s\t%v\t%v\n", s.name, s.expr, err)
					result = multierror.Append(result, errors.Wrapf(err, "sample %s", s.name))
					continue
				}
				logrus.Debugf("Simplified %s from %v to %v", s.name, s.expr, r)
				fmt.Fprintf(out, "%s\t%v\t=> %v\n", s.name, s.expr, r)
			}
			return result.ErrorOrNil()
		},
	}
}

package main

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// bigIntsValue is a flag holding any number of integers of any size. Each use
// of the flag appends one value.
type bigIntsValue []*big.Int

func (v *bigIntsValue) String() string {
	s := make([]string, len(*v))
	for i, x := range *v {
		s[i] = x.String()
	}
	return "[" + strings.Join(s, ",") + "]"
}

func (v *bigIntsValue) Set(s string) error {
	x, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return errors.Errorf("invalid integer %q", s)
	}
	*v = append(*v, x)
	return nil
}

func (v *bigIntsValue) Type() string {
	return "int"
}

var _ pflag.Value = (*bigIntsValue)(nil)

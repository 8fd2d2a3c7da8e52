package main

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/polynomial"
)

// run executes the command line and returns its standard output and error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errs bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errs.String(), err
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polynomial.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	want := `Original polynomial: 4 + 3 + X + 1 * ( X * X + 1 )

--- Subtraction and division ---
Subtraction: 10 - 3
Division: 15 / 3

--- Evaluation ---
Test polynomial: 2 * X - 1 + 6 / 2
Evaluation for X=4: 10
Original polynomial evaluation for X=2: 14

--- Simplification ---
0 + X simplifies to: X
1 * ( 2 + 3 ) simplifies to: 5
6 / 2 simplifies to: 3
5 - 3 simplifies to: 2
`
	assert.Equal(t, want, out)
}

func TestSamples(t *testing.T) {
	out, _, err := run(t, "samples")
	require.NoError(t, err)
	for _, s := range samples {
		assert.Contains(t, out, s.name)
		assert.Contains(t, out, s.expr.String())
	}
}

func TestEval(t *testing.T) {
	for _, c := range []struct {
		name string
		args []string
		want []string
	}{
		{"default", []string{"eval", "original"}, []string{"original\tX = 2\t14\n"}},
		{"one", []string{"eval", "--x", "4", "mixed"}, []string{"mixed\tX = 4\t10\n"}},
		{
			"many",
			[]string{"eval", "--x=-1", "--x", "3", "original", "floor"},
			[]string{
				"original\tX = -1\t8\n",
				"original\tX = 3\t20\n",
				"floor\tX = -1\t-4\n",
				"floor\tX = 3\t-4\n",
			},
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			out, _, err := run(t, c.args...)
			require.NoError(t, err)
			for _, line := range c.want {
				assert.Contains(t, out, line)
			}
		})
	}
}

func TestEvalBig(t *testing.T) {
	x, ok := new(big.Int).SetString("100000000000000000000", 10)
	require.True(t, ok)
	want := new(big.Int).Mul(x, x)
	want.Add(want, x)
	want.Add(want, big.NewInt(8))
	out, _, err := run(t, "eval", "--x", x.String(), "original")
	require.NoError(t, err)
	assert.Equal(t, "original\tX = "+x.String()+"\t"+want.String()+"\n", out)
}

func TestEvalDivisionByZero(t *testing.T) {
	out, errs, err := run(t, "eval", "--x", "0", "--x", "2", "reciprocal", "original")
	require.Error(t, err)
	assert.ErrorIs(t, err, polynomial.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "sample reciprocal at X = 0")
	assert.Contains(t, out, "reciprocal\tX = 0\tevaluate: division by zero in 1 / X\n")
	assert.Contains(t, out, "reciprocal\tX = 2\t0\n")
	assert.Contains(t, out, "original\tX = 0\t8\n")
	assert.Contains(t, out, "original\tX = 2\t14\n")
	assert.Contains(t, errs, "division by zero")
}

func TestEvalAll(t *testing.T) {
	out, _, err := run(t, "eval")
	require.Error(t, err)
	assert.ErrorIs(t, err, polynomial.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "sample div-zero")
	assert.NotContains(t, err.Error(), "sample reciprocal")
	for _, s := range samples {
		assert.Contains(t, out, s.name+"\tX = 2\t")
	}
}

func TestEvalErrors(t *testing.T) {
	_, _, err := run(t, "eval", "nope")
	assert.EqualError(t, err, `unknown sample "nope"`)
	_, _, err = run(t, "eval", "--x", "1.5", "original")
	assert.Error(t, err)
}

func TestSimplify(t *testing.T) {
	out, _, err := run(t, "simplify", "add-zero", "mul-one", "div-const", "sub-const", "mixed")
	require.NoError(t, err)
	assert.Equal(t, "add-zero\t0 + X\t=> X\n"+
		"mul-one\t1 * ( 2 + 3 )\t=> 5\n"+
		"div-const\t6 / 2\t=> 3\n"+
		"sub-const\t5 - 3\t=> 2\n"+
		"mixed\t2 * X - 1 + 6 / 2\t=> 2 * X - 1 + 3\n", out)
}

func TestSimplifyDivisionByZero(t *testing.T) {
	out, _, err := run(t, "simplify", "div-zero", "sub")
	require.Error(t, err)
	assert.ErrorIs(t, err, polynomial.ErrDivisionByZero)
	assert.Contains(t, out, "div-zero\t15 / 0\tsimplify: division by zero in 15 / 0\n")
	assert.Contains(t, out, "sub\t10 - 3\t=> 7\n")
}

func TestConfig(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
x = ["3", "-2"]
`)
	out, errs, err := run(t, "--config", path, "eval", "original")
	require.NoError(t, err)
	assert.Equal(t, "original\tX = 3\t20\noriginal\tX = -2\t10\n", out)
	assert.Contains(t, errs, "Evaluating original")

	// Flags override the config.
	out, errs, err = run(t, "--config", path, "--log-level", "error", "eval", "--x", "2", "original")
	require.NoError(t, err)
	assert.Equal(t, "original\tX = 2\t14\n", out)
	assert.Empty(t, errs)
}

func TestConfigErrors(t *testing.T) {
	path := writeConfig(t, `x = ["two"]`)
	_, _, err := run(t, "--config", path, "eval", "original")
	assert.ErrorContains(t, err, "config value for x")

	path = writeConfig(t, `log_level = [`)
	_, _, err = run(t, "--config", path, "eval")
	assert.ErrorContains(t, err, "loading config file")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "samples")
	assert.Error(t, err)

	path = writeConfig(t, "colour = \"blue\"\n")
	_, errs, err := run(t, "--config", path, "samples")
	require.NoError(t, err)
	assert.Contains(t, errs, "Unknown key")
	assert.Contains(t, errs, "colour")
}

func TestLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "samples")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestBigIntsValue(t *testing.T) {
	var v bigIntsValue
	assert.Equal(t, "[]", v.String())
	require.NoError(t, v.Set("5"))
	require.NoError(t, v.Set(" -18446744073709551616 "))
	assert.Equal(t, "[5,-18446744073709551616]", v.String())
	assert.Error(t, v.Set("0x"))
	assert.Error(t, v.Set(""))
	assert.Len(t, v, 2)
}

func TestLookupSamples(t *testing.T) {
	all, err := lookupSamples(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(samples))
	ss, err := lookupSamples([]string{"div", "sub"})
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, "div", ss[0].name)
	assert.Equal(t, "sub", ss[1].name)
}

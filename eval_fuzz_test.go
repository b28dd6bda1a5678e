package calculator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzEvaluateExpression(f *testing.F) {
	f.Add("5 + 3")
	f.Add("-5 + 10")
	f.Add("10 / 0")
	f.Add("1e999 * 0")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := calculator.EvaluateExpression(s)
		if err != nil && !errors.As(err, new(*calculator.Error)) {
			t.Errorf("%q gave %#v, not *calculator.Error", s, err)
		}
	})
}

func FuzzParse(f *testing.F) {
	f.Add("3.14 * 2")
	f.Add("10 - -5")
	f.Add(".5e-3 / 2")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := calculator.Parse(s)
		if err != nil {
			return
		}
		// A parsed expression with finite operands reparses to itself.
		g, err := calculator.Parse(e.String())
		if err != nil {
			if math.IsInf(e.A, 0) || math.IsInf(e.B, 0) {
				return
			}
			t.Fatalf("%q reformatted as %q, which doesn't parse: %v", s, e.String(), err)
		}
		if *g != *e {
			t.Errorf("%q reparsed as %+v, not %+v", s, *g, *e)
		}
	})
}


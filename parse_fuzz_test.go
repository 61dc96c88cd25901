package smartcalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/smartcalc"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1Ã—2")
	f.Add("3 + 8 * ((4 + 3) * 2 + 1) - 6 / (2 + 1)")
	f.Add("-(-(a))")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := smartcalc.Parse(s)
		if err != nil {
			if !errors.Is(err, smartcalc.ErrInvalidExpression) {
				t.Errorf("%q: error %v is not an invalid expression", s, err)
			}
			var ie smartcalc.InputError
			if !errors.As(err, &ie) {
				t.Errorf("%q: error %v has no position", s, err)
			}
			return
		}
		// The postfix form of a valid expression is never empty.
		if e.String() == "" {
			t.Errorf("%q: empty postfix", s)
		}
	})
}

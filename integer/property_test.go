package integer_test

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/calebcase/bignum/integer"
)

func parameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	return parameters
}

// decimal generates canonical decimal strings of any length.
func decimal() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.NumString(),
		gen.IntRange(1, 9),
	).Map(func(vs []interface{}) string {
		negative := vs[0].(bool)
		rest := vs[1].(string)
		lead := vs[2].(int)

		s := strconv.Itoa(lead) + rest
		if negative {
			s = "-" + s
		}

		return s
	})
}

func oracle(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad oracle input: " + s)
	}

	return i
}

func TestProperties(t *testing.T) {
	properties := gopter.NewProperties(parameters())

	properties.Property("round trip", prop.ForAll(
		func(s string) bool {
			return integer.MustParse(s).String() == s
		},
		decimal(),
	))

	properties.Property("additive identity", prop.ForAll(
		func(s string) bool {
			x := integer.MustParse(s)

			return x.Add(integer.MustParse("0")).Equal(x)
		},
		decimal(),
	))

	properties.Property("additive inverse", prop.ForAll(
		func(s string) bool {
			x := integer.MustParse(s)

			return x.Add(x.Neg()).Sign() == 0 && x.Sub(x).Sign() == 0
		},
		decimal(),
	))

	properties.Property("double negation", prop.ForAll(
		func(s string) bool {
			x := integer.MustParse(s)

			return x.Neg().Neg().String() == s
		},
		decimal(),
	))

	properties.Property("add matches math/big", prop.ForAll(
		func(a, b string) bool {
			got := integer.MustParse(a).Add(integer.MustParse(b)).String()
			want := new(big.Int).Add(oracle(a), oracle(b)).String()

			return got == want
		},
		decimal(),
		decimal(),
	))

	properties.Property("sub matches math/big", prop.ForAll(
		func(a, b string) bool {
			got := integer.MustParse(a).Sub(integer.MustParse(b)).String()
			want := new(big.Int).Sub(oracle(a), oracle(b)).String()

			return got == want
		},
		decimal(),
		decimal(),
	))

	properties.Property("mul matches math/big", prop.ForAll(
		func(a, b string) bool {
			got := integer.MustParse(a).Mul(integer.MustParse(b)).String()
			want := new(big.Int).Mul(oracle(a), oracle(b)).String()

			return got == want
		},
		decimal(),
		decimal(),
	))

	properties.Property("cmp matches math/big", prop.ForAll(
		func(a, b string) bool {
			return integer.MustParse(a).Cmp(integer.MustParse(b)) == oracle(a).Cmp(oracle(b))
		},
		decimal(),
		decimal(),
	))

	properties.Property("add commutes", prop.ForAll(
		func(a, b string) bool {
			x, y := integer.MustParse(a), integer.MustParse(b)

			return x.Add(y).Equal(y.Add(x))
		},
		decimal(),
		decimal(),
	))

	properties.Property("add associates", prop.ForAll(
		func(a, b, c string) bool {
			x, y, z := integer.MustParse(a), integer.MustParse(b), integer.MustParse(c)

			return x.Add(y).Add(z).Equal(x.Add(y.Add(z)))
		},
		decimal(),
		decimal(),
		decimal(),
	))

	properties.Property("mul commutes", prop.ForAll(
		func(a, b string) bool {
			x, y := integer.MustParse(a), integer.MustParse(b)

			return x.Mul(y).Equal(y.Mul(x))
		},
		decimal(),
		decimal(),
	))

	properties.Property("normalize is idempotent", prop.ForAll(
		func(a, b string) bool {
			z := integer.MustParse(a).Mul(integer.MustParse(b))

			raw := z.Raw()
			z.Normalize()
			once := z.Raw()
			z.Normalize()

			return raw == once && once == z.Raw()
		},
		decimal(),
		decimal(),
	))

	properties.TestingRun(t)
}

func TestDivisionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Repeated subtraction is O(quotient) so the operands stay small.
	properties.Property("quotient and remainder rebuild the dividend", prop.ForAll(
		func(a, b int64) bool {
			x := integer.MustParse(strconv.FormatInt(a, 10))
			y := integer.MustParse(strconv.FormatInt(b, 10))

			q, r, err := x.QuoRem(y)
			if err != nil {
				return false
			}

			return q.Mul(y).Add(r).Equal(x) &&
				r.Sign() >= 0 &&
				r.Cmp(y) < 0 &&
				q.String() == strconv.FormatInt(a/b, 10) &&
				r.String() == strconv.FormatInt(a%b, 10)
		},
		gen.Int64Range(0, 3000),
		gen.Int64Range(1, 300),
	))

	properties.Property("factors divide evenly", prop.ForAll(
		func(a int64) bool {
			x := integer.MustParse(strconv.FormatInt(a, 10))

			fs, err := x.Factors()
			if err != nil {
				return false
			}

			want := 0
			for c := int64(2); c < a; c++ {
				if a%c == 0 {
					want++
				}
			}
			if len(fs) != want {
				return false
			}

			for _, f := range fs {
				_, r, err := x.QuoRem(f)
				if err != nil || r.Sign() != 0 {
					return false
				}
			}

			return true
		},
		gen.Int64Range(0, 150),
	))

	properties.TestingRun(t)
}

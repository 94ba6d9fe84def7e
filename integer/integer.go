package integer

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/digits"
)

// Error classes.
var (
	Error        = errs.Class("integer")
	ErrUndefined = errs.Class("undefined")
)

// Int is a signed integer of any size. The zero value is 0.
type Int struct {
	digits *digits.Sequence
}

// fromDigits builds an Int that takes ownership of s. The caller must not use
// s afterwards.
func fromDigits(s *digits.Sequence) *Int {
	return &Int{
		digits: s.Move(),
	}
}

// small returns the single digit value d.
func small(d digits.Digit) *Int {
	x := fromDigits(digits.New(0, d))
	x.Normalize()

	return x
}

// seq returns the digits of x, materializing the zero value on first use.
func (x *Int) seq() *digits.Sequence {
	if x.digits == nil {
		x.digits = &digits.Sequence{}
	}

	if x.digits.Len() == 0 {
		x.digits.AddRight(0)
	}

	return x.digits
}

// Parse reads a decimal integer with an optional leading '-'.
func Parse(s string) (x *Int, err error) {
	defer Error.WrapP(&err)

	text := s
	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	if len(text) == 0 {
		return nil, ErrUndefined.New("no digits: %q", s)
	}

	// The leading 0 keeps inputs such as "7" positive under ten's
	// complement until normalization decides whether it is needed.
	seq := digits.New(0)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return nil, ErrUndefined.New("invalid digit %q at %d: %q", c, i, s)
		}

		seq.AddRight(digits.Digit(c - '0'))
	}

	x = fromDigits(seq)
	x.Normalize()

	if negative {
		x = x.Neg()
	}

	return x, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int {
	return &Int{
		digits: x.seq().Copy(),
	}
}

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive.
func (x *Int) Sign() int {
	c := x.seq().Cursor(digits.Left)
	if right(c) > 4 {
		return -1
	}

	c.Reset(digits.Left)
	for c.HasRight() {
		if right(c) > 0 {
			return 1
		}
	}

	return 0
}

// signDigit returns the padding digit for a value of the given sign.
func signDigit(sign int) digits.Digit {
	if sign < 0 {
		return 9
	}

	return 0
}

// Normalize trims redundant leading sign digits from x in place.
func (x *Int) Normalize() {
	s := x.seq()
	sign := x.Sign()
	pad := signDigit(sign)

	trim := 0
	c := s.Cursor(digits.Left)
	for c.HasRight() {
		d := right(c)
		if d == pad {
			trim++

			continue
		}

		// Keep one sign digit if d alone would read as the other sign.
		if (sign < 0 && d <= 4) || (sign >= 0 && d > 4) {
			trim--
		}

		for ; trim > 0; trim-- {
			must(s.RemoveLeft())
		}

		return
	}

	x.digits = digits.New(pad)
}

// String returns the decimal form of x, with a leading '-' if negative.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}

	if x.Sign() < 0 {
		return "-" + x.Neg().String()
	}

	x.Normalize()

	sb := &strings.Builder{}
	c := x.seq().Cursor(digits.Left)

	first := right(c)
	if first != 0 || !c.HasRight() {
		sb.WriteByte('0' + byte(first))
	}

	for c.HasRight() {
		sb.WriteByte('0' + byte(right(c)))
	}

	return sb.String()
}

// Raw returns the stored ten's complement digits of x without
// interpretation.
func (x *Int) Raw() string {
	return x.seq().String()
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	z, err := Parse(string(text))
	if err != nil {
		return err
	}

	x.digits = z.digits.Move()

	return nil
}

// digitCount returns the number of decimal digits in |x|.
func (x *Int) digitCount() int {
	return len(strings.TrimPrefix(x.String(), "-"))
}

func right(c *digits.Cursor) digits.Digit {
	d, err := c.Right()
	must(err)

	return d
}

func left(c *digits.Cursor) digits.Digit {
	d, err := c.Left()
	must(err)

	return d
}

// must panics on errors that can only come from a broken invariant.
func must(err error) {
	if err != nil {
		panic("BUG: " + err.Error())
	}
}

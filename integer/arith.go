package integer

import (
	"github.com/calebcase/bignum/digits"
)

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	xs, ys := x.Sign(), y.Sign()

	// When both operands share a sign the sum must have it too. A sum such
	// as 3 + 3 produces the digit 6, which reads as negative without a
	// guard digit.
	force := 0
	if xs == ys {
		force = xs
	}

	n := x.seq().Len()
	if m := y.seq().Len(); m > n {
		n = m
	}

	xc := x.seq().Cursor(digits.Right)
	yc := y.seq().Cursor(digits.Right)
	sum := &digits.Sequence{}

	var carry digits.Digit
	for i := 0; i < n; i++ {
		a := signDigit(xs)
		if xc.HasLeft() {
			a = left(xc)
		}

		b := signDigit(ys)
		if yc.HasLeft() {
			b = left(yc)
		}

		d := a + b + carry
		carry = d / 10
		sum.AddLeft(d % 10)
	}

	z := fromDigits(sum)
	if force != 0 && z.Sign() != force {
		z.digits.AddLeft(signDigit(force))
	}

	z.Normalize()

	return z
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.Sign() == 0 {
		return x.Clone()
	}

	c := x.seq().Cursor(digits.Right)
	complement := &digits.Sequence{}
	for c.HasLeft() {
		complement.AddLeft(9 - left(c))
	}

	return fromDigits(complement).Add(small(1))
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// Cmp compares x and y and returns -1, 0 or +1 when x is less than, equal
// to or greater than y.
func (x *Int) Cmp(y *Int) int {
	return x.Sub(y).Sign()
}

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

// Mul returns x * y using long multiplication.
func (x *Int) Mul(y *Int) *Int {
	xs, ys := x.Sign(), y.Sign()

	a, b := x, y
	if xs < 0 {
		a = x.Neg()
	}
	if ys < 0 {
		b = y.Neg()
	}

	total := small(0)
	c := a.seq().Cursor(digits.Left)
	for c.HasRight() {
		d := right(c)

		// Shift one place before adding the next partial product.
		total.digits.AddRight(0)
		total = total.Add(partial(d, b))
	}

	if xs*ys < 0 {
		total = total.Neg()
	}

	total.Normalize()

	return total
}

// partial returns d * y for a non-negative y.
func partial(d digits.Digit, y *Int) *Int {
	c := y.seq().Cursor(digits.Right)
	p := &digits.Sequence{}

	var carry digits.Digit
	for c.HasLeft() {
		v := d*left(c) + carry
		carry = v / 10
		p.AddLeft(v % 10)
	}

	if carry > 0 {
		p.AddLeft(carry)
	}
	p.AddLeft(0)

	return fromDigits(p)
}

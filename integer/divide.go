package integer

// QuoRem returns the quotient and remainder of x / y by repeated subtraction.
// Both operands must be non-negative and y must not be zero.
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) {
	defer Error.WrapP(&err)

	switch {
	case y.Sign() == 0:
		return nil, nil, ErrUndefined.New("division by zero: %s / %s", x, y)
	case x.Sign() < 0 || y.Sign() < 0:
		return nil, nil, ErrUndefined.New("negative operand: %s / %s", x, y)
	}

	one := small(1)

	q = small(0)
	r = x.Clone()
	for r.Cmp(y) >= 0 {
		r = r.Sub(y)
		q = q.Add(one)
	}

	q.Normalize()
	r.Normalize()

	return q, r, nil
}

// Factors returns every divisor c of x with 1 < c < x, found by trial
// division. Candidates stop once they grow past roughly half the digits of x
// (a stand-in for the square root), so larger divisors of big values are not
// reported. x must be non-negative.
func (x *Int) Factors() (fs []*Int, err error) {
	defer Error.WrapP(&err)

	if x.Sign() < 0 {
		return nil, ErrUndefined.New("negative operand: factor %s", x)
	}

	limit := (x.digitCount()+1)/2 + 1
	one := small(1)

	for c := small(2); c.Cmp(x) < 0 && c.digitCount() <= limit; c = c.Add(one) {
		var r *Int
		_, r, err = x.QuoRem(c)
		if err != nil {
			return nil, err
		}

		if r.Sign() == 0 {
			fs = append(fs, c)
		}
	}

	return fs, nil
}

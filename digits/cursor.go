package digits

// Cursor is a bidirectional position between two digits of a sequence.
type Cursor struct {
	seq *Sequence

	// pos is the boundary: digits [0, pos) are on the left.
	pos int

	// last is the index of the digit most recently returned by Left or
	// Right, or -1 if none was returned since the last reset.
	last int

	generation uint64
}

func (c *Cursor) stale() bool {
	return c.generation != c.seq.generation
}

// Reset moves the cursor to the boundary of the given side and forgets the
// last visited digit.
func (c *Cursor) Reset(side Side) {
	c.generation = c.seq.generation
	c.last = -1

	if side == Left {
		c.pos = 0
	} else {
		c.pos = c.seq.n
	}
}

// HasLeft returns true if a digit is available on the left.
func (c *Cursor) HasLeft() bool {
	return !c.stale() && c.pos > 0
}

// HasRight returns true if a digit is available on the right.
func (c *Cursor) HasRight() bool {
	return !c.stale() && c.pos < c.seq.n
}

// Left moves the cursor left and returns the digit it moved past.
func (c *Cursor) Left() (d Digit, err error) {
	defer Error.WrapP(&err)

	if c.stale() {
		return 0, ErrStale.New("left")
	}

	if c.pos == 0 {
		return 0, ErrOutOfBounds.New("left: pos=%d", c.pos)
	}

	c.pos--
	c.last = c.pos

	return c.seq.at(c.pos), nil
}

// Right moves the cursor right and returns the digit it moved past.
func (c *Cursor) Right() (d Digit, err error) {
	defer Error.WrapP(&err)

	if c.stale() {
		return 0, ErrStale.New("right")
	}

	if c.pos == c.seq.n {
		return 0, ErrOutOfBounds.New("right: pos=%d len=%d", c.pos, c.seq.n)
	}

	c.last = c.pos
	c.pos++

	return c.seq.at(c.last), nil
}

// Set overwrites the digit most recently returned by Left or Right.
func (c *Cursor) Set(d Digit) (err error) {
	defer Error.WrapP(&err)

	if c.stale() {
		return ErrStale.New("set")
	}

	if c.last < 0 {
		return ErrOutOfBounds.New("set: no digit visited")
	}

	c.seq.set(c.last, d)

	return nil
}

package digits

import (
	"strings"

	"github.com/zeebo/errs"
)

// Error classes.
var (
	Error              = errs.Class("digits")
	ErrEmptyCollection = errs.Class("empty collection")
	ErrOutOfBounds     = errs.Class("out of bounds")
	ErrStale           = errs.Class("stale cursor")
)

// Digit is a single base 10 digit in the range [0, 9].
type Digit uint8

// Side selects an end of a sequence.
type Side int

// Sides
const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return "unknown"
}

// minCapacity is the smallest ring allocated on first growth.
const minCapacity = 8

// Sequence is a double ended sequence of digits backed by a ring buffer.
//
// The zero value is an empty sequence ready to use.
type Sequence struct {
	buf  []Digit
	head int
	n    int

	// generation changes on every structural change so cursors can detect
	// that their positions no longer mean anything.
	generation uint64
}

// New returns a sequence holding ds from left to right.
func New(ds ...Digit) *Sequence {
	s := &Sequence{}
	for _, d := range ds {
		s.AddRight(d)
	}

	return s
}

// index maps the logical position i (0 is leftmost) into buf.
func (s *Sequence) index(i int) int {
	return (s.head + i) % len(s.buf)
}

func (s *Sequence) at(i int) Digit {
	return s.buf[s.index(i)]
}

func (s *Sequence) set(i int, d Digit) {
	s.buf[s.index(i)] = d
}

// grow ensures there is room for one more digit.
func (s *Sequence) grow() {
	if s.n < len(s.buf) {
		return
	}

	size := len(s.buf) * 2
	if size < minCapacity {
		size = minCapacity
	}

	buf := make([]Digit, size)
	for i := 0; i < s.n; i++ {
		buf[i] = s.at(i)
	}

	s.buf = buf
	s.head = 0
}

// AddLeft inserts d as the new leftmost digit.
func (s *Sequence) AddLeft(d Digit) {
	s.grow()

	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = d
	s.n++
	s.generation++
}

// AddRight inserts d as the new rightmost digit.
func (s *Sequence) AddRight(d Digit) {
	s.grow()

	s.buf[s.index(s.n)] = d
	s.n++
	s.generation++
}

// RemoveLeft discards the leftmost digit.
func (s *Sequence) RemoveLeft() (err error) {
	defer Error.WrapP(&err)

	if s.n == 0 {
		return ErrEmptyCollection.New("remove %s", Left)
	}

	s.buf[s.head] = 0
	s.head = (s.head + 1) % len(s.buf)
	s.n--
	s.generation++

	return nil
}

// RemoveRight discards the rightmost digit.
func (s *Sequence) RemoveRight() (err error) {
	defer Error.WrapP(&err)

	if s.n == 0 {
		return ErrEmptyCollection.New("remove %s", Right)
	}

	s.set(s.n-1, 0)
	s.n--
	s.generation++

	return nil
}

// Len returns the number of digits in the sequence.
func (s *Sequence) Len() int {
	return s.n
}

// Cursor returns a cursor at the boundary of the given side. A cursor
// started on the left walks the sequence with Right and one started on the
// right walks it with Left.
func (s *Sequence) Cursor(side Side) *Cursor {
	c := &Cursor{seq: s}
	c.Reset(side)

	return c
}

// Copy returns a deep copy of the sequence.
func (s *Sequence) Copy() *Sequence {
	cp := &Sequence{}
	if s.n == 0 {
		return cp
	}

	cp.buf = make([]Digit, s.n)
	for i := 0; i < s.n; i++ {
		cp.buf[i] = s.at(i)
	}
	cp.n = s.n

	return cp
}

// Move transfers the digits of s to a new sequence and returns it. The
// receiver is left empty and its cursors become stale.
func (s *Sequence) Move() *Sequence {
	moved := &Sequence{
		buf:  s.buf,
		head: s.head,
		n:    s.n,
	}

	*s = Sequence{
		generation: s.generation + 1,
	}

	return moved
}

// Digits returns the digits from left to right.
func (s *Sequence) Digits() []Digit {
	ds := make([]Digit, s.n)
	for i := range ds {
		ds[i] = s.at(i)
	}

	return ds
}

// String returns the digits from left to right without interpretation.
func (s *Sequence) String() string {
	sb := &strings.Builder{}
	sb.Grow(s.n)

	for i := 0; i < s.n; i++ {
		sb.WriteByte('0' + byte(s.at(i)))
	}

	return sb.String()
}

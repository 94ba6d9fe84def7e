// Package integer provides arbitrary precision signed decimal integers.
//
// The magnitude of an Int is never held in a machine integer. An Int owns a
// digits.Sequence of base 10 digits and all arithmetic is done digit by digit
// over that sequence.
//
// Ten's Complement
//
// There is no sign flag. Negative values are stored in ten's complement, the
// base 10 analogue of two's complement: the digits of the magnitude are each
// replaced by their nine's complement and then one is added. The sign is read
// back from the leading digit:
//
//  | Leading Digit | Sign                                        |
//  |---------------|---------------------------------------------|
//  | 0 - 4         | zero if every digit is 0, positive otherwise |
//  | 5 - 9         | negative                                    |
//  |---------------|---------------------------------------------|
//
// A value may always be widened on the left with its sign digit (0 for
// non-negative, 9 for negative) without changing it. Addition uses this to
// align operands of different lengths.
//
// Examples
//
//  | Value | Digits | Note                                           |
//  |-------|--------|------------------------------------------------|
//  |     0 | 0      |                                                |
//  |     3 | 3      |                                                |
//  |     6 | 06     | guard 0 keeps the leading digit below 5        |
//  |    -1 | 9      |                                                |
//  |    -5 | 5      |                                                |
//  |    -6 | 94     | guard 9 keeps the leading digit above 4        |
//  |   -10 | 90     |                                                |
//  |  -123 | 877    |                                                |
//  |  1000 | 1000   |                                                |
//  |-------|--------|------------------------------------------------|
//
// Normalization
//
// Every result is normalized: redundant leading sign digits are trimmed, but
// a single guard digit is kept whenever removing it would change how the
// leading digit reads. A sequence made only of sign digits collapses to a
// single 0 or 9. Raw returns the stored digits as they are.
//
// Division
//
// QuoRem and Factors work by repeated subtraction and trial division. They
// are defined for non-negative operands only; negative operands and a zero
// divisor are reported as ErrUndefined.
package integer

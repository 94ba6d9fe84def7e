// Package digits provides a double ended sequence of base 10 digits and a
// bidirectional cursor over it.
//
// A Sequence is laid out left to right with the most significant digit on the
// left. Digits may be added or removed at either end in constant time and the
// whole sequence may be traversed in either direction with a Cursor.
//
// Cursor
//
// A cursor sits between two digits (or before the first / after the last).
// Consuming a digit moves the cursor past it:
//
//  Sequence: 1 2 3
//
//  | 1 | 2 | 3 |       Cursor(Left)   HasLeft=false HasRight=true
//  ^
//  | 1 | 2 | 3 |       Right() => 1   HasLeft=true  HasRight=true
//      ^
//  | 1 | 2 | 3 |       Cursor(Right)  HasLeft=true  HasRight=false
//              ^
//
// The digit most recently returned by Left or Right may be overwritten with
// Set. Overwriting a digit does not change the shape of the sequence and so
// does not invalidate any cursor.
//
// Adding, removing or moving digits changes the shape of the sequence. Every
// cursor created before the change becomes stale: HasLeft and HasRight report
// false and Left, Right and Set fail with ErrStale until the cursor is Reset.
//
// Ownership
//
// Copy is the only way to obtain an independent duplicate of a sequence. Move
// hands the storage of a sequence to a new owner and leaves the old handle
// empty, so a sequence built by one value can be given to another without
// aliasing.
package digits

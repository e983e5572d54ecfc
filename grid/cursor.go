// SPDX-License-Identifier: MIT

// Package grid - Cursor: lazy, finite, double-ended sequences.
//
// Purpose:
//   - Every iteration shape in this package is a window [front, back) over a
//     known-length index range plus a projection at(i). Nothing is produced
//     until the consumer pulls.
//   - Reversal is free: the window is consumed from the back, or Rev() mirrors
//     the projection, so backward order is the exact mirror of forward order.
//   - Restartable: grid methods return a fresh Cursor per call, and All/Backward
//     walk a private copy of the window.
//
// Complexity quicksheet:
//   - Next/NextBack/Len: O(1); Collect: O(n); All/Backward: O(1) to create.

package grid

import "iter"

// Cursor is a double-ended, single-consumer sequence of n values.
// The zero value is an empty cursor.
type Cursor[T any] struct {
	front int         // next index yielded by Next
	back  int         // one past the next index yielded by NextBack
	at    func(int) T // projection from position to value
}

// newCursor creates a cursor over positions [0, n) projected through at.
func newCursor[T any](n int, at func(int) T) Cursor[T] {
	if n < 0 {
		n = 0
	}

	return Cursor[T]{front: 0, back: n, at: at}
}

// Len returns the number of values not yet consumed from either end.
// Complexity: O(1).
func (c *Cursor[T]) Len() int { return c.back - c.front }

// Next yields the front value and advances, or reports false when exhausted.
// Complexity: O(1) plus the cost of the projection.
func (c *Cursor[T]) Next() (T, bool) {
	if c.front >= c.back {
		var zero T
		return zero, false
	}
	v := c.at(c.front)
	c.front++

	return v, true
}

// NextBack yields the back value and retreats, or reports false when exhausted.
// Next and NextBack meet in the middle; no value is produced twice.
func (c *Cursor[T]) NextBack() (T, bool) {
	if c.front >= c.back {
		var zero T
		return zero, false
	}
	c.back--

	return c.at(c.back), true
}

// Rev returns a cursor over the remaining values in reverse order.
// The receiver is not consumed.
func (c Cursor[T]) Rev() Cursor[T] {
	n := c.back - c.front
	front, at := c.front, c.at

	return newCursor(n, func(i int) T { return at(front + n - 1 - i) })
}

// All returns a range-over-func sequence of the remaining values, front to back.
// Iterating it does not consume the receiver; each range starts afresh.
func (c Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := c.front; i < c.back; i++ {
			if !yield(c.at(i)) {
				return
			}
		}
	}
}

// Backward is All in reverse.
func (c Cursor[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := c.back - 1; i >= c.front; i-- {
			if !yield(c.at(i)) {
				return
			}
		}
	}
}

// Enumerate pairs each remaining value with its 0-based position in the
// remaining window.
func (c Cursor[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := c.front; i < c.back; i++ {
			if !yield(i-c.front, c.at(i)) {
				return
			}
		}
	}
}

// Collect materializes the remaining values into a fresh slice.
// The receiver is not consumed.
func (c Cursor[T]) Collect() []T {
	out := make([]T, 0, c.back-c.front)
	for i := c.front; i < c.back; i++ {
		out = append(out, c.at(i))
	}

	return out
}

// SPDX-License-Identifier: MIT

// Package grid: closed error taxonomy.
// Every fallible operation in this package returns a *Error whose Kind is one
// of the four values below. Callers branch on kind with errors.Is against the
// sentinels, or extract the offending coordinates/index with errors.As.
// No exported method panics on caller input except the Must* accessors.

package grid

import (
	"errors"
	"fmt"
)

// Kind classifies a grid failure. The set is closed.
type Kind uint8

const (
	// KindIndicesOutOfBounds: a (row, column) pair failed the bounds check.
	KindIndicesOutOfBounds Kind = iota + 1

	// KindIndexOutOfBounds: a linear index (row-major or column-major), or a
	// row/column insert/remove position, failed the bounds check.
	KindIndexOutOfBounds

	// KindDimensionMismatch: supplied rows/columns/flat buffer disagree with
	// the declared or inferred dimensions.
	KindDimensionMismatch

	// KindNotEnoughElements: a lazily produced sequence ran dry before the
	// grid was full.
	KindNotEnoughElements
)

// Sentinels, one per Kind. *Error unwraps to exactly one of them.
// Every message is prefixed with "grid: " for grep-ability.
var (
	// ErrIndicesOutOfBounds matches KindIndicesOutOfBounds.
	ErrIndicesOutOfBounds = errors.New("grid: indices out of bounds")

	// ErrIndexOutOfBounds matches KindIndexOutOfBounds.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

	// ErrDimensionMismatch matches KindDimensionMismatch.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNotEnoughElements matches KindNotEnoughElements.
	ErrNotEnoughElements = errors.New("grid: not enough elements")
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindIndicesOutOfBounds:
		return "IndicesOutOfBounds"
	case KindIndexOutOfBounds:
		return "IndexOutOfBounds"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindNotEnoughElements:
		return "NotEnoughElements"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// sentinel maps a Kind to its package-level sentinel.
func (k Kind) sentinel() error {
	switch k {
	case KindIndicesOutOfBounds:
		return ErrIndicesOutOfBounds
	case KindIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case KindDimensionMismatch:
		return ErrDimensionMismatch
	case KindNotEnoughElements:
		return ErrNotEnoughElements
	default:
		return nil
	}
}

// Error is the tagged failure value returned by every fallible grid operation.
//   - Op names the failing method ("Grid.Get", "FromRows", ...).
//   - Row/Column are meaningful only for KindIndicesOutOfBounds.
//   - Index is meaningful only for KindIndexOutOfBounds.
type Error struct {
	Op     string // method tag, see ctx* constants
	Kind   Kind   // closed classification
	Row    int    // offending row (IndicesOutOfBounds)
	Column int    // offending column (IndicesOutOfBounds)
	Index  int    // offending linear index or position (IndexOutOfBounds)
}

// Error renders "grid: <Op>(<payload>): <kind message>".
func (e *Error) Error() string {
	msg := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	switch e.Kind {
	case KindIndicesOutOfBounds:
		return fmt.Sprintf("%s(%d,%d): %s", e.Op, e.Row, e.Column, msg)
	case KindIndexOutOfBounds:
		return fmt.Sprintf("%s(%d): %s", e.Op, e.Index, msg)
	default:
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
}

// Unwrap exposes the per-kind sentinel so errors.Is works without type checks.
func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// ---------- constructors used across the package ----------

// indicesErr builds an IndicesOutOfBounds failure for (row, col).
func indicesErr(op string, row, col int) error {
	return &Error{Op: op, Kind: KindIndicesOutOfBounds, Row: row, Column: col}
}

// indexErr builds an IndexOutOfBounds failure for a linear index or position.
func indexErr(op string, index int) error {
	return &Error{Op: op, Kind: KindIndexOutOfBounds, Index: index}
}

// dimensionErr builds a DimensionMismatch failure.
func dimensionErr(op string) error {
	return &Error{Op: op, Kind: KindDimensionMismatch}
}

// notEnoughErr builds a NotEnoughElements failure.
func notEnoughErr(op string) error {
	return &Error{Op: op, Kind: KindNotEnoughElements}
}

// KindOf reports the Kind carried by err, or 0 when err is not a grid failure.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}

	return 0
}

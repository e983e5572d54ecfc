// SPDX-License-Identifier: MIT

// Package grid - persisted representation.
//
// A grid persists as exactly three fields {buffer, num_rows, num_columns} and
// nothing else. Encoders: encoding/json, gopkg.in/yaml.v3,
// github.com/fxamacker/cbor/v2. Every decoder goes through FromRecord, so a
// record violating len(buffer) == num_rows*num_columns is rejected before the
// receiver is touched.

package grid

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Record is the wire form of a Grid. Buffer is row-major.
type Record[T any] struct {
	Buffer     []T `json:"buffer" yaml:"buffer" cbor:"buffer"`
	NumRows    int `json:"num_rows" yaml:"num_rows" cbor:"num_rows"`
	NumColumns int `json:"num_columns" yaml:"num_columns" cbor:"num_columns"`
}

// Compile-time interface checks.
var (
	_ json.Marshaler   = (*Grid[int])(nil)
	_ json.Unmarshaler = (*Grid[int])(nil)
	_ yaml.Marshaler   = (*Grid[int])(nil)
	_ yaml.Unmarshaler = (*Grid[int])(nil)
	_ cbor.Marshaler   = (*Grid[int])(nil)
	_ cbor.Unmarshaler = (*Grid[int])(nil)
)

// Record snapshots the grid into its wire form (buffer is copied).
func (g *Grid[T]) Record() Record[T] {
	return Record[T]{Buffer: g.AsRowMajor(), NumRows: g.rows, NumColumns: g.cols}
}

// FromRecord validates rec and builds a grid from it.
//
// Errors:
//   - ErrDimensionMismatch when a dimension is negative, rows*cols overflows,
//     or len(Buffer) != NumRows*NumColumns.
func FromRecord[T any](rec Record[T]) (*Grid[T], error) {
	rows, cols := rec.NumRows, rec.NumColumns
	if !checkDims(rows, cols) || len(rec.Buffer) != rows*cols {
		return nil, dimensionErr(ctxFromRecord)
	}
	buf := make([]T, len(rec.Buffer))
	copy(buf, rec.Buffer)

	return &Grid[T]{buf: buf, rows: rows, cols: cols}, nil
}

// replace swaps in a validated record; shared by every decoder.
func (g *Grid[T]) replace(rec Record[T]) error {
	ng, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*g = *ng

	return nil
}

// MarshalJSON implements json.Marshaler.
func (g *Grid[T]) MarshalJSON() ([]byte, error) { return json.Marshal(g.Record()) }

// UnmarshalJSON implements json.Unmarshaler.
func (g *Grid[T]) UnmarshalJSON(data []byte) error {
	var rec Record[T]
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	return g.replace(rec)
}

// MarshalYAML implements yaml.Marshaler.
func (g *Grid[T]) MarshalYAML() (interface{}, error) { return g.Record(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Grid[T]) UnmarshalYAML(value *yaml.Node) error {
	var rec Record[T]
	if err := value.Decode(&rec); err != nil {
		return err
	}

	return g.replace(rec)
}

// MarshalCBOR implements cbor.Marshaler.
func (g *Grid[T]) MarshalCBOR() ([]byte, error) { return cbor.Marshal(g.Record()) }

// UnmarshalCBOR implements cbor.Unmarshaler.
func (g *Grid[T]) UnmarshalCBOR(data []byte) error {
	var rec Record[T]
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return err
	}

	return g.replace(rec)
}

// Package grid provides Grid[T], a dynamically sized, rectangular, dense
// two-dimensional container backed by one contiguous row-major buffer.
//
// What & Why:
//
//	A [][]T allocates every row separately and cannot stop rows from drifting
//	to different lengths. Grid keeps rows*cols elements in a single slice, so
//	every access is O(1) offset arithmetic and the shape can never go jagged.
//	Typical callers are image grids, game boards and small dense tables.
//
// Creating a Grid:
//
//   - FromRows / FromColumns: equally sized rows or columns.
//   - FromRowMajor / FromColumnMajor: a flat slice plus dimensions.
//   - FilledWith: one value everywhere. New: zero values.
//   - FilledByRowMajor / FilledByColumnMajor: a generator called once per cell,
//     in the named order.
//   - FromSeqRowMajor / FromSeqColumnMajor: an iter.Seq of any length; only
//     the first rows*cols items are pulled.
//   - FromRecord and the JSON/YAML/CBOR decoders: a persisted record.
//
// Accessing data:
//
//   - Get/GetMut/Set by (row, column); GetRowMajor/… and GetColumnMajor/… by
//     one linear index. All return a *Error instead of panicking.
//   - MustGet/MustGetMut panic on out-of-bounds access by contract.
//
// Iterating:
//
//	Every iteration method returns a fresh Cursor: lazy, finite, double-ended
//	(Next/NextBack/Rev) and rangeable (All/Backward). Shapes: all elements,
//	one row or column, all rows or columns, coordinate sequences and
//	enumerated cells, each in row-major or column-major order where it makes
//	sense, by value or by pointer (*Mut).
//
// Changing shape:
//
//	InsertRow, InsertRows, AppendRows, RemoveRow, RemoveRows splice whole rows;
//	InsertColumn re-flattens the buffer and is O(rows*cols).
//
// Errors:
//
//	Every failure is a *Error of one Kind: IndicesOutOfBounds (row, column),
//	IndexOutOfBounds (index), DimensionMismatch, NotEnoughElements. Match with
//	errors.Is against ErrIndicesOutOfBounds, ErrIndexOutOfBounds,
//	ErrDimensionMismatch, ErrNotEnoughElements.
//
// Complexity:
//
//	Queries and single-cell access O(1). Row insert/remove O(elements after the
//	splice point). Column insert and column-major conversions O(rows*cols).
package grid

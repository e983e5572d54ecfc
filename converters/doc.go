// SPDX-License-Identifier: MIT

// Package converters moves numeric grids in and out of gonum's dense matrices.
//
// What:
//
//   - ToDense copies a *grid.Grid[float64] into a freshly allocated *mat.Dense.
//   - FromMatrix reads any mat.Matrix (Dense, transposes, views) into a grid.
//
// Both directions copy; neither side aliases the other's storage. No algebra
// is performed here.
//
// Errors:
//
//   - ErrEmptyGrid: gonum rejects zero-length dimensions, so a grid with no
//     rows or no columns cannot become a Dense.
package converters

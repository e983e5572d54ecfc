// SPDX-License-Identifier: MIT

package converters

import "errors"

// ErrEmptyGrid indicates the source grid has no rows or no columns.
var ErrEmptyGrid = errors.New("converters: grid must have at least one row and one column")

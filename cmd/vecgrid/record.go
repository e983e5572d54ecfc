// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/katalvlaran/vecgrid/grid"
	"github.com/katalvlaran/vecgrid/internal/config"
	"gopkg.in/yaml.v3"
)

// errUnknownExt is returned for record files with an unsupported extension.
var errUnknownExt = errors.New("unsupported record extension (want .json, .yaml, .yml or .cbor)")

// flat returns the buffer in the requested order.
func flat[T any](g *grid.Grid[T], order grid.Order) []T {
	if order == grid.ColumnMajor {
		return g.AsColumnMajor()
	}

	return g.AsRowMajor()
}

// writeGrid prints g to w in the given format.
// Text output is the row listing followed by the flat buffer in order.
func writeGrid[T any](w io.Writer, g *grid.Grid[T], format string, order grid.Order) error {
	switch format {
	case config.FormatJSON:
		data, err := json.Marshal(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatYAML:
		data, err := yaml.Marshal(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n%s", data)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s%s: %v\n\n", g, order, flat(g, order))
		return err
	}
}

// recordCodec picks marshal/unmarshal functions by file extension.
func recordCodec(path string) (func(any) ([]byte, error), func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Marshal, json.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Marshal, yaml.Unmarshal, nil
	case ".cbor":
		return cbor.Marshal, cbor.Unmarshal, nil
	default:
		return nil, nil, fmt.Errorf("%s: %w", path, errUnknownExt)
	}
}

// saveRecord writes g's record to path.
func saveRecord[T any](path string, g *grid.Grid[T]) error {
	marshal, _, err := recordCodec(path)
	if err != nil {
		return err
	}
	data, err := marshal(g)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

// loadRecord reads and validates a record from path.
func loadRecord[T any](path string) (*grid.Grid[T], error) {
	_, unmarshal, err := recordCodec(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	var g grid.Grid[T]
	if err := unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("invalid record %s: %w", path, err)
	}

	return &g, nil
}

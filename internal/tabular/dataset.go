// Package tabular loads flat input files (CSV, XLSX) into an in-memory dataset
// keyed by the header row.
package tabular

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrRowWidth is returned when a data row has a different number of cells than the header.
	ErrRowWidth = errors.New("row width does not match header")
	// ErrEmptyHeader is returned when a file has no header row or a blank column name.
	ErrEmptyHeader = errors.New("missing header")
	// ErrUnsupportedFormat is returned for file extensions with no reader.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Dataset is a header plus rows of raw cell text. A nil cell is an empty value
// and is written to the store as NULL.
type Dataset struct {
	Columns []string
	Rows    [][]*string
}

// Options tunes how files are read.
type Options struct {
	// Sheet selects the XLSX worksheet; empty means the first sheet.
	Sheet string
}

// Load reads the file at path, picking the reader from its extension.
func Load(path string, opts Options) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path, opts.Sheet)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Dedup removes rows equal in every column, keeping the first occurrence in order.
// It returns the number of rows dropped.
func (d *Dataset) Dedup() int {
	seen := make(map[string]struct{}, len(d.Rows))
	kept := d.Rows[:0]
	for _, row := range d.Rows {
		key := rowKey(row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	dropped := len(d.Rows) - len(kept)
	d.Rows = kept
	return dropped
}

// Values returns row i as driver arguments in column order; empty cells are nil.
func (d *Dataset) Values(i int) []interface{} {
	row := d.Rows[i]
	vals := make([]interface{}, len(row))
	for j, cell := range row {
		if cell != nil {
			vals[j] = *cell
		}
	}
	return vals
}

// rowKey encodes a row so that NULL and "" never collide and cell boundaries stay unambiguous.
func rowKey(row []*string) string {
	var b strings.Builder
	for _, cell := range row {
		if cell == nil {
			b.WriteString("\x00N")
			continue
		}
		fmt.Fprintf(&b, "\x00%d:%s", len(*cell), *cell)
	}
	return b.String()
}

func newDataset(header []string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}
	cols := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyHeader)
		}
		cols[i] = h
	}
	return &Dataset{Columns: cols}, nil
}

// appendRow converts raw cells; blank cells become nil.
func (d *Dataset) appendRow(line int, cells []string) error {
	if len(cells) != len(d.Columns) {
		return fmt.Errorf("line %d: got %d cells, header has %d: %w",
			line, len(cells), len(d.Columns), ErrRowWidth)
	}
	row := make([]*string, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		v := c
		row[i] = &v
	}
	d.Rows = append(d.Rows, row)
	return nil
}

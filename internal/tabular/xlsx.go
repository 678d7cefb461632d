package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a worksheet whose first row is the header.
// Short rows are padded with empty cells; excelize trims trailing blanks.
func LoadXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read sheet %q: %w", path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyHeader)
	}

	ds, err := newDataset(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i := 1; i < len(rows); i++ {
		cells := rows[i]
		if len(cells) == 0 {
			continue
		}
		if len(cells) < len(ds.Columns) {
			padded := make([]string, len(ds.Columns))
			copy(padded, cells)
			cells = padded
		}
		if err := ds.appendRow(i+1, cells); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return ds, nil
}

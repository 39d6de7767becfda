package property

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a property dataset from the first sheet of an Excel workbook.
// The first row must be a header; column names match the CSV loader.
func LoadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("property: open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("property: workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("property: read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return NewDataset(nil), nil
	}

	cols := columnIndex(rows[0])
	var properties []Property
	for _, row := range rows[1:] {
		p, ok := rowToProperty(row, cols)
		if !ok {
			continue
		}
		properties = append(properties, p)
	}
	return NewDataset(properties), nil
}

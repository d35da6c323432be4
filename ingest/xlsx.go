package ingest

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

func readXLSX(path, sheet string) (string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, errNoSheets
	}
	if len(sheet) == 0 {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return "", nil, fmt.Errorf("sheet %q not found, available: %v", sheet, sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}
	return sheet, rows, nil
}

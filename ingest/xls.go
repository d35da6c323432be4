package ingest

import (
	"fmt"

	"github.com/extrame/xls"
)

func readXLS(path, sheet string) (string, [][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return "", nil, fmt.Errorf("failed to open xls file: %w", err)
	}
	if wb.NumSheets() == 0 {
		return "", nil, errNoSheets
	}

	var ws *xls.WorkSheet
	if len(sheet) == 0 {
		ws = wb.GetSheet(0)
	} else {
		names := make([]string, 0, wb.NumSheets())
		for i := range wb.NumSheets() {
			s := wb.GetSheet(i)
			if s == nil {
				continue
			}
			if s.Name == sheet {
				ws = s
				break
			}
			names = append(names, s.Name)
		}
		if ws == nil {
			return "", nil, fmt.Errorf("sheet %q not found, available: %v", sheet, names)
		}
	}
	if ws == nil {
		return "", nil, errNoSheets
	}

	rows := make([][]string, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return ws.Name, rows, nil
}

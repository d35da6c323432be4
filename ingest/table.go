// Package ingest reads tabular sources (XLSX, legacy XLS, CSV) into a
// normalized in-memory table: header row plus data rows of trimmed, NFC
// normalized strings. Nothing downstream ever sees a missing cell.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"issuedeck/common"
)

// Table is the normalized content of a single sheet.
type Table struct {
	// base name of the source file
	Name  string
	Sheet string
	Kind  common.SourceKind
	// unique, non-empty
	Columns []string
	// every row has exactly len(Columns) cells, blank rows are dropped
	Rows [][]string
}

// Row returns named view of a single row.
func (t *Table) Row(i int) map[string]string {
	m := make(map[string]string, len(t.Columns))
	for j, c := range t.Columns {
		m[c] = t.Rows[i][j]
	}
	return m
}

// HasColumn reports whether header has requested column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

type Options struct {
	// sheet name, empty - first sheet
	Sheet string
	// CSV character set label, empty - detect
	Encoding string
}

var errNoSheets = errors.New("no sheets found")

// Load reads tabular source. Kind is detected by content with file extension
// as fallback.
func Load(ctx context.Context, path string, opts Options, log *zap.Logger) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := Detect(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSourceUnavailable, err)
	}
	log.Debug("Reading source", zap.String("path", path), zap.Stringer("kind", kind))

	var (
		sheet string
		raw   [][]string
	)
	switch kind {
	case common.SourceKindXlsx:
		sheet, raw, err = readXLSX(path, opts.Sheet)
	case common.SourceKindXls:
		sheet, raw, err = readXLS(path, opts.Sheet)
	case common.SourceKindCsv:
		raw, err = readCSV(path, opts.Encoding)
	default:
		err = fmt.Errorf("%s is not a tabular source", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read %s: %w", common.ErrSourceUnavailable, path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := build(raw)
	t.Name = filepath.Base(path)
	t.Sheet = sheet
	t.Kind = kind

	log.Debug("Source loaded",
		zap.String("sheet", t.Sheet),
		zap.Int("columns", len(t.Columns)),
		zap.Int("rows", len(t.Rows)))
	return t, nil
}

// NormalizeCell trims surrounding whitespace and brings text to NFC so
// visually identical category names compare equal.
func NormalizeCell(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// build turns raw cells into table. First non-blank row is the header.
func build(raw [][]string) *Table {
	t := &Table{}

	var header []string
	width := 0
	for _, r := range raw {
		row := make([]string, len(r))
		blank := true
		for i, c := range r {
			row[i] = NormalizeCell(c)
			if len(row[i]) > 0 {
				blank = false
			}
		}
		if blank {
			continue
		}
		if header == nil {
			header = row
			width = len(row)
			continue
		}
		width = max(width, len(row))
		t.Rows = append(t.Rows, row)
	}

	t.Columns = columnNames(header, width)
	for i, row := range t.Rows {
		if len(row) < width {
			t.Rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
	return t
}

// columnNames makes header usable as keys: blank names become Unnamed_<i>,
// repeated names get .1, .2 suffixes.
func columnNames(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)
	dups := make(map[string]int)
	for i := range width {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if len(name) == 0 {
			name = "Unnamed_" + strconv.Itoa(i)
		}
		if used[name] {
			base := name
			for used[name] {
				dups[base]++
				name = base + "." + strconv.Itoa(dups[base])
			}
		}
		used[name] = true
		names[i] = name
	}
	return names
}

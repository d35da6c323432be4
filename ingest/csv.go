package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

func readCSV(path, encoding string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader
	if len(encoding) > 0 {
		r, err = charset.NewReaderLabel(encoding, f)
	} else {
		// spreadsheet exports are either UTF-8 (with or without BOM) or in
		// local code page
		r, err = charset.NewReader(f, "text/csv")
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}

	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && string(b) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse csv: %w", err)
	}
	return rows, nil
}

// Package layout decides which records share a page and what each page says.
package layout

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"issuedeck/common"
	"issuedeck/dataset"
)

// Entry is a record with its sequence number. Numbers are assigned once, in
// category order, before pages are split.
type Entry struct {
	Record dataset.Record
	Seq    int
}

// Page is one unit of output.
type Page struct {
	Category string
	// 1-based
	Index int
	Total int
	// never empty
	Entries []Entry
	// page holds single record which was too long to share
	Isolated bool
}

// Label is page title: category with "(i/total)" suffix when category spans
// several pages.
func (p Page) Label() string {
	if p.Total <= 1 {
		return p.Category
	}
	return p.Category + " (" + strconv.Itoa(p.Index) + "/" + strconv.Itoa(p.Total) + ")"
}

// ContentLength measures content in characters, not bytes.
func ContentLength(s string) int {
	return utf8.RuneCountInString(s)
}

// Number assigns consecutive sequence numbers starting with start.
func Number(records []dataset.Record, start int) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{Record: r, Seq: start + i}
	}
	return entries
}

// Paginate splits category entries into pages. Entries with content longer
// than maxInlineLength get a page of their own, others are packed up to
// itemsPerPage on a page in original order. maxInlineLength <= 0 disables
// isolation. No entries - no pages.
func Paginate(category string, entries []Entry, itemsPerPage, maxInlineLength int) ([]Page, error) {
	if itemsPerPage <= 0 {
		return nil, fmt.Errorf("%w: items per page must be positive, got %d", common.ErrInvalidConfiguration, itemsPerPage)
	}

	var (
		pages  []Page
		buffer []Entry
	)
	flush := func(isolated bool) {
		if len(buffer) == 0 {
			return
		}
		pages = append(pages, Page{Category: category, Entries: buffer, Isolated: isolated})
		buffer = nil
	}

	for _, e := range entries {
		if maxInlineLength > 0 && ContentLength(e.Record.Content) > maxInlineLength {
			flush(false)
			buffer = []Entry{e}
			flush(true)
			continue
		}
		buffer = append(buffer, e)
		if len(buffer) == itemsPerPage {
			flush(false)
		}
	}
	flush(false)

	for i := range pages {
		pages[i].Index = i + 1
		pages[i].Total = len(pages)
	}
	return pages, nil
}

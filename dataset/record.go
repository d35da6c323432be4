// Package dataset holds category-indexed model of the issue list and the
// rules keeping groups, statistics and totals consistent with each other.
package dataset

import (
	"encoding/json"
	"strconv"
)

// Record is a single row of the source. Fields keep every source column,
// including the ones Content and Category were taken from.
type Record struct {
	Content  string
	Category string
	Fields   map[string]string
}

// NewRecord makes record out of named row, content is taken from contentColumn.
// Category is decided later by the Categorizer.
func NewRecord(fields map[string]string, contentColumn string) Record {
	if fields == nil {
		fields = map[string]string{}
	}
	return Record{Content: fields[contentColumn], Fields: fields}
}

// Field returns value of named field, missing fields are empty.
func (r Record) Field(name string) string {
	return r.Fields[name]
}

// MarshalJSON writes record the way rows are stored in snapshot: as a flat
// object of source columns.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Fields)
}

// UnmarshalJSON accepts any scalar values, hand edited snapshots and older
// tools write numbers and nulls.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Fields = make(map[string]string, len(raw))
	for k, v := range raw {
		r.Fields[k] = scalar(v)
	}
	return nil
}

func scalar(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		// nested structures are not expected in a table, keep them visible
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// CategoryGroup is a category with its records in source order.
type CategoryGroup struct {
	Name    string
	Records []Record
}

// Stats maps category to number of records in it.
type Stats map[string]int

// Total is sum of all counts.
func (s Stats) Total() int {
	var n int
	for _, v := range s {
		n += v
	}
	return n
}

// StatsOf derives statistics from groups. This is the only way Stats are
// produced.
func StatsOf(groups []CategoryGroup) Stats {
	s := make(Stats, len(groups))
	for _, g := range groups {
		s[g.Name] = len(g.Records)
	}
	return s
}

// Total returns number of records in all groups.
func Total(groups []CategoryGroup) int {
	var n int
	for _, g := range groups {
		n += len(g.Records)
	}
	return n
}

// Names returns category names in group order.
func Names(groups []CategoryGroup) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}

package dataset

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"issuedeck/utils/debug"
)

// String dumps dataset for debug report.
func (d *Dataset) String() string {
	if d == nil {
		return "<nil Dataset>"
	}

	tw := debug.NewTreeWriter()
	md := d.Metadata
	tw.Line(0, "Dataset %s", md.ID)
	tw.Line(1, "File %q sheet %q created %s", md.FileName, md.SheetName, md.Created.Format("2006-01-02 15:04:05"))
	tw.Line(1, "Rows: source %d, rendered %d", md.SourceRows, md.TotalRows)
	tw.Line(1, "Columns: %q", md.Columns)

	stats := d.Stats()
	tw.Line(0, "Categories: %d", len(d.Groups))
	for i, g := range d.Groups {
		tw.Line(1, "Category[%d] %q records[%d]", i, g.Name, stats[g.Name])
		for j, r := range g.Records {
			tw.Line(2, "Record[%d]", j)
			tw.TextBlock(3, "content", r.Content)
			keys := slices.Collect(maps.Keys(r.Fields))
			sort.Sort(natural.StringSlice(keys))
			for _, k := range keys {
				tw.TextBlock(3, k, r.Fields[k])
			}
		}
	}
	return tw.String()
}

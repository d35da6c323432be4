package deck

import (
	"issuedeck/layout"
	"issuedeck/utils/debug"
)

// Dump renders slides as a tree for the debug report.
func Dump(slides []Slide) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "Deck: %d slides, %d records", len(slides), RenderedRecords(slides))
	for i := range slides {
		s := &slides[i]
		tw.Line(1, "Slide[%d] kind=%s", i+1, s.Kind)
		tw.TextBlock(2, "title", s.Title.Text)
		if s.Page != nil {
			seqs := make([]int, 0, len(s.Page.Entries))
			for _, e := range s.Page.Entries {
				seqs = append(seqs, e.Seq)
			}
			tw.Line(2, "page %d/%d isolated=%t seq=%v", s.Page.Index, s.Page.Total, s.Page.Isolated, seqs)
		}
		for _, b := range s.Blocks {
			if b.Kind == layout.BlockSeparator {
				tw.Line(2, "-")
				continue
			}
			tw.TextBlock(2+b.Level, b.Kind.String(), b.Text)
		}
	}
	return tw.String()
}

// Package deck assembles ordered list of slides: informational slides
// followed by paginated category slides.
package deck

import (
	"strconv"

	"issuedeck/layout"
)

type SlideKind int

const (
	SlideTitle SlideKind = iota
	SlideOverview
	SlideMotivation
	SlideGlossary
	SlideCategory
)

var slideKindNames = [...]string{"title", "overview", "motivation", "glossary", "category"}

func (k SlideKind) String() string {
	if k < 0 || int(k) >= len(slideKindNames) {
		return "SlideKind(" + strconv.Itoa(int(k)) + ")"
	}
	return slideKindNames[k]
}

// Slide is one unit of output. Title is rendered into title placeholder,
// Blocks into the body one.
type Slide struct {
	Kind   SlideKind
	Title  layout.Block
	Blocks []layout.Block
	// set for category slides only
	Page *layout.Page
}

// Records returns number of records rendered on the slide.
func (s *Slide) Records() int {
	if s.Page == nil {
		return 0
	}
	return len(s.Page.Entries)
}

// RenderedRecords counts record occurrences on all slides.
func RenderedRecords(slides []Slide) int {
	var n int
	for i := range slides {
		n += slides[i].Records()
	}
	return n
}

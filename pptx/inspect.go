package pptx

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"issuedeck/archive"
)

// CountSlides returns number of slides in saved presentation.
func CountSlides(path string) (int, error) {
	n, err := archive.Count(path, "ppt/slides/slide*.xml")
	if err != nil {
		return 0, fmt.Errorf("unable to inspect %s: %w", path, err)
	}
	return n, nil
}

// SlideText is text content of a single slide, paragraph by paragraph.
type SlideText struct {
	Paragraphs []string
}

// ReadText extracts non-blank paragraphs of every slide of saved
// presentation.
func ReadText(path string) ([]SlideText, error) {
	pres, err := (&ppt.PPTXReader{}).Read(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read presentation %s: %w", path, err)
	}

	slides := pres.GetAllSlides()
	result := make([]SlideText, 0, len(slides))
	for _, slide := range slides {
		var st SlideText
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var sb strings.Builder
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						sb.WriteString(run.GetText())
					}
				}
				if text := strings.TrimSpace(sb.String()); len(text) > 0 {
					st.Paragraphs = append(st.Paragraphs, text)
				}
			}
		}
		result = append(result, st)
	}
	return result, nil
}

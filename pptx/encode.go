// Package pptx writes assembled deck as PowerPoint 2007+ presentation.
package pptx

import (
	"bytes"
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"issuedeck/deck"
	"issuedeck/layout"
	"issuedeck/misc"
)

// 16:9 slide geometry, EMU
const (
	emuPerInch = 914400

	marginLeft   = int64(0.5 * emuPerInch)
	contentWidth = int64(9.0 * emuPerInch)

	titleTop      = int64(0.3 * emuPerInch)
	titleHeight   = int64(0.8 * emuPerInch)
	bodyTop       = int64(1.2 * emuPerInch)
	bodyHeight    = int64(4.1 * emuPerInch)
	deckTitleTop  = int64(1.7 * emuPerInch)
	deckTitleH    = int64(1.2 * emuPerInch)
	deckSubtitleT = int64(3.1 * emuPerInch)
	deckSubtitleH = int64(0.8 * emuPerInch)
)

// indentation for nested paragraphs, text boxes have no list levels
const levelIndent = "　　"

// Encode produces presentation with exactly one slide per deck slide. Title
// goes to document properties.
func Encode(slides []deck.Slide, styles layout.Styles, title string) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = misc.GetAppName()

	for i := range slides {
		var slide *ppt.Slide
		if i == 0 {
			// new presentation always has one empty slide
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		if slides[i].Kind == deck.SlideTitle {
			addTitleSlide(slide, &slides[i], styles)
		} else {
			addContentSlide(slide, &slides[i], styles)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("unable to create presentation writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("unable to encode presentation: %w", err)
	}
	return buf.Bytes(), nil
}

// applyStyle is the only place text style reaches the document.
func applyStyle(run *ppt.TextRun, ts layout.TextStyle, bold bool) {
	f := run.GetFont().SetSize(ts.Size).SetBold(bold)
	if len(ts.Font) > 0 {
		f.SetName(ts.Font)
	}
}

func centered(shape *ppt.RichTextShape) {
	shape.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func addTitleSlide(slide *ppt.Slide, s *deck.Slide, styles layout.Styles) {
	title := slide.CreateRichTextShape()
	title.SetOffsetX(marginLeft).SetOffsetY(deckTitleTop)
	title.SetWidth(contentWidth).SetHeight(deckTitleH)
	applyStyle(title.CreateTextRun(s.Title.Text), styles.For(s.Title), true)
	centered(title)

	if len(s.Blocks) == 0 {
		return
	}
	sub := slide.CreateRichTextShape()
	sub.SetOffsetX(marginLeft).SetOffsetY(deckSubtitleT)
	sub.SetWidth(contentWidth).SetHeight(deckSubtitleH)
	writeBlocks(sub, s.Blocks, styles)
	centered(sub)
}

func addContentSlide(slide *ppt.Slide, s *deck.Slide, styles layout.Styles) {
	title := slide.CreateRichTextShape()
	title.SetOffsetX(marginLeft).SetOffsetY(titleTop)
	title.SetWidth(contentWidth).SetHeight(titleHeight)
	applyStyle(title.CreateTextRun(s.Title.Text), styles.For(s.Title), true)

	if len(s.Blocks) == 0 {
		return
	}
	body := slide.CreateRichTextShape()
	body.SetOffsetX(marginLeft).SetOffsetY(bodyTop)
	body.SetWidth(contentWidth).SetHeight(bodyHeight)
	writeBlocks(body, s.Blocks, styles)
}

func writeBlocks(shape *ppt.RichTextShape, blocks []layout.Block, styles layout.Styles) {
	for i, b := range blocks {
		if i > 0 {
			shape.CreateParagraph()
		}
		text := b.Text
		if b.Kind == layout.BlockSeparator || len(text) == 0 {
			// empty paragraph would collapse
			text = " "
		}
		text = strings.Repeat(levelIndent, b.Level) + text
		applyStyle(shape.CreateTextRun(text), styles.For(b), false)
	}
}

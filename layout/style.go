package layout

import (
	"issuedeck/config"
)

// TextStyle is everything we decide about how text looks.
type TextStyle struct {
	Font string
	Size int
}

// Styles keeps text style for every kind of block.
type Styles struct {
	DeckTitle    TextStyle
	DeckSubtitle TextStyle
	Heading      TextStyle
	Text         TextStyle
	PageTitle    TextStyle
	Body         TextStyle
	Reduced      TextStyle
	Separator    TextStyle
}

func NewStyles(cfg *config.StylesConfig) Styles {
	conv := func(ts config.TextStyleConfig) TextStyle {
		ts = cfg.Style(ts)
		return TextStyle{Font: ts.Font, Size: ts.Size}
	}
	return Styles{
		DeckTitle:    conv(cfg.DeckTitle),
		DeckSubtitle: conv(cfg.DeckSubtitle),
		Heading:      conv(cfg.InfoTitle),
		Text:         conv(cfg.InfoBody),
		PageTitle:    conv(cfg.CategoryTitle),
		Body:         conv(cfg.Body),
		Reduced:      conv(cfg.Reduced),
		Separator:    conv(cfg.Separator),
	}
}

// For is the only place deciding text style of a block.
func (s Styles) For(b Block) TextStyle {
	switch b.Kind {
	case BlockDeckTitle:
		return s.DeckTitle
	case BlockDeckSubtitle:
		return s.DeckSubtitle
	case BlockHeading:
		return s.Heading
	case BlockText:
		return s.Text
	case BlockPageTitle:
		return s.PageTitle
	case BlockSeparator:
		return s.Separator
	}
	if b.Reduced {
		return s.Reduced
	}
	return s.Body
}

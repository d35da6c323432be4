package layout

import (
	"strconv"
	"strings"

	"issuedeck/config"
)

type BlockKind int

const (
	// record blocks
	BlockTitle BlockKind = iota
	BlockDetail
	BlockSeparator
	// informational slides
	BlockText
	BlockHeading
	BlockDeckTitle
	BlockDeckSubtitle
	// category page title
	BlockPageTitle
)

var blockKindNames = [...]string{"title", "detail", "separator", "text", "heading", "deck-title", "deck-subtitle", "page-title"}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "BlockKind(" + strconv.Itoa(int(k)) + ")"
	}
	return blockKindNames[k]
}

// Block is a single paragraph of a slide.
type Block struct {
	Kind BlockKind
	Text string
	// indentation, details are shown one level deeper than titles
	Level int
	// content is long, render it smaller
	Reduced bool
}

// Renderer shapes page content. It never changes pagination.
type Renderer struct {
	details         []config.DetailField
	detailSeparator string
	emptyContent    string
	reduceAbove     int
}

func NewRenderer(cfg *config.LayoutConfig) *Renderer {
	return &Renderer{
		details:         cfg.Details,
		detailSeparator: cfg.DetailSeparator,
		emptyContent:    cfg.EmptyContent,
		reduceAbove:     cfg.ReduceFontAbove,
	}
}

// Render produces blocks for every record on the page: title line, optional
// detail line and separator between records.
func (r *Renderer) Render(page Page) []Block {
	blocks := make([]Block, 0, len(page.Entries)*3)
	for i, e := range page.Entries {
		reduced := r.reduceAbove > 0 && ContentLength(e.Record.Content) > r.reduceAbove

		content := e.Record.Content
		if len(content) == 0 {
			content = r.emptyContent
		}
		blocks = append(blocks, Block{
			Kind:    BlockTitle,
			Text:    strconv.Itoa(e.Seq) + ". " + content,
			Reduced: reduced,
		})

		if d := r.detail(e); len(d) > 0 {
			blocks = append(blocks, Block{Kind: BlockDetail, Text: d, Level: 1, Reduced: reduced})
		}
		if i < len(page.Entries)-1 {
			blocks = append(blocks, Block{Kind: BlockSeparator})
		}
	}
	return blocks
}

func (r *Renderer) detail(e Entry) string {
	parts := make([]string, 0, len(r.details))
	for _, d := range r.details {
		v := e.Record.Field(d.Column)
		if len(v) == 0 {
			continue
		}
		label := d.Label
		if len(label) == 0 {
			label = d.Column
		}
		parts = append(parts, label+": "+v)
	}
	return strings.Join(parts, r.detailSeparator)
}

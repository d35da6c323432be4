package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"issuedeck/config"
	"issuedeck/dataset"
)

func testLayout() *config.LayoutConfig {
	return &config.LayoutConfig{
		ItemsPerPage:    2,
		MaxInlineLength: 200,
		ReduceFontAbove: 300,
		Details: []config.DetailField{
			{Column: "涉及處別", Label: "涉及處別"},
			{Column: "涉及部門", Label: "涉及部門"},
			{Column: "sys"},
		},
		DetailSeparator: " | ",
		EmptyContent:    "無內容",
	}
}

func entry(seq int, content string, fields map[string]string) Entry {
	if fields == nil {
		fields = map[string]string{}
	}
	fields["內容"] = content
	return Entry{Record: dataset.Record{Content: content, Fields: fields}, Seq: seq}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(testLayout())

	t.Run("shared page", func(t *testing.T) {
		page := Page{Category: "A", Index: 1, Total: 1, Entries: []Entry{
			entry(3, "first", map[string]string{"涉及處別": "資訊處", "sys": "ERP"}),
			entry(4, "", nil),
		}}
		want := []Block{
			{Kind: BlockTitle, Text: "3. first"},
			{Kind: BlockDetail, Text: "涉及處別: 資訊處 | sys: ERP", Level: 1},
			{Kind: BlockSeparator},
			{Kind: BlockTitle, Text: "4. 無內容"},
		}
		if diff := cmp.Diff(want, r.Render(page)); diff != "" {
			t.Errorf("Render() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single record page has no separator", func(t *testing.T) {
		page := Page{Category: "A", Index: 1, Total: 1, Entries: []Entry{
			entry(1, "only", map[string]string{"涉及部門": "財務"}),
		}}
		want := []Block{
			{Kind: BlockTitle, Text: "1. only"},
			{Kind: BlockDetail, Text: "涉及部門: 財務", Level: 1},
		}
		if diff := cmp.Diff(want, r.Render(page)); diff != "" {
			t.Errorf("Render() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("separators between records only", func(t *testing.T) {
		page := Page{Entries: []Entry{entry(1, "a", nil), entry(2, "b", nil), entry(3, "c", nil)}}
		blocks := r.Render(page)
		var separators int
		for _, b := range blocks {
			if b.Kind == BlockSeparator {
				separators++
			}
		}
		if separators != 2 {
			t.Errorf("separators = %d, want 2", separators)
		}
		if blocks[len(blocks)-1].Kind == BlockSeparator {
			t.Error("separator after last record")
		}
	})
}

func TestRenderer_Reduced(t *testing.T) {
	r := NewRenderer(testLayout())

	// isolated on a page but still below reduction threshold
	medium := strings.Repeat("中", 250)
	long := strings.Repeat("中", 301)

	blocks := r.Render(Page{Entries: []Entry{entry(1, medium, map[string]string{"sys": "x"})}})
	for _, b := range blocks {
		if b.Reduced {
			t.Errorf("block %v reduced for %d characters", b.Kind, ContentLength(medium))
		}
	}

	blocks = r.Render(Page{Entries: []Entry{entry(1, long, map[string]string{"sys": "x"})}})
	for _, b := range blocks {
		if !b.Reduced {
			t.Errorf("block %v not reduced for %d characters", b.Kind, ContentLength(long))
		}
	}

	cfg := testLayout()
	cfg.ReduceFontAbove = 0
	blocks = NewRenderer(cfg).Render(Page{Entries: []Entry{entry(1, long, nil)}})
	if blocks[0].Reduced {
		t.Error("reduction should be disabled")
	}
}

func TestStyles_For(t *testing.T) {
	cfg := &config.StylesConfig{
		Font:          "Deck",
		DeckTitle:     config.TextStyleConfig{Size: 30},
		DeckSubtitle:  config.TextStyleConfig{Size: 20},
		InfoTitle:     config.TextStyleConfig{Size: 28},
		InfoBody:      config.TextStyleConfig{Size: 21},
		CategoryTitle: config.TextStyleConfig{Size: 24},
		Body:          config.TextStyleConfig{Size: 19},
		Reduced:       config.TextStyleConfig{Font: "Small", Size: 14},
		Separator:     config.TextStyleConfig{Size: 8},
	}
	s := NewStyles(cfg)

	tests := []struct {
		block Block
		want  TextStyle
	}{
		{Block{Kind: BlockDeckTitle}, TextStyle{"Deck", 30}},
		{Block{Kind: BlockDeckSubtitle}, TextStyle{"Deck", 20}},
		{Block{Kind: BlockHeading}, TextStyle{"Deck", 28}},
		{Block{Kind: BlockText, Level: 1}, TextStyle{"Deck", 21}},
		{Block{Kind: BlockPageTitle}, TextStyle{"Deck", 24}},
		{Block{Kind: BlockTitle}, TextStyle{"Deck", 19}},
		{Block{Kind: BlockDetail}, TextStyle{"Deck", 19}},
		{Block{Kind: BlockTitle, Reduced: true}, TextStyle{"Small", 14}},
		{Block{Kind: BlockDetail, Reduced: true}, TextStyle{"Small", 14}},
		{Block{Kind: BlockSeparator}, TextStyle{"Deck", 8}},
	}
	for _, tt := range tests {
		t.Run(tt.block.Kind.String(), func(t *testing.T) {
			if got := s.For(tt.block); got != tt.want {
				t.Errorf("For(%+v) = %+v, want %+v", tt.block, got, tt.want)
			}
		})
	}
}

func TestBlockKind_String(t *testing.T) {
	if BlockPageTitle.String() != "page-title" {
		t.Errorf("String() = %q", BlockPageTitle.String())
	}
	if BlockKind(42).String() != "BlockKind(42)" {
		t.Errorf("String() = %q", BlockKind(42).String())
	}
}

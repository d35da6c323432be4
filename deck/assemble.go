package deck

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"issuedeck/common"
	"issuedeck/config"
	"issuedeck/dataset"
	"issuedeck/layout"
)

// Assemble produces complete deck for dataset. Categories are paginated and
// rendered concurrently, each into its own slot, so the resulting order is
// always the group order. Either the whole deck is returned or an error.
func Assemble(ctx context.Context, ds *dataset.Dataset, cfg *config.Config, log *zap.Logger) ([]Slide, error) {
	lc := &cfg.Layout
	if lc.ItemsPerPage <= 0 {
		return nil, fmt.Errorf("%w: items per page must be positive, got %d", common.ErrInvalidConfiguration, lc.ItemsPerPage)
	}

	values := ValuesOf(ds)
	slides, err := infoSlides(&cfg.Deck, values)
	if err != nil {
		return nil, err
	}

	// sequence numbers are decided up front so categories do not depend on
	// each other
	starts := make([]int, len(ds.Groups))
	next := 1
	for i, g := range ds.Groups {
		if lc.Numbering.Continuous() {
			starts[i] = next
			next += len(g.Records)
		} else {
			starts[i] = 1
		}
	}

	renderer := layout.NewRenderer(lc)
	slots := make([][]Slide, len(ds.Groups))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, g := range ds.Groups {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pages, err := layout.Paginate(g.Name, layout.Number(g.Records, starts[i]), lc.ItemsPerPage, lc.MaxInlineLength)
			if err != nil {
				return fmt.Errorf("unable to paginate category %q: %w", g.Name, err)
			}
			out := make([]Slide, 0, len(pages))
			for _, p := range pages {
				out = append(out, Slide{
					Kind:   SlideCategory,
					Title:  layout.Block{Kind: layout.BlockPageTitle, Text: p.Label()},
					Blocks: renderer.Render(p),
					Page:   &p,
				})
			}
			slots[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	info := len(slides)
	for _, s := range slots {
		slides = append(slides, s...)
	}

	rendered, expected := RenderedRecords(slides), ds.Stats().Total()
	if rendered != expected {
		return nil, fmt.Errorf("%w: %d records rendered, statistics say %d", common.ErrInconsistentDeck, rendered, expected)
	}

	log.Debug("Deck assembled",
		zap.Int("slides", len(slides)),
		zap.Int("informational", info),
		zap.Int("categories", len(ds.Groups)),
		zap.Int("records", rendered))
	return slides, nil
}

func infoSlides(cfg *config.DeckConfig, values Values) ([]Slide, error) {
	var slides []Slide

	if cfg.TitlePage.Enable {
		title, err := ExpandTemplate(config.TitleTemplateFieldName, cfg.TitlePage.TitleTemplate, values)
		if err != nil {
			return nil, err
		}
		s := Slide{Kind: SlideTitle, Title: layout.Block{Kind: layout.BlockDeckTitle, Text: title}}
		if len(cfg.TitlePage.SubtitleTemplate) > 0 {
			subtitle, err := ExpandTemplate(config.SubtitleTemplateFieldName, cfg.TitlePage.SubtitleTemplate, values)
			if err != nil {
				return nil, err
			}
			s.Blocks = []layout.Block{{Kind: layout.BlockDeckSubtitle, Text: subtitle}}
		}
		slides = append(slides, s)
	}

	if cfg.Overview.Enable {
		slides = append(slides, overviewSlide(&cfg.Overview, values))
	}

	if cfg.Motivation.Enable {
		s := Slide{Kind: SlideMotivation, Title: layout.Block{Kind: layout.BlockHeading, Text: cfg.Motivation.Title}}
		for _, p := range cfg.Motivation.Paragraphs {
			s.Blocks = append(s.Blocks, layout.Block{Kind: layout.BlockText, Text: p})
		}
		slides = append(slides, s)
	}

	if cfg.Glossary.Enable {
		slides = append(slides, glossarySlide(&cfg.Glossary, cfg.Overview.CountUnit, values))
	}
	return slides, nil
}

func count(n int, unit string) string {
	if len(unit) == 0 {
		return strconv.Itoa(n)
	}
	return strconv.Itoa(n) + " " + unit
}

func overviewSlide(cfg *config.OverviewPageConfig, values Values) Slide {
	s := Slide{Kind: SlideOverview, Title: layout.Block{Kind: layout.BlockHeading, Text: cfg.Title}}
	s.Blocks = append(s.Blocks, layout.Block{
		Kind: layout.BlockText,
		Text: cfg.TotalLabel + ": " + strconv.Itoa(values.Total),
	})
	if len(values.Categories) == 0 {
		return s
	}
	if len(cfg.StatsLabel) > 0 {
		s.Blocks = append(s.Blocks, layout.Block{Kind: layout.BlockText, Text: cfg.StatsLabel + ":"})
	}
	for _, name := range values.Categories {
		s.Blocks = append(s.Blocks, layout.Block{
			Kind:  layout.BlockText,
			Text:  name + ": " + count(values.Stats[name], cfg.CountUnit),
			Level: 1,
		})
	}
	return s
}

func glossarySlide(cfg *config.GlossaryPageConfig, unit string, values Values) Slide {
	s := Slide{Kind: SlideGlossary, Title: layout.Block{Kind: layout.BlockHeading, Text: cfg.Title}}
	for _, name := range values.Categories {
		s.Blocks = append(s.Blocks, layout.Block{
			Kind: layout.BlockText,
			Text: name + " (" + count(values.Stats[name], unit) + ")",
		})
		if d := cfg.Descriptions[name]; len(d) > 0 {
			s.Blocks = append(s.Blocks, layout.Block{Kind: layout.BlockText, Text: d, Level: 1})
		}
	}
	return s
}

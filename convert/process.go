package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"issuedeck/common"
	"issuedeck/config"
	"issuedeck/dataset"
	"issuedeck/deck"
	"issuedeck/ingest"
	"issuedeck/layout"
	"issuedeck/output"
	"issuedeck/postprocess"
	"issuedeck/pptx"
	"issuedeck/state"
)

// process runs the whole pipeline independently of CLI framework and returns
// path of the saved deck. Stages run one after another, context is checked
// between them.
func process(ctx context.Context, env *state.LocalEnv, src, dst string, log *zap.Logger) (outputName string, rerr error) {
	cfg := env.Cfg

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	ds, restored, err := loadOrRestore(ctx, env, src, dst, log)
	if err != nil {
		return "", err
	}

	if cfg.Source.Snapshot.Save && !restored {
		if err := saveSnapshot(env, snapshotPath(cfg, src, dst), ds, log); err != nil {
			// deck could still be produced
			log.Warn("Unable to save snapshot", zap.Error(err))
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	slides, err := deck.Assemble(ctx, ds, cfg, log.Named("deck"))
	if err != nil {
		return "", fmt.Errorf("unable to assemble deck: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("dataset.txt", []byte(ds.String()))
		env.Rpt.StoreData("deck.txt", []byte(deck.Dump(slides)))
	}

	values := deck.ValuesOf(ds)
	data, err := pptx.Encode(slides, layout.NewStyles(&cfg.Deck.Styles), deckTitle(slides, values))
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	outputName, err = output.Save(
		output.BuildPath(src, dst, outputNameOf(cfg, values, log), cfg.Output.FileNameTransliterate),
		data,
		output.SaveOptions{Overwrite: env.Overwrite, Alternates: cfg.Output.Alternates},
		log)
	if err != nil {
		return "", err
	}
	log.Debug("Deck saved",
		zap.String("path", outputName),
		zap.Int("slides", len(slides)),
		zap.Int("records", deck.RenderedRecords(slides)))

	postprocess.Run(ctx, outputName, postprocess.Hooks(&cfg.Theming, log), log.Named("theming"))

	if env.Rpt != nil {
		env.Rpt.Store("result"+output.Extension, outputName)
	}
	return outputName, nil
}

// loadOrRestore is loadDataset which falls back to previously saved snapshot
// when tabular source cannot be read. Restored is set when dataset came from
// snapshot rather than from the table.
func loadOrRestore(ctx context.Context, env *state.LocalEnv, src, dst string, log *zap.Logger) (ds *dataset.Dataset, restored bool, err error) {
	if isSnapshot(src) {
		ds, err = loadDataset(ctx, env, src, log)
		return ds, err == nil, err
	}

	ds, err = loadDataset(ctx, env, src, log)
	if err == nil || !errors.Is(err, common.ErrSourceUnavailable) {
		return ds, false, err
	}

	path := snapshotPath(env.Cfg, src, dst)
	ds, serr := dataset.LoadSnapshot(path, env.Cfg)
	if serr != nil {
		return nil, false, multierr.Append(err, fmt.Errorf("no usable snapshot: %w", serr))
	}
	log.Warn("Source unavailable, using saved snapshot",
		zap.String("source", src), zap.String("snapshot", path), zap.Error(err))
	log.Info("Dataset ready",
		zap.String("file", ds.Metadata.FileName),
		zap.String("sheet", ds.Metadata.SheetName),
		zap.Int("records", ds.Total()),
		zap.Strings("categories", ds.Metadata.Categories))
	return ds, true, nil
}

// loadDataset reads either tabular source or previously saved snapshot.
func loadDataset(ctx context.Context, env *state.LocalEnv, src string, log *zap.Logger) (*dataset.Dataset, error) {
	cfg := env.Cfg

	var (
		ds  *dataset.Dataset
		err error
	)
	if isSnapshot(src) {
		log.Debug("Loading snapshot", zap.String("path", src))
		ds, err = dataset.LoadSnapshot(src, cfg)
	} else {
		var tbl *ingest.Table
		tbl, err = ingest.Load(ctx, src, ingest.Options{Sheet: cfg.Source.Sheet, Encoding: cfg.Source.Encoding}, log.Named("ingest"))
		if err != nil {
			return nil, err
		}
		if !tbl.HasColumn(cfg.Source.CategoryColumn) {
			log.Warn("Category column not found, all records are uncategorized",
				zap.String("column", cfg.Source.CategoryColumn), zap.String("category", cfg.Source.Uncategorized))
		}
		if !tbl.HasColumn(cfg.Source.ContentColumn) {
			log.Warn("Content column not found, records have no content", zap.String("column", cfg.Source.ContentColumn))
		}
		ds, err = dataset.Build(tbl, cfg)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Dataset ready",
		zap.String("file", ds.Metadata.FileName),
		zap.String("sheet", ds.Metadata.SheetName),
		zap.Int("source_rows", ds.Metadata.SourceRows),
		zap.Int("records", ds.Total()),
		zap.Strings("categories", ds.Metadata.Categories))
	return ds, nil
}

func saveSnapshot(env *state.LocalEnv, path string, ds *dataset.Dataset, log *zap.Logger) error {
	if err := dataset.SaveSnapshot(path, ds); err != nil {
		return err
	}
	log.Debug("Snapshot saved", zap.String("path", path))
	env.Rpt.Store("snapshot.json", path)
	return nil
}

// snapshotPath is configured snapshot location or default one.
func snapshotPath(cfg *config.Config, src, dst string) string {
	if len(cfg.Source.Snapshot.Path) > 0 {
		return cfg.Source.Snapshot.Path
	}
	return snapshotFor(src, dst)
}

func isSnapshot(src string) bool {
	kind, err := ingest.Detect(src)
	return err == nil && kind == common.SourceKindJson
}

// snapshotFor returns default snapshot location: produced deck directory,
// source name.
func snapshotFor(src, dst string) string {
	deckPath := output.BuildPath(src, dst, "", false)
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(filepath.Dir(deckPath), output.CleanFileName(base)+".json")
}

// outputNameOf expands output name template, empty result means default
// naming.
func outputNameOf(cfg *config.Config, values deck.Values, log *zap.Logger) string {
	if len(cfg.Output.NameTemplate) == 0 {
		return ""
	}
	name, err := deck.ExpandTemplate(config.OutputNameTemplateFieldName, cfg.Output.NameTemplate, values)
	if err != nil {
		log.Warn("Unable to prepare output file name, using default", zap.Error(err))
		return ""
	}
	return name
}

func deckTitle(slides []deck.Slide, values deck.Values) string {
	if len(slides) > 0 && slides[0].Kind == deck.SlideTitle {
		return slides[0].Title.Text
	}
	return values.Name
}

package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"issuedeck/config"
	"issuedeck/ingest"
)

// Metadata describes ingestion pass. Categories and CategoryStats always
// reflect groups after exclusion, TotalRows is post-exclusion count used in
// narrative text while SourceRows is raw number of non-blank rows.
type Metadata struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"file_name"`
	SheetName     string    `json:"sheet_name"`
	SourceRows    int       `json:"source_rows"`
	TotalRows     int       `json:"total_rows"`
	Columns       []string  `json:"columns"`
	Categories    []string  `json:"categories"`
	CategoryStats Stats     `json:"category_stats"`
	Created       time.Time `json:"created"`
}

// Dataset is produced once per ingestion pass and is read-only afterwards.
type Dataset struct {
	Metadata Metadata
	Groups   []CategoryGroup
}

// Total returns number of records which will be rendered.
func (d *Dataset) Total() int {
	return Total(d.Groups)
}

// Stats returns statistics derived from groups.
func (d *Dataset) Stats() Stats {
	return StatsOf(d.Groups)
}

// Records returns all grouped records in deck order.
func (d *Dataset) Records() []Record {
	all := make([]Record, 0, d.Total())
	for _, g := range d.Groups {
		all = append(all, g.Records...)
	}
	return all
}

func newDataset(md Metadata, records []Record, classify Classifier, cfg *config.Config) (*Dataset, error) {
	exclude, err := ExcludeMatcher(cfg.Categories.Exclude, cfg.Categories.ExcludePattern)
	if err != nil {
		return nil, err
	}
	groups, stats := Categorize(records, classify, exclude, OrderOf(&cfg.Categories))

	if md.SourceRows == 0 {
		md.SourceRows = len(records)
	}
	md.TotalRows = Total(groups)
	md.Categories = Names(groups)
	md.CategoryStats = stats
	if md.ID == uuid.Nil {
		if md.ID, err = uuid.NewV7(); err != nil {
			return nil, fmt.Errorf("unable to generate dataset id: %w", err)
		}
	}
	if md.Created.IsZero() {
		md.Created = time.Now().UTC().Truncate(time.Second)
	}
	return &Dataset{Metadata: md, Groups: groups}, nil
}

// Build categorizes freshly loaded table.
func Build(t *ingest.Table, cfg *config.Config) (*Dataset, error) {
	records := make([]Record, 0, len(t.Rows))
	for i := range t.Rows {
		records = append(records, NewRecord(t.Row(i), cfg.Source.ContentColumn))
	}
	md := Metadata{
		FileName:  t.Name,
		SheetName: t.Sheet,
		Columns:   t.Columns,
	}
	return newDataset(md, records, ColumnClassifier(cfg.Source.CategoryColumn, cfg.Source.Uncategorized), cfg)
}

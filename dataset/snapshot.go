package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"issuedeck/common"
	"issuedeck/config"
)

// snapshot is persisted form of the dataset. Flat "data" list is kept so
// consumers not aware of grouping still work.
type snapshot struct {
	Metadata       Metadata       `json:"metadata"`
	DataByCategory *orderedGroups `json:"data_by_category,omitempty"`
	Data           []Record       `json:"data"`
}

// orderedGroups serializes as JSON object preserving group order.
type orderedGroups []CategoryGroup

func (og orderedGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range og {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		records := g.Records
		if records == nil {
			records = []Record{}
		}
		val, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (og *orderedGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("data_by_category must be an object")
	}
	var groups []CategoryGroup
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var records []Record
		if err := dec.Decode(&records); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		groups = append(groups, CategoryGroup{Name: name, Records: records})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*og = groups
	return nil
}

// MarshalSnapshot returns JSON representation of the dataset.
func MarshalSnapshot(ds *Dataset) ([]byte, error) {
	groups := orderedGroups(ds.Groups)
	s := snapshot{
		Metadata:       ds.Metadata,
		DataByCategory: &groups,
		Data:           ds.Records(),
	}
	data, err := json.MarshalIndent(&s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to marshal snapshot: %w", err)
	}
	return data, nil
}

// SaveSnapshot atomically writes dataset snapshot to path.
func SaveSnapshot(path string, ds *Dataset) error {
	data, err := MarshalSnapshot(ds)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("unable to save snapshot to %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads snapshot written by SaveSnapshot (or by hand, comments
// and trailing commas are allowed) and re-categorizes it with current
// settings: exclusions and order could differ from the ones snapshot was
// produced with, statistics are always recomputed.
func LoadSnapshot(path string, cfg *config.Config) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSourceUnavailable, err)
	}
	defer f.Close()

	ds, err := ReadSnapshot(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot %s: %w", common.ErrSourceUnavailable, path, err)
	}
	return ds, nil
}

// ReadSnapshot is LoadSnapshot for arbitrary reader.
func ReadSnapshot(r io.Reader, cfg *config.Config) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if data, err = hujson.Standardize(data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	var (
		records  []Record
		classify Classifier
	)
	if s.DataByCategory != nil {
		for _, g := range *s.DataByCategory {
			for _, r := range g.Records {
				r.Content = r.Field(cfg.Source.ContentColumn)
				r.Category = g.Name
				records = append(records, r)
			}
		}
		classify = storedClassifier(cfg.Source.Uncategorized)
	} else {
		for _, r := range s.Data {
			records = append(records, NewRecord(r.Fields, cfg.Source.ContentColumn))
		}
		classify = ColumnClassifier(cfg.Source.CategoryColumn, cfg.Source.Uncategorized)
	}

	md := Metadata{
		ID:         s.Metadata.ID,
		FileName:   s.Metadata.FileName,
		SheetName:  s.Metadata.SheetName,
		SourceRows: s.Metadata.SourceRows,
		Columns:    s.Metadata.Columns,
		Created:    s.Metadata.Created,
	}
	return newDataset(md, records, classify, cfg)
}

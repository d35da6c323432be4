package deck

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"issuedeck/config"
	"issuedeck/dataset"
)

// Values is a struct that holds variables we make available for template
// expansion.
type Values struct {
	Context string
	// source file name without extension
	Name       string
	FileName   string
	Sheet      string
	Total      int
	Categories []string
	Stats      dataset.Stats
	Date       string
	ID         string
}

// ValuesOf collects template values from dataset, counts are always after
// exclusion.
func ValuesOf(ds *dataset.Dataset) Values {
	md := ds.Metadata
	return Values{
		Name:       strings.TrimSuffix(md.FileName, filepath.Ext(md.FileName)),
		FileName:   md.FileName,
		Sheet:      md.SheetName,
		Total:      ds.Total(),
		Categories: dataset.Names(ds.Groups),
		Stats:      ds.Stats(),
		Date:       md.Created.Format("2006-01-02"),
		ID:         md.ID.String(),
	}
}

// ExpandTemplate executes go template with sprig functions available.
func ExpandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}

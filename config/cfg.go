package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"issuedeck/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	SnapshotConfig struct {
		Save bool `yaml:"save"`
		// empty - next to the produced deck, named after the source
		Path string `yaml:"path,omitempty" sanitize:"path_clean" validate:"omitempty,filepath"`
	}

	SourceConfig struct {
		Sheet          string         `yaml:"sheet"`
		Encoding       string         `yaml:"encoding"`
		CategoryColumn string         `yaml:"category_column" validate:"required"`
		ContentColumn  string         `yaml:"content_column" validate:"required"`
		Uncategorized  string         `yaml:"uncategorized" validate:"required"`
		Snapshot       SnapshotConfig `yaml:"snapshot"`
	}

	CategoriesConfig struct {
		Order          common.CategoryOrder `yaml:"order" validate:"gte=0"`
		Explicit       []string             `yaml:"explicit" validate:"dive,required"`
		Exclude        []string             `yaml:"exclude" validate:"dive,required"`
		ExcludePattern string               `yaml:"exclude_pattern"`
	}

	DetailField struct {
		Column string `yaml:"column" validate:"required"`
		Label  string `yaml:"label"`
	}

	LayoutConfig struct {
		ItemsPerPage    int              `yaml:"items_per_page" validate:"min=1"`
		MaxInlineLength int              `yaml:"max_inline_length" validate:"gte=0"`
		ReduceFontAbove int              `yaml:"reduce_font_above" validate:"gte=0"`
		Numbering       common.Numbering `yaml:"numbering" validate:"gte=0"`
		Details         []DetailField    `yaml:"details" validate:"dive"`
		DetailSeparator string           `yaml:"detail_separator"`
		EmptyContent    string           `yaml:"empty_content"`
	}

	TextStyleConfig struct {
		Font string `yaml:"font,omitempty"`
		Size int    `yaml:"size" validate:"min=6,max=96"`
	}

	StylesConfig struct {
		Font          string          `yaml:"font" validate:"required"`
		DeckTitle     TextStyleConfig `yaml:"deck_title"`
		DeckSubtitle  TextStyleConfig `yaml:"deck_subtitle"`
		InfoTitle     TextStyleConfig `yaml:"info_title"`
		InfoBody      TextStyleConfig `yaml:"info_body"`
		CategoryTitle TextStyleConfig `yaml:"category_title"`
		Body          TextStyleConfig `yaml:"body"`
		Reduced       TextStyleConfig `yaml:"reduced"`
		Separator     TextStyleConfig `yaml:"separator"`
	}

	TitlePageConfig struct {
		Enable           bool   `yaml:"enable"`
		TitleTemplate    string `yaml:"title_template" validate:"required_if=Enable true"`
		SubtitleTemplate string `yaml:"subtitle_template"`
	}

	OverviewPageConfig struct {
		Enable     bool   `yaml:"enable"`
		Title      string `yaml:"title" validate:"required_if=Enable true"`
		TotalLabel string `yaml:"total_label"`
		StatsLabel string `yaml:"stats_label"`
		CountUnit  string `yaml:"count_unit"`
	}

	MotivationPageConfig struct {
		Enable     bool     `yaml:"enable"`
		Title      string   `yaml:"title" validate:"required_if=Enable true"`
		Paragraphs []string `yaml:"paragraphs"`
	}

	GlossaryPageConfig struct {
		Enable       bool              `yaml:"enable"`
		Title        string            `yaml:"title" validate:"required_if=Enable true"`
		Descriptions map[string]string `yaml:"descriptions"`
	}

	DeckConfig struct {
		TitlePage  TitlePageConfig      `yaml:"title_page"`
		Overview   OverviewPageConfig   `yaml:"overview"`
		Motivation MotivationPageConfig `yaml:"motivation"`
		Glossary   GlossaryPageConfig   `yaml:"glossary"`
		Styles     StylesConfig         `yaml:"styles"`
	}

	OutputConfig struct {
		NameTemplate          string `yaml:"name_template"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
		Alternates            int    `yaml:"alternates" validate:"gte=0,lte=99"`
	}

	ThemingConfig struct {
		StripBullets bool          `yaml:"strip_bullets"`
		Command      string        `yaml:"command"`
		Args         []string      `yaml:"args"`
		Theme        string        `yaml:"theme"`
		Timeout      time.Duration `yaml:"timeout" validate:"gte=0"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Source     SourceConfig     `yaml:"source"`
		Categories CategoriesConfig `yaml:"categories"`
		Layout     LayoutConfig     `yaml:"layout"`
		Deck       DeckConfig       `yaml:"deck"`
		Output     OutputConfig     `yaml:"output"`
		Theming    ThemingConfig    `yaml:"theming"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field names above, these are go templates
	// expanded at deck assembly time, not at configuration load time
	TitleTemplateFieldName      TemplateFieldName = "title_template"
	SubtitleTemplateFieldName   TemplateFieldName = "subtitle_template"
	OutputNameTemplateFieldName TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(TitleTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(SubtitleTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfiguration, err)
		}
		if err := cfg.check(); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfiguration, err)
		}
	}
	return cfg, nil
}

// check verifies relations between fields validator tags cannot express.
func (cfg *Config) check() error {
	if cfg.Categories.Order == common.CategoryOrderExplicit && len(cfg.Categories.Explicit) == 0 {
		return errors.New("explicit category order requires at least one category name")
	}
	if len(cfg.Categories.ExcludePattern) > 0 {
		if _, err := regexp.Compile(cfg.Categories.ExcludePattern); err != nil {
			return fmt.Errorf("bad exclude pattern: %w", err)
		}
	}
	return nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Style returns text style with deck wide font applied when style does not
// name its own.
func (s *StylesConfig) Style(ts TextStyleConfig) TextStyleConfig {
	if len(ts.Font) == 0 {
		ts.Font = s.Font
	}
	return ts
}

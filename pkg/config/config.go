// Package config loads the analysis settings from the environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/anrid/proc-costs/pkg/stats"
)

// EnvPrefix prefixes every environment variable, e.g. PROCCOSTS_TOP_N.
const EnvPrefix = "PROCCOSTS"

// Config holds every setting of an analysis run.
type Config struct {
	CostPath       string `yaml:"cost_path" envconfig:"COST_PATH" default:"data/hcup_proc_cost.csv" validate:"required"`
	CodeColumn     string `yaml:"code_column" envconfig:"CODE_COLUMN" default:"ccscode" validate:"required"`
	FrequencyPath  string `yaml:"frequency_path" envconfig:"FREQUENCY_PATH" default:"data/HCUP_National_Top_Procedures_DataExport.xls" validate:"required"`
	FrequencySheet int    `yaml:"frequency_sheet" envconfig:"FREQUENCY_SHEET" default:"2" validate:"min=0"`
	SkipRows       int    `yaml:"skip_rows" envconfig:"SKIP_ROWS" default:"2" validate:"min=0"`

	ReferenceYear int `yaml:"reference_year" envconfig:"REFERENCE_YEAR" default:"2004"`
	TopN          int `yaml:"top_n" envconfig:"TOP_N" default:"10" validate:"gt=0"`

	OutputDir   string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"charts" validate:"required"`
	PreviewRows int    `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" default:"5" validate:"min=0"`

	Logging LoggingConfig `yaml:"logging" envconfig:"LOG"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

var validate = newValidator()

// newValidator reports fields by their YAML names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads the configuration from the environment, then overlays the YAML
// file at path when path is not empty, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	// Fields missing from the file keep their current value.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, errors.New(fieldMessage(fe)))
	}
	return fmt.Errorf("invalid config: %w", errors.Join(errs...))
}

func fieldMessage(fe validator.FieldError) string {
	// Drop the leading struct name: "Config.logging.level" -> "logging.level".
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// FrequencySource describes the frequency workbook.
func (c *Config) FrequencySource() stats.Source {
	return stats.Source{
		Path:     c.FrequencyPath,
		Sheet:    c.FrequencySheet,
		SkipRows: c.SkipRows,
		Names:    stats.FrequencyColumns,
	}
}

// Options returns the cohort run options.
func (c *Config) Options() stats.Options {
	return stats.Options{
		ReferenceYear: c.ReferenceYear,
		TopN:          c.TopN,
	}
}

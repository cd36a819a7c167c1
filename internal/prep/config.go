package prep

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLabelColumn is the label binarized when a config names none.
const DefaultLabelColumn = "diagnosis"

// EncodeSpec names the categorical column to one-hot encode.
type EncodeSpec struct {
	Column string `yaml:"column"`
	Prefix string `yaml:"prefix,omitempty"` // defaults to Column
}

// Config is the static column configuration of a preprocessing run.
type Config struct {
	Drop     []string   `yaml:"drop"`
	Encode   EncodeSpec `yaml:"encode"`
	Outliers []string   `yaml:"outliers"`
	Label    string     `yaml:"label"`
}

// DefaultConfig returns the column configuration for the urine biomarker
// dataset (Debernardi et al. 2020).
func DefaultConfig() Config {
	return Config{
		Drop: []string{
			"sample_id",
			"patient_cohort",
			"sample_origin",
			"stage",
			"benign_sample_diagnosis",
			"plasma_CA19_9",
			"REG1A",
		},
		Encode:   EncodeSpec{Column: "sex", Prefix: "sex"},
		Outliers: []string{"age", "creatinine", "LYVE1", "REG1B", "TFF1"},
		Label:    DefaultLabelColumn,
	}
}

// LoadConfig reads a YAML config file. Unknown keys are rejected. Fields the
// file leaves out keep their zero value, except Label and Encode.Prefix which
// fall back to their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, errors.New("parse config: config is empty")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.Label == "" {
		c.Label = DefaultLabelColumn
	}
	if c.Encode.Prefix == "" {
		c.Encode.Prefix = c.Encode.Column
	}
	return c
}

// Validate checks that the config names the columns every stage needs.
func (c Config) Validate() error {
	var errs []error
	if c.Encode.Column == "" {
		errs = append(errs, errors.New("encode.column is required"))
	}
	if c.Label == "" {
		errs = append(errs, errors.New("label is required"))
	}
	for _, name := range c.Drop {
		if name == c.Label {
			errs = append(errs, fmt.Errorf("label column %q is also in drop", name))
		}
		if name == c.Encode.Column {
			errs = append(errs, fmt.Errorf("encode column %q is also in drop", name))
		}
	}
	for _, name := range c.Outliers {
		if name == "" {
			errs = append(errs, errors.New("outliers contains an empty column name"))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// YAML renders the config as a YAML document.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

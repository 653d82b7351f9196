package types

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTokenField = 1
	DefaultTagField   = 2
	DoubleQuote       = `"`
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

type Configuration struct {
	Name           string   `yaml:"-" json:"name"`
	FilePath       string   `yaml:"-" json:"file_path"`
	TokenField     int      `yaml:"token" json:"token"`
	TagField       int      `yaml:"index" json:"index"`
	Quotes         []string `yaml:"quotes" json:"quotes"`
	ExactNextBound bool     `yaml:"exact_next_bound" json:"exact_next_bound"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Name:       "default",
		TokenField: DefaultTokenField,
		TagField:   DefaultTagField,
		Quotes:     []string{DoubleQuote},
	}
}

func (cfg Configuration) Validate() error {
	if cfg.TokenField < 1 {
		return fmt.Errorf("%w: token field must be 1 or greater, got %d", ErrInvalidConfiguration, cfg.TokenField)
	}
	if cfg.TagField < 1 {
		return fmt.Errorf("%w: tag field must be 1 or greater, got %d", ErrInvalidConfiguration, cfg.TagField)
	}
	if len(cfg.Quotes) == 0 {
		return fmt.Errorf("%w: empty quote set", ErrInvalidConfiguration)
	}
	for _, quote := range cfg.Quotes {
		if quote == "" {
			return fmt.Errorf("%w: empty quote token", ErrInvalidConfiguration)
		}
	}
	return nil
}

func (cfg Configuration) IsQuote(token string) bool {
	for _, quote := range cfg.Quotes {
		if quote == token {
			return true
		}
	}

	return false
}

// LoadConfiguration reads a YAML profile on top of the defaults. Keys missing
// from the file keep their default values.
func LoadConfiguration(filePath string) (Configuration, error) {
	cfg := DefaultConfiguration()
	cfg.FilePath = filePath
	cfg.Name = strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

	buf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return Configuration{}, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, filePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", filePath, err)
	}

	return cfg, nil
}

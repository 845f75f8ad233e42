package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/bratpeki/bookgen/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	HeadingsConfig struct {
		Policy HeadingPolicy `yaml:"policy" validate:"gte=0"`
	}

	TOCConfig struct {
		Title       string              `yaml:"title" validate:"required_unless=Placement 0"`
		Placement   common.TOCPlacement `yaml:"placement" validate:"oneof=0 1 2"`
		Depth       int                 `yaml:"depth" validate:"min=0,max=6"`
		SelfHeading bool                `yaml:"self_heading"`
		IncludeSelf bool                `yaml:"include_self"`
		MaxEntries  int                 `yaml:"max_entries" validate:"min=0"`
	}

	AssetsConfig struct {
		Embed       bool             `yaml:"embed"`
		Missing     MissingAssetMode `yaml:"missing" validate:"gte=0"`
		ScaleWidth  int              `yaml:"scale_width" validate:"min=0"`
		JPEGQuality int              `yaml:"jpeg_quality" validate:"min=40,max=100"`
	}

	StyleConfig struct {
		Theme          common.Theme `yaml:"theme" validate:"gte=0"`
		StylesheetPath string       `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		Inline         bool         `yaml:"inline"`
	}

	DocumentConfig struct {
		Language              string         `yaml:"language" validate:"required,bcp47_language_tag"`
		Identifier            string         `yaml:"identifier" validate:"omitempty,uuid"`
		Indent                string         `yaml:"indent"`
		Dialect               common.Dialect `yaml:"dialect" validate:"gte=0"`
		Nesting               NestingMode    `yaml:"nesting" validate:"gte=0"`
		Compress              Compression    `yaml:"compress" validate:"gte=0"`
		OutputNameTemplate    string         `yaml:"output_name_template"`
		FileNameTransliterate bool           `yaml:"file_name_transliterate"`
		Headings              HeadingsConfig `yaml:"headings"`
		TOC                   TOCConfig      `yaml:"toc"`
		Assets                AssetsConfig   `yaml:"assets"`
		Style                 StyleConfig    `yaml:"style"`
	}

	ServeConfig struct {
		Bind      string       `yaml:"bind" validate:"required,hostname_port"`
		AuthToken SecretString `yaml:"auth_token"`
		Compress  bool         `yaml:"compress"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Serve     ServeConfig    `yaml:"serve"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
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
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
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

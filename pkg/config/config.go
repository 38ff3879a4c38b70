// Package config loads Helper settings from YAML or JSON files and the
// environment.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtag/pkg/doctype"
	"github.com/goliatone/go-formtag/pkg/escape"
	"github.com/goliatone/go-formtag/pkg/markup"
)

// Environment variables read by ApplyEnv.
const (
	EnvDocType  = "FORMTAG_DOCTYPE"
	EnvEncoding = "FORMTAG_ENCODING"
	EnvEscape   = "FORMTAG_ESCAPE"
)

// ErrEmpty is returned when a configuration file has no content.
var ErrEmpty = errors.New("config: file is empty")

// Config mirrors the Helper settings that can be declared up front.
type Config struct {
	// DocType accepts a name such as "html5" or "xhtml10-strict", or the
	// numeric identifier 1-11.
	DocType Name `json:"doctype" yaml:"doctype"`
	// Encoding is the character set of the default escaper.
	Encoding string `json:"encoding" yaml:"encoding"`
	// Escape set to false disables attribute escaping.
	Escape *bool `json:"escape" yaml:"escape"`
	// Defaults are the initial default field values.
	Defaults map[string]any `json:"defaults" yaml:"defaults"`
}

// Name is a string that also accepts bare numbers in JSON documents.
type Name string

// UnmarshalJSON accepts both strings and numbers.
func (n *Name) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Name(s)
		return nil
	}
	if string(data) == "null" {
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("config: doctype must be a string or number: %w", err)
	}
	*n = Name(num.String())
	return nil
}

// Load reads a configuration file. Files ending in .json are decoded as JSON,
// .yaml and .yml as YAML; anything else is tried as JSON first.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// LoadFS reads a configuration file from fsys.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a configuration document. ext selects the format and may be
// empty.
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, ErrEmpty
	}

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			cfg = Config{}
			if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
				return Config{}, errors.New("config: invalid JSON or YAML")
			}
		}
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. With no
// paths it loads ./.env when present.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		paths = []string{".env"}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}

// ApplyEnv overlays FORMTAG_DOCTYPE, FORMTAG_ENCODING and FORMTAG_ESCAPE.
func (c *Config) ApplyEnv() error {
	if value, ok := os.LookupEnv(EnvDocType); ok {
		c.DocType = Name(strings.TrimSpace(value))
	}
	if value, ok := os.LookupEnv(EnvEncoding); ok {
		c.Encoding = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv(EnvEscape); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvEscape, err)
		}
		c.Escape = &enabled
	}
	return nil
}

// Options converts the configuration into Helper options.
func (c Config) Options() ([]markup.Option, error) {
	d, err := doctype.Parse(string(c.DocType))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	opts := []markup.Option{markup.WithDocType(d)}
	if c.Encoding != "" {
		opts = append(opts, markup.WithEncoding(c.Encoding))
	}
	if c.Escape != nil && !*c.Escape {
		opts = append(opts, markup.WithEscaper(escape.Identity))
	}
	if len(c.Defaults) > 0 {
		opts = append(opts, markup.WithDefaults(c.Defaults))
	}
	return opts, nil
}

// NewHelper builds a Helper from the configuration plus any extra options.
func (c Config) NewHelper(extra ...markup.Option) (*markup.Helper, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return markup.New(append(opts, extra...)...)
}

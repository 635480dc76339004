package viewconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vitalvas/viewkit/views"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPolicy is returned for a missing_placeholder value that names
// no policy.
var ErrUnknownPolicy = errors.New("viewconfig: unknown placeholder policy")

// ErrUnknownFormat is returned when the file format can't be derived from
// the file extension.
var ErrUnknownFormat = errors.New("viewconfig: unknown config format")

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Config describes the views of an application.
type Config struct {
	// TitleRoot activates title management with the given prefix. When nil
	// title management only activates if Titles is non-empty.
	TitleRoot *string `yaml:"title_root,omitempty" toml:"title_root,omitempty"`

	// Routes maps a route template to a view name.
	Routes map[string]string `yaml:"routes,omitempty" toml:"routes,omitempty"`

	// Titles maps a view name to a title template.
	Titles map[string]string `yaml:"titles,omitempty" toml:"titles,omitempty"`

	// MissingPlaceholder is one of "keep" (default), "empty" or "error".
	MissingPlaceholder string `yaml:"missing_placeholder,omitempty" toml:"missing_placeholder,omitempty"`

	// AlwaysNavigate disables skipping navigation to the current route.
	AlwaysNavigate bool `yaml:"always_navigate,omitempty" toml:"always_navigate,omitempty"`
}

// Load reads the file at path. The format is taken from the extension:
// .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("viewconfig: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return cfg, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("viewconfig: decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("viewconfig: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("viewconfig: decode toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if _, err := cfg.Policy(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Policy returns the placeholder policy named by MissingPlaceholder.
func (c *Config) Policy() (views.PlaceholderPolicy, error) {
	switch strings.ToLower(c.MissingPlaceholder) {
	case "", "keep":
		return views.KeepPlaceholder, nil
	case "empty":
		return views.EmptyPlaceholder, nil
	case "error":
		return views.ErrorPlaceholder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, c.MissingPlaceholder)
}

// Apply configures r and registers the configured views.
func (c *Config) Apply(r *views.Router) error {
	policy, err := c.Policy()
	if err != nil {
		return err
	}

	if c.TitleRoot != nil {
		r.TitleRoot(*c.TitleRoot)
	}
	r.MissingPlaceholder(policy).SkipCurrent(!c.AlwaysNavigate)

	return r.RegisterViews(c.Routes, c.Titles)
}

// NewRouter returns a router configured from c.
func (c *Config) NewRouter() (*views.Router, error) {
	r := views.NewRouter()
	if err := c.Apply(r); err != nil {
		return nil, err
	}
	return r, nil
}

func formatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

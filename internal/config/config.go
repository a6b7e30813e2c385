// Package config loads colourmakr settings from defaults, an optional YAML
// file and COLOURMAKR_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/colourmakr/internal/colour"
	"github.com/jmylchreest/colourmakr/internal/export"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COLOURMAKR_"

// PreviewMode controls terminal colour swatches.
type PreviewMode string

// Preview modes.
const (
	PreviewAuto   PreviewMode = "auto"
	PreviewAlways PreviewMode = "always"
	PreviewNever  PreviewMode = "never"
)

// Config holds user settings. Zero values are not meaningful; start from
// Default.
type Config struct {
	AnalogousAngle     float64     `yaml:"analogous_angle"`
	MonochromaticCount int         `yaml:"monochromatic_count"`
	TintSteps          int         `yaml:"tint_steps"`
	SimilarCount       int         `yaml:"similar_count"`
	Format             string      `yaml:"format"`
	Preview            PreviewMode `yaml:"preview"`
	Metric             string      `yaml:"metric"`
	TemplateDir        string      `yaml:"template_dir"`

	// Source is the file the config was read from, or empty for defaults.
	Source string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	opts := colour.DefaultHarmonyOptions()
	cfg := &Config{
		AnalogousAngle:     opts.Angle,
		MonochromaticCount: opts.Count,
		TintSteps:          colour.DefaultTintSteps,
		SimilarCount:       5,
		Format:             string(export.FormatCSS),
		Preview:            PreviewAuto,
		Metric:             colour.MetricHexValue.String(),
	}
	if dir := Dir(); dir != "" {
		cfg.TemplateDir = filepath.Join(dir, "templates")
	}
	return cfg
}

// Dir returns the colourmakr configuration directory
// ($XDG_CONFIG_HOME/colourmakr on Linux), or empty if it cannot be determined.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "colourmakr")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. An empty path means DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			cfg.Source = path
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// No config file; defaults apply.
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overrides fields from COLOURMAKR_* variables.
func (c *Config) applyEnv() error {
	var errs []error

	if v := os.Getenv(EnvPrefix + "ANALOGOUS_ANGLE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %sANALOGOUS_ANGLE value: %w", EnvPrefix, err))
		} else {
			c.AnalogousAngle = f
		}
	}
	for name, dst := range map[string]*int{
		"MONOCHROMATIC_COUNT": &c.MonochromaticCount,
		"TINT_STEPS":          &c.TintSteps,
		"SIMILAR_COUNT":       &c.SimilarCount,
	} {
		v := os.Getenv(EnvPrefix + name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s%s value: %w", EnvPrefix, name, err))
			continue
		}
		*dst = n
	}
	if v := os.Getenv(EnvPrefix + "FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvPrefix + "PREVIEW"); v != "" {
		c.Preview = PreviewMode(v)
	}
	if v := os.Getenv(EnvPrefix + "METRIC"); v != "" {
		c.Metric = v
	}
	if v := os.Getenv(EnvPrefix + "TEMPLATE_DIR"); v != "" {
		c.TemplateDir = v
	}

	return errors.Join(errs...)
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error

	if c.AnalogousAngle <= 0 || c.AnalogousAngle > 180 {
		errs = append(errs, fmt.Errorf("analogous_angle must be in (0, 180], got %v", c.AnalogousAngle))
	}
	if c.MonochromaticCount < 1 || c.MonochromaticCount > 21 {
		errs = append(errs, fmt.Errorf("monochromatic_count must be between 1 and 21, got %d", c.MonochromaticCount))
	}
	if c.TintSteps < 1 || c.TintSteps > 20 {
		errs = append(errs, fmt.Errorf("tint_steps must be between 1 and 20, got %d", c.TintSteps))
	}
	if c.SimilarCount < 1 {
		errs = append(errs, fmt.Errorf("similar_count must be at least 1, got %d", c.SimilarCount))
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	switch c.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		errs = append(errs, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", c.Preview))
	}
	if _, ok := colour.ParseDistanceMetric(c.Metric); !ok {
		errs = append(errs, fmt.Errorf("invalid metric: %s (valid: hex, rgb)", c.Metric))
	}

	return errors.Join(errs...)
}

// DistanceMetric returns the parsed similarity metric.
func (c *Config) DistanceMetric() colour.DistanceMetric {
	m, _ := colour.ParseDistanceMetric(c.Metric)
	return m
}

// HarmonyOptions returns the harmony settings.
func (c *Config) HarmonyOptions() colour.HarmonyOptions {
	return colour.HarmonyOptions{Angle: c.AnalogousAngle, Count: c.MonochromaticCount}
}

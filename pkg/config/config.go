// Package config loads the cardform service configuration from a YAML file
// with CARDFORM_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CARDFORM_"

// Config captures the service level configuration.
type Config struct {
	Addr            string         `yaml:"addr"`
	BasePath        string         `yaml:"base_path"`
	Locale          string         `yaml:"locale"`
	ValidityYears   int            `yaml:"validity_years"`
	MemberPolicy    map[string]int `yaml:"member_policy"`
	MaxUploadBytes  int64          `yaml:"max_upload_bytes"`
	ShutdownTimeout time.Duration  `yaml:"shutdown_timeout"`
	Log             Log            `yaml:"log"`
	Theme           Theme          `yaml:"theme"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Theme carries renderer tokens, for example "imagepreview.class".
type Theme struct {
	Name   string            `yaml:"name"`
	Tokens map[string]string `yaml:"tokens"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:            ":8080",
		Locale:          "de-DE",
		ValidityYears:   5,
		MaxUploadBytes:  10 << 20,
		ShutdownTimeout: 5 * time.Second,
		Log:             Log{Level: "info", Format: "text"},
	}
}

// Load reads path (when non-empty) over the defaults and applies environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := cfg.decode(bytes.NewReader(data)); err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields from CARDFORM_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("ADDR", &c.Addr)
	str("BASE_PATH", &c.BasePath)
	str("LOCALE", &c.Locale)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("THEME", &c.Theme.Name)

	if v, ok := lookup(EnvPrefix + "VALIDITY_YEARS"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sVALIDITY_YEARS: %w", EnvPrefix, err)
		}
		c.ValidityYears = n
	}
	if v, ok := lookup(EnvPrefix + "MAX_UPLOAD_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sMAX_UPLOAD_BYTES: %w", EnvPrefix, err)
		}
		c.MaxUploadBytes = n
	}
	if v, ok := lookup(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sSHUTDOWN_TIMEOUT: %w", EnvPrefix, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate rejects values the components cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.ValidityYears <= 0 {
		errs = append(errs, fmt.Errorf("validity_years must be positive, got %d", c.ValidityYears))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes))
	}
	for memberType, years := range c.MemberPolicy {
		if years <= 0 {
			errs = append(errs, fmt.Errorf("member_policy[%s] must be positive, got %d", memberType, years))
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

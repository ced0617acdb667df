// Package config loads the settings of the anyref example client.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation and override failure.
var ErrInvalid = errors.New("config: invalid value")

// Log formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultSignatureCacheSize mirrors generics.DefaultSignatureCacheSize.
const DefaultSignatureCacheSize = 1024

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SignatureCache struct {
	Size uint32 `yaml:"size"`
}

// Config is the example client configuration. An empty Examples list runs
// every example.
type Config struct {
	Log            Log            `yaml:"log"`
	Examples       []string       `yaml:"examples"`
	SignatureCache SignatureCache `yaml:"signature_cache"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:            Log{Level: "info", Format: FormatAuto},
		SignatureCache: SignatureCache{Size: DefaultSignatureCacheSize},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode parses raw into cfg, rejecting unknown keys. Fields absent from raw
// keep their current value.
func Decode(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Set overrides the field named by key with value.
func (c *Config) Set(key, value string) error {
	switch key {
	case LogLevel:
		c.Log.Level = value
	case LogFormat:
		c.Log.Format = value
	case Examples:
		c.Examples = nil
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Examples = append(c.Examples, name)
			}
		}
	case SignatureCacheSize:
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, value, err)
		}
		c.SignatureCache.Size = uint32(n)
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
	}
	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if _, perr := zapcore.ParseLevel(c.Log.Level); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %s=%q", ErrInvalid, LogLevel, c.Log.Level))
	}
	switch c.Log.Format {
	case FormatAuto, FormatConsole, FormatJSON:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %s=%q", ErrInvalid, LogFormat, c.Log.Format))
	}
	for _, name := range c.Examples {
		if strings.TrimSpace(name) == "" {
			err = multierr.Append(err, fmt.Errorf("%w: %s contains an empty name", ErrInvalid, Examples))
			break
		}
	}
	if c.SignatureCache.Size == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %s must be positive", ErrInvalid, SignatureCacheSize))
	}
	return err
}

// Level returns the parsed log level, or info if it does not parse.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

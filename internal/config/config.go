package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "configs/config.toml"

type Config struct {
	Input struct {
		Path      string
		Delimiter string
	}
	Output struct {
		Path string
	}
	Server struct {
		Host                 string
		ReadTimeout          time.Duration `toml:"-"`
		WriteTimeout         time.Duration `toml:"-"`
		ReadHeaderTimeout    time.Duration `toml:"-"`
		StrReadTimeout       string        `toml:"read_timeout"`
		StrWriteTimeout      string        `toml:"write_timeout"`
		StrReadHeaderTimeout string        `toml:"read_header_timeout"`
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Input.Path = "Corp_Summary.csv"
	cfg.Input.Delimiter = ";"
	cfg.Output.Path = "Department_Report.csv"
	cfg.Server.Host = ":8080"
	cfg.Server.StrReadTimeout = "5s"
	cfg.Server.StrWriteTimeout = "10s"
	cfg.Server.StrReadHeaderTimeout = "2s"
	return cfg
}

// GetConfig loads the TOML file at path on top of Default.
// A missing file is not an error.
func GetConfig(path string, logger *slog.Logger) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Config file not found, using defaults", slog.String("path", path))
	case err != nil:
		logger.Error("Error read config file", slog.String("error", err.Error()))
		return nil, err
	default:
		if _, tomlErr := toml.Decode(string(data), cfg); tomlErr != nil {
			logger.Error("Error decode config file", slog.String("error", tomlErr.Error()))
			return nil, tomlErr
		}
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	logger.Info("Config is loaded", slog.String("input", cfg.Input.Path), slog.String("output", cfg.Output.Path))
	return cfg, nil
}

// resolve parses duration strings and checks the delimiter.
func (c *Config) resolve() error {
	var err error
	c.Server.ReadTimeout, err = time.ParseDuration(c.Server.StrReadTimeout)
	if err != nil {
		return fmt.Errorf("invalid read_timeout: %w", err)
	}
	c.Server.WriteTimeout, err = time.ParseDuration(c.Server.StrWriteTimeout)
	if err != nil {
		return fmt.Errorf("invalid write_timeout: %w", err)
	}
	c.Server.ReadHeaderTimeout, err = time.ParseDuration(c.Server.StrReadHeaderTimeout)
	if err != nil {
		return fmt.Errorf("invalid read_header_timeout: %w", err)
	}

	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if c.Input.Path == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path is required")
	}

	return nil
}

// Comma returns the configured field delimiter.
func (c *Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}

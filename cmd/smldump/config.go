package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arloliu/go-sml/logger"
	"github.com/arloliu/go-sml/obis"
	"github.com/arloliu/go-sml/sml"
)

var (
	errInvalidFormat = errors.New("invalid output format, should be one of text, json or yaml")
	errInvalidInput  = errors.New("invalid input mode, should be one of auto, hex or binary")
)

// config holds the settings shared by all commands.
type config struct {
	LogLevel      logger.Level
	Strict        bool
	MaxDepth      int
	DZGWorkaround bool
	Format        string
	Input         string
	MetricsFile   string
	Names         []obis.Info
}

func defaultConfig() config {
	return config{
		LogLevel:      logger.InfoLevel,
		Strict:        true,
		MaxDepth:      sml.DefaultMaxDepth,
		DZGWorkaround: true,
		Format:        "text",
		Input:         "auto",
	}
}

type fileConfig struct {
	LogLevel      string      `toml:"log_level"`
	Strict        bool        `toml:"strict"`
	MaxDepth      int         `toml:"max_depth"`
	DZGWorkaround bool        `toml:"dzg_workaround"`
	Format        string      `toml:"format"`
	Input         string      `toml:"input"`
	MetricsFile   string      `toml:"metrics_file"`
	OBIS          []obisEntry `toml:"obis"`
}

type obisEntry struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
	Unit uint8  `toml:"unit"`
}

// loadConfig reads a TOML file on top of the defaults. Keys that are not
// present in the file keep their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		level, err := logger.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}

	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}

	if meta.IsDefined("dzg_workaround") {
		cfg.DZGWorkaround = raw.DZGWorkaround
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}

	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}

	for _, entry := range raw.OBIS {
		code, err := obis.Parse(entry.Code)
		if err != nil {
			return config{}, fmt.Errorf("parse obis entry: %w", err)
		}
		cfg.Names = append(cfg.Names, obis.Info{Code: code, Name: entry.Name, Unit: obis.Unit(entry.Unit)})
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func (c config) validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", errInvalidFormat, c.Format)
	}

	switch c.Input {
	case "auto", "hex", "binary":
	default:
		return fmt.Errorf("%w: %q", errInvalidInput, c.Input)
	}

	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth should be positive, got %d", c.MaxDepth)
	}

	return nil
}

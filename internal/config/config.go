// Package config loads ucsroute settings from an optional YAML file.
//
// Resolution order: built-in defaults, then the YAML file (if any), then
// command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Graph controls how the edge list is loaded.
	Graph GraphConfig `yaml:"graph"`

	// Log controls the slog handler.
	Log LogConfig `yaml:"log"`

	// Output controls how routes are printed.
	Output OutputConfig `yaml:"output"`

	// Batch controls concurrent batch searches.
	Batch BatchConfig `yaml:"batch"`
}

// GraphConfig describes the edge-list resource.
type GraphConfig struct {
	File     string `yaml:"file"`
	Directed bool   `yaml:"directed"`
	Comment  string `yaml:"comment"`
}

// LogConfig mirrors the slog handler options.
type LogConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"`
	IncludeCaller bool   `yaml:"include_caller"`
}

// OutputConfig controls route rendering.
type OutputConfig struct {
	Separator    string `yaml:"separator"`
	Unit         string `yaml:"unit"`
	ShowExpanded bool   `yaml:"show_expanded"`
}

// BatchConfig controls RunBatch.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Graph: GraphConfig{
			Comment: "#",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Separator: " -> ",
			Unit:      "minutes",
		},
		Batch: BatchConfig{
			Concurrency: 0,
		},
	}
}

// Load reads path over the defaults and validates the result. An empty
// path returns the defaults. Unknown keys are rejected so that typos do
// not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if len([]rune(c.Graph.Comment)) > 1 {
		return fmt.Errorf("%w: graph.comment must be a single character, got %q", ErrInvalid, c.Graph.Comment)
	}
	if c.Graph.Comment == "," {
		return fmt.Errorf("%w: graph.comment cannot be the field separator", ErrInvalid)
	}
	if c.Output.Separator == "" {
		return fmt.Errorf("%w: output.separator is empty", ErrInvalid)
	}
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("%w: batch.concurrency %d", ErrInvalid, c.Batch.Concurrency)
	}

	return nil
}

// CommentRune returns the comment character for the loader, or 0 when
// comments are disabled.
func (g GraphConfig) CommentRune() rune {
	for _, r := range g.Comment {
		return r
	}

	return 0
}

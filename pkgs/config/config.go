// Package config loads the optional YAML run configuration: which file
// extensions a directory walk picks up, how wide the parse fan-out is,
// and what the exported artifacts are called.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/whtowbin/empaparse/pkgs/aggregate"
)

// Config is the full run configuration. Zero fields fall back to the
// defaults, so a config file only has to name what it changes.
type Config struct {
	// Extensions recognized by the directory walk (case-insensitive,
	// ".gz" peeled off first).
	Extensions []string `yaml:"extensions"`
	// Workers bounds the parse fan-out; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Output names the directory-mode artifacts.
	Output Output `yaml:"output"`
}

// Output holds the directory-mode artifact names. Dir defaults to the
// walked root itself.
type Output struct {
	Dir                  string `yaml:"dir"`
	StandardByElement    string `yaml:"standard_by_element"`
	XtalByElement        string `yaml:"xtal_by_element"`
	StandardCompositions string `yaml:"standard_compositions"`
	Summary              string `yaml:"summary"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Extensions: append([]string(nil), aggregate.DefaultExtensions...),
		Output: Output{
			StandardByElement:    "standard_by_element.csv",
			XtalByElement:        "xtal_by_element.csv",
			StandardCompositions: "standard_compositions.csv",
			Summary:              "summary.json",
		},
	}
}

// Load reads path and overlays it on the defaults. Unknown keys are an
// error; a typoed option should fail loudly, not be ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes strictly and fills in defaults for anything
// left unset.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	def := Default()
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}
	if cfg.Output.StandardByElement == "" {
		cfg.Output.StandardByElement = def.Output.StandardByElement
	}
	if cfg.Output.XtalByElement == "" {
		cfg.Output.XtalByElement = def.Output.XtalByElement
	}
	if cfg.Output.StandardCompositions == "" {
		cfg.Output.StandardCompositions = def.Output.StandardCompositions
	}
	if cfg.Output.Summary == "" {
		cfg.Output.Summary = def.Output.Summary
	}
	return cfg, nil
}

func unmarshalStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		// Empty config file: everything defaults
		return nil
	}
	return err
}

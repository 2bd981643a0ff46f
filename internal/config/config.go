package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"siren/pkg/interpreter"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the user's home directory by LoadDefault.
const FileName = ".siren.yaml"

// Config holds the user-tunable settings of the CLI and REPL.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file"`
	MaxCallDepth       int    `yaml:"max_call_depth"`
	NoColor            bool   `yaml:"no_color"`
	Verbose            bool   `yaml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".siren_history")
	}

	return Config{
		Prompt:             "siren> ",
		ContinuationPrompt: "  ...> ",
		HistoryFile:        history,
		MaxCallDepth:       interpreter.DefaultMaxCallDepth,
	}
}

// Load reads a YAML config file on top of the defaults. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	return decode(file, path)
}

// LoadDefault loads $HOME/.siren.yaml. A missing file yields the defaults.
func LoadDefault() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}

	cfg, err := Load(filepath.Join(home, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func decode(r io.Reader, path string) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.MaxCallDepth < 0 {
		return Config{}, fmt.Errorf("config: parse %s: max_call_depth must not be negative", path)
	}
	return cfg, nil
}

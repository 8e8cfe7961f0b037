package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/acronymcreator/internal/model"
)

// candidateNames lists the config file names probed in each search
// directory, in priority order.
var candidateNames = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.jsonc",
}

// Config is the parsed configuration file.
type Config struct {
	// Defaults overrides the built-in default options. Only the fields
	// present in the file take effect; absent fields keep the built-in
	// defaults, which is why the numeric and boolean fields are
	// pointers — nil means "not configured".
	Defaults Defaults `yaml:"defaults" json:"defaults"`

	// ExtraStopWords extends the default stop-word set. Words listed
	// here are excluded from acronym formation unless
	// --include-articles is given.
	ExtraStopWords []string `yaml:"extra-stop-words" json:"extraStopWords"`
}

// Defaults mirrors model.Options field by field, with pointer types
// for presence detection.
type Defaults struct {
	// Mode is the default extraction strategy ("first-letter" or
	// "syllable"). Empty means "not configured".
	Mode string `yaml:"mode" json:"mode"`

	// Lowercase sets the default output casing.
	Lowercase *bool `yaml:"lowercase" json:"lowercase"`

	// IncludeArticles sets the default stop-word filtering behavior.
	IncludeArticles *bool `yaml:"include-articles" json:"includeArticles"`

	// MinWordLength sets the default minimum word length filter.
	MinWordLength *int `yaml:"min-word-length" json:"minWordLength"`

	// MaxWords sets the default word count cap.
	MaxWords *int `yaml:"max-words" json:"maxWords"`
}

// Load resolves and parses the configuration file.
//
// If explicitPath is non-empty it is used directly, and a missing or
// unreadable file is an error — the user asked for that specific file.
// Otherwise the standard search directories are probed and the first
// existing candidate is parsed; if none exists, an empty Config is
// returned with an empty path and no error.
//
// The returned path is the file that was actually loaded, for verbose
// logging by the caller.
func Load(explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := parseFile(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicitPath, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range candidateNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := parseFile(path)
			if err != nil {
				return nil, "", err
			}
			return cfg, path, nil
		}
	}

	// No config file anywhere — that is the common case.
	return &Config{}, "", nil
}

// searchDirs returns the directories probed for a config file,
// following the XDG base directory convention with a ~/.config
// fallback, mirroring how most CLI tools resolve their configuration.
func searchDirs() []string {
	var dirs []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "acronymcreator"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "acronymcreator"))
	}

	return dirs
}

// parseFile reads and unmarshals a single config file. The format is
// chosen by extension: YAML for .yaml/.yml, JSONC for .json/.jsonc.
func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".json", ".jsonc":
		// jsonc.ToJSON strips comments and trailing commas, producing
		// standard JSON for encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (expected .yaml, .yml, .json, or .jsonc)", ext)
	}

	return &cfg, nil
}

// Apply layers the configured defaults onto opts and returns the
// result. Fields absent from the config keep their existing values,
// so the caller can start from model.DefaultOptions() and apply flag
// overrides afterwards.
func (c *Config) Apply(opts model.Options) (model.Options, error) {
	if c.Defaults.Mode != "" {
		mode, err := model.ParseMode(c.Defaults.Mode)
		if err != nil {
			return opts, fmt.Errorf("invalid mode in config file: %w", err)
		}
		opts.Mode = mode
	}
	if c.Defaults.Lowercase != nil {
		opts.Lowercase = *c.Defaults.Lowercase
	}
	if c.Defaults.IncludeArticles != nil {
		opts.IncludeArticles = *c.Defaults.IncludeArticles
	}
	if c.Defaults.MinWordLength != nil {
		opts.MinWordLength = *c.Defaults.MinWordLength
	}
	if c.Defaults.MaxWords != nil {
		opts.MaxWords = *c.Defaults.MaxWords
	}
	return opts, nil
}

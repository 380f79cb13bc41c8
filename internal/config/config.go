// Package config loads csvdoc CLI settings from JWCC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/tailscale/hujson"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".csvdoc.json"

var (
	errConfigInvalid      = errors.New("invalid config")
	errConfigFileNotFound = errors.New("config file not found")
	errConfigFileRead     = errors.New("cannot read config file")
	errDelimiterInvalid   = errors.New("delimiter must be a single character")
)

// Config holds the CLI defaults. Zero values mean "not set".
type Config struct {
	// Delimiter overrides delimiter detection on input.
	Delimiter string `json:"delimiter,omitempty"`
	// OutDelimiter changes the delimiter used on output.
	OutDelimiter string `json:"out_delimiter,omitempty"` //nolint:tagliatelle // snake_case for config file
	CRLF         bool   `json:"crlf,omitempty"`
	QuoteAll     bool   `json:"quote_all,omitempty"`  //nolint:tagliatelle // snake_case for config file
	DropEmpty    bool   `json:"drop_empty,omitempty"` //nolint:tagliatelle // snake_case for config file
}

// Sources records which files contributed to a Config.
type Sources struct {
	Project  string // Path to the project config if loaded, empty otherwise
	Explicit string // Path to the --config file if loaded, empty otherwise
}

// Load merges, lowest precedence first: defaults, FileName in workDir, then the
// explicit configPath when non-empty. A missing project file is not an error; a
// missing explicit file is.
func Load(workDir, configPath string) (Config, Sources, error) {
	var (
		cfg     Config
		sources Sources
	)

	projectPath := filepath.Join(workDir, FileName)
	projectCfg, loaded, err := loadFile(projectPath, false)
	if err != nil {
		return Config{}, Sources{}, err
	}
	if loaded {
		sources.Project = projectPath
		cfg = Merge(cfg, projectCfg)
	}

	if configPath != "" {
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(workDir, configPath)
		}
		explicitCfg, _, err := loadFile(configPath, true)
		if err != nil {
			return Config{}, Sources{}, err
		}
		sources.Explicit = configPath
		cfg = Merge(cfg, explicitCfg)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, Sources{}, err
	}
	return cfg, sources, nil
}

// Merge overlays the set fields of overlay onto base.
func Merge(base, overlay Config) Config {
	if overlay.Delimiter != "" {
		base.Delimiter = overlay.Delimiter
	}
	if overlay.OutDelimiter != "" {
		base.OutDelimiter = overlay.OutDelimiter
	}
	base.CRLF = base.CRLF || overlay.CRLF
	base.QuoteAll = base.QuoteAll || overlay.QuoteAll
	base.DropEmpty = base.DropEmpty || overlay.DropEmpty
	return base
}

// Validate checks that delimiters are single characters.
func Validate(cfg Config) error {
	for _, d := range []string{cfg.Delimiter, cfg.OutDelimiter} {
		if d != "" && utf8.RuneCountInString(d) != 1 {
			return fmt.Errorf("%w: %w: %q", errConfigInvalid, errDelimiterInvalid, d)
		}
	}
	return nil
}

// Rune returns the single rune of a validated delimiter string, or 0 when unset.
func Rune(d string) rune {
	if d == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(d)
	return r
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", errConfigFileNotFound, path)
			}
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("%w: %s: %w", errConfigFileRead, path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	return cfg, true, nil
}

// Parse decodes JWCC (JSON with comments and trailing commas).
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}

// Format returns the config as indented JSON.
func Format(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}
	return string(data), nil
}

// Package config loads espacy configuration from layered JSONC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Error variables for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrCachePathEmpty     = errors.New("cache path cannot be empty")
)

// FileName is the default project config file name.
const FileName = ".espacy.json"

// Defaults.
const (
	DefaultCachePath   = ".espacy/cache.txt"
	DefaultListen      = "127.0.0.1:8080"
	DefaultFallbackTag = "X"
)

// Tagger selects and configures the external tagger.
type Tagger struct {
	Command     []string `json:"command,omitempty"`
	Lexicon     string   `json:"lexicon,omitempty"`
	FallbackTag string   `json:"fallback_tag,omitempty"`
}

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	CachePath   string   `json:"cache_path"`
	Tagger      Tagger   `json:"tagger"`
	Delimiters  []string `json:"delimiters,omitempty"`
	Listen      string   `json:"listen,omitempty"`
	CORSOrigins []string `json:"cors_origins,omitempty"`

	// Resolved (computed, not serialized)
	EffectiveCwd string  `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	CachePathAbs string  `json:"-"` // Absolute path to the cache table
	LexiconAbs   string  `json:"-"` // Absolute path to the lexicon, if any
	Sources      Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		CachePath:   DefaultCachePath,
		Tagger:      Tagger{FallbackTag: DefaultFallbackTag},
		Listen:      DefaultListen,
		CORSOrigins: []string{"*"},
	}
}

// LoadInput holds the inputs for [Load].
type LoadInput struct {
	WorkDirOverride   string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath        string            // -c/--config flag value
	CachePathOverride string            // --cache flag value
	HasCacheOverride  bool              // --cache was given, even if empty
	Env               map[string]string // environment variables
}

// globalPath returns $XDG_CONFIG_HOME/espacy/config.json, falling back to
// ~/.config/espacy/config.json, or "" when neither can be determined.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "espacy", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "espacy", "config.json")
	}

	return ""
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config
// 3. Project config file (.espacy.json, if exists)
// 4. Explicit config file via ConfigPath (must exist)
// 5. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := Default()

	if path := globalPath(input.Env); path != "" {
		globalCfg, loaded, loadErr := loadFile(path, false)
		if loadErr != nil {
			return Config{}, loadErr
		}

		if loaded {
			cfg = merge(cfg, globalCfg)
			cfg.Sources.Global = path
		}
	}

	projectCfg, projectPath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	if projectPath != "" {
		cfg = merge(cfg, projectCfg)
		cfg.Sources.Project = projectPath
	}

	if input.HasCacheOverride {
		if input.CachePathOverride == "" {
			return Config{}, ErrCachePathEmpty
		}

		cfg.CachePath = input.CachePathOverride
	}

	cfg.EffectiveCwd = workDir
	cfg.CachePathAbs = resolve(workDir, cfg.CachePath)

	if cfg.Tagger.Lexicon != "" {
		cfg.LexiconAbs = resolve(workDir, cfg.Tagger.Lexicon)
	}

	return cfg, nil
}

func resolve(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

// loadProject loads the explicit config file or the default project file.
// Returns the config and the path it came from ("" when nothing was loaded).
func loadProject(workDir, configPath string) (Config, string, error) {
	if configPath == "" {
		path := filepath.Join(workDir, FileName)

		cfg, loaded, err := loadFile(path, false)
		if err != nil || !loaded {
			return Config{}, "", err
		}

		return cfg, path, nil
	}

	path := resolve(workDir, configPath)

	_, statErr := os.Stat(path)
	if statErr != nil {
		return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
	}

	cfg, _, err := loadFile(path, true)
	if err != nil {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadFile loads a config file. If mustExist is false, a missing file is
// reported as not loaded.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

// Parse decodes JSONC config data. An explicitly empty cache_path is an
// error; omitted fields stay zero.
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["cache_path"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return Config{}, ErrCachePathEmpty
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.CachePath != "" {
		base.CachePath = overlay.CachePath
	}

	if len(overlay.Tagger.Command) > 0 {
		base.Tagger.Command = overlay.Tagger.Command
	}

	if overlay.Tagger.Lexicon != "" {
		base.Tagger.Lexicon = overlay.Tagger.Lexicon
	}

	if overlay.Tagger.FallbackTag != "" {
		base.Tagger.FallbackTag = overlay.Tagger.FallbackTag
	}

	if len(overlay.Delimiters) > 0 {
		base.Delimiters = overlay.Delimiters
	}

	if overlay.Listen != "" {
		base.Listen = overlay.Listen
	}

	if len(overlay.CORSOrigins) > 0 {
		base.CORSOrigins = overlay.CORSOrigins
	}

	return base
}

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/tailscale/hujson"
)

// Color modes for terminal output.
const (
	ColorNever  = "never"
	ColorAlways = "always"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Fixtures string `json:"fixtures,omitempty"`
	Color    string `json:"color,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
	History  string `json:"history,omitempty"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	FixturesAbs  string `json:"-"` // Absolute fixtures path; empty means built-in fixtures
	HistoryAbs   string `json:"-"` // Absolute REPL history path; empty disables history

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
	DotEnv  string // Path to .env file if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Color:    ColorNever,
		LogLevel: logrus.WarnLevel.String(),
	}
}

// ColorEnabled reports whether owner cells get ANSI colors.
func (c Config) ColorEnabled() bool {
	return c.Color == ColorAlways
}

// File names looked up in the working directory.
const (
	ConfigFileName = ".prodlist.json"
	DotEnvFileName = ".env"
	historyName    = ".prodlist_history"
)

// Environment variables overriding config file values.
const (
	EnvFixtures = "PRODLIST_FIXTURES"
	EnvColor    = "PRODLIST_COLOR"
	EnvLogLevel = "PRODLIST_LOG_LEVEL"
	EnvHistory  = "PRODLIST_HISTORY"
)

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/prodlist/config.json if set, otherwise ~/.config/prodlist/config.json.
// Returns empty string if home directory cannot be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "prodlist", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "prodlist", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Overrides       Config            // global CLI flag values; empty fields mean no override
	Env             map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/prodlist/config.json or $XDG_CONFIG_HOME/prodlist/config.json)
// 3. Project config file at default location (.prodlist.json, if exists)
// 4. Explicit config file via configPath (replaces 3)
// 5. Environment, with a .env file in the working directory below the real environment
// 6. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	env, dotEnvPath, err := loadEnv(workDir, input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.DotEnv = dotEnvPath
	cfg = mergeConfig(cfg, configFromEnv(env))
	cfg = mergeConfig(cfg, input.Overrides)

	validateErr := validateConfig(cfg)
	if validateErr != nil {
		return Config{}, validateErr
	}

	cfg.EffectiveCwd = workDir
	cfg.FixturesAbs = resolvePath(workDir, cfg.Fixtures)

	if cfg.History != "" {
		cfg.HistoryAbs = resolvePath(workDir, cfg.History)
	} else if home := input.Env["HOME"]; home != "" {
		cfg.HistoryAbs = filepath.Join(home, historyName)
	}

	return cfg, nil
}

func resolvePath(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workDir, path)
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (Config, string, error) {
	globalCfgPath := getGlobalConfigPath(env)
	if globalCfgPath == "" {
		return Config{}, "", nil
	}

	globalCfg, loaded, err := loadConfigFile(globalCfgPath, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return globalCfg, globalCfgPath, nil
}

// loadProjectConfig loads the project config file (.prodlist.json) or an explicit config file.
// Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	cfgFile := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if configPath != "" {
		cfgFile = resolvePath(workDir, configPath)
		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	fileCfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return fileCfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, whether file was loaded, and any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

// loadEnv returns env with the working directory's .env file merged beneath
// it. Variables already present in env win.
func loadEnv(workDir string, env map[string]string) (map[string]string, string, error) {
	merged := make(map[string]string, len(env))

	path := filepath.Join(workDir, DotEnvFileName)

	_, statErr := os.Stat(path)
	if statErr == nil {
		fileEnv, err := godotenv.Read(path)
		if err != nil {
			return nil, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
		}

		for k, v := range fileEnv {
			merged[k] = v
		}
	} else {
		path = ""
	}

	for k, v := range env {
		merged[k] = v
	}

	return merged, path, nil
}

func configFromEnv(env map[string]string) Config {
	return Config{
		Fixtures: env[EnvFixtures],
		Color:    env[EnvColor],
		LogLevel: env[EnvLogLevel],
		History:  env[EnvHistory],
	}
}

func mergeConfig(base, overlay Config) Config {
	if overlay.Fixtures != "" {
		base.Fixtures = overlay.Fixtures
	}

	if overlay.Color != "" {
		base.Color = overlay.Color
	}

	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	if overlay.History != "" {
		base.History = overlay.History
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.Color != ColorNever && cfg.Color != ColorAlways {
		return fmt.Errorf("%w: %q (want %s|%s)", ErrInvalidColor, cfg.Color, ColorNever, ColorAlways)
	}

	_, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}

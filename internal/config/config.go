package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/validate"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xpchart/xpchart/internal/skills"
	"github.com/xpchart/xpchart/internal/temple"
)

// EnvPrefix prefixes every environment override, e.g. XPCHART_API_BASE_URL.
const EnvPrefix = "XPCHART"

// Config holds all application configuration.
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Chart ChartConfig `mapstructure:"chart"`
	Log   LogConfig   `mapstructure:"log"`
}

// APIConfig configures the stats API client.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required|fullUrl"`

	// TimeWindow is how many seconds of history to request.
	TimeWindow int64 `mapstructure:"time_window" validate:"required|min:1"`

	UserAgent string `mapstructure:"user_agent"`
}

// ChartConfig configures the chart view.
type ChartConfig struct {
	// SecondarySkill is always drawn as the comparison overlay.
	SecondarySkill string `mapstructure:"secondary_skill" validate:"required"`

	// DefaultSkill is preselected on startup. Empty means no selection.
	DefaultSkill string `mapstructure:"default_skill"`
}

// LogConfig configures the file logger. The terminal is owned by the UI,
// so logs never go to stdout or stderr.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,disabled"`

	// File is the log path. Empty disables logging.
	File string `mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:    temple.DefaultBaseURL,
			TimeWindow: temple.UnboundedWindow,
			UserAgent:  "xpchart",
		},
		Chart: ChartConfig{
			SecondarySkill: skills.Hunter.String(),
		},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"api-url":   "api.base_url",
	"window":    "api.time_window",
	"secondary": "chart.secondary_skill",
	"skill":     "chart.default_skill",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then XPCHART_* environment variables, then
// any flags in fs that were set explicitly.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.time_window", d.API.TimeWindow)
	v.SetDefault("api.user_agent", d.API.UserAgent)
	v.SetDefault("chart.secondary_skill", d.Chart.SecondarySkill)
	v.SetDefault("chart.default_skill", d.Chart.DefaultSkill)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Validate checks field rules and that skill names exist in the catalog.
func (c Config) Validate() error {
	for _, section := range []any{&c.API, &c.Chart, &c.Log} {
		v := validate.Struct(section)
		if !v.Validate() {
			return fmt.Errorf("invalid config: %w", v.Errors)
		}
	}

	if _, err := skills.Lookup(c.Chart.SecondarySkill); err != nil {
		return fmt.Errorf("invalid config: chart.secondary_skill: %w", err)
	}
	if c.Chart.DefaultSkill != "" {
		if _, err := skills.Lookup(c.Chart.DefaultSkill); err != nil {
			return fmt.Errorf("invalid config: chart.default_skill: %w", err)
		}
	}
	return nil
}

// Secondary returns the parsed secondary skill. Call after Validate.
func (c Config) Secondary() skills.Skill {
	s, err := skills.Lookup(c.Chart.SecondarySkill)
	if err != nil {
		return skills.Hunter
	}
	return s
}

// DefaultSelection returns the parsed default skill, if one is configured.
func (c Config) DefaultSelection() (skills.Skill, bool) {
	if c.Chart.DefaultSkill == "" {
		return 0, false
	}
	s, err := skills.Lookup(c.Chart.DefaultSkill)
	if err != nil {
		return 0, false
	}
	return s, true
}

// DefaultLogPath resolves the log file path in priority order:
// 1. $XDG_STATE_HOME/xpchart/xpchart.log
// 2. ~/.local/state/xpchart/xpchart.log
// It returns "" when no home directory can be found.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "xpchart", "xpchart.log")
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

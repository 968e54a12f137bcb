// Package config holds the user-editable chart configuration, persisted
// as YAML in the user scope with environment variables as read-only
// overrides at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChartConfig controls the angle axis and chart appearance.
type ChartConfig struct {
	Orientation string  `yaml:"orientation"` // "outer" | "inner"
	TickSize    float64 `yaml:"tick_size"`
	AxisLine    string  `yaml:"axis_line"` // "polygon" | "circle"
	StartAngle  float64 `yaml:"start_angle"`

	ShowAxisLine  bool `yaml:"show_axis_line"`
	ShowTickLines bool `yaml:"show_tick_lines"`
	ShowLabels    bool `yaml:"show_labels"`
}

// StyleConfig holds terminal colors used by the renderer.
type StyleConfig struct {
	Foreground string   `yaml:"foreground"`
	Dim        string   `yaml:"dim"`
	Accent     string   `yaml:"accent"`
	Series     []string `yaml:"series"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Chart         ChartConfig   `yaml:"chart"`
	Style         StyleConfig   `yaml:"style"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Chart: ChartConfig{
			Orientation:   "outer",
			TickSize:      8,
			AxisLine:      "polygon",
			StartAngle:    90,
			ShowAxisLine:  true,
			ShowTickLines: true,
			ShowLabels:    true,
		},
		Style: StyleConfig{
			Foreground: "#E6E6E6",
			Dim:        "#6B7280",
			Accent:     "#7C3AED",
			Series:     []string{"#7C3AED", "#10B981", "#F59E0B", "#EF4444"},
		},
		Logging: LoggingConfig{Level: "info", File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvOrientation = "POLAR_ORIENTATION"
	EnvTickSize    = "POLAR_TICK_SIZE"
	EnvAxisLine    = "POLAR_AXIS_LINE"
	EnvStartAngle  = "POLAR_START_ANGLE"
	EnvLogLevel    = "POLAR_LOG_LEVEL"
	EnvLogFile     = "POLAR_LOG_FILE"
)

// Path returns the per-user config file path.
func Path() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "polarchart")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "polarchart")
	default:
		base = filepath.Join(os.Getenv("HOME"), ".config", "polarchart")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and
// merges environment overrides on top.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Chart.Orientation != "" {
		dst.Chart.Orientation = strings.ToLower(strings.TrimSpace(src.Chart.Orientation))
	}
	if src.Chart.TickSize != 0 {
		dst.Chart.TickSize = src.Chart.TickSize
	}
	if src.Chart.AxisLine != "" {
		dst.Chart.AxisLine = strings.ToLower(strings.TrimSpace(src.Chart.AxisLine))
	}
	if src.Chart.StartAngle != 0 {
		dst.Chart.StartAngle = src.Chart.StartAngle
	}
	// booleans: copy directly from the file so user preferences persist
	dst.Chart.ShowAxisLine = src.Chart.ShowAxisLine
	dst.Chart.ShowTickLines = src.Chart.ShowTickLines
	dst.Chart.ShowLabels = src.Chart.ShowLabels
	if src.Style.Foreground != "" {
		dst.Style.Foreground = src.Style.Foreground
	}
	if src.Style.Dim != "" {
		dst.Style.Dim = src.Style.Dim
	}
	if src.Style.Accent != "" {
		dst.Style.Accent = src.Style.Accent
	}
	if len(src.Style.Series) > 0 {
		dst.Style.Series = src.Style.Series
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvOrientation)); v != "" {
		cfg.Chart.Orientation = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTickSize)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Chart.TickSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvAxisLine)); v != "" {
		cfg.Chart.AxisLine = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvStartAngle)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Chart.StartAngle = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"

	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

// File is the optional on-disk config (~/.daily/config.json).
type File struct {
	TUI      *TUIConfig `json:"tui,omitempty"`
	LogFile  string     `json:"logFile,omitempty"`
	LogLevel string     `json:"logLevel,omitempty"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme string `json:"theme,omitempty"`
	// Glyphs is unicode|ascii.
	Glyphs   string `json:"glyphs,omitempty"`
	Clock24h *bool  `json:"clock24h,omitempty"`
}

// Config is the effective configuration: defaults, then the config file, then
// the environment. CLI flags are applied by the caller.
type Config struct {
	Theme    string        `env:"DAILY_TUI_THEME" json:"theme"`
	Glyphs   string        `env:"DAILY_TUI_GLYPHS" json:"glyphs"`
	LogFile  string        `env:"DAILY_TUI_DEBUG_LOG" json:"logFile,omitempty"`
	LogLevel string        `env:"DAILY_LOG_LEVEL" json:"logLevel"`
	Clock24h bool          `env:"DAILY_CLOCK_24H" json:"clock24h"`
	Tick     time.Duration `env:"DAILY_CLOCK_TICK" json:"tick"`
	NoColor  bool          `json:"noColor"`

	// Source is the config file that was read, if any.
	Source string `json:"source,omitempty"`
}

type LoadOptions struct {
	// Path overrides the config file location.
	Path string
	// EnvFile is an optional dotenv file; it never overrides variables already set.
	EnvFile string
}

func Defaults() Config {
	return Config{
		Theme:    ThemeAuto,
		Glyphs:   GlyphsUnicode,
		LogLevel: "info",
		Tick:     time.Second,
	}
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.daily).
	if v := strings.TrimSpace(os.Getenv("DAILY_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".daily"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ReadFile reads path. A missing file yields an empty File.
func ReadFile(path string) (*File, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, false, nil
		}
		return nil, false, errors.Wrapf(err, "read config %s", path)
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, false, errors.Wrapf(err, "parse config %s", path)
	}
	return &f, true, nil
}

func Load(opts LoadOptions) (Config, error) {
	cfg := Defaults()

	if p := strings.TrimSpace(opts.EnvFile); p != "" {
		if err := godotenv.Load(p); err != nil {
			return cfg, errors.Wrapf(err, "load env file %s", p)
		}
	}

	path := strings.TrimSpace(opts.Path)
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, errors.Wrap(err, "resolve config path")
		}
		path = p
	}
	f, found, err := ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if found {
		cfg.apply(f)
		cfg.Source = path
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse environment")
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		cfg.NoColor = true
	}
	cfg.normalize()
	return cfg, nil
}

// Overrides holds command-line values; nil fields were not given.
type Overrides struct {
	Theme    *string
	Glyphs   *string
	Clock24h *bool
}

// Override applies command-line values on top of c, the last layer.
func (c Config) Override(o Overrides) Config {
	if o.Theme != nil {
		c.Theme = *o.Theme
	}
	if o.Glyphs != nil {
		c.Glyphs = *o.Glyphs
	}
	if o.Clock24h != nil {
		c.Clock24h = *o.Clock24h
	}
	c.normalize()
	return c
}

func (c *Config) apply(f *File) {
	if f == nil {
		return
	}
	if f.LogFile != "" {
		c.LogFile = f.LogFile
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.TUI == nil {
		return
	}
	if f.TUI.Theme != "" {
		c.Theme = f.TUI.Theme
	}
	if f.TUI.Glyphs != "" {
		c.Glyphs = f.TUI.Glyphs
	}
	if f.TUI.Clock24h != nil {
		c.Clock24h = *f.TUI.Clock24h
	}
}

// normalize lowercases enum-like values and falls back to defaults for
// unknown ones.
func (c *Config) normalize() {
	d := Defaults()
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		c.Theme = d.Theme
	}
	c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	switch c.Glyphs {
	case GlyphsUnicode, GlyphsASCII:
	case "utf8":
		c.Glyphs = GlyphsUnicode
	default:
		c.Glyphs = d.Glyphs
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Tick <= 0 {
		c.Tick = d.Tick
	}
}

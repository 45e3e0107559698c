package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/folio/internal/constants"
)

type Config struct {
	UI      UIConfig      `toml:"ui"`
	Scroll  ScrollConfig  `toml:"scroll"`
	Gallery GalleryConfig `toml:"gallery"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Theme      string `toml:"theme"`
	Mode       string `toml:"mode"`
}

// ScrollConfig tunes the drag scrollers. Scroll offsets are never saved.
type ScrollConfig struct {
	WheelSpeed  float64 `toml:"wheel_speed"`
	SmoothWheel bool    `toml:"smooth_wheel"`
	Friction    float64 `toml:"friction"`
}

type GalleryConfig struct {
	Dir   string `toml:"dir"`
	Title string `toml:"title"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1600,
			Height:     1000,
			Theme:      "dark",
			Mode:       "catalog",
		},
		Scroll: ScrollConfig{
			WheelSpeed:  1.0,
			SmoothWheel: true,
			Friction:    0.94,
		},
		Gallery: GalleryConfig{
			Dir: ".",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, constants.AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from ConfigPath. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		c.UI.Width, c.UI.Height = def.UI.Width, def.UI.Height
	}
	if c.Scroll.WheelSpeed <= 0 {
		c.Scroll.WheelSpeed = def.Scroll.WheelSpeed
	}
	if c.Scroll.Friction <= 0 || c.Scroll.Friction >= 1 {
		c.Scroll.Friction = def.Scroll.Friction
	}
	if c.Gallery.Dir == "" {
		c.Gallery.Dir = def.Gallery.Dir
	}
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

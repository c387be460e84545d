// Package config loads the application TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration.
type Config struct {
	Window   Window   `toml:"window"`
	Typeface Typeface `toml:"typeface"`
	Suggest  Suggest  `toml:"suggest"`
	Scene    Scene    `toml:"scene"`
	Log      Log      `toml:"log"`
}

// Window controls the host window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
}

// Typeface controls the label typeface asset.
//
// Source is a file path or an http(s) URL; empty means the bundled face.
type Typeface struct {
	Source string  `toml:"source"`
	SizePx float64 `toml:"size_px"`
}

// Suggest controls the priority-suggestion call.
//
// The API key is read from the environment variable named by APIKeyEnv and
// is never stored in the file.
type Suggest struct {
	Model     string `toml:"model"`
	BaseURL   string `toml:"base_url"`
	APIKeyEnv string `toml:"api_key_env"`
	MaxTokens int    `toml:"max_tokens"`
}

// APIKey resolves the configured environment variable.
func (s Suggest) APIKey() string {
	if s.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.APIKeyEnv)
}

// Scene controls label grid placement and the camera.
type Scene struct {
	SpacingX    float64 `toml:"spacing_x"`
	SpacingY    float64 `toml:"spacing_y"`
	CameraDist  float64 `toml:"camera_dist"`
	DepthOffset float64 `toml:"depth_offset"`
}

// Log controls diagnostics.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Driftboard",
			Width:  480,
			Height: 360,
			Scale:  2,
		},
		Typeface: Typeface{
			Source: "",
			SizePx: 28,
		},
		Suggest: Suggest{
			Model:     "gpt-4o-mini",
			APIKeyEnv: "DRIFTBOARD_API_KEY",
			MaxTokens: 8,
		},
		Scene: Scene{
			SpacingX:    1.6,
			SpacingY:    0.9,
			CameraDist:  6,
			DepthOffset: 0.3,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the TOML file at path on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = d.Window.Scale
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Typeface.SizePx <= 0 {
		c.Typeface.SizePx = d.Typeface.SizePx
	}
	if c.Suggest.Model == "" {
		c.Suggest.Model = d.Suggest.Model
	}
	if c.Suggest.APIKeyEnv == "" {
		c.Suggest.APIKeyEnv = d.Suggest.APIKeyEnv
	}
	if c.Suggest.MaxTokens <= 0 {
		c.Suggest.MaxTokens = d.Suggest.MaxTokens
	}
	if c.Scene.SpacingX <= 0 {
		c.Scene.SpacingX = d.Scene.SpacingX
	}
	if c.Scene.SpacingY <= 0 {
		c.Scene.SpacingY = d.Scene.SpacingY
	}
	if c.Scene.CameraDist <= 0 {
		c.Scene.CameraDist = d.Scene.CameraDist
	}
	if c.Scene.DepthOffset < 0 {
		c.Scene.DepthOffset = d.Scene.DepthOffset
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

func (c *Config) validate() error {
	if c.Window.Width < 160 || c.Window.Height < 120 {
		return fmt.Errorf("config: window %dx%d below minimum 160x120", c.Window.Width, c.Window.Height)
	}
	return nil
}

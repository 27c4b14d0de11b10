package utils

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/learngl/examples/platform"
	"github.com/pelletier/go-toml/v2"
)

// Config is shared by every sample. Values come from the defaults, then an
// optional TOML file, then command line flags.
type Config struct {
	Backend string `toml:"backend"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	VSync   bool   `toml:"vsync"`

	// Samples is the window's multisample count. SamplesUnset leaves the
	// choice to the sample; 0 disables multisampling.
	Samples int `toml:"samples"`

	AssetDir         string `toml:"asset_dir"`
	FallbackTextures bool   `toml:"fallback_textures"`

	LogLevel string `toml:"log_level"`

	SaveImages    bool   `toml:"save_images"`
	ScreenshotDir string `toml:"screenshot_dir"`
	// Frames stops the sample after that many frames. Zero runs until the
	// window is closed.
	Frames int `toml:"frames"`
}

const SamplesUnset = -1

func DefaultConfig() Config {
	return Config{
		Backend:          "sdl2",
		Width:            800,
		Height:           600,
		Samples:          SamplesUnset,
		VSync:            true,
		AssetDir:         "assets",
		FallbackTextures: true,
		LogLevel:         "info",
		ScreenshotDir:    ".",
	}
}

// LoadConfigFile overlays the settings in the TOML file at path onto cfg.
// Keys the file leaves out keep their current value; unknown keys are an
// error.
func LoadConfigFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer file.Close()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.Newf("config %s: %s", path, strict.String())
		}
		return errors.Wrapf(err, "config %s", path)
	}
	return nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Newf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Samples < SamplesUnset {
		return errors.Newf("invalid sample count %d", c.Samples)
	}
	if c.Frames < 0 {
		return errors.Newf("invalid frame limit %d", c.Frames)
	}
	return nil
}

// SampleCount is the configured sample count, or fallback when none was
// configured.
func (c Config) SampleCount(fallback int) int {
	if c.Samples == SamplesUnset {
		return fallback
	}
	return c.Samples
}

func (c Config) windowConfig(title string) platform.Config {
	window := platform.DefaultConfig(title)
	window.Width = c.Width
	window.Height = c.Height
	window.Samples = c.SampleCount(0)
	window.VSync = c.VSync
	return window
}

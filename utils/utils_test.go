package utils

import (
	"bytes"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithArgs(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var got Config
	app := newApp("test_sample", func(cfg Config) error {
		got = cfg
		return nil
	})
	err := app.Run(append([]string{"test_sample"}, args...))
	return got, err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := runWithArgs(t)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "sdl2", cfg.Backend)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
backend = "glfw"
width = 1280
fallback_textures = false
frames = 10
`)
	cfg, err := runWithArgs(t, "--config", path)
	require.NoError(t, err)

	assert.Equal(t, "glfw", cfg.Backend)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.False(t, cfg.FallbackTextures)
	assert.Equal(t, 10, cfg.Frames)
	assert.True(t, cfg.VSync)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, `
backend = "glfw"
width = 1280
vsync = true
log_level = "debug"
`)
	cfg, err := runWithArgs(t, "--config", path, "--width", "640", "--vsync=false", "--save-images")
	require.NoError(t, err)

	assert.Equal(t, "glfw", cfg.Backend, "unset flag keeps the file value")
	assert.Equal(t, 640, cfg.Width)
	assert.False(t, cfg.VSync)
	assert.True(t, cfg.SaveImages)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "widht = 1024\n")
	_, err := runWithArgs(t, "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

func TestConfigFileMissing(t *testing.T) {
	_, err := runWithArgs(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigValidation(t *testing.T) {
	_, err := runWithArgs(t, "--width", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid window size 0x600")

	_, err = runWithArgs(t, "--frames", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid frame limit")
}

func TestWindowConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 1024
	cfg.Samples = 4
	cfg.VSync = false

	window := cfg.windowConfig("08_colors")
	assert.Equal(t, "08_colors", window.Title)
	assert.Equal(t, 1024, window.Width)
	assert.Equal(t, 600, window.Height)
	assert.Equal(t, 4, window.Samples)
	assert.False(t, window.VSync)
	assert.Equal(t, 8, window.StencilBits)
}

func TestSampleCount(t *testing.T) {
	cfg, err := runWithArgs(t)
	require.NoError(t, err)
	assert.Equal(t, SamplesUnset, cfg.Samples)
	assert.Equal(t, 4, cfg.SampleCount(4))
	assert.Zero(t, cfg.windowConfig("24_anti_aliasing_msaa").Samples)

	cfg, err = runWithArgs(t, "--samples", "0")
	require.NoError(t, err)
	assert.Zero(t, cfg.SampleCount(4), "0 disables multisampling")

	cfg, err = runWithArgs(t, "--samples", "8")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.SampleCount(4))

	_, err = runWithArgs(t, "--samples=-2")
	assert.ErrorContains(t, err, "invalid sample count -2")
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = parseLevel("verbose")
	assert.ErrorContains(t, err, `unknown log level "verbose"`)
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "warn", false)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("Texture not found", "path", "wood.png")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "path=wood.png")
}

func TestLoggerColorsLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(&buf, "info", true)
	require.NoError(t, err)

	log.Error("boom")
	assert.Contains(t, buf.String(), "\x1b[31mERROR\x1b[0m")
}

func TestClock(t *testing.T) {
	now := time.Second
	clock := newClock(func() time.Duration { return now })

	now += 16 * time.Millisecond
	assert.InDelta(t, 0.016, clock.Tick(), 1e-6)

	now += 500 * time.Millisecond
	assert.InDelta(t, 0.5, clock.Tick(), 1e-6)

	assert.Zero(t, clock.Tick())
}

func TestToggle(t *testing.T) {
	var toggle Toggle

	assert.True(t, toggle.Update(true))
	assert.True(t, toggle.On)

	// Holding the key does not flip it again.
	assert.False(t, toggle.Update(true))
	assert.False(t, toggle.Update(true))
	assert.True(t, toggle.On)

	assert.False(t, toggle.Update(false))
	assert.True(t, toggle.On)

	assert.True(t, toggle.Update(true))
	assert.False(t, toggle.On)
}

func TestEncodeFramebuffer(t *testing.T) {
	// Two rows, bottom row first as GL reads them back.
	pix := []byte{
		255, 0, 0, 0,
		0, 255, 0, 7,
	}
	var buf bytes.Buffer
	require.NoError(t, encodeFramebuffer(&buf, pix, 1, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, g, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), a)

	r, _, _, a = img.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestEncodeFramebufferSizeMismatch(t *testing.T) {
	err := encodeFramebuffer(&bytes.Buffer{}, make([]byte, 4), 2, 2)
	assert.ErrorContains(t, err, "framebuffer holds 4 bytes, want 16")
}

func TestScreenshotName(t *testing.T) {
	name := screenshotName("27_shadow_mapping")
	require.True(t, strings.HasPrefix(name, "27_shadow_mapping-"))

	_, err := uuid.Parse(strings.TrimPrefix(name, "27_shadow_mapping-"))
	assert.NoError(t, err)
	assert.NotEqual(t, name, screenshotName("27_shadow_mapping"))
}

func TestSampleHelpers(t *testing.T) {
	s := &Sample{Config: DefaultConfig(), Width: 800, Height: 600}

	assert.Equal(t, filepath.Join("assets", "textures", "wood.png"), s.AssetPath("textures/wood.png"))
	assert.InDelta(t, 800.0/600.0, s.Aspect(), 1e-6)

	s.Height = 0
	assert.Equal(t, float32(1), s.Aspect())
}

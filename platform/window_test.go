package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendsRegistered(t *testing.T) {
	assert.Equal(t, []string{"glfw", "sdl2"}, Backends())
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("vulkan", DefaultConfig("test"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown window backend "vulkan"`)
	assert.Contains(t, err.Error(), "glfw, sdl2")
}

func TestOpenRejectsEmptyWindow(t *testing.T) {
	cfg := DefaultConfig("test")
	cfg.Width = 0
	_, err := Open("sdl2", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid window size 0x600")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("LearnOpenGL")
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 8, cfg.StencilBits)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 1, cfg.GLMinor)
	assert.Zero(t, cfg.Samples)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "Unknown", Key(-1).String())
	assert.Equal(t, "Unknown", keyCount.String())
}

package platform

import (
	"sort"
	"strings"
	"unsafe"

	"github.com/cockroachdb/errors"
)

type Key int

const (
	KeyEscape Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyX
	KeySpace
	KeyF12
	keyCount
)

var keyNames = [keyCount]string{"Escape", "W", "A", "S", "D", "Q", "X", "Space", "F12"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Config describes the window and the OpenGL context requested from a backend.
type Config struct {
	Title       string
	Width       int
	Height      int
	Samples     int
	DepthBits   int
	StencilBits int
	Resizable   bool
	VSync       bool
	GLMajor     int
	GLMinor     int
}

// DefaultConfig is an 800x600 OpenGL 4.1 core window with a 24 bit depth
// buffer and an 8 bit stencil buffer.
func DefaultConfig(title string) Config {
	return Config{
		Title:       title,
		Width:       800,
		Height:      600,
		DepthBits:   24,
		StencilBits: 8,
		Resizable:   true,
		VSync:       true,
		GLMajor:     4,
		GLMinor:     1,
	}
}

// Callbacks receive window events as they are polled. Nil members are skipped.
type Callbacks struct {
	Resize      func(width, height int)
	CursorMoved func(x, y float64)
	Scrolled    func(xOffset, yOffset float64)
}

// Window owns a native window and the GL context current on the calling
// thread. All methods must be called from the thread that opened it.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	SwapBuffers()
	KeyPressed(Key) bool
	FramebufferSize() (int, int)
	SetCallbacks(Callbacks)
	CaptureCursor(bool)
	ProcAddress(name string) unsafe.Pointer
	Destroy()
}

type OpenFunc func(cfg Config) (Window, error)

var backends = map[string]OpenFunc{}

// Register makes a backend available to Open. It is called from the init
// functions of the backend files.
func Register(name string, open OpenFunc) {
	backends[name] = open
}

func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Open(backend string, cfg Config) (Window, error) {
	open, ok := backends[backend]
	if !ok {
		return nil, errors.Newf("unknown window backend %q (known: %s)", backend, strings.Join(Backends(), ", "))
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Newf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	window, err := open(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s window", backend)
	}
	return window, nil
}

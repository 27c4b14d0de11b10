package platform

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	Register("glfw", openGLFW)
}

var glfwKeys = [keyCount]glfw.Key{
	KeyEscape: glfw.KeyEscape,
	KeyW:      glfw.KeyW,
	KeyA:      glfw.KeyA,
	KeyS:      glfw.KeyS,
	KeyD:      glfw.KeyD,
	KeyQ:      glfw.KeyQ,
	KeyX:      glfw.KeyX,
	KeySpace:  glfw.KeySpace,
	KeyF12:    glfw.KeyF12,
}

type glfwWindow struct {
	window *glfw.Window
}

func glfwBool(value bool) int {
	if value {
		return glfw.True
	}
	return glfw.False
}

func openGLFW(cfg Config) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, cfg.DepthBits)
	glfw.WindowHint(glfw.StencilBits, cfg.StencilBits)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create glfw window")
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &glfwWindow{window: window}, nil
}

func (w *glfwWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) KeyPressed(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return w.window.GetKey(glfwKeys[key]) == glfw.Press
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SetCallbacks(callbacks Callbacks) {
	w.window.SetFramebufferSizeCallback(nil)
	w.window.SetCursorPosCallback(nil)
	w.window.SetScrollCallback(nil)

	if callbacks.Resize != nil {
		w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
			callbacks.Resize(width, height)
		})
	}
	if callbacks.CursorMoved != nil {
		w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
			callbacks.CursorMoved(x, y)
		})
	}
	if callbacks.Scrolled != nil {
		w.window.SetScrollCallback(func(_ *glfw.Window, xOffset, yOffset float64) {
			callbacks.Scrolled(xOffset, yOffset)
		})
	}
}

func (w *glfwWindow) CaptureCursor(capture bool) {
	if capture {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *glfwWindow) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *glfwWindow) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

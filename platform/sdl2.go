package platform

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	Register("sdl2", openSDL)
}

var sdlScancodes = [keyCount]sdl.Scancode{
	KeyEscape: sdl.SCANCODE_ESCAPE,
	KeyW:      sdl.SCANCODE_W,
	KeyA:      sdl.SCANCODE_A,
	KeyS:      sdl.SCANCODE_S,
	KeyD:      sdl.SCANCODE_D,
	KeyQ:      sdl.SCANCODE_Q,
	KeyX:      sdl.SCANCODE_X,
	KeySpace:  sdl.SCANCODE_SPACE,
	KeyF12:    sdl.SCANCODE_F12,
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

type sdlWindow struct {
	window    *sdl.Window
	context   sdl.GLContext
	callbacks Callbacks

	shouldClose bool
	captured    bool
	cursorX     float64
	cursorY     float64
}

func openSDL(cfg Config) (Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	attributes := []glAttribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, cfg.DepthBits},
		{sdl.GL_STENCIL_SIZE, cfg.StencilBits},
	}
	if cfg.Samples > 0 {
		attributes = append(attributes,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, cfg.Samples},
		)
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, errors.Wrapf(err, "set GL attribute %d", a.attr)
		}
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "create GL context")
	}

	swapInterval := 0
	if cfg.VSync {
		swapInterval = 1
	}
	// Not every driver lets us pick, keep whatever it does.
	_ = sdl.GLSetSwapInterval(swapInterval)

	return &sdlWindow{window: window, context: context}, nil
}

func (w *sdlWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *sdlWindow) SetShouldClose(value bool) {
	w.shouldClose = value
}

func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED && w.callbacks.Resize != nil {
				width, height := w.FramebufferSize()
				w.callbacks.Resize(width, height)
			}
		case *sdl.MouseMotionEvent:
			// Relative mode pins the cursor, so track an absolute position
			// from the deltas to match the glfw backend.
			if w.captured {
				w.cursorX += float64(e.XRel)
				w.cursorY += float64(e.YRel)
			} else {
				w.cursorX = float64(e.X)
				w.cursorY = float64(e.Y)
			}
			if w.callbacks.CursorMoved != nil {
				w.callbacks.CursorMoved(w.cursorX, w.cursorY)
			}
		case *sdl.MouseWheelEvent:
			if w.callbacks.Scrolled != nil {
				w.callbacks.Scrolled(float64(e.X), float64(e.Y))
			}
		}
	}
}

func (w *sdlWindow) SwapBuffers() {
	w.window.GLSwap()
}

func (w *sdlWindow) KeyPressed(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	state := sdl.GetKeyboardState()
	return state[sdlScancodes[key]] != 0
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) SetCallbacks(callbacks Callbacks) {
	w.callbacks = callbacks
}

func (w *sdlWindow) CaptureCursor(capture bool) {
	w.captured = capture
	sdl.SetRelativeMouseMode(capture)
}

func (w *sdlWindow) ProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

func (w *sdlWindow) Destroy() {
	sdl.GLDeleteContext(w.context)
	w.window.Destroy()
	sdl.Quit()
}

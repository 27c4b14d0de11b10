package utils

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/camera"
	"github.com/learngl/examples/mesh"
	"github.com/learngl/examples/platform"
	"github.com/learngl/examples/texture"
)

// Application is one sample program. Init and Destroy run once around the
// frame loop; Draw renders a frame.
type Application interface {
	Init(s *Sample) error
	Draw(s *Sample) error
	Destroy()
}

// WindowConfigurer is implemented by samples that need a particular window,
// such as a multisampled default framebuffer. window holds the settings
// derived from cfg.
type WindowConfigurer interface {
	ConfigureWindow(window *platform.Config, cfg Config)
}

// Sample is the state the runner shares with an Application.
type Sample struct {
	Name   string
	Config Config
	Window platform.Window
	Log    *slog.Logger

	// Camera is nil until EnableCamera is called.
	Camera *camera.Camera

	// DeltaTime is the time the previous frame took, in seconds.
	DeltaTime float32
	Frame     int

	// Width and Height are the framebuffer size in pixels.
	Width  int
	Height int

	look       camera.LookTracker
	screenshot Toggle
	resize     []func(width, height int)
}

func newSample(name string, cfg Config, window platform.Window, log *slog.Logger) *Sample {
	s := &Sample{
		Name:   name,
		Config: cfg,
		Window: window,
		Log:    log,
	}
	s.Width, s.Height = window.FramebufferSize()

	window.SetCallbacks(platform.Callbacks{
		Resize:      s.framebufferResized,
		CursorMoved: s.cursorMoved,
		Scrolled:    s.scrolled,
	})
	return s
}

// EnableCamera creates a fly camera at position and hands it mouse look,
// scroll zoom and WASD movement.
func (s *Sample) EnableCamera(position mgl32.Vec3) *camera.Camera {
	s.Camera = camera.New(position)
	s.look.Reset()
	s.Window.CaptureCursor(true)
	return s.Camera
}

// OnResize registers fn to run after the framebuffer changes size.
func (s *Sample) OnResize(fn func(width, height int)) {
	s.resize = append(s.resize, fn)
}

func (s *Sample) Aspect() float32 {
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Projection is the camera's perspective projection for the current
// framebuffer, or a 45 degree one when there is no camera.
func (s *Sample) Projection() mgl32.Mat4 {
	if s.Camera != nil {
		return s.Camera.Projection(s.Aspect())
	}
	return mgl32.Perspective(mgl32.DegToRad(camera.DefaultFieldOfView), s.Aspect(), camera.NearPlane, camera.FarPlane)
}

func (s *Sample) AssetPath(rel string) string {
	return filepath.Join(s.Config.AssetDir, filepath.FromSlash(rel))
}

// LoadTexture loads an image below the asset directory.
func (s *Sample) LoadTexture(rel string, opts texture.Options) (uint32, error) {
	if s.Config.FallbackTextures {
		return texture.LoadOrFallback(s.AssetPath(rel), opts, s.Log)
	}
	return texture.Load(s.AssetPath(rel), opts)
}

// LoadModel loads an OBJ model below the asset directory.
func (s *Sample) LoadModel(rel string, opts mesh.LoadOptions) (*mesh.Model, error) {
	opts.Fallback = s.Config.FallbackTextures
	opts.Log = s.Log
	return mesh.LoadModel(s.AssetPath(rel), opts)
}

func (s *Sample) framebufferResized(width, height int) {
	s.Width, s.Height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	if width == 0 || height == 0 {
		return
	}
	for _, fn := range s.resize {
		fn(width, height)
	}
}

func (s *Sample) cursorMoved(x, y float64) {
	if s.Camera == nil {
		return
	}
	s.Camera.ProcessLook(s.look.Offsets(x, y))
}

func (s *Sample) scrolled(_, yOffset float64) {
	if s.Camera == nil {
		return
	}
	s.Camera.ProcessFieldOfView(float32(yOffset))
}

func (s *Sample) processInput() {
	if s.Window.KeyPressed(platform.KeyEscape) {
		s.Window.SetShouldClose(true)
	}

	if s.Camera != nil {
		movements := []struct {
			key      platform.Key
			movement camera.Movement
		}{
			{platform.KeyW, camera.Forward},
			{platform.KeyS, camera.Backward},
			{platform.KeyA, camera.Left},
			{platform.KeyD, camera.Right},
		}
		for _, m := range movements {
			if s.Window.KeyPressed(m.key) {
				s.Camera.ProcessMovement(m.movement, s.DeltaTime)
			}
		}
	}
}

func (s *Sample) capture() error {
	var baseName string
	switch {
	case s.Config.SaveImages && s.Frame == 0:
		baseName = s.Name
	case s.screenshot.Update(s.Window.KeyPressed(platform.KeyF12)):
		baseName = screenshotName(s.Name)
	default:
		return nil
	}

	filename, err := s.WritePNG(baseName)
	if err != nil {
		return errors.Wrap(err, "save screenshot")
	}
	s.Log.Info("Saved screenshot", "file", filename)
	return nil
}

func (s *Sample) mainLoop(app Application) error {
	clock := NewClock()

	for !s.Window.ShouldClose() {
		s.DeltaTime = clock.Tick()
		s.processInput()

		// Nothing is drawn while the window is minimized.
		if s.Width > 0 && s.Height > 0 {
			if err := app.Draw(s); err != nil {
				return errors.Wrapf(err, "frame %d", s.Frame)
			}
			if err := s.capture(); err != nil {
				return err
			}
			s.Window.SwapBuffers()
			s.Frame++
		}

		s.Window.PollEvents()

		if s.Config.Frames > 0 && s.Frame >= s.Config.Frames {
			break
		}
	}
	return nil
}

// Run parses the command line, opens a window and drives app until the
// window is closed or Escape is pressed.
func Run(name string, app Application) error {
	return newApp(name, func(cfg Config) error {
		return run(name, cfg, app)
	}).Run(os.Args)
}

func run(name string, cfg Config, app Application) error {
	log, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	windowConfig := cfg.windowConfig(name)
	if configurer, ok := app.(WindowConfigurer); ok {
		configurer.ConfigureWindow(&windowConfig, cfg)
	}

	window, err := platform.Open(cfg.Backend, windowConfig)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.InitWithProcAddrFunc(window.ProcAddress); err != nil {
		return errors.Wrap(err, "load OpenGL functions")
	}
	log.Info("Opened window",
		"sample", name,
		"backend", cfg.Backend,
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)

	s := newSample(name, cfg, window, log)
	gl.Viewport(0, 0, int32(s.Width), int32(s.Height))

	if err := app.Init(s); err != nil {
		return errors.Wrapf(err, "init %s", name)
	}
	defer app.Destroy()

	return s.mainLoop(app)
}

package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/framebuffer"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/platform"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

const defaultSamples = 4

type AntiAliasingPost struct {
	program       *shader.Program
	screenProgram *shader.Program
	cube          *geometry.VertexArray
	screenQuad    *geometry.VertexArray

	samples      int32
	multisampled *framebuffer.Framebuffer
	intermediate *framebuffer.Framebuffer
	resizeErr    error

	multisample utils.Toggle
}

func (app *AntiAliasingPost) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	app.multisample.On = true

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/msaa.vert", "shaders/msaa.frag", "")
	if err != nil {
		return err
	}
	app.screenProgram, err = shader.Load(fileSystem, "shaders/screen.vert", "shaders/grayscale.frag", "")
	if err != nil {
		return err
	}

	positions := geometry.Select(geometry.CubeVertices, geometry.CubeStride, [2]int{0, 3})
	app.cube = geometry.NewVertexArray(positions, geometry.PositionLayout)
	app.screenQuad = geometry.NewVertexArray(geometry.ScreenQuadVertices, geometry.ScreenLayout)

	// A multisampled target needs at least one sample.
	app.samples = int32(max(s.Config.SampleCount(defaultSamples), 1))
	if err := app.createTargets(s.Width, s.Height); err != nil {
		return err
	}

	// The off-screen targets follow the window size.
	s.OnResize(func(width, height int) {
		app.resizeErr = app.createTargets(width, height)
	})
	return nil
}

func (app *AntiAliasingPost) createTargets(width, height int) error {
	app.deleteTargets()

	var err error
	app.multisampled, err = framebuffer.NewMultisample(int32(width), int32(height), app.samples)
	if err != nil {
		return err
	}
	app.intermediate, err = framebuffer.NewColor(int32(width), int32(height))
	if err != nil {
		return err
	}
	return nil
}

func (app *AntiAliasingPost) deleteTargets() {
	if app.multisampled != nil {
		app.multisampled.Delete()
		app.multisampled = nil
	}
	if app.intermediate != nil {
		app.intermediate.Delete()
		app.intermediate = nil
	}
}

func (app *AntiAliasingPost) Draw(s *utils.Sample) error {
	if app.resizeErr != nil {
		return errors.Wrap(app.resizeErr, "recreate render targets")
	}

	if app.multisample.Update(s.Window.KeyPressed(platform.KeyX)) {
		if app.multisample.On {
			gl.Enable(gl.MULTISAMPLE)
		} else {
			gl.Disable(gl.MULTISAMPLE)
		}
		s.Log.Info("Toggled multisampling", "enabled", app.multisample.On)
	}

	// Draw the scene into the multisampled target.
	app.multisampled.Bind()
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	app.program.Use()
	app.program.SetMat4("view", s.Camera.ViewMatrix())
	app.program.SetMat4("projection", s.Projection())
	app.program.SetMat4("model", mgl32.Translate3D(-1, 0, -3))
	app.cube.Draw(gl.TRIANGLES)

	// Resolve the samples into a texture the screen pass can read.
	app.multisampled.BlitTo(app.intermediate)

	framebuffer.BindDefault()
	gl.Viewport(0, 0, int32(s.Width), int32(s.Height))
	gl.ClearColor(1.0, 1.0, 1.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.DEPTH_TEST)

	app.screenProgram.Use()
	app.screenProgram.SetInt("screenTexture", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, app.intermediate.Texture)
	app.screenQuad.Draw(gl.TRIANGLES)
	return nil
}

func (app *AntiAliasingPost) Destroy() {
	app.deleteTargets()
	for _, va := range []*geometry.VertexArray{app.cube, app.screenQuad} {
		if va != nil {
			va.Delete()
		}
	}
	for _, p := range []*shader.Program{app.program, app.screenProgram} {
		if p != nil {
			p.Delete()
		}
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("24_anti_aliasing_post", &AntiAliasingPost{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

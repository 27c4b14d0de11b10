package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/platform"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

const defaultSamples = 4

type AntiAliasingMSAA struct {
	program     *shader.Program
	cube        *geometry.VertexArray
	multisample utils.Toggle
}

// ConfigureWindow asks for a multisampled default framebuffer unless the
// configuration picked a sample count, including 0.
func (app *AntiAliasingMSAA) ConfigureWindow(window *platform.Config, cfg utils.Config) {
	window.Samples = cfg.SampleCount(defaultSamples)
}

func (app *AntiAliasingMSAA) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	app.multisample.On = true

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/msaa.vert", "shaders/msaa.frag", "")
	if err != nil {
		return err
	}

	positions := geometry.Select(geometry.CubeVertices, geometry.CubeStride, [2]int{0, 3})
	app.cube = geometry.NewVertexArray(positions, geometry.PositionLayout)
	return nil
}

func (app *AntiAliasingMSAA) Draw(s *utils.Sample) error {
	if app.multisample.Update(s.Window.KeyPressed(platform.KeyX)) {
		if app.multisample.On {
			gl.Enable(gl.MULTISAMPLE)
		} else {
			gl.Disable(gl.MULTISAMPLE)
		}
		s.Log.Info("Toggled multisampling", "enabled", app.multisample.On)
	}

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	app.program.Use()
	app.program.SetMat4("view", s.Camera.ViewMatrix())
	app.program.SetMat4("projection", s.Projection())
	app.program.SetMat4("model", mgl32.Translate3D(-1, 0, -3))
	app.cube.Draw(gl.TRIANGLES)
	return nil
}

func (app *AntiAliasingMSAA) Destroy() {
	if app.cube != nil {
		app.cube.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("24_anti_aliasing_msaa", &AntiAliasingMSAA{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

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
	"github.com/learngl/examples/texture"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

var (
	lightPositions = []mgl32.Vec3{
		{-3.0, 0.0, 0.0},
		{-1.0, 0.0, 0.0},
		{1.0, 0.0, 0.0},
		{3.0, 0.0, 0.0},
	}
	lightColors = []mgl32.Vec3{
		{0.25, 0.25, 0.25},
		{0.50, 0.50, 0.50},
		{0.75, 0.75, 0.75},
		{1.00, 1.00, 1.00},
	}
)

type GammaCorrection struct {
	program *shader.Program
	floor   *geometry.VertexArray

	// linear is sampled as stored; srgb is decoded to linear by the sampler.
	linear uint32
	srgb   uint32

	gamma utils.Toggle
}

func (app *GammaCorrection) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/blinn_phong.vert", "shaders/gamma_correction.frag", "")
	if err != nil {
		return err
	}

	app.floor = geometry.NewVertexArray(geometry.GammaFloorVertices, geometry.PositionNormalUVLayout)

	if app.linear, err = s.LoadTexture("textures/wood.png", texture.Options{FlipVertically: true}); err != nil {
		return err
	}
	if app.srgb, err = s.LoadTexture("textures/wood.png", texture.Options{FlipVertically: true, GammaCorrected: true}); err != nil {
		return err
	}

	app.program.Use()
	app.program.SetInt("floorTexture", 0)
	return nil
}

func (app *GammaCorrection) Draw(s *utils.Sample) error {
	if app.gamma.Update(s.Window.KeyPressed(platform.KeySpace)) {
		s.Log.Info("Toggled gamma correction", "enabled", app.gamma.On)
	}

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	app.program.Use()
	app.program.SetMat4("view", s.Camera.ViewMatrix())
	app.program.SetMat4("projection", s.Projection())
	app.program.SetVec3("viewPosition", s.Camera.Position)
	app.program.SetVec3Array("lightPositions", lightPositions)
	app.program.SetVec3Array("lightColors", lightColors)
	app.program.SetBool("gamma", app.gamma.On)

	floorTexture := app.linear
	if app.gamma.On {
		floorTexture = app.srgb
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, floorTexture)
	app.program.SetMat4("model", mgl32.Ident4())
	app.floor.Draw(gl.TRIANGLES)
	return nil
}

func (app *GammaCorrection) Destroy() {
	texture.Delete(app.linear, app.srgb)
	if app.floor != nil {
		app.floor.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("26_gamma_correction", &GammaCorrection{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/texture"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

const outlineScale = 1.1

var cubeTranslations = []mgl32.Vec3{
	{-1.0, 0.0, -1.0},
	{2.0, 0.0, 0.0},
}

type StencilTesting struct {
	program     *shader.Program
	singleColor *shader.Program
	cube        *geometry.VertexArray
	floor       *geometry.VertexArray
	marble      uint32
	metal       uint32
}

func (app *StencilTesting) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/depth_testing.vert", "shaders/depth_testing.frag", "")
	if err != nil {
		return err
	}
	app.singleColor, err = shader.Load(fileSystem, "shaders/depth_testing.vert", "shaders/single_color.frag", "")
	if err != nil {
		return err
	}

	cubeVertices := geometry.Select(geometry.CubeVertices, geometry.CubeStride, [2]int{0, 3}, [2]int{6, 8})
	app.cube = geometry.NewVertexArray(cubeVertices, geometry.PositionUVLayout)
	app.floor = geometry.NewVertexArray(geometry.StencilFloorVertices, geometry.PositionUVLayout)

	opts := texture.Options{FlipVertically: true}
	if app.marble, err = s.LoadTexture("textures/marble.jpg", opts); err != nil {
		return err
	}
	if app.metal, err = s.LoadTexture("textures/metal.png", opts); err != nil {
		return err
	}
	return nil
}

func (app *StencilTesting) Draw(s *utils.Sample) error {
	gl.Enable(gl.DEPTH_TEST)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	view := s.Camera.ViewMatrix()
	projection := s.Projection()

	app.singleColor.Use()
	app.singleColor.SetMat4("view", view)
	app.singleColor.SetMat4("projection", projection)

	app.program.Use()
	app.program.SetInt("texture1", 0)
	app.program.SetMat4("view", view)
	app.program.SetMat4("projection", projection)

	// The floor leaves the stencil buffer alone.
	gl.StencilMask(0x00)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, app.metal)
	app.program.SetMat4("model", mgl32.Ident4())
	app.floor.Draw(gl.TRIANGLES)

	// Cubes write 1 wherever they cover.
	gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
	gl.StencilMask(0xFF)
	gl.BindTexture(gl.TEXTURE_2D, app.marble)
	for _, translation := range cubeTranslations {
		app.program.SetMat4("model", mgl32.Translate3D(translation.Elem()))
		app.cube.Draw(gl.TRIANGLES)
	}

	// Slightly larger cubes drawn only outside the 1s form the outline.
	app.singleColor.Use()
	gl.StencilMask(0x00)
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.Disable(gl.DEPTH_TEST)
	for _, translation := range cubeTranslations {
		model := mgl32.Translate3D(translation.Elem()).Mul4(mgl32.Scale3D(outlineScale, outlineScale, outlineScale))
		app.singleColor.SetMat4("model", model)
		app.cube.Draw(gl.TRIANGLES)
	}

	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (app *StencilTesting) Destroy() {
	texture.Delete(app.marble, app.metal)
	for _, va := range []*geometry.VertexArray{app.cube, app.floor} {
		if va != nil {
			va.Delete()
		}
	}
	for _, p := range []*shader.Program{app.program, app.singleColor} {
		if p != nil {
			p.Delete()
		}
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("16_stencil_testing", &StencilTesting{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

var lightPosition = mgl32.Vec3{1.2, 1.0, 2.0}

type Colors struct {
	lighting  *shader.Program
	lamp      *shader.Program
	cube      *geometry.VertexArray
	lightCube *geometry.VertexArray
}

func (app *Colors) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.lighting, err = shader.Load(fileSystem, "shaders/colors.vert", "shaders/colors.frag", "")
	if err != nil {
		return err
	}
	app.lamp, err = shader.Load(fileSystem, "shaders/colors.vert", "shaders/light_cube.frag", "")
	if err != nil {
		return err
	}

	positions := geometry.Select(geometry.CubeVertices, geometry.CubeStride, [2]int{0, 3})
	app.cube = geometry.NewVertexArray(positions, geometry.PositionLayout)
	app.lightCube = geometry.NewVertexArray(positions, geometry.PositionLayout)
	return nil
}

func (app *Colors) Draw(s *utils.Sample) error {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := s.Camera.ViewMatrix()
	projection := s.Projection()

	app.lighting.Use()
	app.lighting.SetVec3f("objectColor", 1.0, 0.5, 0.31)
	app.lighting.SetVec3f("lightColor", 1.0, 1.0, 1.0)
	app.lighting.SetMat4("projection", projection)
	app.lighting.SetMat4("view", view)
	app.lighting.SetMat4("model", mgl32.Ident4())
	app.cube.Draw(gl.TRIANGLES)

	app.lamp.Use()
	app.lamp.SetMat4("projection", projection)
	app.lamp.SetMat4("view", view)
	model := mgl32.Translate3D(lightPosition.Elem()).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
	app.lamp.SetMat4("model", model)
	app.lightCube.Draw(gl.TRIANGLES)
	return nil
}

func (app *Colors) Destroy() {
	for _, va := range []*geometry.VertexArray{app.cube, app.lightCube} {
		if va != nil {
			va.Delete()
		}
	}
	for _, p := range []*shader.Program{app.lighting, app.lamp} {
		if p != nil {
			p.Delete()
		}
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("08_colors", &Colors{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

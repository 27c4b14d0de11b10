package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

type GeometryShaderHouses struct {
	program *shader.Program
	points  *geometry.VertexArray
}

func (app *GeometryShaderHouses) Init(s *utils.Sample) error {
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/houses.vert", "shaders/houses.frag", "shaders/houses.geom")
	if err != nil {
		return err
	}

	app.points = geometry.NewVertexArray(geometry.HousePoints, geometry.Point2DColorLayout)
	return nil
}

func (app *GeometryShaderHouses) Draw(s *utils.Sample) error {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	app.program.Use()
	app.points.Draw(gl.POINTS)
	return nil
}

func (app *GeometryShaderHouses) Destroy() {
	if app.points != nil {
		app.points.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("22_geometry_shader_houses", &GeometryShaderHouses{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

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

type ShadersClass struct {
	program  *shader.Program
	triangle *geometry.VertexArray
}

func (app *ShadersClass) Init(s *utils.Sample) error {
	var err error
	app.program, err = shader.Load(fileSystem, "shaders/triangle.vert", "shaders/triangle.frag", "")
	if err != nil {
		return err
	}

	app.triangle = geometry.NewVertexArray(geometry.ColoredTriangleVertices, geometry.PositionColorLayout)
	return nil
}

func (app *ShadersClass) Draw(s *utils.Sample) error {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	app.program.Use()
	app.triangle.Draw(gl.TRIANGLES)
	return nil
}

func (app *ShadersClass) Destroy() {
	if app.triangle != nil {
		app.triangle.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("03_shaders_class", &ShadersClass{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

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

type InstancingQuads struct {
	program *shader.Program
	quad    *geometry.VertexArray
	count   int32
}

func (app *InstancingQuads) Init(s *utils.Sample) error {
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/instancing.vert", "shaders/instancing.frag", "")
	if err != nil {
		return err
	}

	app.quad = geometry.NewVertexArray(geometry.InstanceQuadVertices, geometry.Point2DColorLayout)

	offsets := geometry.GridOffsets(2, 0.1)
	app.count = int32(len(offsets))

	app.program.Use()
	app.program.SetVec2Array("offsets", offsets)
	return nil
}

func (app *InstancingQuads) Draw(s *utils.Sample) error {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	app.program.Use()
	app.quad.DrawInstanced(gl.TRIANGLES, app.count)
	return nil
}

func (app *InstancingQuads) Destroy() {
	if app.quad != nil {
		app.quad.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("23_instancing_quads", &InstancingQuads{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

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

// offsetLayout feeds one translation per instance to attribute 2.
var offsetLayout = geometry.Layout{{Location: 2, Size: 2, Divisor: 1}}

type InstancedArrays struct {
	program *shader.Program
	quad    *geometry.VertexArray
	count   int32
}

func (app *InstancedArrays) Init(s *utils.Sample) error {
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/instanced.vert", "shaders/instanced.frag", "")
	if err != nil {
		return err
	}

	offsets := geometry.GridOffsets(2, 0.1)
	app.count = int32(len(offsets))
	app.quad = geometry.NewVertexArray(geometry.InstanceQuadVertices, geometry.Point2DColorLayout).
		AddInstanceBuffer(geometry.Flatten(offsets), offsetLayout)
	return nil
}

func (app *InstancedArrays) Draw(s *utils.Sample) error {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	app.program.Use()
	app.quad.DrawInstanced(gl.TRIANGLES, app.count)
	return nil
}

func (app *InstancedArrays) Destroy() {
	if app.quad != nil {
		app.quad.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("23_instanced_arrays", &InstancedArrays{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

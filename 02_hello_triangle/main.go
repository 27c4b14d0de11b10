package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/utils"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;

void main() {
    gl_Position = vec4(aPosition, 1.0);
}
`

const fragmentShader = `#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

type HelloTriangle struct {
	program  *shader.Program
	triangle *geometry.VertexArray
}

func (app *HelloTriangle) Init(s *utils.Sample) error {
	var err error
	app.program, err = shader.New(shader.Sources{
		Vertex:   vertexShader,
		Fragment: fragmentShader,
	})
	if err != nil {
		return err
	}

	app.triangle = geometry.NewVertexArray(geometry.TriangleVertices, geometry.PositionLayout)
	return nil
}

func (app *HelloTriangle) Draw(s *utils.Sample) error {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	app.program.Use()
	app.triangle.Draw(gl.TRIANGLES)
	return nil
}

func (app *HelloTriangle) Destroy() {
	if app.triangle != nil {
		app.triangle.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("02_hello_triangle", &HelloTriangle{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

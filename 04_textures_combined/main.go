package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/texture"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

type TexturesCombined struct {
	program  *shader.Program
	quad     *geometry.VertexArray
	textures [2]uint32
}

func (app *TexturesCombined) Init(s *utils.Sample) error {
	var err error
	app.program, err = shader.Load(fileSystem, "shaders/textures.vert", "shaders/textures.frag", "")
	if err != nil {
		return err
	}

	app.quad = geometry.NewVertexArray(geometry.TexturedQuadVertices, geometry.TexturedQuadLayout).
		WithIndices(geometry.TexturedQuadIndices)

	opts := texture.Options{FlipVertically: true}
	for i, name := range []string{"textures/container.jpg", "textures/awesomeface.png"} {
		app.textures[i], err = s.LoadTexture(name, opts)
		if err != nil {
			return err
		}
	}

	app.program.Use()
	app.program.SetInt("texture1", 0)
	app.program.SetInt("texture2", 1)
	return nil
}

func (app *TexturesCombined) Draw(s *utils.Sample) error {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, app.textures[0])
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, app.textures[1])

	app.program.Use()
	app.quad.DrawElements(gl.TRIANGLES)
	return nil
}

func (app *TexturesCombined) Destroy() {
	texture.Delete(app.textures[:]...)
	if app.quad != nil {
		app.quad.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("04_textures_combined", &TexturesCombined{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

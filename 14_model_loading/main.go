package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/mesh"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/texture"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

type ModelLoading struct {
	program  *shader.Program
	backpack *mesh.Model
}

func (app *ModelLoading) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/model.vert", "shaders/model.frag", "")
	if err != nil {
		return err
	}

	// The backpack's texture coordinates are flipped on load and its images
	// flipped again on decode; together they put the textures the right way up.
	app.backpack, err = s.LoadModel("models/backpack/backpack.obj", mesh.LoadOptions{
		FlipUVs: true,
		Texture: texture.Options{FlipVertically: true},
	})
	if err != nil {
		return err
	}
	s.Log.Info("Model loaded", "meshes", len(app.backpack.Meshes))
	return nil
}

func (app *ModelLoading) Draw(s *utils.Sample) error {
	gl.ClearColor(0.05, 0.05, 0.05, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	app.program.Use()
	app.program.SetVec3("viewPosition", s.Camera.Position)
	app.program.SetMat4("view", s.Camera.ViewMatrix())
	app.program.SetMat4("projection", s.Projection())
	app.program.SetMat4("model", mgl32.Ident4())
	app.backpack.Draw(app.program)
	return nil
}

func (app *ModelLoading) Destroy() {
	if app.backpack != nil {
		app.backpack.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("14_model_loading", &ModelLoading{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

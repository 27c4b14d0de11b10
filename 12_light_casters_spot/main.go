package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/texture"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

var rotationAxis = mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()

type LightCastersSpot struct {
	program  *shader.Program
	cube     *geometry.VertexArray
	diffuse  uint32
	specular uint32
}

func (app *LightCastersSpot) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.program, err = shader.Load(fileSystem, "shaders/spotlight.vert", "shaders/spotlight.frag", "")
	if err != nil {
		return err
	}

	app.cube = geometry.NewVertexArray(geometry.CubeVertices, geometry.PositionNormalUVLayout)

	opts := texture.Options{FlipVertically: true}
	if app.diffuse, err = s.LoadTexture("textures/container2.png", opts); err != nil {
		return err
	}
	if app.specular, err = s.LoadTexture("textures/container2_specular.png", opts); err != nil {
		return err
	}

	app.program.Use()
	app.program.SetInt("material.diffuse", 0)
	app.program.SetInt("material.specular", 1)
	app.program.SetFloat("material.shininess", 32)

	// Soft edge between the inner and outer cone.
	app.program.SetFloat("light.cutoff", math32.Cos(mgl32.DegToRad(12.5)))
	app.program.SetFloat("light.outer_cutoff", math32.Cos(mgl32.DegToRad(17.5)))
	app.program.SetVec3f("light.ambient", 0.2, 0.2, 0.2)
	app.program.SetVec3f("light.diffuse", 0.5, 0.5, 0.5)
	app.program.SetVec3f("light.specular", 1.0, 1.0, 1.0)
	app.program.SetFloat("light.constant", 1.0)
	app.program.SetFloat("light.linear", 0.09)
	app.program.SetFloat("light.quadratic", 0.032)
	return nil
}

func (app *LightCastersSpot) Draw(s *utils.Sample) error {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	app.program.Use()
	app.program.SetVec3("light.position", s.Camera.Position)
	app.program.SetVec3("light.direction", s.Camera.Front())
	app.program.SetVec3("viewPosition", s.Camera.Position)
	app.program.SetMat4("projection", s.Projection())
	app.program.SetMat4("view", s.Camera.ViewMatrix())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, app.diffuse)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, app.specular)

	for i, position := range geometry.CubePositions {
		angle := mgl32.DegToRad(20 * float32(i+1))
		model := mgl32.Translate3D(position.Elem()).Mul4(mgl32.HomogRotate3D(angle, rotationAxis))
		app.program.SetMat4("model", model)
		app.cube.Draw(gl.TRIANGLES)
	}
	return nil
}

func (app *LightCastersSpot) Destroy() {
	texture.Delete(app.diffuse, app.specular)
	if app.cube != nil {
		app.cube.Delete()
	}
	if app.program != nil {
		app.program.Delete()
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("12_light_casters_spot", &LightCastersSpot{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

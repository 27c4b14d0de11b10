package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/framebuffer"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/platform"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/texture"
	"github.com/learngl/examples/utils"
)

//go:embed shaders
var fileSystem embed.FS

const (
	shadowWidth  = 1024
	shadowHeight = 1024

	lightNearPlane = 1.0
	lightFarPlane  = 7.5
)

var lightPosition = mgl32.Vec3{-2.0, 4.0, -1.0}

type ShadowMapping struct {
	program      *shader.Program
	depthProgram *shader.Program
	debugProgram *shader.Program

	floor     *geometry.VertexArray
	cube      *geometry.VertexArray
	debugQuad *geometry.VertexArray

	depthMap *framebuffer.Framebuffer
	wood     uint32

	showDepthMap utils.Toggle
}

func (app *ShadowMapping) Init(s *utils.Sample) error {
	s.EnableCamera(mgl32.Vec3{0, 0, 3})
	gl.Enable(gl.DEPTH_TEST)

	var err error
	app.depthProgram, err = shader.Load(fileSystem, "shaders/depth.vert", "shaders/depth.frag", "")
	if err != nil {
		return err
	}
	app.debugProgram, err = shader.Load(fileSystem, "shaders/quad.vert", "shaders/quad.frag", "")
	if err != nil {
		return err
	}
	app.program, err = shader.Load(fileSystem, "shaders/shadow.vert", "shaders/shadow.frag", "")
	if err != nil {
		return err
	}

	app.floor = geometry.NewVertexArray(geometry.ShadowFloorVertices, geometry.PositionNormalUVLayout)
	app.cube = geometry.NewVertexArray(geometry.ShadowCubeVertices, geometry.PositionNormalUVLayout)
	app.debugQuad = geometry.NewVertexArray(geometry.DebugQuadVertices, geometry.PositionUVLayout)

	app.depthMap, err = framebuffer.NewDepthMap(shadowWidth, shadowHeight)
	if err != nil {
		return err
	}

	if app.wood, err = s.LoadTexture("textures/wood.png", texture.Options{}); err != nil {
		return err
	}

	app.debugProgram.Use()
	app.debugProgram.SetInt("depthMap", 0)
	app.program.Use()
	app.program.SetInt("diffuseTexture", 0)
	app.program.SetInt("shadowMap", 1)
	return nil
}

func lightSpaceMatrix() mgl32.Mat4 {
	projection := mgl32.Ortho(-10, 10, -10, 10, lightNearPlane, lightFarPlane)
	view := mgl32.LookAtV(lightPosition, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return projection.Mul4(view)
}

func (app *ShadowMapping) Draw(s *utils.Sample) error {
	if app.showDepthMap.Update(s.Window.KeyPressed(platform.KeyQ)) {
		s.Log.Info("Toggled depth map view", "enabled", app.showDepthMap.On)
	}

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	lightSpace := lightSpaceMatrix()

	// Depth from the light's point of view. Culling front faces keeps the
	// cubes' lit sides out of the map and removes most shadow acne.
	app.depthProgram.Use()
	app.depthProgram.SetMat4("lightSpaceMatrix", lightSpace)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
	app.depthMap.Bind()
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	app.renderScene(app.depthProgram)
	gl.CullFace(gl.BACK)
	gl.Disable(gl.CULL_FACE)

	framebuffer.BindDefault()
	gl.Viewport(0, 0, int32(s.Width), int32(s.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if app.showDepthMap.On {
		app.debugProgram.Use()
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, app.depthMap.Texture)
		app.debugQuad.Draw(gl.TRIANGLE_STRIP)
		return nil
	}

	app.program.Use()
	app.program.SetMat4("view", s.Camera.ViewMatrix())
	app.program.SetMat4("projection", s.Projection())
	app.program.SetVec3("viewPosition", s.Camera.Position)
	app.program.SetVec3("lightPosition", lightPosition)
	app.program.SetMat4("lightSpaceMatrix", lightSpace)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, app.wood)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, app.depthMap.Texture)
	app.renderScene(app.program)
	gl.ActiveTexture(gl.TEXTURE0)
	return nil
}

// renderScene draws the floor and three cubes with program's model uniform.
func (app *ShadowMapping) renderScene(program *shader.Program) {
	program.SetMat4("model", mgl32.Ident4())
	app.floor.Draw(gl.TRIANGLES)

	cubes := []mgl32.Mat4{
		mgl32.Translate3D(0, 1.5, 0).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)),
		mgl32.Translate3D(2, 0, 1).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)),
		mgl32.Translate3D(-1, 0, 2).
			Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(60), mgl32.Vec3{1, 0, 1}.Normalize())).
			Mul4(mgl32.Scale3D(0.25, 0.25, 0.25)),
	}
	for _, model := range cubes {
		program.SetMat4("model", model)
		app.cube.Draw(gl.TRIANGLES)
	}
}

func (app *ShadowMapping) Destroy() {
	texture.Delete(app.wood)
	if app.depthMap != nil {
		app.depthMap.Delete()
	}
	for _, va := range []*geometry.VertexArray{app.floor, app.cube, app.debugQuad} {
		if va != nil {
			va.Delete()
		}
	}
	for _, p := range []*shader.Program{app.program, app.depthProgram, app.debugProgram} {
		if p != nil {
			p.Delete()
		}
	}
}

func main() {
	runtime.LockOSThread()

	err := utils.Run("27_shadow_mapping", &ShadowMapping{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

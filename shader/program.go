package shader

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Sources holds GLSL text for each stage. Geometry is optional.
type Sources struct {
	Vertex   string
	Fragment string
	Geometry string
}

// ReadSources loads the stage sources from fsys. An empty geometryPath skips
// the geometry stage.
func ReadSources(fsys fs.FS, vertexPath, fragmentPath, geometryPath string) (Sources, error) {
	var src Sources

	paths := []struct {
		path   string
		target *string
	}{
		{vertexPath, &src.Vertex},
		{fragmentPath, &src.Fragment},
		{geometryPath, &src.Geometry},
	}
	for _, p := range paths {
		if p.path == "" {
			continue
		}
		data, err := fs.ReadFile(fsys, p.path)
		if err != nil {
			return Sources{}, errors.Wrapf(err, "read shader %s", p.path)
		}
		*p.target = string(data)
	}

	if src.Vertex == "" || src.Fragment == "" {
		return Sources{}, errors.Newf("shader program needs a vertex and a fragment stage (got %q, %q)", vertexPath, fragmentPath)
	}
	return src, nil
}

// Program is a linked shader program with a cache of uniform locations.
type Program struct {
	ID uint32

	locations map[string]int32
	log       *slog.Logger
}

// Load reads the stage sources from fsys and builds a program from them.
func Load(fsys fs.FS, vertexPath, fragmentPath, geometryPath string) (*Program, error) {
	src, err := ReadSources(fsys, vertexPath, fragmentPath, geometryPath)
	if err != nil {
		return nil, err
	}

	program, err := New(src)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s + %s", vertexPath, fragmentPath)
	}
	return program, nil
}

// New compiles and links the given sources. Stage objects are deleted once
// the program is linked.
func New(src Sources) (*Program, error) {
	stages := []struct {
		kind   uint32
		source string
	}{
		{gl.VERTEX_SHADER, src.Vertex},
		{gl.FRAGMENT_SHADER, src.Fragment},
		{gl.GEOMETRY_SHADER, src.Geometry},
	}

	var compiled []uint32
	defer func() {
		for _, shader := range compiled {
			gl.DeleteShader(shader)
		}
	}()

	for _, stage := range stages {
		if stage.source == "" {
			continue
		}
		shader, err := compile(stage.kind, stage.source)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, shader)
	}

	id := gl.CreateProgram()
	for _, shader := range compiled {
		gl.AttachShader(id, shader)
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(id)
		gl.DeleteProgram(id)
		return nil, errors.Newf("program link failed: %s", infoLog)
	}

	for _, shader := range compiled {
		gl.DetachShader(id, shader)
	}

	return &Program{
		ID:        id,
		locations: make(map[string]int32),
		log:       slog.Default(),
	}, nil
}

func compile(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(cString(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		return 0, errors.Newf("%s shader compilation failed: %s", StageName(kind), trimLog(infoLog))
	}

	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return trimLog(infoLog)
}

// StageName names a shader stage enum for error messages.
func StageName(kind uint32) string {
	switch kind {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	default:
		return "unknown"
	}
}

// cString terminates source for the driver, which reads up to the first NUL.
func cString(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}

func trimLog(infoLog string) string {
	return strings.TrimSpace(strings.TrimRight(infoLog, "\x00"))
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

// Location returns the cached location of a uniform. Names the driver does
// not know (misspelled or optimized away) resolve to -1, which GL ignores.
func (p *Program) Location(name string) int32 {
	if location, ok := p.locations[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(p.ID, gl.Str(cString(name)))
	if location < 0 && p.log != nil {
		p.log.Debug("Uniform not found", "program", p.ID, "name", name)
	}
	p.locations[name] = location
	return location
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.Location(name), v)
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.Location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.Location(name), value)
}

func (p *Program) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2fv(p.Location(name), 1, &value[0])
}

func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(p.Location(name), 1, &value[0])
}

func (p *Program) SetVec3f(name string, x, y, z float32) {
	gl.Uniform3f(p.Location(name), x, y, z)
}

func (p *Program) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4fv(p.Location(name), 1, &value[0])
}

func (p *Program) SetMat2(name string, value mgl32.Mat2) {
	gl.UniformMatrix2fv(p.Location(name), 1, false, &value[0])
}

func (p *Program) SetMat3(name string, value mgl32.Mat3) {
	gl.UniformMatrix3fv(p.Location(name), 1, false, &value[0])
}

func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &value[0])
}

// SetVec2Array uploads values to a vec2 array uniform starting at element 0.
func (p *Program) SetVec2Array(name string, values []mgl32.Vec2) {
	if len(values) == 0 {
		return
	}
	gl.Uniform2fv(p.Location(name), int32(len(values)), &values[0][0])
}

// SetVec3Array uploads values to a vec3 array uniform starting at element 0.
func (p *Program) SetVec3Array(name string, values []mgl32.Vec3) {
	if len(values) == 0 {
		return
	}
	gl.Uniform3fv(p.Location(name), int32(len(values)), &values[0][0])
}

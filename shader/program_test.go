package shader

import (
	"testing"
	"testing/fstest"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShaders = fstest.MapFS{
	"shaders/basic.vert":  {Data: []byte("#version 410 core\nvoid main() {}\n")},
	"shaders/basic.frag":  {Data: []byte("#version 410 core\nout vec4 FragColor;\nvoid main() { FragColor = vec4(1.0); }\n")},
	"shaders/houses.geom": {Data: []byte("#version 410 core\nlayout (points) in;\n")},
}

func TestReadSources(t *testing.T) {
	src, err := ReadSources(testShaders, "shaders/basic.vert", "shaders/basic.frag", "")
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "void main() {}")
	assert.Contains(t, src.Fragment, "FragColor = vec4(1.0)")
	assert.Empty(t, src.Geometry)
}

func TestReadSourcesWithGeometry(t *testing.T) {
	src, err := ReadSources(testShaders, "shaders/basic.vert", "shaders/basic.frag", "shaders/houses.geom")
	require.NoError(t, err)
	assert.Contains(t, src.Geometry, "layout (points) in;")
}

func TestReadSourcesMissingFile(t *testing.T) {
	_, err := ReadSources(testShaders, "shaders/basic.vert", "shaders/missing.frag", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read shader shaders/missing.frag")
}

func TestReadSourcesRequiresBothStages(t *testing.T) {
	_, err := ReadSources(testShaders, "shaders/basic.vert", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a vertex and a fragment stage")
}

func TestCString(t *testing.T) {
	assert.Equal(t, "void main() {}\x00", cString("void main() {}"))
	assert.Equal(t, "already\x00", cString("already\x00"))
	assert.Equal(t, "\x00", cString(""))
}

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:3(1): error: syntax error", trimLog("0:3(1): error: syntax error\n\x00\x00"))
}

func TestStageName(t *testing.T) {
	assert.Equal(t, "vertex", StageName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", StageName(gl.FRAGMENT_SHADER))
	assert.Equal(t, "geometry", StageName(gl.GEOMETRY_SHADER))
	assert.Equal(t, "unknown", StageName(0))
}

package mesh

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOBJ = `mtllib crate.mtl
o Quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl wood
f 1/1/1 2/2/1 3/3/1 4/4/1
o Tri
usemtl metal
f 1/1 2/2 3/3
usemtl wood
f 1//1 3//1 4//1
`

const testMTL = `newmtl wood
Kd 1 1 1
map_Kd textures/wood.png
map_Ks -bm 0.5 textures\wood_specular.png

newmtl metal
Kd 0.5 0.5 0.5
map_Kd metal.png
`

func decodeTestModel(t *testing.T) *obj.Decoder {
	t.Helper()
	decoder, err := obj.DecodeReader(strings.NewReader(testOBJ), strings.NewReader(testMTL))
	require.NoError(t, err)
	return decoder
}

func TestSamplerNames(t *testing.T) {
	names := SamplerNames([]Texture{
		{Kind: Diffuse},
		{Kind: Specular},
		{Kind: Diffuse},
		{Kind: Diffuse},
		{Kind: Specular},
	})
	assert.Equal(t, []string{
		"texture_diffuse1",
		"texture_specular1",
		"texture_diffuse2",
		"texture_diffuse3",
		"texture_specular2",
	}, names)

	assert.Empty(t, SamplerNames(nil))
}

func TestInterleave(t *testing.T) {
	data := interleave([]Vertex{
		{Position: mgl32.Vec3{1, 2, 3}, Normal: mgl32.Vec3{0, 1, 0}, TexCoords: mgl32.Vec2{0.25, 0.75}},
		{Position: mgl32.Vec3{4, 5, 6}},
	})
	assert.Equal(t, []float32{
		1, 2, 3, 0, 1, 0, 0.25, 0.75,
		4, 5, 6, 0, 0, 0, 0, 0,
	}, data)
	assert.Equal(t, int32(32), VertexLayout.Stride())
}

func TestBuildMeshesGroupsByObjectAndMaterial(t *testing.T) {
	parts := buildMeshes(decodeTestModel(t), false)
	require.Len(t, parts, 3)

	assert.Equal(t, "Quad", parts[0].object)
	assert.Equal(t, "wood", parts[0].material)
	assert.Equal(t, "Tri", parts[1].object)
	assert.Equal(t, "metal", parts[1].material)
	assert.Equal(t, "Tri", parts[2].object)
	assert.Equal(t, "wood", parts[2].material)
}

func TestBuildMeshesTriangulatesAndSharesVertices(t *testing.T) {
	quad := buildMeshes(decodeTestModel(t), false)[0]

	assert.Len(t, quad.vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, quad.indices)

	assert.Equal(t, mgl32.Vec3{1, 1, 0}, quad.vertices[2].Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, quad.vertices[2].Normal)
	assert.Equal(t, mgl32.Vec2{1, 1}, quad.vertices[2].TexCoords)
}

func TestBuildMeshesDefaultsMissingAttributes(t *testing.T) {
	parts := buildMeshes(decodeTestModel(t), false)

	noNormals := parts[1]
	require.Len(t, noNormals.vertices, 3)
	assert.Equal(t, mgl32.Vec3{}, noNormals.vertices[1].Normal)
	assert.Equal(t, mgl32.Vec2{1, 0}, noNormals.vertices[1].TexCoords)

	noUVs := parts[2]
	require.Len(t, noUVs.vertices, 3)
	assert.Equal(t, mgl32.Vec2{}, noUVs.vertices[1].TexCoords)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, noUVs.vertices[1].Normal)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, noUVs.vertices[1].Position)
}

func TestBuildMeshesFlipUVs(t *testing.T) {
	quad := buildMeshes(decodeTestModel(t), true)[0]
	assert.Equal(t, mgl32.Vec2{0, 1}, quad.vertices[0].TexCoords)
	assert.Equal(t, mgl32.Vec2{1, 0}, quad.vertices[2].TexCoords)
}

func TestScanMtllib(t *testing.T) {
	assert.Equal(t, "crate.mtl", scanMtllib([]byte(testOBJ)))
	assert.Equal(t, filepath.FromSlash("materials/my crate.mtl"), scanMtllib([]byte("# comment\nmtllib materials\\my crate.mtl\n")))
	assert.Empty(t, scanMtllib([]byte("v 0 0 0\n")))
}

func TestScanTextureMaps(t *testing.T) {
	specular := scanTextureMaps([]byte(testMTL), "map_Ks")
	assert.Equal(t, map[string]string{
		"wood": filepath.FromSlash("textures/wood_specular.png"),
	}, specular)

	diffuse := scanTextureMaps([]byte(testMTL), "map_Kd")
	assert.Equal(t, filepath.FromSlash("textures/wood.png"), diffuse["wood"])
	assert.Equal(t, "metal.png", diffuse["metal"])
}

func TestDecodeModelResolvesTextures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.obj"), []byte(testOBJ), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.mtl"), []byte(testMTL), 0o644))

	parts, err := decodeModel(filepath.Join(dir, "crate.obj"), LoadOptions{Log: slog.Default()})
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, []textureRef{
		{Diffuse, filepath.Join(dir, "textures", "wood.png")},
		{Specular, filepath.Join(dir, "textures", "wood_specular.png")},
	}, parts[0].textures)
	assert.Equal(t, []textureRef{
		{Diffuse, filepath.Join(dir, "metal.png")},
	}, parts[1].textures)
}

func TestDecodeModelWithoutMaterialLibrary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.obj"), []byte(testOBJ), 0o644))

	parts, err := decodeModel(filepath.Join(dir, "crate.obj"), LoadOptions{Log: slog.Default()})
	require.NoError(t, err)
	require.Len(t, parts, 3)
	for _, part := range parts {
		assert.Empty(t, part.textures)
	}
}

func TestDecodeModelMissingFile(t *testing.T) {
	_, err := decodeModel(filepath.Join(t.TempDir(), "missing.obj"), LoadOptions{Log: slog.Default()})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeModelSkipsMapOptions(t *testing.T) {
	dir := t.TempDir()
	mtl := "newmtl wood\nmap_Kd -bm 0.5 diffuse.png\nmap_Ks -bm 0.5 specular.png\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.obj"), []byte(testOBJ), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.mtl"), []byte(mtl), 0o644))

	parts, err := decodeModel(filepath.Join(dir, "crate.obj"), LoadOptions{Log: slog.Default()})
	require.NoError(t, err)
	require.NotEmpty(t, parts)

	assert.Equal(t, []textureRef{
		{Diffuse, filepath.Join(dir, "diffuse.png")},
		{Specular, filepath.Join(dir, "specular.png")},
	}, parts[0].textures)
}

func TestTexturePathsSharedAcrossParts(t *testing.T) {
	parts := []*meshPart{
		{textures: []textureRef{{Diffuse, "wood.png"}, {Specular, "wood_specular.png"}}},
		{textures: []textureRef{{Diffuse, "metal.png"}}},
		{textures: []textureRef{{Diffuse, "wood.png"}, {Specular, "wood_specular.png"}}},
	}
	assert.Equal(t, []string{"wood.png", "wood_specular.png", "metal.png"}, texturePaths(parts))
	assert.Empty(t, texturePaths(nil))
}

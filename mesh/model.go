package mesh

import (
	"bufio"
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/shader"
	"github.com/learngl/examples/texture"
)

type LoadOptions struct {
	// FlipUVs replaces every texture coordinate v with 1-v.
	FlipUVs bool
	Texture texture.Options
	// Fallback substitutes a checkerboard for texture files that are missing.
	Fallback bool
	Log      *slog.Logger
}

type Model struct {
	Meshes    []*Mesh
	Directory string

	textures []uint32
}

// LoadModel reads a Wavefront OBJ file and the material library it names,
// producing one mesh per object and material with its diffuse and specular
// maps loaded.
func LoadModel(path string, opts LoadOptions) (*Model, error) {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	parts, err := decodeModel(path, opts)
	if err != nil {
		return nil, err
	}

	paths := texturePaths(parts)

	ids, err := loadTextures(paths, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "model %s", path)
	}

	model := &Model{Directory: filepath.Dir(path)}
	for _, p := range paths {
		model.textures = append(model.textures, ids[p])
	}
	for _, part := range parts {
		var textures []Texture
		for _, ref := range part.textures {
			textures = append(textures, Texture{ID: ids[ref.path], Kind: ref.kind, Path: ref.path})
		}
		mesh := New(part.vertices, part.indices, textures)
		mesh.Upload()
		model.Meshes = append(model.Meshes, mesh)
	}

	opts.Log.Debug("Loaded model", "path", path, "meshes", len(model.Meshes), "textures", len(paths))
	return model, nil
}

func (m *Model) Draw(program *shader.Program) {
	for _, mesh := range m.Meshes {
		mesh.Draw(program)
	}
}

func (m *Model) Delete() {
	for _, mesh := range m.Meshes {
		mesh.Delete()
	}
	texture.Delete(m.textures...)
	m.Meshes = nil
	m.textures = nil
}

// texturePaths lists every texture the parts reference once, in the order
// first referenced.
func texturePaths(parts []*meshPart) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, part := range parts {
		for _, ref := range part.textures {
			if !seen[ref.path] {
				seen[ref.path] = true
				paths = append(paths, ref.path)
			}
		}
	}
	return paths
}

type textureRef struct {
	kind TextureKind
	path string
}

type meshPart struct {
	object   string
	material string
	vertices []Vertex
	indices  []uint32
	textures []textureRef
}

// decodeModel parses the model and resolves its texture paths without
// touching the GL context.
func decodeModel(path string, opts LoadOptions) ([]*meshPart, error) {
	objData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read model")
	}
	directory := filepath.Dir(path)

	var mtlData []byte
	if mtllib := scanMtllib(objData); mtllib != "" {
		mtlPath := filepath.Join(directory, mtllib)
		mtlData, err = os.ReadFile(mtlPath)
		if errors.Is(err, fs.ErrNotExist) {
			opts.Log.Warn("Material library not found", "path", mtlPath)
		} else if err != nil {
			return nil, errors.Wrap(err, "read material library")
		}
	}

	decoder, err := obj.DecodeReader(bytes.NewReader(objData), bytes.NewReader(mtlData))
	if err != nil {
		return nil, errors.Wrapf(err, "decode model %s", path)
	}

	parts := buildMeshes(decoder, opts.FlipUVs)
	if len(parts) == 0 {
		return nil, errors.Newf("model %s has no faces", path)
	}

	// The decoder keeps only the first field of map_Kd, which is an option
	// rather than the file when options are given, and drops map_Ks.
	diffuseMaps := scanTextureMaps(mtlData, "map_Kd")
	specularMaps := scanTextureMaps(mtlData, "map_Ks")
	for _, part := range parts {
		if diffuse, ok := diffuseMaps[part.material]; ok {
			part.textures = append(part.textures, textureRef{Diffuse, filepath.Join(directory, diffuse)})
		}
		if specular, ok := specularMaps[part.material]; ok {
			part.textures = append(part.textures, textureRef{Specular, filepath.Join(directory, specular)})
		}
	}
	return parts, nil
}

type vertexKey struct {
	position, uv, normal int
}

type meshBuilder struct {
	part   *meshPart
	unique map[vertexKey]uint32
}

// buildMeshes triangulates polygon faces as fans and groups them into one
// mesh per object and material, sharing vertices with identical position,
// texture coordinate and normal indices.
func buildMeshes(decoder *obj.Decoder, flipUVs bool) []*meshPart {
	var parts []*meshPart
	for _, object := range decoder.Objects {
		builders := make(map[string]*meshBuilder)
		var order []string

		for _, face := range object.Faces {
			builder, ok := builders[face.Material]
			if !ok {
				builder = &meshBuilder{
					part:   &meshPart{object: object.Name, material: face.Material},
					unique: make(map[vertexKey]uint32),
				}
				builders[face.Material] = builder
				order = append(order, face.Material)
			}

			for i := 2; i < len(face.Vertices); i++ {
				builder.add(decoder, face, 0, flipUVs)
				builder.add(decoder, face, i-1, flipUVs)
				builder.add(decoder, face, i, flipUVs)
			}
		}

		for _, material := range order {
			if part := builders[material].part; len(part.indices) > 0 {
				parts = append(parts, part)
			}
		}
	}
	return parts
}

func (b *meshBuilder) add(decoder *obj.Decoder, face obj.Face, corner int, flipUVs bool) {
	key := vertexKey{
		position: indexAt(face.Vertices, corner),
		uv:       indexAt(face.Uvs, corner),
		normal:   indexAt(face.Normals, corner),
	}

	index, exists := b.unique[key]
	if !exists {
		vertex := Vertex{
			Position: vec3At(decoder.Vertices, key.position),
			Normal:   vec3At(decoder.Normals, key.normal),
		}
		if key.uv >= 0 && key.uv*2+1 < len(decoder.Uvs) {
			vertex.TexCoords = mgl32.Vec2{decoder.Uvs[key.uv*2], decoder.Uvs[key.uv*2+1]}
			if flipUVs {
				vertex.TexCoords[1] = 1 - vertex.TexCoords[1]
			}
		}

		index = uint32(len(b.part.vertices))
		b.part.vertices = append(b.part.vertices, vertex)
		b.unique[key] = index
	}

	b.part.indices = append(b.part.indices, index)
}

// indexAt returns -1 for corners that carry no index of that kind.
func indexAt(indices []int, corner int) int {
	if corner >= len(indices) {
		return -1
	}
	return indices[corner]
}

func vec3At(values []float32, index int) mgl32.Vec3 {
	if index < 0 || index*3+2 >= len(values) {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{values[index*3], values[index*3+1], values[index*3+2]}
}

// scanMtllib finds the material library an OBJ file names. The decoder
// reports it as Decoder.Matlib only after decoding, but DecodeReader needs
// the library's reader up front.
func scanMtllib(objData []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(objData))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "mtllib" {
			return cleanMapPath(strings.Join(fields[1:], " "))
		}
	}
	return ""
}

// scanTextureMaps collects the texture file each material assigns to
// keyword. Map options such as "-bm 0.5" are skipped; the file is the last
// field.
func scanTextureMaps(mtlData []byte, keyword string) map[string]string {
	maps := make(map[string]string)

	var material string
	scanner := bufio.NewScanner(bytes.NewReader(mtlData))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			material = fields[1]
		case keyword:
			if material != "" {
				maps[material] = cleanMapPath(fields[len(fields)-1])
			}
		}
	}
	return maps
}

// cleanMapPath normalizes separators in material file references, which are
// often written on Windows.
func cleanMapPath(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(strings.TrimSpace(path), `\`, "/"))
}

// loadTextures decodes the files concurrently and uploads them in order on
// the calling goroutine.
func loadTextures(paths []string, opts LoadOptions) (map[string]uint32, error) {
	var substitute texture.Substitute
	if opts.Fallback {
		substitute = texture.FallbackOnMissing(opts.Log)
	}

	images, err := texture.DecodeAll(context.Background(), paths, opts.Texture, substitute)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]uint32, len(paths))
	for i, img := range images {
		id, err := texture.Upload(img, opts.Texture)
		if err != nil {
			for _, loaded := range ids {
				texture.Delete(loaded)
			}
			return nil, errors.Wrapf(err, "texture %s", paths[i])
		}
		ids[paths[i]] = id
	}
	return ids, nil
}

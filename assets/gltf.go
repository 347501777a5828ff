package assets

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a .gltf or .glb file and flattens the triangle primitives
// of every mesh into a single Model. Node transforms are not applied.
func LoadGLTF(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "gltf open %q", path)
	}

	model := &Model{FilePath: path}
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				slog.Warn("gltf: skipping non-triangle primitive", "path", path, "mesh", mi, "primitive", pi)
				continue
			}
			if err := appendPrimitive(doc, prim, model); err != nil {
				return nil, errors.Wrapf(err, "gltf %q mesh %d primitive %d", path, mi, pi)
			}
		}
	}

	if len(model.Faces) == 0 {
		return nil, errors.Errorf("no triangles found in glTF file %q", path)
	}
	return model, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, model *Model) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return errors.New("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return errors.Wrap(err, "positions")
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return errors.Wrap(err, "normals")
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return errors.Wrap(err, "texture coordinates")
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return errors.Wrap(err, "indices")
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	// glTF attributes are per vertex, so one 1-based index serves all three lists
	base := len(model.Vertices)
	for i, p := range positions {
		model.Vertices = append(model.Vertices, mgl32.Vec3{p[0], p[1], p[2]})
		n := mgl32.Vec3{0, 1, 0}
		if i < len(normals) {
			n = mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]}
		}
		model.Normals = append(model.Normals, n)
		var uv mgl32.Vec2
		if i < len(uvs) {
			uv = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
		model.TexCoords = append(model.TexCoords, uv)
	}

	for i := 0; i+2 < len(indices); i += 3 {
		var face PolyFace
		for c := 0; c < 3; c++ {
			idx := base + int(indices[i+c]) + 1
			if idx > len(model.Vertices) {
				return errors.Errorf("index %d out of range", indices[i+c])
			}
			face.Indices[c] = FaceIndex{Vertex: idx, TexCoord: idx, Normal: idx}
		}
		model.Faces = append(model.Faces, face)
	}
	return nil
}

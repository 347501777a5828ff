// Package assets loads the external resources a scene refers to by path:
// mesh models and textures. Loaded assets are kept in a Cache for the life
// of the session and shared between nodes, so they must be treated as
// read-only once loaded.
package assets

import (
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// FaceIndex points at one corner of a face. Indices are 1-based, as in the
// OBJ format; zero means the attribute is absent.
type FaceIndex struct {
	Vertex   int
	TexCoord int
	Normal   int
}

type PolyFace struct {
	Indices [3]FaceIndex
}

// Model is triangle geometry loaded from a model file.
type Model struct {
	FilePath  string
	Vertices  []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Faces     []PolyFace
}

// Corner is a face corner resolved against the model's attribute lists.
type Corner struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	UV        mgl32.Vec2
	HasNormal bool
	HasUV     bool
}

// Corner resolves fi. Out of range indices resolve to the zero value.
func (m *Model) Corner(fi FaceIndex) Corner {
	var c Corner
	if fi.Vertex > 0 && fi.Vertex <= len(m.Vertices) {
		c.Position = m.Vertices[fi.Vertex-1]
	}
	if fi.Normal > 0 && fi.Normal <= len(m.Normals) {
		c.Normal = m.Normals[fi.Normal-1]
		c.HasNormal = true
	}
	if fi.TexCoord > 0 && fi.TexCoord <= len(m.TexCoords) {
		c.UV = m.TexCoords[fi.TexCoord-1]
		c.HasUV = true
	}
	return c
}

// ErrUnsupportedModel is returned for model files of an unknown format.
var ErrUnsupportedModel = errors.New("unsupported model format")

// LoadModel picks a loader from the file extension.
func LoadModel(path string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, errors.Wrapf(ErrUnsupportedModel, "load model %q", path)
}

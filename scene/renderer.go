package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/assets"
	"fullmetal/core"
)

// LightKind selects how a Light is applied.
type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightSpot
)

func (k LightKind) String() string {
	switch k {
	case LightAmbient:
		return "ambient"
	case LightDirectional:
		return "directional"
	case LightSpot:
		return "spot"
	}
	return "unknown"
}

// Light is the state a light node hands to the renderer each frame.
type Light struct {
	Kind     LightKind
	Position mgl32.Vec3
	Ambient  core.Color
	Diffuse  core.Color

	// spot lights only
	Direction mgl32.Vec3
	Cutoff    float32
	Exponent  float32
}

// Renderer is the drawing capability nodes render themselves with. The
// matrix stack calls nest: every PushMatrix is matched by a PopMatrix.
type Renderer interface {
	PushMatrix()
	PopMatrix()
	ApplyTransform(t core.Transform)
	ApplyMaterial(m core.Material)

	// DrawCube draws a cube spanning -1..1 on every axis.
	DrawCube()
	// DrawSphere draws a unit sphere.
	DrawSphere(slices, stacks int)
	// DrawTriangles draws flat triangles sharing one normal.
	DrawTriangles(tris []core.Tri, normal mgl32.Vec3)
	DrawMesh(mesh *core.MeshData)
	// DrawModel draws a loaded model; flipUVs mirrors both texture axes.
	DrawModel(model *assets.Model, flipUVs bool)

	// EnableLight switches on a light for the rest of the frame.
	EnableLight(light Light)
}

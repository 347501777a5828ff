package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return NewColor(r, g, b, 1)
}

// Array returns the color as a float array suitable for GL calls.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

func (c Color) ApproxEqual(other Color, eps float32) bool {
	return mgl32.FloatEqualThreshold(c.R, other.R, eps) &&
		mgl32.FloatEqualThreshold(c.G, other.G, eps) &&
		mgl32.FloatEqualThreshold(c.B, other.B, eps) &&
		mgl32.FloatEqualThreshold(c.A, other.A, eps)
}

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// MeshData is indexed triangle geometry generated in code.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// Tri is a triangle made out of three points in 3D space.
type Tri struct {
	V1, V2, V3 mgl32.Vec3
}

// Transform is the position, scale and axis-angle rotation of a node.
// Angle is expressed in degrees.
type Transform struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Angle    float32
}

func NewTransform() Transform {
	return Transform{
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// Matrix composes rotation, translation and scale in that order, matching
// the order the fixed-function matrix stack applies them.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Ident4()
	if t.Angle != 0 && t.Rotation.Len() > 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(t.Angle), t.Rotation.Normalize()))
	}
	m = m.Mul4(mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Rotate changes the angle by the given amount of degrees.
func (t *Transform) Rotate(amount float32) {
	t.Angle += amount
}

func (t *Transform) Move(offset mgl32.Vec3) {
	t.Position = t.Position.Add(offset)
}

func (t Transform) ApproxEqual(other Transform, eps float32) bool {
	return t.Position.ApproxEqualThreshold(other.Position, eps) &&
		t.Scale.ApproxEqualThreshold(other.Scale, eps) &&
		t.Rotation.ApproxEqualThreshold(other.Rotation, eps) &&
		mgl32.FloatEqualThreshold(t.Angle, other.Angle, eps)
}

// Material describes how a surface reacts to the lights of the scene.
type Material struct {
	// AmbientColor is the overall colour of the surface, affected by ambient light.
	AmbientColor Color
	// DiffuseColor interacts with the light where the surface is lit.
	DiffuseColor  Color
	SpecularColor Color
	Shininess     float32

	// DoubleSided draws both front and back faces.
	DoubleSided      bool
	SpecularEnabled  bool
	ShininessEnabled bool

	// Texture is the path of an image bound while drawing, empty for none.
	Texture string
}

func NewMaterial(color Color) Material {
	return Material{
		AmbientColor:  color,
		DiffuseColor:  ColorWhite,
		SpecularColor: ColorWhite,
		Shininess:     16,
	}
}

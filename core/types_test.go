package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.Matrix().ApproxEqual(mgl32.Ident4()))
}

func TestTransformMatrixTranslatesAndScales(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{3, 4, 5}, 1e-5), "got %v", p)
}

func TestTransformMatrixRotatesBeforeTranslating(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 0, 0}
	tr.Rotation = mgl32.Vec3{0, 1, 0}
	tr.Angle = 90

	// the translation itself is rotated: (1,0,0) around +Y by 90 degrees is (0,0,-1)
	p := tr.Matrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5), "got %v", p)
}

func TestTransformZeroAxisIgnoresAngle(t *testing.T) {
	tr := NewTransform()
	tr.Angle = 45
	assert.True(t, tr.Matrix().ApproxEqual(mgl32.Ident4()))
}

func TestTransformRotateAndMove(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(10)
	tr.Rotate(5)
	tr.Move(mgl32.Vec3{1, 1, 0})
	tr.Move(mgl32.Vec3{0, 1, 1})

	assert.Equal(t, float32(15), tr.Angle)
	assert.Equal(t, mgl32.Vec3{1, 2, 1}, tr.Position)
}

func TestColorApproxEqual(t *testing.T) {
	a := NewColor(0.1, 0.2, 0.3, 1)
	b := NewColor(0.1000001, 0.2, 0.3, 1)
	assert.True(t, a.ApproxEqual(b, 1e-5))
	assert.False(t, a.ApproxEqual(ColorWhite, 1e-5))
	assert.Equal(t, [4]float32{1, 0, 0, 1}, ColorRed.Array())
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial(ColorRed)
	assert.Equal(t, ColorRed, m.AmbientColor)
	assert.Equal(t, ColorWhite, m.DiffuseColor)
	assert.Equal(t, float32(16), m.Shininess)
	assert.False(t, m.SpecularEnabled)
	assert.Empty(t, m.Texture)
}

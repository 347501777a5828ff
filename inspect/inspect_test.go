package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullmetal/core"
	"fullmetal/scene"
)

// scripted is a UI that changes the widgets named in ints and floats and
// records every label it draws.
type scripted struct {
	labels []string
	ints   map[string]int
	floats map[string]float32
	bools  map[string]bool
}

func (s *scripted) Text(format string, args ...any) {}
func (s *scripted) LabelText(label, value string) { s.labels = append(s.labels, label) }
func (s *scripted) Indent()                       {}
func (s *scripted) Unindent()                     {}

func (s *scripted) InputText(label string, value *string) bool {
	s.labels = append(s.labels, label)
	return false
}

func (s *scripted) Checkbox(label string, value *bool) bool {
	s.labels = append(s.labels, label)
	if v, ok := s.bools[label]; ok {
		*value = v
		return true
	}
	return false
}

func (s *scripted) InputInt(label string, value *int) bool {
	s.labels = append(s.labels, label)
	if v, ok := s.ints[label]; ok {
		*value = v
		return true
	}
	return false
}

func (s *scripted) InputFloat(label string, value *float32) bool {
	s.labels = append(s.labels, label)
	if v, ok := s.floats[label]; ok {
		*value = v
		return true
	}
	return false
}

func (s *scripted) DragFloat(label string, value *float32, _, _, _ float32) bool {
	return s.InputFloat(label, value)
}

func TestPlaneRebuildsOnEdit(t *testing.T) {
	p := scene.NewPlaneNode(core.ColorWhite, 4, 1, 1)
	ui := &scripted{ints: map[string]int{"Width": 3, "Height": 0}}

	Plane(ui, p)

	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 1, p.Height())
	assert.Equal(t, 4, p.QuadSize())
	assert.Len(t, p.Tris(), 6)
}

func TestPlaneUnchangedDoesNotRebuild(t *testing.T) {
	p := scene.NewPlaneNode(core.ColorWhite, 4, 2, 2)
	before := p.Tris()
	Plane(&scripted{}, p)
	assert.Same(t, &before[0], &p.Tris()[0])
}

func TestCylinderRebuildsOnEdit(t *testing.T) {
	c := scene.NewCylinderNode(core.ColorWhite)
	Cylinder(&scripted{ints: map[string]int{"Segments": 8}}, c)
	assert.Equal(t, 8, c.Segments())
}

func TestTransformEditsComponents(t *testing.T) {
	tr := core.NewTransform()
	ui := &scripted{floats: map[string]float32{"y##Position": 2, "Angle": 45}}

	assert.True(t, Transform(ui, &tr))
	assert.Equal(t, mgl32.Vec3{0, 2, 0}, tr.Position)
	assert.Equal(t, float32(45), tr.Angle)
}

func TestMaterialHidesDisabledTerms(t *testing.T) {
	m := core.NewMaterial(core.ColorRed)
	ui := &scripted{}
	Material(ui, &m)
	assert.NotContains(t, ui.labels, "Shininess")

	ui = &scripted{bools: map[string]bool{"Shininess##enabled": true}, floats: map[string]float32{"Shininess": 32}}
	assert.True(t, Material(ui, &m))
	assert.True(t, m.ShininessEnabled)
	assert.Equal(t, float32(32), m.Shininess)
}

func TestSpotLightFields(t *testing.T) {
	s := scene.NewSpotLightNode(core.ColorWhite, core.ColorWhite, mgl32.Vec3{1, 1, 1})
	ui := &scripted{floats: map[string]float32{"Cutoff": 40, "x##Direction": 0}}
	SpotLight(ui, s)
	assert.Equal(t, float32(40), s.Cutoff)
	assert.Equal(t, mgl32.Vec3{0, 1, 1}, s.Direction)
	assert.Contains(t, ui.labels, "Exponent")
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	Sphere(p, scene.NewSphereNode(core.ColorRed))
	require.NoError(t, p.Err())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Name: \"Sphere Node\"\n"), out)
	assert.Contains(t, out, "Enabled: true")
	assert.Contains(t, out, "  Slices: 20")
	assert.Contains(t, out, "    R: 1")
}

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/core"
)

// LightNode is the shared state of the light variants. Lights sort before
// every other node so they are enabled before anything is lit.
type LightNode struct {
	NodeBase
	Color core.Color
}

func newLightNode(name string, color core.Color) LightNode {
	l := LightNode{NodeBase: NewNodeBase(name), Color: color}
	l.SetCategory(LightCategory)
	return l
}

// AmbientLightNode is a positional light with both ambient and diffuse terms.
type AmbientLightNode struct {
	LightNode
	Diffuse core.Color
}

func NewAmbientLightNode(color core.Color) *AmbientLightNode {
	return &AmbientLightNode{
		LightNode: newLightNode("Ambient Light Node", color),
		Diffuse:   core.ColorWhite,
	}
}

func (a *AmbientLightNode) Render(r Renderer) {
	r.EnableLight(Light{
		Kind:     LightAmbient,
		Position: a.Transform.Position,
		Ambient:  a.Color,
		Diffuse:  a.Diffuse,
	})
	a.NodeBase.Render(r)
}

func (a *AmbientLightNode) Clone() Node {
	clone := *a
	a.CloneInto(&clone.NodeBase)
	return &clone
}

// DirectionalLightNode lights along its position vector, which is treated
// as a direction.
type DirectionalLightNode struct {
	LightNode
}

func NewDirectionalLightNode(color core.Color) *DirectionalLightNode {
	return &DirectionalLightNode{LightNode: newLightNode("Directional Light Node", color)}
}

func (d *DirectionalLightNode) Render(r Renderer) {
	r.EnableLight(Light{
		Kind:     LightDirectional,
		Position: d.Transform.Position,
		Diffuse:  d.Color,
	})
	d.NodeBase.Render(r)
}

func (d *DirectionalLightNode) Clone() Node {
	clone := *d
	d.CloneInto(&clone.NodeBase)
	return &clone
}

// SpotLightNode is a cone light. Cutoff is the cone half angle in degrees.
type SpotLightNode struct {
	LightNode
	Diffuse   core.Color
	Direction mgl32.Vec3
	Cutoff    float32
	Exponent  float32
}

func NewSpotLightNode(color, diffuse core.Color, direction mgl32.Vec3) *SpotLightNode {
	return &SpotLightNode{
		LightNode: newLightNode("Spot Light Node", color),
		Diffuse:   diffuse,
		Direction: direction,
		Cutoff:    25,
		Exponent:  50,
	}
}

func (s *SpotLightNode) Render(r Renderer) {
	r.EnableLight(Light{
		Kind:      LightSpot,
		Position:  s.Transform.Position,
		Ambient:   s.Color,
		Diffuse:   s.Diffuse,
		Direction: s.Direction,
		Cutoff:    s.Cutoff,
		Exponent:  s.Exponent,
	})
	s.NodeBase.Render(r)
}

func (s *SpotLightNode) Clone() Node {
	clone := *s
	s.CloneInto(&clone.NodeBase)
	return &clone
}

package scene

import (
	"fullmetal/assets"
	"fullmetal/core"
)

// MeshNode draws a loaded model. The model is shared with the asset cache
// and must be treated as read only; UV switching happens at draw time.
type MeshNode struct {
	NodeBase
	Model       *assets.Model
	SwitchedUVs bool
	Material    core.Material
}

func NewMeshNode(model *assets.Model) *MeshNode {
	return &MeshNode{
		NodeBase: NewNodeBase("Mesh Node"),
		Model:    model,
		Material: core.NewMaterial(core.ColorWhite),
	}
}

func (m *MeshNode) Render(r Renderer) {
	r.PushMatrix()
	r.ApplyTransform(m.Transform)
	r.ApplyMaterial(m.Material)
	// nothing to draw until a model is set
	if m.Model != nil {
		r.DrawModel(m.Model, m.SwitchedUVs)
	}
	m.NodeBase.Render(r)
	r.PopMatrix()
}

func (m *MeshNode) Clone() Node {
	clone := *m
	m.CloneInto(&clone.NodeBase)
	return &clone
}

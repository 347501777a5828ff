package inspect

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/core"
	"fullmetal/scene"
)

// Vector3 edits the three components of v on one labelled group.
func Vector3(ui UI, label string, v *mgl32.Vec3) bool {
	changed := ui.InputFloat("x##"+label, &v[0])
	changed = ui.InputFloat("y##"+label, &v[1]) || changed
	changed = ui.InputFloat("z##"+label, &v[2]) || changed
	ui.Text("%s", label)
	return changed
}

// Color edits each channel in 0..1.
func Color(ui UI, label string, c *core.Color) bool {
	ui.Text("%s", label)
	ui.Indent()
	changed := ui.DragFloat("R", &c.R, 0.0025, 0, 1)
	changed = ui.DragFloat("G", &c.G, 0.0025, 0, 1) || changed
	changed = ui.DragFloat("B", &c.B, 0.0025, 0, 1) || changed
	changed = ui.DragFloat("A", &c.A, 0.0025, 0, 1) || changed
	ui.Unindent()
	return changed
}

func Transform(ui UI, t *core.Transform) bool {
	ui.Text("Transform")
	ui.Indent()
	changed := Vector3(ui, "Position", &t.Position)
	changed = Vector3(ui, "Scale", &t.Scale) || changed
	changed = Vector3(ui, "Rotation", &t.Rotation) || changed
	changed = ui.DragFloat("Angle", &t.Angle, 1, 0, 360) || changed
	ui.Unindent()
	return changed
}

func Material(ui UI, m *core.Material) bool {
	ui.Text("Material")
	ui.Indent()
	changed := Color(ui, "Ambient Color", &m.AmbientColor)
	changed = Color(ui, "Diffuse Color", &m.DiffuseColor) || changed
	changed = ui.Checkbox("Specular", &m.SpecularEnabled) || changed
	if m.SpecularEnabled {
		changed = Color(ui, "Specular Color", &m.SpecularColor) || changed
	}
	changed = ui.Checkbox("Shininess##enabled", &m.ShininessEnabled) || changed
	if m.ShininessEnabled {
		changed = ui.DragFloat("Shininess", &m.Shininess, 0.5, 0, 128) || changed
	}
	changed = ui.Checkbox("Double Sided", &m.DoubleSided) || changed
	changed = ui.InputText("Texture", &m.Texture) || changed
	ui.Unindent()
	return changed
}

// Node edits the state shared by every variant.
func Node(ui UI, n *scene.NodeBase) {
	ui.InputText("Name", &n.Name)
	ui.Checkbox("Enabled", &n.Enabled)
	ui.LabelText("Children", strconv.Itoa(len(n.Children())))
	Transform(ui, &n.Transform)
}

func Shape(ui UI, s *scene.ShapeNode) {
	Node(ui, &s.NodeBase)
	Material(ui, &s.Material)
}

func Cube(ui UI, c *scene.CubeNode) {
	Shape(ui, &c.ShapeNode)
}

func Sphere(ui UI, s *scene.SphereNode) {
	Shape(ui, &s.ShapeNode)

	ui.Text("Sphere Settings")
	ui.Indent()
	if ui.InputInt("Slices", &s.Slices) {
		s.Slices = min(max(s.Slices, 3), scene.MaxSphereDivisions)
	}
	if ui.InputInt("Stacks", &s.Stacks) {
		s.Stacks = min(max(s.Stacks, 2), scene.MaxSphereDivisions)
	}
	ui.Unindent()
}

// Plane rebuilds the grid when any of its dimensions change.
func Plane(ui UI, p *scene.PlaneNode) {
	Shape(ui, &p.ShapeNode)

	ui.Text("Plane Settings")
	ui.Indent()
	quadSize, width, height := p.QuadSize(), p.Width(), p.Height()
	rebuild := ui.InputInt("Quad Length", &quadSize)
	rebuild = ui.InputInt("Width", &width) || rebuild
	rebuild = ui.InputInt("Height", &height) || rebuild
	ui.LabelText("Num Tris", strconv.Itoa(len(p.Tris())))
	if rebuild {
		p.Build(quadSize, width, height)
	}
	ui.Unindent()
}

func Cylinder(ui UI, c *scene.CylinderNode) {
	Shape(ui, &c.ShapeNode)

	ui.Text("Cylinder Settings")
	ui.Indent()
	segments := c.Segments()
	if ui.InputInt("Segments", &segments) {
		c.Build(segments)
	}
	ui.Unindent()
}

func Light(ui UI, l *scene.LightNode) {
	Node(ui, &l.NodeBase)
	Color(ui, "Color", &l.Color)
}

func AmbientLight(ui UI, a *scene.AmbientLightNode) {
	Light(ui, &a.LightNode)
	Color(ui, "Diffuse Color", &a.Diffuse)
}

func DirectionalLight(ui UI, d *scene.DirectionalLightNode) {
	Light(ui, &d.LightNode)
}

func SpotLight(ui UI, s *scene.SpotLightNode) {
	Light(ui, &s.LightNode)
	Color(ui, "Diffuse Color", &s.Diffuse)

	ui.Text("Spot Light Settings")
	ui.Indent()
	Vector3(ui, "Direction", &s.Direction)
	ui.InputFloat("Cutoff", &s.Cutoff)
	ui.InputFloat("Exponent", &s.Exponent)
	ui.Unindent()
}

func Mesh(ui UI, m *scene.MeshNode) {
	Node(ui, &m.NodeBase)
	Material(ui, &m.Material)

	ui.Text("Model")
	ui.Indent()
	if m.Model == nil {
		ui.Text("none")
	} else {
		ui.LabelText("File", m.Model.FilePath)
		ui.LabelText("Faces", strconv.Itoa(len(m.Model.Faces)))
	}
	ui.Checkbox("Switched UVs", &m.SwitchedUVs)
	ui.Unindent()
}

package scene

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/core"
)

// Geometry limits. Builders clamp to them; decoders reject values outside
// them.
const (
	MaxPlaneQuads      = 512 // quads along one side of a plane
	MaxQuadSize        = 4096
	MaxSegments        = 1024
	MaxSphereDivisions = 512
)

// ShapeNode is the shared state of the primitive shapes. It is not a Node
// by itself.
type ShapeNode struct {
	NodeBase
	Material core.Material
}

func newShapeNode(name string, color core.Color) ShapeNode {
	return ShapeNode{
		NodeBase: NewNodeBase(name),
		Material: core.NewMaterial(color),
	}
}

// begin and end bracket the drawing of a shape in its own transform.
func (s *ShapeNode) begin(r Renderer) {
	r.PushMatrix()
	r.ApplyTransform(s.Transform)
	r.ApplyMaterial(s.Material)
}

func (s *ShapeNode) end(r Renderer) {
	s.NodeBase.Render(r)
	r.PopMatrix()
}

type CubeNode struct {
	ShapeNode
}

func NewCubeNode(color core.Color) *CubeNode {
	return &CubeNode{ShapeNode: newShapeNode("Cube Node", color)}
}

func (c *CubeNode) Render(r Renderer) {
	c.begin(r)
	r.DrawCube()
	c.end(r)
}

func (c *CubeNode) Clone() Node {
	clone := *c
	c.CloneInto(&clone.NodeBase)
	return &clone
}

type SphereNode struct {
	ShapeNode
	Slices int
	Stacks int
}

func NewSphereNode(color core.Color) *SphereNode {
	return &SphereNode{
		ShapeNode: newShapeNode("Sphere Node", color),
		Slices:    20,
		Stacks:    20,
	}
}

func (s *SphereNode) Render(r Renderer) {
	s.begin(r)
	r.DrawSphere(s.Slices, s.Stacks)
	s.end(r)
}

func (s *SphereNode) Clone() Node {
	clone := *s
	s.CloneInto(&clone.NodeBase)
	return &clone
}

// PlaneNode is a flat grid of quads on the XZ plane, centred on the origin.
type PlaneNode struct {
	ShapeNode

	quadSize int
	width    int
	height   int
	tris     []core.Tri
}

func NewPlaneNode(color core.Color, quadSize, width, height int) *PlaneNode {
	p := &PlaneNode{ShapeNode: newShapeNode("Plane Node", color)}
	p.Build(quadSize, width, height)
	return p
}

func (p *PlaneNode) QuadSize() int { return p.quadSize }
func (p *PlaneNode) Width() int    { return p.width }
func (p *PlaneNode) Height() int   { return p.height }

// Tris returns the generated triangles, two per quad.
func (p *PlaneNode) Tris() []core.Tri { return p.tris }

// Build regenerates the grid with width x height quads of the given size.
// Every dimension is clamped to at least 1 and to its limit.
func (p *PlaneNode) Build(quadSize, width, height int) {
	p.quadSize = min(max(quadSize, 1), MaxQuadSize)
	p.width = min(max(width, 1), MaxPlaneQuads)
	p.height = min(max(height, 1), MaxPlaneQuads)

	size := float32(p.quadSize)
	xOffset := size * float32(p.width) / 2
	zOffset := size * float32(p.height) / 2

	p.tris = make([]core.Tri, 0, 2*p.width*p.height)
	for x := 0; x < p.width; x++ {
		for z := 0; z < p.height; z++ {
			x0 := float32(x)*size - xOffset
			z0 := float32(z)*size - zOffset

			v1 := mgl32.Vec3{x0, 0, z0}
			v2 := mgl32.Vec3{x0 + size, 0, z0}
			v3 := mgl32.Vec3{x0 + size, 0, z0 + size}
			v4 := mgl32.Vec3{x0, 0, z0 + size}

			p.tris = append(p.tris, core.Tri{V1: v1, V2: v3, V3: v4}, core.Tri{V1: v1, V2: v2, V3: v3})
		}
	}
}

func (p *PlaneNode) Render(r Renderer) {
	p.begin(r)
	r.DrawTriangles(p.tris, mgl32.Vec3{0, 1, 0})
	p.end(r)
}

func (p *PlaneNode) Clone() Node {
	clone := *p
	clone.tris = slices.Clone(p.tris)
	p.CloneInto(&clone.NodeBase)
	return &clone
}

// CylinderNode is a capped cylinder of radius 1 spanning -1..1 on Y,
// generated in code.
type CylinderNode struct {
	ShapeNode

	segments int
	mesh     *core.MeshData
}

func NewCylinderNode(color core.Color) *CylinderNode {
	c := &CylinderNode{ShapeNode: newShapeNode("Cylinder Node", color)}
	c.Build(16)
	return c
}

func (c *CylinderNode) Segments() int { return c.segments }

func (c *CylinderNode) Mesh() *core.MeshData { return c.mesh }

// Build regenerates the geometry with the given number of segments around
// the axis, clamped to 3..MaxSegments.
func (c *CylinderNode) Build(segments int) {
	c.segments = min(max(segments, 3), MaxSegments)
	c.mesh = CylinderMesh(1, 2, c.segments)
}

func (c *CylinderNode) Render(r Renderer) {
	c.begin(r)
	r.DrawMesh(c.mesh)
	c.end(r)
}

func (c *CylinderNode) Clone() Node {
	clone := *c
	clone.Build(c.segments)
	c.CloneInto(&clone.NodeBase)
	return &clone
}

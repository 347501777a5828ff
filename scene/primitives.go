package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/core"
)

// CubeMesh returns a cube spanning -1..1 on every axis with one normal per
// face.
func CubeMesh() *core.MeshData {
	mesh := &core.MeshData{}
	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	for _, f := range faces {
		base := uint32(len(mesh.Vertices))
		for _, c := range corners {
			mesh.Vertices = append(mesh.Vertices, core.Vertex{
				Position: f.normal.Add(f.u.Mul(c.X())).Add(f.v.Mul(c.Y())),
				Normal:   f.normal,
				UV:       mgl32.Vec2{(c.X() + 1) / 2, (c.Y() + 1) / 2},
			})
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return mesh
}

// SphereMesh returns a unit sphere with the given number of slices around
// the Y axis and stacks from pole to pole.
func SphereMesh(slices, stacks int) *core.MeshData {
	slices = min(max(slices, 3), MaxSphereDivisions)
	stacks = min(max(stacks, 2), MaxSphereDivisions)
	mesh := &core.MeshData{}

	for stack := 0; stack <= stacks; stack++ {
		phi := float64(stack) * stdmath.Pi / float64(stacks)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for slice := 0; slice <= slices; slice++ {
			theta := float64(slice) * 2.0 * stdmath.Pi / float64(slices)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			mesh.Vertices = append(mesh.Vertices, core.Vertex{
				Position: normal,
				Normal:   normal,
				UV:       mgl32.Vec2{float32(slice) / float32(slices), float32(stack) / float32(stacks)},
			})
		}
	}

	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			current := uint32(stack*(slices+1) + slice)
			next := current + uint32(slices+1)

			mesh.Indices = append(mesh.Indices, current, current+1, next)
			mesh.Indices = append(mesh.Indices, current+1, next+1, next)
		}
	}
	return mesh
}

// CylinderMesh returns a capped cylinder around the Y axis, centred on the
// origin.
func CylinderMesh(radius, height float32, segments int) *core.MeshData {
	mesh := &core.MeshData{}
	halfHeight := height / 2

	ring := func(i int) (float32, float32) {
		theta := float64(i) * 2 * stdmath.Pi / float64(segments)
		return float32(stdmath.Cos(theta)), float32(stdmath.Sin(theta))
	}
	add := func(v core.Vertex) uint32 {
		mesh.Vertices = append(mesh.Vertices, v)
		return uint32(len(mesh.Vertices) - 1)
	}

	// side
	for i := 0; i <= segments; i++ {
		cosT, sinT := ring(i)
		normal := mgl32.Vec3{cosT, 0, sinT}
		u := float32(i) / float32(segments)
		add(core.Vertex{Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius}, Normal: normal, UV: mgl32.Vec2{u, 0}})
		add(core.Vertex{Position: mgl32.Vec3{cosT * radius, halfHeight, sinT * radius}, Normal: normal, UV: mgl32.Vec2{u, 1}})
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base+2, base+1, base+3)
	}

	// caps
	for _, y := range []float32{halfHeight, -halfHeight} {
		normal := mgl32.Vec3{0, 1, 0}
		if y < 0 {
			normal = mgl32.Vec3{0, -1, 0}
		}
		centre := add(core.Vertex{Position: mgl32.Vec3{0, y, 0}, Normal: normal, UV: mgl32.Vec2{0.5, 0.5}})
		for i := 0; i < segments; i++ {
			cosT, sinT := ring(i)
			cosN, sinN := ring(i + 1)
			v1 := add(core.Vertex{Position: mgl32.Vec3{cosT * radius, y, sinT * radius}, Normal: normal, UV: mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5}})
			v2 := add(core.Vertex{Position: mgl32.Vec3{cosN * radius, y, sinN * radius}, Normal: normal, UV: mgl32.Vec2{cosN*0.5 + 0.5, sinN*0.5 + 0.5}})
			if y > 0 {
				mesh.Indices = append(mesh.Indices, centre, v2, v1)
			} else {
				mesh.Indices = append(mesh.Indices, centre, v1, v2)
			}
		}
	}
	return mesh
}

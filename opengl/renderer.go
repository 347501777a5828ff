// Package opengl draws scene graphs with the fixed-function OpenGL 2.1
// pipeline. It must be used from the thread that owns the GL context.
package opengl

import (
	"log/slog"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"fullmetal/assets"
	"fullmetal/core"
	"fullmetal/scene"
)

// MaxLights is the number of lights fixed-function GL guarantees.
const MaxLights = 8

// Renderer implements scene.Renderer.
type Renderer struct {
	cache *assets.Cache

	textures map[string]uint32
	// failedTextures are not retried every frame.
	failedTextures map[string]bool

	cube    *core.MeshData
	spheres map[[2]int]*core.MeshData

	lightSlot     int
	droppedLights int
}

var _ scene.Renderer = (*Renderer)(nil)

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer(cache *assets.Cache) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}
	slog.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.LIGHTING)
	// scaled transforms would otherwise scale the normals too
	gl.Enable(gl.NORMALIZE)

	return &Renderer{
		cache:          cache,
		textures:       make(map[string]uint32),
		failedTextures: make(map[string]bool),
		cube:           scene.CubeMesh(),
		spheres:        make(map[[2]int]*core.MeshData),
	}, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the framebuffer, loads the camera matrices and switches
// every light off until the scene enables it again.
func (r *Renderer) BeginFrame(view, projection mgl32.Mat4, sky core.Color) {
	gl.ClearColor(sky.R, sky.G, sky.B, sky.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&projection[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&view[0])

	for i := 0; i < MaxLights; i++ {
		gl.Disable(gl.LIGHT0 + uint32(i))
	}
	if r.droppedLights > 0 {
		slog.Warn("too many lights, some were ignored", "max", MaxLights, "dropped", r.droppedLights)
	}
	r.lightSlot = 0
	r.droppedLights = 0
}

func (r *Renderer) PushMatrix() { gl.PushMatrix() }

func (r *Renderer) PopMatrix() { gl.PopMatrix() }

func (r *Renderer) ApplyTransform(t core.Transform) {
	m := t.Matrix()
	gl.MultMatrixf(&m[0])
}

func (r *Renderer) ApplyMaterial(m core.Material) {
	ambient := m.AmbientColor.Array()
	diffuse := m.DiffuseColor.Array()
	specular := core.ColorBlack.Array()
	if m.SpecularEnabled {
		specular = m.SpecularColor.Array()
	}
	var shininess float32
	if m.ShininessEnabled {
		shininess = m.Shininess
	}

	gl.Materialfv(gl.FRONT_AND_BACK, gl.AMBIENT, &ambient[0])
	gl.Materialfv(gl.FRONT_AND_BACK, gl.DIFFUSE, &diffuse[0])
	gl.Materialfv(gl.FRONT_AND_BACK, gl.SPECULAR, &specular[0])
	gl.Materialf(gl.FRONT_AND_BACK, gl.SHININESS, shininess)

	if m.DoubleSided {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}

	if tex, ok := r.texture(m.Texture); ok {
		gl.Enable(gl.TEXTURE_2D)
		gl.BindTexture(gl.TEXTURE_2D, tex)
	} else {
		gl.Disable(gl.TEXTURE_2D)
	}
}

func (r *Renderer) DrawCube() {
	r.DrawMesh(r.cube)
}

func (r *Renderer) DrawSphere(slices, stacks int) {
	key := [2]int{slices, stacks}
	mesh, ok := r.spheres[key]
	if !ok {
		mesh = scene.SphereMesh(slices, stacks)
		r.spheres[key] = mesh
	}
	r.DrawMesh(mesh)
}

func (r *Renderer) DrawTriangles(tris []core.Tri, normal mgl32.Vec3) {
	gl.Begin(gl.TRIANGLES)
	gl.Normal3f(normal.X(), normal.Y(), normal.Z())
	for _, tri := range tris {
		for _, v := range [3]mgl32.Vec3{tri.V1, tri.V2, tri.V3} {
			gl.Vertex3f(v.X(), v.Y(), v.Z())
		}
	}
	gl.End()
}

func (r *Renderer) DrawMesh(mesh *core.MeshData) {
	if mesh == nil {
		return
	}
	gl.Begin(gl.TRIANGLES)
	for _, i := range mesh.Indices {
		v := mesh.Vertices[i]
		gl.Normal3f(v.Normal.X(), v.Normal.Y(), v.Normal.Z())
		gl.TexCoord2f(v.UV.X(), v.UV.Y())
		gl.Vertex3f(v.Position.X(), v.Position.Y(), v.Position.Z())
	}
	gl.End()
}

func (r *Renderer) DrawModel(model *assets.Model, flipUVs bool) {
	gl.Begin(gl.TRIANGLES)
	for _, face := range model.Faces {
		for _, fi := range face.Indices {
			c := model.Corner(fi)
			if c.HasNormal {
				gl.Normal3f(c.Normal.X(), c.Normal.Y(), c.Normal.Z())
			}
			if c.HasUV {
				u, v := c.UV.X(), c.UV.Y()
				if flipUVs {
					u, v = 1-u, 1-v
				}
				gl.TexCoord2f(u, v)
			}
			gl.Vertex3f(c.Position.X(), c.Position.Y(), c.Position.Z())
		}
	}
	gl.End()
}

// EnableLight gives the light the next free GL light. Lights beyond
// MaxLights in one frame are dropped and reported by the next BeginFrame.
func (r *Renderer) EnableLight(l scene.Light) {
	if r.lightSlot >= MaxLights {
		r.droppedLights++
		return
	}
	id := gl.LIGHT0 + uint32(r.lightSlot)
	r.lightSlot++

	ambient := l.Ambient.Array()
	diffuse := l.Diffuse.Array()
	position := [4]float32{l.Position.X(), l.Position.Y(), l.Position.Z(), 1}

	switch l.Kind {
	case scene.LightAmbient:
		gl.Lightfv(id, gl.AMBIENT, &ambient[0])
		gl.Lightfv(id, gl.DIFFUSE, &diffuse[0])
		gl.Lightf(id, gl.SPOT_CUTOFF, 180)
	case scene.LightDirectional:
		// w of 0 makes the position a direction
		position[3] = 0
		black := core.ColorBlack.Array()
		gl.Lightfv(id, gl.AMBIENT, &black[0])
		gl.Lightfv(id, gl.DIFFUSE, &diffuse[0])
		gl.Lightf(id, gl.SPOT_CUTOFF, 180)
	case scene.LightSpot:
		direction := [3]float32{l.Direction.X(), l.Direction.Y(), l.Direction.Z()}
		gl.Lightfv(id, gl.AMBIENT, &ambient[0])
		gl.Lightfv(id, gl.DIFFUSE, &diffuse[0])
		gl.Lightf(id, gl.SPOT_CUTOFF, l.Cutoff)
		gl.Lightfv(id, gl.SPOT_DIRECTION, &direction[0])
		gl.Lightf(id, gl.SPOT_EXPONENT, l.Exponent)
	}
	gl.Lightfv(id, gl.POSITION, &position[0])
	gl.Enable(id)
}

// texture returns the GL texture for an asset path, uploading it on first
// use.
func (r *Renderer) texture(path string) (uint32, bool) {
	if path == "" || r.failedTextures[path] {
		return 0, false
	}
	if tex, ok := r.textures[path]; ok {
		return tex, true
	}

	img, err := r.cache.Texture(path)
	if err != nil {
		slog.Warn("texture unavailable", "path", path, "err", err)
		r.failedTextures[path] = true
		return 0, false
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	r.textures[path] = tex
	return tex, true
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for path, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
		delete(r.textures, path)
	}
}

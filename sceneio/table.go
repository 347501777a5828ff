package sceneio

import (
	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/assets"
	"fullmetal/core"
	"fullmetal/inspect"
	"fullmetal/nodetype"
	"fullmetal/scene"
)

// NewDefaultTable registers every built-in node variant with its codec and
// introspector. Mesh models are loaded through cache; a nil cache gets a
// private one rooted at the working directory.
func NewDefaultTable(cache *assets.Cache) *nodetype.Table {
	if cache == nil {
		cache = assets.NewCache("")
	}
	t := nodetype.NewTable()

	nodetype.Register(t, "CubeNode", func() *scene.CubeNode {
		return scene.NewCubeNode(core.ColorWhite)
	}).SetCodec(readCube, writeCube).SetIntrospector(inspect.Cube)

	nodetype.Register(t, "SphereNode", func() *scene.SphereNode {
		return scene.NewSphereNode(core.ColorWhite)
	}).SetCodec(readSphere, writeSphere).SetIntrospector(inspect.Sphere)

	nodetype.Register(t, "PlaneNode", func() *scene.PlaneNode {
		return scene.NewPlaneNode(core.ColorWhite, 4, 1, 1)
	}).SetCodec(readPlane, writePlane).SetIntrospector(inspect.Plane)

	nodetype.Register(t, "CylinderNode", func() *scene.CylinderNode {
		return scene.NewCylinderNode(core.ColorWhite)
	}).SetCodec(readCylinder, writeCylinder).SetIntrospector(inspect.Cylinder)

	nodetype.Register(t, "AmbientLightNode", func() *scene.AmbientLightNode {
		return scene.NewAmbientLightNode(core.ColorWhite)
	}).SetCodec(readAmbientLight, writeAmbientLight).SetIntrospector(inspect.AmbientLight)

	nodetype.Register(t, "DirectionalLightNode", func() *scene.DirectionalLightNode {
		return scene.NewDirectionalLightNode(core.ColorWhite)
	}).SetCodec(readDirectionalLight, writeDirectionalLight).SetIntrospector(inspect.DirectionalLight)

	nodetype.Register(t, "SpotLightNode", func() *scene.SpotLightNode {
		return scene.NewSpotLightNode(core.ColorWhite, core.ColorWhite, mgl32.Vec3{1, 1, 1})
	}).SetCodec(readSpotLight, writeSpotLight).SetIntrospector(inspect.SpotLight)

	nodetype.Register(t, "MeshNode", func() *scene.MeshNode {
		return scene.NewMeshNode(nil)
	}).SetCodec(readMesh(cache), writeMesh).SetIntrospector(inspect.Mesh)

	return t
}

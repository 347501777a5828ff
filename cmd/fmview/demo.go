package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/core"
	"fullmetal/scene"
)

// demoScene is shown when the configured scene file does not exist yet.
func demoScene() *scene.Graph {
	g := scene.NewGraph()

	ambient := scene.NewAmbientLightNode(core.RGB(0.2, 0.2, 0.2))
	ambient.Transform.Position = mgl32.Vec3{0, 10, 0}
	g.AddNode(ambient)

	spot := scene.NewSpotLightNode(core.ColorWhite, core.RGB(0.9, 0.9, 0.8), mgl32.Vec3{0, -1, 0})
	spot.Transform.Position = mgl32.Vec3{0, 8, 0}
	spot.Cutoff = 45
	spot.Exponent = 5
	g.AddNode(spot)

	floor := scene.NewPlaneNode(core.RGB(0.4, 0.4, 0.4), 1, 10, 10)
	floor.Name = "Floor"
	g.AddNode(floor)

	cube := scene.NewCubeNode(core.ColorRed)
	cube.Transform.Position = mgl32.Vec3{-2, 1, 0}
	cube.Transform.Rotation = mgl32.Vec3{0, 1, 0}
	cube.Transform.Angle = 30

	moon := scene.NewSphereNode(core.ColorBlue)
	moon.Transform.Position = mgl32.Vec3{0, 2, 0}
	moon.Transform.Scale = mgl32.Vec3{0.5, 0.5, 0.5}
	cube.AddChild(moon)
	g.AddNode(cube)

	pillar := scene.NewCylinderNode(core.ColorGreen)
	pillar.Transform.Position = mgl32.Vec3{2, 1, 0}
	g.AddNode(pillar)

	return g
}

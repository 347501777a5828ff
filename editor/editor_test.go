package editor

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullmetal/core"
	"fullmetal/inspect"
	"fullmetal/nodetype"
	"fullmetal/scene"
	"fullmetal/sceneio"
)

const (
	keyDelete = iota + 1
	keyD
	keyS
	keyTab
	keyE
	keyN
	keyLeft
	keyRight
	keyUp
	keyDown
	keyR
	mouseRight
)

var testKeys = Bindings{
	Delete:        keyDelete,
	Clone:         keyD,
	Save:          keyS,
	SelectNext:    keyTab,
	ToggleEnabled: keyE,
	AddNode:       keyN,
	PrevType:      keyLeft,
	NextType:      keyRight,
	MoveUp:        keyUp,
	MoveDown:      keyDown,
	Rotate:        keyR,
	OrbitButton:   mouseRight,
}

// fakeInput reports one frame of input.
type fakeInput struct {
	pressed  map[int]bool
	ctrl     bool
	mouse    map[int]bool
	dx, dy   float64
	scrolled float64
}

func press(key int) *fakeInput { return &fakeInput{pressed: map[int]bool{key: true}} }

func ctrl(key int) *fakeInput {
	in := press(key)
	in.ctrl = true
	return in
}

func (f *fakeInput) IsKeyPressed(key int) bool    { return f.pressed[key] }
func (f *fakeInput) IsShortcut(key int) bool      { return f.ctrl && f.pressed[key] }
func (f *fakeInput) IsMouseDown(button int) bool  { return f.mouse[button] }
func (f *fakeInput) MouseDelta() (dx, dy float64) { return f.dx, f.dy }
func (f *fakeInput) Scroll() float64              { return f.scrolled }

func newEditor(t *testing.T) *Editor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	return New(scene.NewGraph(), sceneio.NewDefaultTable(nil), path, testKeys)
}

func TestAddNodeAndChild(t *testing.T) {
	e := newEditor(t)

	_, ok := e.AddChild("SphereNode")
	assert.False(t, ok)

	cube := e.AddNode("CubeNode")
	assert.Same(t, cube, e.Selection.Active)

	sphere, ok := e.AddChild("SphereNode")
	require.True(t, ok)
	assert.Same(t, cube.Base(), sphere.Base().Parent())
	assert.Same(t, sphere, e.Selection.Active)
	assert.Equal(t, 2, e.Graph.NodeCount())
	assert.Len(t, e.Graph.Nodes(), 1)
}

func TestDeleteSelected(t *testing.T) {
	e := newEditor(t)
	cube := e.AddNode("CubeNode")
	sphere, _ := e.AddChild("SphereNode")

	e.Selection.SelectSingle(sphere)
	assert.Equal(t, 1, e.DeleteSelected())
	assert.Empty(t, cube.Base().Children())
	assert.Nil(t, e.Selection.Active)

	e.Selection.SelectSingle(cube)
	assert.Equal(t, 1, e.DeleteSelected())
	assert.Zero(t, e.Graph.NodeCount())

	assert.Zero(t, e.DeleteSelected())
}

func TestCloneSelectedPlacesCloneNextToSource(t *testing.T) {
	e := newEditor(t)
	cube := e.AddNode("CubeNode")
	sphere, _ := e.AddChild("SphereNode")

	clones := e.CloneSelected()
	require.Len(t, clones, 1)
	assert.Same(t, cube.Base(), clones[0].Base().Parent())
	assert.Len(t, cube.Base().Children(), 2)
	assert.NotEqual(t, sphere.Base().ID(), clones[0].Base().ID())

	e.Selection.SelectSingle(cube)
	clones = e.CloneSelected()
	require.Len(t, clones, 1)
	assert.Nil(t, clones[0].Base().Parent())
	assert.Len(t, e.Graph.Nodes(), 2)
	assert.Equal(t, 6, e.Graph.NodeCount())
	assert.Same(t, clones[0], e.Selection.Active)
}

func TestSelectNextWraps(t *testing.T) {
	e := newEditor(t)
	e.SelectNext()
	assert.Nil(t, e.Selection.Active)

	cube := e.AddNode("CubeNode")
	sphere, _ := e.AddChild("SphereNode")
	light := e.AddNode("AmbientLightNode")

	// lights sort first: light, cube, sphere
	e.Selection.SelectSingle(light)
	e.SelectNext()
	assert.Same(t, cube, e.Selection.Active)
	e.SelectNext()
	assert.Same(t, sphere, e.Selection.Active)
	e.SelectNext()
	assert.Same(t, light, e.Selection.Active)
}

func TestShortcuts(t *testing.T) {
	e := newEditor(t)

	e.Update(press(keyN))
	require.Equal(t, 1, e.Graph.NodeCount())
	first := e.Selection.Active
	assert.Equal(t, "AmbientLightNode", mustID(t, e, first))

	// with a selection new nodes become children
	e.Update(press(keyRight))
	assert.Equal(t, "CubeNode", e.CurrentType())
	e.Update(press(keyN))
	assert.Same(t, first.Base(), e.Selection.Active.Base().Parent())

	e.Update(press(keyE))
	assert.False(t, e.Selection.Active.Base().Enabled)

	e.Update(press(keyD)) // without ctrl nothing happens
	assert.Equal(t, 2, e.Graph.NodeCount())
	e.Update(ctrl(keyD))
	assert.Equal(t, 3, e.Graph.NodeCount())

	e.Update(press(keyDelete))
	assert.Equal(t, 2, e.Graph.NodeCount())

	e.Update(press(keyLeft))
	e.Update(press(keyLeft))
	assert.Equal(t, "SpotLightNode", e.CurrentType())

	e.Update(ctrl(keyS))
	assert.FileExists(t, e.FilePath)
}

func TestMoveAndRotateSelected(t *testing.T) {
	e := newEditor(t)
	a := e.AddNode("CubeNode")
	b := e.AddNode("SphereNode")
	e.Selection.ToggleObject(a)

	e.Update(press(keyUp))
	e.Update(press(keyUp))
	e.Update(press(keyDown))
	e.Update(press(keyR))
	for _, n := range []scene.Node{a, b} {
		assert.Equal(t, mgl32.Vec3{0, MoveStep, 0}, n.Base().Transform.Position)
		assert.Equal(t, float32(RotateStep), n.Base().Transform.Angle)
	}

	e.Selection.Clear()
	e.Update(press(keyUp))
	assert.Equal(t, mgl32.Vec3{0, MoveStep, 0}, a.Base().Transform.Position)
}

func TestUnknownTypeAddsNothing(t *testing.T) {
	e := newEditor(t)
	assert.Nil(t, e.AddNode("NoSuchNode"))
	assert.Contains(t, e.StatusText, "NoSuchNode")

	e.AddNode("CubeNode")
	_, ok := e.AddChild("NoSuchNode")
	assert.False(t, ok)
	assert.Equal(t, 1, e.Graph.NodeCount())

	empty := New(scene.NewGraph(), nodetype.NewTable(), "", testKeys)
	empty.CycleType(1)
	assert.Zero(t, empty.TypeIndex)
	assert.Empty(t, empty.CurrentType())
}

func mustID(t *testing.T, e *Editor, n scene.Node) string {
	t.Helper()
	id, ok := e.Table.IDOf(n)
	require.True(t, ok)
	return id
}

func TestSaveLoad(t *testing.T) {
	e := newEditor(t)
	cube := e.AddNode("CubeNode")
	cube.Base().Transform.Position = mgl32.Vec3{1, 2, 3}
	e.AddChild("PlaneNode")
	require.NoError(t, e.Save())

	e.Graph.Clear()
	require.NoError(t, e.Load())
	assert.Equal(t, 2, e.Graph.NodeCount())
	assert.Nil(t, e.Selection.Active)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, e.Graph.Nodes()[0].Base().Transform.Position)

	e.FilePath = filepath.Join(t.TempDir(), "missing.json")
	before := e.Graph
	assert.Error(t, e.Load())
	assert.Same(t, before, e.Graph)
}

func TestInspect(t *testing.T) {
	e := newEditor(t)
	e.AddNode("SpotLightNode")
	e.Graph.AddNode(scene.NewCubeNode(core.ColorRed))

	var out bytes.Buffer
	e.Inspect(inspect.NewPrinter(&out))
	assert.Contains(t, out.String(), "Scene Node Count: 2")
	assert.Contains(t, out.String(), "Spot Light Settings")
}

func TestCameraControls(t *testing.T) {
	e := newEditor(t)
	distance, yaw := e.Camera.Distance, e.Camera.Yaw

	e.Update(&fakeInput{scrolled: 2})
	assert.InDelta(t, distance-1, e.Camera.Distance, 1e-6)

	e.Update(&fakeInput{mouse: map[int]bool{mouseRight: true}, dx: 100})
	assert.InDelta(t, yaw-1, e.Camera.Yaw, 1e-6)

	e.Camera.Zoom(-100)
	assert.InDelta(t, 0.1, e.Camera.Distance, 1e-6)
	e.Camera.Orbit(0, 10)
	assert.InDelta(t, 1.5, e.Camera.Pitch, 1e-6)
}

func TestOrbitCameraLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{1, 0, 0}, 5, 60, 1)
	c.Pitch = 0
	assert.True(t, c.Position().ApproxEqualThreshold(mgl32.Vec3{1, 0, 5}, 1e-5))

	target := c.ViewMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.True(t, target.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -5}, 1e-5), "got %v", target)
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	a := scene.NewCubeNode(core.ColorWhite)
	b := scene.NewCubeNode(core.ColorWhite)

	s.ToggleObject(a)
	s.ToggleObject(b)
	assert.True(t, s.IsSelected(a))
	assert.Same(t, b, s.Active)

	s.ToggleObject(b)
	assert.False(t, s.IsSelected(b))
	assert.Same(t, a, s.Active)

	s.ToggleObject(a)
	assert.False(t, s.HasSelection())
	assert.Nil(t, s.Active)
}

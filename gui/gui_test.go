package gui

import (
	"path/filepath"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullmetal/core"
	"fullmetal/editor"
	"fullmetal/scene"
	"fullmetal/sceneio"
)

type fakeInput struct {
	key, button int
	scroll      float64
}

func (f fakeInput) IsKeyPressed(key int) bool    { return key == f.key }
func (f fakeInput) IsShortcut(key int) bool      { return key == f.key }
func (f fakeInput) IsMouseDown(button int) bool  { return button == f.button }
func (f fakeInput) MouseDelta() (dx, dy float64) { return 3, 4 }
func (f fakeInput) Scroll() float64              { return f.scroll }

type fakeCapture struct{ mouse, keyboard bool }

func (c fakeCapture) WantCaptureMouse() bool    { return c.mouse }
func (c fakeCapture) WantCaptureKeyboard() bool { return c.keyboard }

func TestUncaptured(t *testing.T) {
	in := fakeInput{key: 7, button: 1, scroll: 2}

	free := Uncaptured(in, fakeCapture{})
	assert.True(t, free.IsKeyPressed(7))
	assert.True(t, free.IsShortcut(7))
	assert.True(t, free.IsMouseDown(1))
	assert.Equal(t, 2.0, free.Scroll())

	typing := Uncaptured(in, fakeCapture{keyboard: true})
	assert.False(t, typing.IsKeyPressed(7))
	assert.False(t, typing.IsShortcut(7))
	assert.True(t, typing.IsMouseDown(1))

	hovering := Uncaptured(in, fakeCapture{mouse: true})
	assert.True(t, hovering.IsKeyPressed(7))
	assert.False(t, hovering.IsMouseDown(1))
	assert.Zero(t, hovering.Scroll())

	dx, dy := hovering.MouseDelta()
	assert.Equal(t, 3.0, dx)
	assert.Equal(t, 4.0, dy)
}

func TestNodeLabel(t *testing.T) {
	a := scene.NewCubeNode(core.ColorRed)
	b := scene.NewCubeNode(core.ColorRed)
	a.Name, b.Name = "Box", "Box"
	b.Enabled = false

	assert.Equal(t, "Box", nodeLabel(a)[:3])
	assert.NotEqual(t, nodeLabel(a), nodeLabel(b))
	assert.Contains(t, nodeLabel(b), "Box (disabled)##")
}

// frame runs fn between NewFrame and Render of a fresh context and returns
// the number of draw lists produced.
func frame(t *testing.T, fn func()) int {
	t.Helper()
	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()

	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.Fonts().TextureDataRGBA32()
	io.SetDisplaySize(imgui.Vec2{X: 1280, Y: 720})
	io.SetDeltaTime(1.0 / 60)

	imgui.NewFrame()
	fn()
	imgui.Render()
	return len(imgui.RenderedDrawData().CommandLists())
}

func TestGraphWindowDraw(t *testing.T) {
	ed := editor.New(scene.NewGraph(), sceneio.NewDefaultTable(nil),
		filepath.Join(t.TempDir(), "scene.json"), editor.Bindings{})
	parent := ed.AddNode("CubeNode")
	require.NotNil(t, parent)
	ed.Selection.SelectSingle(parent)
	_, ok := ed.AddChild("SphereNode")
	require.True(t, ok)
	ed.Selection.SelectSingle(parent)

	gw := NewGraphWindow()
	var lists int
	require.NotPanics(t, func() {
		lists = frame(t, func() { gw.Draw(ed) })
	})
	assert.Positive(t, lists)
	assert.True(t, gw.Open)
}

func TestGraphWindowClosed(t *testing.T) {
	ed := editor.New(scene.NewGraph(), sceneio.NewDefaultTable(nil), "", editor.Bindings{})
	gw := &GraphWindow{}
	require.NotPanics(t, func() {
		frame(t, func() { gw.Draw(ed) })
	})
	assert.False(t, gw.Open)
}

func TestWidgetsIntrospectEveryType(t *testing.T) {
	table := sceneio.NewDefaultTable(nil)
	for _, id := range table.IDs() {
		t.Run(id, func(t *testing.T) {
			n := table.Create(id)
			var w Widgets
			require.NotPanics(t, func() {
				frame(t, func() {
					imgui.Begin("inspector")
					table.Introspect(&w, n)
					imgui.End()
				})
			})
		})
	}
}

// Package editor holds the interactive editing state of a scene: the
// selection, node creation and removal, cloning, saving and the key
// bindings that drive them.
package editor

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"fullmetal/inspect"
	"fullmetal/nodetype"
	"fullmetal/scene"
	"fullmetal/sceneio"
)

// Input is the per-frame input state the editor reads. Key and button
// codes are whatever the bindings use.
type Input interface {
	IsKeyPressed(key int) bool
	IsShortcut(key int) bool
	IsMouseDown(button int) bool
	MouseDelta() (dx, dy float64)
	Scroll() float64
}

// Bindings maps editor actions to key and mouse codes.
type Bindings struct {
	Delete        int
	Clone         int // with Ctrl
	Save          int // with Ctrl
	SelectNext    int
	ToggleEnabled int
	AddNode       int
	PrevType      int
	NextType      int
	MoveUp        int
	MoveDown      int
	Rotate        int
	OrbitButton   int
}

// Steps applied by the move and rotate bindings.
const (
	MoveStep   = 0.25
	RotateStep = 15
)

// Editor is the top-level editor state machine
type Editor struct {
	Graph     *scene.Graph
	Table     *nodetype.Table
	Selection *Selection
	Camera    *OrbitCamera
	Keys      Bindings

	// FilePath is where Save writes and Load reads.
	FilePath string
	// TypeIndex selects the variant AddNode and AddChild create.
	TypeIndex int

	// Status info
	StatusText string
}

func New(graph *scene.Graph, table *nodetype.Table, path string, keys Bindings) *Editor {
	return &Editor{
		Graph:      graph,
		Table:      table,
		Selection:  NewSelection(),
		Camera:     NewOrbitCamera(mgl32.Vec3{}, 10, 60, 16.0/9.0),
		Keys:       keys,
		FilePath:   path,
		StatusText: "Ready",
	}
}

// Update processes one frame of input.
func (e *Editor) Update(in Input) {
	e.handleShortcuts(in)
	e.handleCameraControls(in)
}

func (e *Editor) handleShortcuts(in Input) {
	switch {
	case in.IsShortcut(e.Keys.Save):
		if err := e.Save(); err != nil {
			slog.Error("save failed", "path", e.FilePath, "err", err)
			e.StatusText = "Save failed"
		}
	case in.IsShortcut(e.Keys.Clone):
		e.CloneSelected()
	case in.IsKeyPressed(e.Keys.Delete):
		e.DeleteSelected()
	case in.IsKeyPressed(e.Keys.SelectNext):
		e.SelectNext()
	case in.IsKeyPressed(e.Keys.ToggleEnabled):
		e.ToggleEnabled()
	case in.IsKeyPressed(e.Keys.AddNode):
		if _, ok := e.AddChild(e.CurrentType()); !ok {
			e.AddNode(e.CurrentType())
		}
	case in.IsKeyPressed(e.Keys.PrevType):
		e.CycleType(-1)
	case in.IsKeyPressed(e.Keys.NextType):
		e.CycleType(1)
	case in.IsKeyPressed(e.Keys.MoveUp):
		e.MoveSelected(mgl32.Vec3{0, MoveStep, 0})
	case in.IsKeyPressed(e.Keys.MoveDown):
		e.MoveSelected(mgl32.Vec3{0, -MoveStep, 0})
	case in.IsKeyPressed(e.Keys.Rotate):
		e.RotateSelected(RotateStep)
	}
}

func (e *Editor) handleCameraControls(in Input) {
	if scroll := in.Scroll(); scroll != 0 {
		e.Camera.Zoom(-float32(scroll) * 0.5)
	}
	if in.IsMouseDown(e.Keys.OrbitButton) {
		dx, dy := in.MouseDelta()
		e.Camera.Orbit(-float32(dx)*0.01, float32(dy)*0.01)
	}
}

// CurrentType is the registered name new nodes are created from.
func (e *Editor) CurrentType() string {
	ids := e.Table.IDs()
	if len(ids) == 0 {
		return ""
	}
	e.TypeIndex = ((e.TypeIndex % len(ids)) + len(ids)) % len(ids)
	return ids[e.TypeIndex]
}

func (e *Editor) CycleType(delta int) {
	if e.Table.Len() == 0 {
		return
	}
	e.TypeIndex += delta
	e.StatusText = "Create: " + e.CurrentType()
}

// AddNode creates a top-level node of the named variant and selects it.
// Unregistered names add nothing and return nil.
func (e *Editor) AddNode(id string) scene.Node {
	if !e.Table.Has(id) {
		e.StatusText = "Unknown node type " + strconv.Quote(id)
		return nil
	}
	n := e.Table.Create(id)
	e.Graph.AddNode(n)
	e.Selection.SelectSingle(n)
	e.StatusText = "Added " + n.Base().Name
	return n
}

// AddChild creates a node under the active selection. It reports false if
// nothing is selected or id is not registered.
func (e *Editor) AddChild(id string) (scene.Node, bool) {
	parent := e.Selection.Active
	if parent == nil || !e.Table.Has(id) {
		return nil, false
	}
	n := e.Table.Create(id)
	parent.Base().AddChild(n)
	e.Selection.SelectSingle(n)
	e.StatusText = fmt.Sprintf("Added %s under %s", n.Base().Name, parent.Base().Name)
	return n, true
}

// DeleteSelected removes every selected node from its parent, or from the
// graph for roots, and clears the selection.
func (e *Editor) DeleteSelected() int {
	removed := 0
	for _, n := range e.Selection.Objects {
		if parent := n.Base().Parent(); parent != nil {
			if _, ok := parent.RemoveChild(n); ok {
				removed++
			}
		} else if e.Graph.RemoveNode(n) {
			removed++
		}
	}
	e.Selection.Clear()
	e.StatusText = "Deleted " + strconv.Itoa(removed)
	return removed
}

// CloneSelected clones every selected node next to its source: under the
// same parent, or as a root. The clones become the selection.
func (e *Editor) CloneSelected() []scene.Node {
	var clones []scene.Node
	for _, n := range e.Selection.Objects {
		clone := n.Clone()
		if parent := n.Base().Parent(); parent != nil {
			parent.AddChild(clone)
		} else {
			e.Graph.AddNode(clone)
		}
		clones = append(clones, clone)
	}
	e.Selection.Clear()
	for _, clone := range clones {
		e.Selection.ToggleObject(clone)
	}
	e.StatusText = "Duplicated " + strconv.Itoa(len(clones))
	return clones
}

// SelectNext selects the node after the active one in depth-first order,
// wrapping around.
func (e *Editor) SelectNext() {
	var nodes []scene.Node
	e.Graph.Walk(func(n scene.Node, _ int) bool {
		nodes = append(nodes, n)
		return true
	})
	if len(nodes) == 0 {
		e.Selection.Clear()
		return
	}

	next := 0
	if active := e.Selection.Active; active != nil {
		for i, n := range nodes {
			if n.Base() == active.Base() {
				next = (i + 1) % len(nodes)
				break
			}
		}
	}
	e.Selection.SelectSingle(nodes[next])
	e.StatusText = "Selected: " + nodes[next].Base().Name
}

// MoveSelected offsets every selected node in its parent's space.
func (e *Editor) MoveSelected(offset mgl32.Vec3) {
	for _, n := range e.Selection.Objects {
		n.Base().Transform.Move(offset)
	}
}

// RotateSelected turns every selected node around its rotation axis.
func (e *Editor) RotateSelected(degrees float32) {
	for _, n := range e.Selection.Objects {
		n.Base().Transform.Rotate(degrees)
	}
}

func (e *Editor) ToggleEnabled() {
	for _, n := range e.Selection.Objects {
		n.Base().Enabled = !n.Base().Enabled
	}
}

// Inspect draws the graph summary and the active node's editor.
func (e *Editor) Inspect(ui inspect.UI) {
	ui.LabelText("Scene Node Count", strconv.Itoa(e.Graph.NodeCount()))
	if e.Selection.Active != nil {
		e.Table.Introspect(ui, e.Selection.Active)
	}
}

func (e *Editor) Render(r scene.Renderer) {
	e.Graph.Render(r)
}

func (e *Editor) Save() error {
	if err := sceneio.SaveFile(e.FilePath, e.Graph, e.Table); err != nil {
		return err
	}
	e.StatusText = "Saved " + e.FilePath
	slog.Info("scene saved", "path", e.FilePath, "nodes", e.Graph.NodeCount())
	return nil
}

// Load replaces the graph with the contents of FilePath. The current graph
// is kept if loading fails.
func (e *Editor) Load() error {
	g, err := sceneio.LoadFile(e.FilePath, e.Table)
	if err != nil {
		return err
	}
	e.Graph = g
	e.Selection.Clear()
	e.StatusText = "Loaded " + e.FilePath
	slog.Info("scene loaded", "path", e.FilePath, "nodes", g.NodeCount())
	return nil
}

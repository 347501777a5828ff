package gui

import (
	"fmt"
	"log/slog"

	"github.com/inkyblackness/imgui-go/v4"

	"fullmetal/editor"
	"fullmetal/scene"
)

// GraphWindow is the scene graph panel: file actions, node creation, the
// node tree and the inspector.
type GraphWindow struct {
	Open bool

	widgets Widgets
}

func NewGraphWindow() *GraphWindow {
	return &GraphWindow{Open: true}
}

// Draw builds the window for this frame. Actions run immediately against
// ed, before the tree is drawn.
func (gw *GraphWindow) Draw(ed *editor.Editor) {
	if !gw.Open {
		return
	}
	if imgui.BeginV("Scene Graph##tree", &gw.Open, imgui.WindowFlagsNone) {
		gw.drawFileOptions(ed)
		gw.drawAddOptions(ed)

		if imgui.BeginChildV("Nodes##tree", imgui.Vec2{Y: 250}, true, imgui.WindowFlagsNone) {
			for _, n := range ed.Graph.Nodes() {
				gw.drawNode(ed, n)
			}
		}
		imgui.EndChild()

		if imgui.BeginChildV("Inspector##tree", imgui.Vec2{}, true, imgui.WindowFlagsNone) {
			ed.Inspect(&gw.widgets)
		}
		imgui.EndChild()
	}
	imgui.End()
}

func (gw *GraphWindow) drawFileOptions(ed *editor.Editor) {
	if imgui.Button("Save##tree") {
		if err := ed.Save(); err != nil {
			slog.Error("save failed", "path", ed.FilePath, "err", err)
			ed.StatusText = "Save failed"
		}
	}
	imgui.SameLine()
	if imgui.Button("Reload##tree") {
		if err := ed.Load(); err != nil {
			slog.Error("load failed", "path", ed.FilePath, "err", err)
			ed.StatusText = "Load failed"
		}
	}
	imgui.SameLine()
	imgui.Text(ed.FilePath)
	imgui.Text(ed.StatusText)
	imgui.Separator()
}

func (gw *GraphWindow) drawAddOptions(ed *editor.Editor) {
	current := ed.CurrentType()
	if imgui.BeginCombo("Nodes", current) {
		for i, id := range ed.Table.IDs() {
			if imgui.SelectableV(id, id == current, imgui.SelectableFlagsNone, imgui.Vec2{}) {
				ed.TypeIndex = i
			}
		}
		imgui.EndCombo()
	}

	if imgui.Button("Create scene node") {
		ed.AddNode(ed.CurrentType())
	}
	if !ed.Selection.HasSelection() {
		return
	}
	imgui.SameLine()
	if imgui.Button("Create child node") {
		ed.AddChild(ed.CurrentType())
	}
	imgui.SameLine()
	if imgui.Button("Clone node") {
		ed.CloneSelected()
	}
	imgui.SameLine()
	if imgui.Button("Delete node") {
		ed.DeleteSelected()
	}
}

// drawNode draws n and, when expanded, its children. Clicking a row
// selects it alone.
func (gw *GraphWindow) drawNode(ed *editor.Editor, n scene.Node) {
	hasChildren := len(n.Base().Children()) > 0
	flags := imgui.TreeNodeFlagsLeaf | imgui.TreeNodeFlagsNoTreePushOnOpen
	if hasChildren {
		flags = imgui.TreeNodeFlagsOpenOnArrow | imgui.TreeNodeFlagsOpenOnDoubleClick
	}
	if ed.Selection.IsSelected(n) {
		flags |= imgui.TreeNodeFlagsSelected
	}

	open := imgui.TreeNodeV(nodeLabel(n), flags)
	if imgui.IsItemClicked() {
		ed.Selection.SelectSingle(n)
	}
	if open && hasChildren {
		for _, child := range n.Base().Children() {
			gw.drawNode(ed, child)
		}
		imgui.TreePop()
	}
}

// nodeLabel is the tree row of n. The suffix keeps rows of nodes with the
// same name apart.
func nodeLabel(n scene.Node) string {
	base := n.Base()
	name := base.Name
	if !base.Enabled {
		name += " (disabled)"
	}
	return fmt.Sprintf("%s##scenenode%d", name, base.ID())
}

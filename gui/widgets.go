// Package gui draws the editor panels with Dear ImGui on top of the GL 2.1
// scene renderer.
package gui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"fullmetal/inspect"
)

// Widgets implements inspect.UI with ImGui widgets. Labels repeat across
// sections ("X", "R", ...), so every indented section is scoped under an
// id taken from the text that introduced it.
type Widgets struct {
	section string
}

var _ inspect.UI = (*Widgets)(nil)

func (w *Widgets) Text(format string, args ...any) {
	w.section = fmt.Sprintf(format, args...)
	imgui.Text(w.section)
}

func (w *Widgets) LabelText(label, value string) {
	imgui.LabelText(label, value)
}

func (w *Widgets) Indent() {
	imgui.PushID(w.section)
	imgui.Indent()
}

func (w *Widgets) Unindent() {
	imgui.Unindent()
	imgui.PopID()
}

func (w *Widgets) InputText(label string, value *string) bool {
	return imgui.InputTextV(label, value, imgui.InputTextFlagsNone, nil)
}

func (w *Widgets) Checkbox(label string, value *bool) bool {
	return imgui.Checkbox(label, value)
}

func (w *Widgets) InputInt(label string, value *int) bool {
	v := int32(*value)
	if !imgui.InputInt(label, &v) {
		return false
	}
	*value = int(v)
	return true
}

func (w *Widgets) InputFloat(label string, value *float32) bool {
	return imgui.InputFloat(label, value)
}

func (w *Widgets) DragFloat(label string, value *float32, speed, min, max float32) bool {
	return imgui.DragFloatV(label, value, speed, min, max, "%.3f", imgui.SliderFlagsNone)
}

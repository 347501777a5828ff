package gui

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"fullmetal/editor"
	"fullmetal/platform"
)

// Platform feeds window input to ImGui. Keys and text arrive through GLFW
// callbacks; mouse state is copied from the per-frame input manager, which
// owns the scroll callback.
type Platform struct {
	io     imgui.IO
	window *platform.Window
	time   float64
}

func NewPlatform(io imgui.IO, window *platform.Window) *Platform {
	p := &Platform{io: io, window: window}
	p.mapKeys()
	window.Handle.SetKeyCallback(p.keyChange)
	window.Handle.SetCharCallback(p.charChange)
	return p
}

func (p *Platform) mapKeys() {
	for imguiKey, key := range map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyPageUp:     glfw.KeyPageUp,
		imgui.KeyPageDown:   glfw.KeyPageDown,
		imgui.KeyHome:       glfw.KeyHome,
		imgui.KeyEnd:        glfw.KeyEnd,
		imgui.KeyInsert:     glfw.KeyInsert,
		imgui.KeyDelete:     glfw.KeyDelete,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeySpace:      glfw.KeySpace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
		imgui.KeyA:          glfw.KeyA,
		imgui.KeyC:          glfw.KeyC,
		imgui.KeyV:          glfw.KeyV,
		imgui.KeyX:          glfw.KeyX,
		imgui.KeyY:          glfw.KeyY,
		imgui.KeyZ:          glfw.KeyZ,
	} {
		p.io.KeyMap(imguiKey, int(key))
	}
}

func (p *Platform) keyChange(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyUnknown {
		return
	}
	switch action {
	case glfw.Press:
		p.io.KeyPress(int(key))
	case glfw.Release:
		p.io.KeyRelease(int(key))
	}
	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *Platform) charChange(_ *glfw.Window, char rune) {
	p.io.AddInputCharacters(string(char))
}

// DisplaySize is the window size in screen coordinates.
func (p *Platform) DisplaySize() [2]float32 {
	w, h := p.window.Handle.GetSize()
	return [2]float32{float32(w), float32(h)}
}

func (p *Platform) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame copies this frame's state into ImGui. Call it after the input
// manager has been updated and before imgui.NewFrame.
func (p *Platform) NewFrame(in *platform.InputManager) {
	size := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: size[0], Y: size[1]})

	now := glfw.GetTime()
	if dt := now - p.time; p.time > 0 && dt > 0 {
		p.io.SetDeltaTime(float32(dt))
	}
	p.time = now

	if p.window.Handle.GetAttrib(glfw.Focused) != 0 {
		p.io.SetMousePosition(imgui.Vec2{X: float32(in.MouseX), Y: float32(in.MouseY)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}
	for button := platform.MouseLeft; button <= platform.MouseMiddle; button++ {
		p.io.SetMouseButtonDown(button, in.IsMouseDown(button))
	}
	p.io.AddMouseWheelDelta(0, float32(in.Scroll()))
}

// Capture reports which input a UI layer is consuming this frame.
// imgui.IO implements it.
type Capture interface {
	WantCaptureMouse() bool
	WantCaptureKeyboard() bool
}

// Uncaptured hides from the editor whatever input c is consuming, so typing
// into a text field does not trigger shortcuts and dragging a window does
// not orbit the camera.
func Uncaptured(in editor.Input, c Capture) editor.Input {
	return uncaptured{Input: in, capture: c}
}

type uncaptured struct {
	editor.Input
	capture Capture
}

func (u uncaptured) IsKeyPressed(key int) bool {
	return !u.capture.WantCaptureKeyboard() && u.Input.IsKeyPressed(key)
}

func (u uncaptured) IsShortcut(key int) bool {
	return !u.capture.WantCaptureKeyboard() && u.Input.IsShortcut(key)
}

func (u uncaptured) IsMouseDown(button int) bool {
	return !u.capture.WantCaptureMouse() && u.Input.IsMouseDown(button)
}

func (u uncaptured) Scroll() float64 {
	if u.capture.WantCaptureMouse() {
		return 0
	}
	return u.Input.Scroll()
}

package platform

// InputManager tracks mouse and keyboard state between frames so callers
// can ask for presses (edges) rather than raw key state.
type InputManager struct {
	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	lastMouseX, lastMouseY   float64
	ScrollDelta              float64

	mouseButtons     [3]bool
	mouseButtonsPrev [3]bool

	keys     [512]bool
	keysPrev [512]bool

	ShiftDown bool
	CtrlDown  bool

	window     *Window
	firstFrame bool
}

const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// polledKeys are the keys the editor binds shortcuts to.
var polledKeys = []int{
	KeyTab, KeyDelete, KeyBackspace, KeyEscape,
	KeyD, KeyE, KeyN, KeyR, KeyS,
	KeyLeft, KeyRight, KeyUp, KeyDown,
}

func NewInputManager(window *Window) *InputManager {
	im := &InputManager{
		window:     window,
		firstFrame: true,
	}

	window.SetScrollCallback(func(xoff, yoff float64) {
		im.ScrollDelta += yoff
	})

	return im
}

// Update polls the window; call once per frame after PollEvents.
func (im *InputManager) Update() {
	x, y := im.window.GetCursorPos()
	if im.firstFrame {
		im.lastMouseX = x
		im.lastMouseY = y
		im.firstFrame = false
	}
	im.MouseDeltaX = x - im.lastMouseX
	im.MouseDeltaY = y - im.lastMouseY
	im.lastMouseX = x
	im.lastMouseY = y
	im.MouseX = x
	im.MouseY = y

	copy(im.mouseButtonsPrev[:], im.mouseButtons[:])
	copy(im.keysPrev[:], im.keys[:])

	for b := range im.mouseButtons {
		im.mouseButtons[b] = im.window.IsMouseButtonPressed(b)
	}

	im.ShiftDown = im.window.IsKeyPressed(KeyLeftShift) || im.window.IsKeyPressed(KeyRightShift)
	im.CtrlDown = im.window.IsKeyPressed(KeyLeftControl) || im.window.IsKeyPressed(KeyRightControl)

	for _, k := range polledKeys {
		im.keys[k] = im.window.IsKeyPressed(k)
	}
}

// EndFrame clears per-frame state.
func (im *InputManager) EndFrame() {
	im.ScrollDelta = 0
}

func (im *InputManager) IsMouseDown(button int) bool {
	if button < 0 || button >= len(im.mouseButtons) {
		return false
	}
	return im.mouseButtons[button]
}

func (im *InputManager) IsKeyDown(key int) bool {
	if key < 0 || key >= len(im.keys) {
		return false
	}
	return im.keys[key]
}

func (im *InputManager) IsKeyPressed(key int) bool {
	if key < 0 || key >= len(im.keys) {
		return false
	}
	return im.keys[key] && !im.keysPrev[key]
}

// IsShortcut checks for a Ctrl+key press.
func (im *InputManager) IsShortcut(key int) bool {
	return im.CtrlDown && im.IsKeyPressed(key)
}

func (im *InputManager) MouseDelta() (dx, dy float64) {
	return im.MouseDeltaX, im.MouseDeltaY
}

// Scroll is the vertical scroll accumulated this frame.
func (im *InputManager) Scroll() float64 {
	return im.ScrollDelta
}

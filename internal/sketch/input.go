package sketch

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyBindings maps keyboard keys to controller commands.
var keyBindings = map[glfw.Key]Key{
	glfw.KeyS:     KeyToggleSound,
	glfw.KeyUp:    KeyRangeUp,
	glfw.KeyDown:  KeyRangeDown,
	glfw.KeyTab:   KeyPanelNext,
	glfw.KeySpace: KeyPanelActivate,
	glfw.KeyEnter: KeyPanelActivate,
}

type Input struct {
	prevKeys    map[glfw.Key]bool
	dragging    bool
	prevCursorX float64
	prevCursorY float64
	scroll      float64
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{prevKeys: make(map[glfw.Key]bool)}
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.scroll += yoff
	})
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Commands returns the controller commands triggered this frame.
func (in *Input) Commands(window *glfw.Window) []Key {
	var out []Key
	for k, cmd := range keyBindings {
		if in.JustPressed(window, k) {
			out = append(out, cmd)
		}
	}
	return out
}

// UpdateOrbit applies mouse drag and scroll to the camera, like an orbit control.
func (in *Input) UpdateOrbit(window *glfw.Window, cam *Camera) {
	cx, cy := window.GetCursorPos()
	down := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	if down && in.dragging {
		cam.Orbit(cx-in.prevCursorX, cy-in.prevCursorY)
	}
	in.dragging = down
	in.prevCursorX, in.prevCursorY = cx, cy

	if in.scroll != 0 {
		cam.Zoom(in.scroll)
		in.scroll = 0
	}
}

package ui2d

// InputState holds the current input state for the UI.
type InputState struct {
	MouseX float32
	MouseY float32

	MouseLeftDown bool

	// Edges for the current frame
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// MouseLeftClicked is set from a button-down event so that a press and
	// release inside one frame is not lost. Consumed by the first widget
	// that claims it.
	MouseLeftClicked bool

	prevMouseLeft bool
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	i.MouseLeftPressed = i.MouseLeftDown && !i.prevMouseLeft
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft
	i.prevMouseLeft = i.MouseLeftDown
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.MouseLeftClicked = false
}

// IsMouseInRect checks if the mouse is within a rectangle.
func (i *InputState) IsMouseInRect(x, y, w, h float32) bool {
	return Rect{x, y, w, h}.Contains(i.MouseX, i.MouseY)
}

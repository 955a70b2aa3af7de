package pixelcam

// Zoom selects how a camera's integer zoom factor is derived from the window
// size. A zoom factor is the number of physical screen pixels used to display
// one virtual pixel.
//
// Use one of the concrete policies: [Fixed], [FitSize], [FitWidth],
// [FitHeight], or [FitSmallerDim].
type Zoom interface {
	// Resolve returns the zoom factor for a window of the given size in
	// physical pixels. The result is always >= 1, including for a zero-sized
	// window (which can happen transiently during a resize).
	Resolve(windowW, windowH int) int

	// frame reports the virtual resolution the viewport should be fitted to.
	// lockW/lockH mark the constrained axes; an unconstrained axis spans the
	// full window.
	frame() (w, h int, lockW, lockH bool)
}

// Fixed is a manually specified zoom factor. The window size is ignored; the
// caller accepts letterboxing or clipping at this zoom.
type Fixed int

// FitSize picks the largest zoom factor such that a virtual resolution of
// Width x Height fits inside the window. Excess window space becomes margin.
type FitSize struct {
	Width, Height int
}

// FitWidth picks the largest zoom factor such that the given virtual width
// fits inside the window. The virtual height follows the window.
type FitWidth int

// FitHeight picks the largest zoom factor such that the given virtual height
// fits inside the window. The virtual width follows the window.
type FitHeight int

// FitSmallerDim picks the largest zoom factor such that the smaller window
// dimension spans the given number of virtual pixels. The longer dimension
// follows the window.
type FitSmallerDim int

// Resolve returns the fixed factor, clamped to >= 1. There is no clamping
// against the window size.
func (z Fixed) Resolve(windowW, windowH int) int {
	return max(int(z), 1)
}

func (z Fixed) frame() (int, int, bool, bool) {
	return 0, 0, false, false
}

// Resolve returns min(windowW/Width, windowH/Height), clamped to >= 1.
// Integer division floors, which guarantees the full virtual resolution fits
// in the window at the chosen factor; rounding up would clip content.
func (z FitSize) Resolve(windowW, windowH int) int {
	zoomX := windowW / max(z.Width, 1)
	zoomY := windowH / max(z.Height, 1)
	return max(min(zoomX, zoomY), 1)
}

func (z FitSize) frame() (int, int, bool, bool) {
	return z.Width, z.Height, true, true
}

// Resolve returns windowW/width, clamped to >= 1.
func (z FitWidth) Resolve(windowW, windowH int) int {
	return max(windowW/max(int(z), 1), 1)
}

func (z FitWidth) frame() (int, int, bool, bool) {
	return int(z), 0, true, false
}

// Resolve returns windowH/height, clamped to >= 1.
func (z FitHeight) Resolve(windowW, windowH int) int {
	return max(windowH/max(int(z), 1), 1)
}

func (z FitHeight) frame() (int, int, bool, bool) {
	return 0, int(z), false, true
}

// Resolve returns min(windowW, windowH)/n, clamped to >= 1.
func (z FitSmallerDim) Resolve(windowW, windowH int) int {
	return max(min(windowW, windowH)/max(int(z), 1), 1)
}

func (z FitSmallerDim) frame() (int, int, bool, bool) {
	return 0, 0, false, false
}

package pixelcam

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera computes and holds pixel-perfect projection state: an integer zoom
// factor resolved from Target, the letterbox viewport, and the view transform
// mapping virtual pixels (world units) to physical screen pixels.
//
// Feed it the window size via [Camera.Resize] whenever the window changes (or
// every frame; recomputation only happens when an input actually changed),
// advance animations with [Camera.Update], and draw through [Camera.GeoM].
type Camera struct {
	// Target selects how the zoom factor is derived from the window size.
	Target Zoom
	// SetViewport letterboxes rendering to the target resolution: pixels
	// outside it are not displayed. When false the full window is used.
	SetViewport bool
	// Centered puts virtual (0, 0) at the pixel closest to the center of the
	// visible area; otherwise it is at the top-left.
	Centered bool

	// X and Y are the world-space position the camera centers on, in virtual
	// pixels.
	X, Y float64

	followTarget  func() (x, y float64)
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	factor   int
	viewport Viewport
	windowW  int
	windowH  int

	// Cached inputs for change detection.
	prevTarget   Zoom
	prevViewport bool
	resolved     bool

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a centered camera with the given zoom target and a 1x1
// window until the first Resize.
func NewCamera(target Zoom) *Camera {
	c := &Camera{
		Target:   target,
		Centered: true,
		dirty:    true,
	}
	c.Resize(1, 1)
	return c
}

// Resize recomputes the zoom factor and viewport for the given window size in
// physical pixels. It is cheap to call every frame: nothing is recomputed
// unless the window size, Target, or SetViewport changed since the last call.
//
// A zero-sized window (transient during a resize) resolves to factor 1 and an
// empty viewport rather than failing.
func (c *Camera) Resize(windowW, windowH int) {
	if c.resolved &&
		windowW == c.windowW && windowH == c.windowH &&
		c.Target == c.prevTarget && c.SetViewport == c.prevViewport {
		return
	}
	c.windowW = windowW
	c.windowH = windowH
	c.prevTarget = c.Target
	c.prevViewport = c.SetViewport
	c.resolved = true

	target := c.Target
	if target == nil {
		target = Fixed(1)
	}
	c.factor = target.Resolve(windowW, windowH)
	if c.SetViewport {
		c.viewport = viewportFor(target, c.factor, windowW, windowH)
	} else {
		c.viewport = Viewport{Width: windowW, Height: windowH}
	}
	c.dirty = true
}

// Factor returns the resolved zoom factor: physical pixels per virtual pixel.
// Always >= 1.
func (c *Camera) Factor() int {
	return c.factor
}

// Viewport returns the screen rectangle rendering is confined to. When
// SetViewport is false this is the full window.
func (c *Camera) Viewport() Viewport {
	return c.viewport
}

// WindowSize returns the window size from the last Resize.
func (c *Camera) WindowSize() (w, h int) {
	return c.windowW, c.windowH
}

// VirtualSize returns the visible size in virtual pixels: the viewport
// divided by the zoom factor, fractional remainder dropped.
func (c *Camera) VirtualSize() (w, h int) {
	return c.viewport.Width / c.factor, c.viewport.Height / c.factor
}

// Follow makes the camera track a moving world position with the given offset
// and lerp factor. A lerp of 1.0 snaps immediately; lower values give
// smoother following. The target function is polled once per Update.
func (c *Camera) Follow(target func() (x, y float64), offsetX, offsetY, lerp float64) {
	c.followTarget = target
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. Call this after modifying X/Y directly to prevent a
// single frame where the camera sees outside the bounds. No-op if
// BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Update advances follow, scroll, and bounds clamping by dt seconds.
func (c *Camera) Update(dt float64) {
	prevX, prevY := c.X, c.Y

	if c.followTarget != nil {
		targetX, targetY := c.followTarget()
		c.X += (targetX + c.followOffsetX - c.X) * c.followLerp
		c.Y += (targetY + c.followOffsetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within
// Bounds.
func (c *Camera) clampToBounds() {
	halfW := float64(c.viewport.Width) / (2 * float64(c.factor))
	halfH := float64(c.viewport.Height) / (2 * float64(c.factor))

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than the visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = clamp(c.X, minX, maxX)
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = clamp(c.Y, minY, maxY)
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// Screen position of a world point:
//
//	screen = anchor + factor * (world - (X, Y))
//
// where anchor is the viewport origin shifted by half the visible virtual
// size (in whole virtual pixels) when Centered. Snapping the anchor to whole
// virtual pixels keeps integer world coordinates aligned with the physical
// pixel grid at every zoom factor.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	f := float64(c.factor)

	anchorX := float64(c.viewport.X)
	anchorY := float64(c.viewport.Y)
	if c.Centered {
		virtualW, virtualH := c.VirtualSize()
		anchorX += float64(virtualW/2) * f
		anchorY += float64(virtualH/2) * f
	}

	// No rotation or skew: scale by f, translate.
	tx := anchorX - f*c.X
	ty := anchorY - f*c.Y
	c.viewMatrix = [6]float64{f, 0, 0, f, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// GeoM returns the view transform as an ebiten.GeoM, for passing world-space
// draw calls to the renderer.
func (c *Camera) GeoM() ebiten.GeoM {
	m := c.computeViewMatrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// WorldToScreen converts world coordinates (virtual pixels) to screen
// coordinates (physical pixels).
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the world-space rectangle visible through the
// viewport.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()

	x0, y0 := transformPoint(c.invViewMatrix, float64(c.viewport.X), float64(c.viewport.Y))
	x1, y1 := transformPoint(c.invViewMatrix,
		float64(c.viewport.X+c.viewport.Width), float64(c.viewport.Y+c.viewport.Height))

	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkDirty forces a recomputation of the view matrix. Call after modifying
// X, Y, or Centered directly outside Update.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

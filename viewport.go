package pixelcam

// Viewport is the sub-rectangle of the physical window used for rendering,
// in physical pixels. The area outside it is letterboxed.
type Viewport struct {
	X, Y, Width, Height int
}

// Resolve computes the zoom factor and letterbox viewport for a window size
// in one call: the factor is z.Resolve(windowW, windowH), and the viewport is
// the centered rectangle the target resolution occupies at that factor (the
// full window on unconstrained axes).
//
// [Camera] does this internally; Resolve is for callers that manage their own
// camera state, such as the ECS bindings in the ecs package.
func Resolve(z Zoom, windowW, windowH int) (factor int, viewport Viewport) {
	factor = z.Resolve(windowW, windowH)
	return factor, viewportFor(z, factor, windowW, windowH)
}

// viewportFor computes the centered viewport for the given zoom policy at an
// already-resolved factor. Constrained axes occupy target*factor pixels,
// centered; unconstrained axes span the full window.
func viewportFor(z Zoom, factor, windowW, windowH int) Viewport {
	targetW, targetH, lockW, lockH := z.frame()

	v := Viewport{Width: windowW, Height: windowH}
	if lockW {
		v.X, v.Width = centerSpan(targetW*factor, windowW)
	}
	if lockH {
		v.Y, v.Height = centerSpan(targetH*factor, windowH)
	}
	return v
}

// ViewportFor returns the centered viewport for an explicit virtual
// resolution displayed at the given zoom factor inside a window.
//
// If the occupied size exceeds the window on an axis (possible with [Fixed]
// zoom), the viewport clamps to the window on that axis and the content is
// clipped; the origin never goes negative.
func ViewportFor(virtualW, virtualH, factor, windowW, windowH int) Viewport {
	x, w := centerSpan(virtualW*factor, windowW)
	y, h := centerSpan(virtualH*factor, windowH)
	return Viewport{X: x, Y: y, Width: w, Height: h}
}

// centerSpan centers a span of the given size inside [0, total) and returns
// its origin and size. The origin is floor(margin/2), so an odd leftover
// pixel lands on the far side. Oversized spans clamp to the full extent.
func centerSpan(size, total int) (origin, clamped int) {
	if size >= total {
		return 0, total
	}
	return (total - size) / 2, size
}

// letterboxStrips returns the up to four margin rectangles of the window not
// covered by v, in left, right, top, bottom order. Strips with a zero
// dimension are returned empty.
//
// The top and bottom strips span the full window width; the left and right
// strips fill the remaining height between them, so the four never overlap.
func letterboxStrips(v Viewport, windowW, windowH int) [4]Viewport {
	var strips [4]Viewport

	top := v.Y
	bottom := windowH - v.Y - v.Height
	if top > 0 {
		strips[2] = Viewport{X: 0, Y: 0, Width: windowW, Height: top}
	}
	if bottom > 0 {
		strips[3] = Viewport{X: 0, Y: v.Y + v.Height, Width: windowW, Height: bottom}
	}

	left := v.X
	right := windowW - v.X - v.Width
	if left > 0 {
		strips[0] = Viewport{X: 0, Y: v.Y, Width: left, Height: v.Height}
	}
	if right > 0 {
		strips[1] = Viewport{X: v.X + v.Width, Y: v.Y, Width: right, Height: v.Height}
	}
	return strips
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

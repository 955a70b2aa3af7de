package pixelcam

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawBorder fills the letterbox margins outside the camera's viewport with
// an opaque color. No-op when the viewport covers the whole window (no
// margins) or when SetViewport is disabled.
//
// Call after drawing the scene so overdraw outside the viewport is covered.
// Alternatively, clip drawing with [Camera.Clip] and use DrawBorder purely
// for the margin color.
func (c *Camera) DrawBorder(screen *ebiten.Image, col Color) {
	if !c.SetViewport {
		return
	}
	for _, strip := range letterboxStrips(c.viewport, c.windowW, c.windowH) {
		if strip.Empty() {
			continue
		}
		var opts ebiten.DrawImageOptions
		opts.GeoM.Scale(float64(strip.Width), float64(strip.Height))
		opts.GeoM.Translate(float64(strip.X), float64(strip.Y))
		opts.ColorScale.Scale(float32(col.R), float32(col.G), float32(col.B), float32(col.A))
		screen.DrawImage(WhitePixel, &opts)
	}
}

// Clip returns the sub-image of screen covered by the camera's viewport.
// Drawing into it discards pixels outside the viewport. When the viewport is
// empty (zero-sized window) the screen is returned unchanged.
func (c *Camera) Clip(screen *ebiten.Image) *ebiten.Image {
	v := c.viewport
	if v.Empty() {
		return screen
	}
	return screen.SubImage(image.Rect(v.X, v.Y, v.X+v.Width, v.Y+v.Height)).(*ebiten.Image)
}

// Package pixelcam is a pixel-perfect 2D camera for [Ebitengine].
//
// Pixelcam keeps pixel-art crisp by zooming the camera to an integer number
// of screen pixels per virtual pixel, automatically re-resolved whenever the
// window size changes so the target resolution fills as much of the screen as
// possible. It can also letterbox rendering to exactly the target resolution
// by computing a centered viewport and opaque borders.
//
// # Quick start
//
// Pick a zoom policy and run:
//
//	cam := pixelcam.NewCamera(pixelcam.FitSize{Width: 320, Height: 180})
//	cam.SetViewport = true
//
//	err := pixelcam.Run(cam, game, pixelcam.RunConfig{
//		Title: "My Game", Width: 1280, Height: 720,
//		Resizable:   true,
//		BorderColor: pixelcam.Color{R: 0.1, G: 0.1, B: 0.1, A: 1},
//	})
//
// Inside the delegate, concatenate [Camera.GeoM] into your draw options so
// world coordinates are expressed in virtual pixels:
//
//	func (g *game) Draw(screen *ebiten.Image, cam *pixelcam.Camera) {
//		var opts ebiten.DrawImageOptions
//		opts.GeoM.Translate(-16, -16) // sprite anchor
//		opts.GeoM.Concat(cam.GeoM())
//		cam.Clip(screen).DrawImage(g.sprite, &opts)
//	}
//
// For full control, skip [Run] and implement [ebiten.Game] yourself: call
// [Camera.Resize] from Layout, [Camera.Update] from Update, and draw through
// [Camera.GeoM].
//
// # Zoom policies
//
// [FitSize] fits an exact virtual resolution, [FitWidth] and [FitHeight]
// constrain one axis and let the other follow the window, [FitSmallerDim]
// constrains whichever window dimension is smaller, and [Fixed] uses a
// manual factor regardless of window size. All policies floor to an integer
// factor and never go below 1, so content is never clipped by rounding and a
// briefly zero-sized window during a resize stays harmless.
//
// Note that Ebitengine uses nearest-neighbor filtering by default, which is
// what pixel art wants; no filter configuration is needed. If a sprite
// dimension is odd, offset its anchor by half a pixel to stay aligned with
// the virtual grid.
//
// [Ebitengine]: https://ebitengine.org
package pixelcam

package pixelcam

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Delegate is the game logic hooked into the loop created by [Run]. Update
// and Draw receive the camera after its zoom factor and viewport have been
// refreshed for the current window size.
type Delegate interface {
	Update(cam *Camera) error
	Draw(screen *ebiten.Image, cam *Camera)
}

// RunConfig configures the window and loop created by [Run].
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable allows the user to resize the window. The camera re-resolves
	// zoom and viewport automatically on every size change.
	Resizable bool
	// ClearColor fills the screen before the delegate draws.
	ClearColor Color
	// BorderColor fills the letterbox margins after the delegate draws, when
	// the camera has SetViewport enabled. Leave fully transparent to skip.
	BorderColor Color
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives the delegate with the camera kept in sync
// with the window size. It blocks until the delegate returns an error or the
// window is closed.
//
// Run owns the orchestration contract: the camera is resized in Layout (so a
// fresh window size is never paired with stale camera state within a frame)
// and updated once per tick before the delegate.
func Run(cam *Camera, delegate Delegate, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&runner{cam: cam, delegate: delegate, cfg: cfg})
}

// runner adapts a Camera and Delegate to ebiten.Game.
type runner struct {
	cam      *Camera
	delegate Delegate
	cfg      RunConfig
}

func (r *runner) Update() error {
	r.cam.Update(1.0 / float64(ebiten.TPS()))
	return r.delegate.Update(r.cam)
}

func (r *runner) Draw(screen *ebiten.Image) {
	if r.cfg.ClearColor.A > 0 {
		screen.Fill(r.cfg.ClearColor.toRGBA())
	}
	r.delegate.Draw(screen, r.cam)
	if r.cfg.BorderColor.A > 0 {
		r.cam.DrawBorder(screen, r.cfg.BorderColor)
	}
	if r.cfg.ShowFPS {
		DrawFPSOverlay(screen)
	}
}

// Layout reports a 1:1 mapping of window pixels to screen pixels and feeds
// the size to the camera. Pixel-perfect zoom needs the unscaled size; ebiten
// device scaling would reintroduce fractional pixels.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.cam.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

package pixelcam

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestClipBounds(t *testing.T) {
	cam := NewCamera(FitSize{320, 240})
	cam.SetViewport = true
	cam.Resize(1024, 768)

	screen := ebiten.NewImage(1024, 768)
	clipped := cam.Clip(screen)
	b := clipped.Bounds()
	if b.Min.X != 32 || b.Min.Y != 24 || b.Dx() != 960 || b.Dy() != 720 {
		t.Errorf("clip bounds = %v, want (32, 24)+960x720", b)
	}
}

func TestClipZeroWindow(t *testing.T) {
	cam := NewCamera(FitSize{320, 240})
	cam.Resize(0, 0)

	screen := ebiten.NewImage(16, 16)
	if got := cam.Clip(screen); got != screen {
		t.Error("Clip with empty viewport should return the screen unchanged")
	}
}

func TestDrawBorderWithoutViewportMode(t *testing.T) {
	cam := NewCamera(FitSize{320, 240})
	cam.Resize(1024, 768)

	// SetViewport off: DrawBorder is a no-op and must not touch the screen.
	screen := ebiten.NewImage(1024, 768)
	cam.DrawBorder(screen, Color{0.1, 0.1, 0.1, 1})
}

func TestDrawBorderCoversMargins(t *testing.T) {
	cam := NewCamera(FitSize{320, 240})
	cam.SetViewport = true
	cam.Resize(1024, 768)

	screen := ebiten.NewImage(1024, 768)
	cam.DrawBorder(screen, Color{0.1, 0.1, 0.1, 1})

	// The strips backing DrawBorder must exactly tile the margins.
	area := 0
	for _, s := range letterboxStrips(cam.Viewport(), 1024, 768) {
		area += s.Width * s.Height
	}
	if want := 1024*768 - 960*720; area != want {
		t.Errorf("strip area = %d, want %d", area, want)
	}
}

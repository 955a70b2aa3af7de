package pixelcam

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawFPSOverlay prints the current FPS and TPS in the top-left corner of
// screen. Intended for examples and debugging; [Run] draws it when
// RunConfig.ShowFPS is set.
func DrawFPSOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

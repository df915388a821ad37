//go:build !libretro && !ios

// Package ebiten draws scaler output with Ebiten.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/softfilter/scaler"
)

// Viewer wraps scaler.Core with Ebiten-specific functionality
type Viewer struct {
	*scaler.Core

	offscreen *ebiten.Image           // Offscreen buffer at filter output resolution
	drawOpts  ebiten.DrawImageOptions // Pre-allocated draw options to avoid per-frame allocation
}

// NewViewer wraps a core for drawing.
func NewViewer(core *scaler.Core) *Viewer {
	return &Viewer{Core: core}
}

// Close releases the core and the offscreen image.
func (v *Viewer) Close() {
	v.Core.Close()
	if v.offscreen != nil {
		v.offscreen.Deallocate()
		v.offscreen = nil
	}
}

// FrameImage copies the current framebuffer into the offscreen image and
// returns it at output resolution. It returns nil when the framebuffer is
// shorter than its reported geometry.
func (v *Viewer) FrameImage() *ebiten.Image {
	width := v.GetFramebufferStride() / 4
	height := v.GetActiveHeight()
	if width == 0 || height == 0 {
		return nil
	}

	// Output size changes with the filter scale
	if v.offscreen == nil || v.offscreen.Bounds().Dx() != width || v.offscreen.Bounds().Dy() != height {
		if v.offscreen != nil {
			v.offscreen.Deallocate()
		}
		v.offscreen = ebiten.NewImage(width, height)
	}

	fb := v.GetFramebuffer()
	requiredLen := width * 4 * height
	if len(fb) < requiredLen {
		return nil
	}
	v.offscreen.WritePixels(fb[:requiredLen])
	return v.offscreen
}

// DrawToScreen renders the framebuffer to screen, scaled to fit while
// preserving its aspect ratio and centred.
func (v *Viewer) DrawToScreen(screen *ebiten.Image) {
	src := v.FrameImage()
	if src == nil {
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale, offsetX, offsetY := fit(src.Bounds().Dx(), src.Bounds().Dy(), screenW, screenH)

	v.drawOpts = ebiten.DrawImageOptions{}
	v.drawOpts.GeoM.Scale(scale, scale)
	v.drawOpts.GeoM.Translate(offsetX, offsetY)
	v.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(src, &v.drawOpts)
}

// Layout returns the window size so scaling is controlled in DrawToScreen.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// fit returns the uniform scale and the offsets that centre a w x h image
// inside a screenW x screenH area.
func fit(w, h, screenW, screenH int) (scale, offsetX, offsetY float64) {
	nativeW, nativeH := float64(w), float64(h)
	scaleX := float64(screenW) / nativeW
	scaleY := float64(screenH) / nativeH
	scale = min(scaleX, scaleY)

	offsetX = (float64(screenW) - nativeW*scale) / 2
	offsetY = (float64(screenH) - nativeH*scale) / 2
	return scale, offsetX, offsetY
}

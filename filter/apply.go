package filter

import (
	"fmt"

	"github.com/user-none/softfilter/pixel"
)

// Apply renders src into dst through inst after checking that both frames
// match the instance format and that dst holds the scaled output. Multi-pass
// filters get their first pass before Render.
func Apply(inst Instance, dst, src *pixel.Frame) error {
	if src.Width < 1 || src.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrFrameTooSmall, src.Width, src.Height)
	}
	if src.Format != inst.Format() || dst.Format != inst.Format() {
		return fmt.Errorf("%w: instance is %s, src %s, dst %s",
			ErrFormatMismatch, inst.Format(), src.Format, dst.Format)
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}

	ow, oh := inst.OutputSize(src.Width, src.Height)
	if dst.Width < ow || dst.Height < oh {
		return fmt.Errorf("%w: have %dx%d, need %dx%d",
			ErrBufferTooSmall, dst.Width, dst.Height, ow, oh)
	}

	if fp, ok := inst.(FirstPasser); ok {
		fp.FirstPass(src.Pix, src.Width, src.Height, src.Stride)
	}
	inst.Render(dst.Pix, dst.Stride, src.Pix, src.Width, src.Height, src.Stride)
	return nil
}

// Package filter implements the software scaling filters applied to emulated
// video frames before display, and the registry a frame loop uses to pick
// and drive them.
//
// A frame loop negotiates a format with InputFormats, creates an Instance,
// sizes its destination with OutputSize and then calls Render once per frame:
//
//	d, _ := filter.Lookup("supereagle")
//	inst, err := d.Create(pixel.FormatXRGB8888)
//	if err != nil {
//		return err
//	}
//	defer inst.Destroy()
//	ow, oh := inst.OutputSize(w, h)
//	inst.Render(dst, ow*4, src, w, h, w*4)
//
// Kernels never allocate per frame when rendering on a single goroutine.
package filter

import (
	"errors"

	"github.com/user-none/softfilter/pixel"
)

// Errors returned by Create, Apply and Lookup
var (
	ErrUnsupportedFormat = errors.New("pixel format not supported by filter")
	ErrFormatMismatch    = errors.New("frame format does not match filter instance")
	ErrBufferTooSmall    = errors.New("frame buffer too small for filter output")
	ErrFrameTooSmall     = errors.New("frame has no pixels")
	ErrUnknownFilter     = errors.New("unknown filter")
)

// Descriptor is the static, build-time description of one filter.
type Descriptor interface {
	// ID is the stable lowercase identifier used in config files.
	ID() string
	// Name is the display name.
	Name() string
	// InputFormats returns the set of accepted input formats.
	InputFormats() pixel.Format
	// OutputFormats returns the output formats produced for the given input
	// set. All built-in filters preserve the format.
	OutputFormats(in pixel.Format) pixel.Format
	// Create instantiates the filter for a single input format.
	Create(format pixel.Format, opts ...Option) (Instance, error)
}

// Instance is a created filter. An instance must not be rendered from more
// than one goroutine at a time.
type Instance interface {
	// Format returns the pixel format the instance was created for.
	Format() pixel.Format
	// OutputSize returns the destination dimensions for a source size.
	OutputSize(width, height int) (int, int)
	// Render scales one frame. Strides are in bytes. dst must hold the
	// dimensions returned by OutputSize.
	Render(dst []byte, dstStride int, src []byte, width, height, srcStride int)
	// Destroy releases the instance. Further calls to Destroy do nothing and
	// Render becomes a no-op.
	Destroy()
}

// FirstPasser is implemented by multi-pass filters that need to see the
// source frame before Render. Apply calls it when present.
type FirstPasser interface {
	FirstPass(src []byte, width, height, srcStride int)
}

// Option configures an instance at Create time.
type Option func(*options)

type options struct {
	threads int
}

// WithThreads renders each frame in n horizontal bands on separate
// goroutines. Values below 2 render on the calling goroutine.
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

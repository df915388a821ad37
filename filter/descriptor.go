package filter

import (
	"fmt"

	"github.com/user-none/softfilter/pixel"
)

// kernelDescriptor is a filter defined by one block function per format and
// a fixed integer scale.
type kernelDescriptor struct {
	id     string
	name   string
	scale  int
	rgb565 blockFunc[uint16]
	xrgb   blockFunc[uint32]
}

func newKernelDescriptor(id, name string, scale int, rgb565 blockFunc[uint16], xrgb blockFunc[uint32]) *kernelDescriptor {
	return &kernelDescriptor{
		id:     id,
		name:   name,
		scale:  scale,
		rgb565: rgb565,
		xrgb:   xrgb,
	}
}

func (d *kernelDescriptor) ID() string   { return d.id }
func (d *kernelDescriptor) Name() string { return d.name }

// Scale returns the integer scale factor of the filter.
func (d *kernelDescriptor) Scale() int { return d.scale }

func (d *kernelDescriptor) InputFormats() pixel.Format {
	return pixel.FormatRGB565 | pixel.FormatXRGB8888
}

func (d *kernelDescriptor) OutputFormats(in pixel.Format) pixel.Format {
	return in
}

func (d *kernelDescriptor) Create(format pixel.Format, opts ...Option) (Instance, error) {
	if !d.InputFormats().Has(format) {
		return nil, fmt.Errorf("%w: %s does not accept %s", ErrUnsupportedFormat, d.name, format)
	}

	o := options{threads: 1}
	for _, opt := range opts {
		opt(&o)
	}

	Logger().Debug("filter created", "filter", d.id, "format", format.String(), "threads", o.threads)
	in := &kernelInstance{
		desc:    d,
		format:  format,
		threads: o.threads,
	}
	if format == pixel.FormatRGB565 {
		in.s16 = new(scratch[uint16])
	} else {
		in.s32 = new(scratch[uint32])
	}
	return in, nil
}

// kernelInstance is the per-format state of a kernelDescriptor.
type kernelInstance struct {
	desc      *kernelDescriptor
	format    pixel.Format
	threads   int
	destroyed bool

	s16 *scratch[uint16]
	s32 *scratch[uint32]
}

func (in *kernelInstance) Format() pixel.Format { return in.format }

func (in *kernelInstance) OutputSize(width, height int) (int, int) {
	return width * in.desc.scale, height * in.desc.scale
}

func (in *kernelInstance) Destroy() {
	if in.destroyed {
		return
	}
	in.destroyed = true
	Logger().Debug("filter destroyed", "filter", in.desc.id, "format", in.format.String())
}

func (in *kernelInstance) Render(dst []byte, dstStride int, src []byte, width, height, srcStride int) {
	if in.destroyed {
		Logger().Warn("render on destroyed filter ignored", "filter", in.desc.id)
		return
	}
	if width <= 0 || height <= 0 {
		return
	}

	scale := in.desc.scale
	switch in.format {
	case pixel.FormatRGB565:
		s, d := pixel.View16(src), pixel.View16(dst)
		ss, ds := srcStride/pixel.BPPRGB565, dstStride/pixel.BPPRGB565
		if !fits(len(s), ss, width, height) || !fits(len(d), ds, width*scale, height*scale) {
			in.warnShort(width, height, srcStride, dstStride)
			return
		}
		renderFrame(d, ds, s, ss, width, height, scale, in.threads, in.desc.rgb565, in.s16)

	case pixel.FormatXRGB8888:
		s, d := pixel.View32(src), pixel.View32(dst)
		ss, ds := srcStride/pixel.BPPXRGB8888, dstStride/pixel.BPPXRGB8888
		if !fits(len(s), ss, width, height) || !fits(len(d), ds, width*scale, height*scale) {
			in.warnShort(width, height, srcStride, dstStride)
			return
		}
		renderFrame(d, ds, s, ss, width, height, scale, in.threads, in.desc.xrgb, in.s32)

	default:
		Logger().Warn("render with unsupported format ignored", "filter", in.desc.id, "format", in.format.String())
	}
}

func (in *kernelInstance) warnShort(width, height, srcStride, dstStride int) {
	Logger().Warn("render with short buffers ignored",
		"filter", in.desc.id,
		"width", width,
		"height", height,
		"srcStride", srcStride,
		"dstStride", dstStride)
}

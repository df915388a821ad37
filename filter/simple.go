package filter

import "github.com/user-none/softfilter/pixel"

// Normal2x replicates every source pixel into a 2x2 block.
var Normal2x Descriptor = newKernelDescriptor("normal2x", "Normal2x", 2,
	normal2xKernel[uint16],
	normal2xKernel[uint32])

// Scanlines doubles the frame and halves the brightness of every odd output
// row.
var Scanlines Descriptor = newKernelDescriptor("scanlines", "Scanlines", 2,
	scanlinesKernel[uint16](pixel.RGB565{}),
	scanlinesKernel[uint32](pixel.XRGB8888{}))

// Darken halves the brightness of every pixel without scaling.
var Darken Descriptor = newKernelDescriptor("darken", "Darken", 1,
	darkenKernel[uint16](pixel.RGB565{}),
	darkenKernel[uint32](pixel.XRGB8888{}))

func normal2xKernel[P pixel.Pixel](w *Window[P], out *Block[P]) {
	out[0], out[1], out[2], out[3] = w.C5, w.C5, w.C5, w.C5
}

func scanlinesKernel[P pixel.Pixel, O pixel.Ops[P]](ops O) blockFunc[P] {
	return func(w *Window[P], out *Block[P]) {
		dim := ops.Blend2(w.C5, 0)
		out[0], out[1], out[2], out[3] = w.C5, w.C5, dim, dim
	}
}

func darkenKernel[P pixel.Pixel, O pixel.Ops[P]](ops O) blockFunc[P] {
	return func(w *Window[P], out *Block[P]) {
		out[0] = ops.Blend2(w.C5, 0)
	}
}

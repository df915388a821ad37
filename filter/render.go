package filter

import (
	"golang.org/x/sync/errgroup"

	"github.com/user-none/softfilter/pixel"
)

// maxScale is the largest block edge any built-in filter produces.
const maxScale = 3

// Block is a destination super-pixel, row-major with an edge of the filter's
// scale. For 2x filters the layout is TL, TR, BL, BR.
type Block[P pixel.Pixel] [maxScale * maxScale]P

// blockFunc computes the destination block for one window.
type blockFunc[P pixel.Pixel] func(w *Window[P], out *Block[P])

// scratch is the per-goroutine working set of a render. Kernels are called
// through a func value, so the window and block would escape if they were
// locals.
type scratch[P pixel.Pixel] struct {
	w   Window[P]
	blk Block[P]
}

// renderRows scales source rows [y0, y1). Strides are in elements.
func renderRows[P pixel.Pixel](dst []P, dstStride int, src []P, srcStride, width, height, scale, y0, y1 int, k blockFunc[P], s *scratch[P]) {
	w, blk := &s.w, &s.blk

	for y := y0; y < y1; y++ {
		row := y * srcStride
		out := y * scale * dstStride

		for x := 0; x < width; x++ {
			if interior(x, y, width, height) {
				w.load(src, row+x, srcStride)
			} else {
				w.loadClamped(src, x, y, width, height, srcStride)
			}

			k(w, blk)

			o := out + x*scale
			for by := 0; by < scale; by++ {
				copy(dst[o:o+scale], blk[by*scale:by*scale+scale])
				o += dstStride
			}
		}
	}
}

// renderFrame scales a whole frame, splitting it into row bands when threads
// is above 1. Bands read shared source rows but write disjoint destination
// rows. s is only used on the single-goroutine path.
func renderFrame[P pixel.Pixel](dst []P, dstStride int, src []P, srcStride, width, height, scale, threads int, k blockFunc[P], s *scratch[P]) {
	if threads > height {
		threads = height
	}
	if threads <= 1 {
		renderRows(dst, dstStride, src, srcStride, width, height, scale, 0, height, k, s)
		return
	}

	band := (height + threads - 1) / threads
	var g errgroup.Group
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		g.Go(func() error {
			renderRows(dst, dstStride, src, srcStride, width, height, scale, y0, y1, k, new(scratch[P]))
			return nil
		})
	}
	// Bands never return an error; Wait only joins them.
	g.Wait()
}

// fits reports whether a buffer of n elements holds a width x height raster
// at the given element stride.
func fits(n, stride, width, height int) bool {
	return stride >= width && n >= (height-1)*stride+width
}

package filter

import "github.com/user-none/softfilter/pixel"

// Window is the 4x4 source neighbourhood of the pixel being scaled. C5 is the
// current pixel:
//
//	B0 B1 B2 B3
//	C4 C5 C6 S2
//	C1 C2 C3 S1
//	A0 A1 A2 A3
type Window[P pixel.Pixel] struct {
	B0, B1, B2, B3 P
	C4, C5, C6, S2 P
	C1, C2, C3, S1 P
	A0, A1, A2, A3 P
}

// interior reports whether the full window around (x, y) lies inside a
// width x height raster.
func interior(x, y, width, height int) bool {
	return x >= 1 && x+2 < width && y >= 1 && y+2 < height
}

// load fills the window from direct offsets around src[i]. The caller
// guarantees the window is interior.
func (w *Window[P]) load(src []P, i, stride int) {
	up := i - stride
	dn := i + stride
	dn2 := dn + stride
	w.B0, w.B1, w.B2, w.B3 = src[up-1], src[up], src[up+1], src[up+2]
	w.C4, w.C5, w.C6, w.S2 = src[i-1], src[i], src[i+1], src[i+2]
	w.C1, w.C2, w.C3, w.S1 = src[dn-1], src[dn], src[dn+1], src[dn+2]
	w.A0, w.A1, w.A2, w.A3 = src[dn2-1], src[dn2], src[dn2+1], src[dn2+2]
}

// loadClamped fills the window replicating edge pixels for coordinates that
// fall outside the raster.
func (w *Window[P]) loadClamped(src []P, x, y, width, height, stride int) {
	c0, c1, c2, c3 := clamp(x-1, width), x, clamp(x+1, width), clamp(x+2, width)
	r0 := clamp(y-1, height) * stride
	r1 := y * stride
	r2 := clamp(y+1, height) * stride
	r3 := clamp(y+2, height) * stride
	w.B0, w.B1, w.B2, w.B3 = src[r0+c0], src[r0+c1], src[r0+c2], src[r0+c3]
	w.C4, w.C5, w.C6, w.S2 = src[r1+c0], src[r1+c1], src[r1+c2], src[r1+c3]
	w.C1, w.C2, w.C3, w.S1 = src[r2+c0], src[r2+c1], src[r2+c2], src[r2+c3]
	w.A0, w.A1, w.A2, w.A3 = src[r3+c0], src[r3+c1], src[r3+c2], src[r3+c3]
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

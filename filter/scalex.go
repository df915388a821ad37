package filter

import "github.com/user-none/softfilter/pixel"

// Scale2x (AdvMAME2x) copies a neighbour into a corner when the two
// neighbours that meet at that corner agree and the cross is not uniform.
// No colours are blended.
var Scale2x Descriptor = newKernelDescriptor("scale2x", "Scale2x", 2,
	scale2xKernel[uint16],
	scale2xKernel[uint32])

// Scale3x (AdvMAME3x) extends the Scale2x rule to a 3x3 block.
var Scale3x Descriptor = newKernelDescriptor("scale3x", "Scale3x", 3,
	scale3xKernel[uint16],
	scale3xKernel[uint32])

// EPX is Eric Johnston's original pixel expander. It differs from Scale2x in
// keeping the centre pixel whenever three or more of the four neighbours
// agree.
var EPX Descriptor = newKernelDescriptor("epx", "EPX", 2,
	epxKernel[uint16],
	epxKernel[uint32])

//	A B C      B0 B1 B2
//	D E F  =   C4 C5 C6
//	G H I      C1 C2 C3
func scale2xKernel[P pixel.Pixel](w *Window[P], out *Block[P]) {
	b, d, e, f, h := w.B1, w.C4, w.C5, w.C6, w.C2
	out[0], out[1], out[2], out[3] = e, e, e, e
	if b == h || d == f {
		return
	}
	if d == b {
		out[0] = d
	}
	if b == f {
		out[1] = f
	}
	if d == h {
		out[2] = d
	}
	if h == f {
		out[3] = f
	}
}

func scale3xKernel[P pixel.Pixel](w *Window[P], out *Block[P]) {
	a, b, c := w.B0, w.B1, w.B2
	d, e, f := w.C4, w.C5, w.C6
	g, h, i := w.C1, w.C2, w.C3

	for n := range out {
		out[n] = e
	}
	if b == h || d == f {
		return
	}

	if d == b {
		out[0] = d
	}
	if (d == b && e != c) || (b == f && e != a) {
		out[1] = b
	}
	if b == f {
		out[2] = f
	}
	if (d == b && e != g) || (d == h && e != a) {
		out[3] = d
	}
	if (b == f && e != i) || (h == f && e != c) {
		out[5] = f
	}
	if d == h {
		out[6] = d
	}
	if (d == h && e != i) || (h == f && e != g) {
		out[7] = h
	}
	if h == f {
		out[8] = f
	}
}

//	  A          B1
//	C P B  =  C4 C5 C6
//	  D          C2
func epxKernel[P pixel.Pixel](w *Window[P], out *Block[P]) {
	a, b, c, d, p := w.B1, w.C6, w.C4, w.C2, w.C5
	out[0], out[1], out[2], out[3] = p, p, p, p

	if (a == b && (a == c || a == d)) || (c == d && (c == a || c == b)) {
		return
	}
	if c == a {
		out[0] = a
	}
	if a == b {
		out[1] = b
	}
	if d == c {
		out[2] = c
	}
	if b == d {
		out[3] = d
	}
}

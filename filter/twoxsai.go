package filter

import "github.com/user-none/softfilter/pixel"

// TwoxSaI is the original 2xSaI scaler. The top-left destination pixel is
// always the source pixel; the other three are chosen from edge patterns or
// blended.
var TwoxSaI Descriptor = newKernelDescriptor("2xsai", "2xSaI", 2,
	twoxSaIKernel[uint16](pixel.RGB565{}),
	twoxSaIKernel[uint32](pixel.XRGB8888{}))

// Names below follow the classic 2xSaI labelling of the window:
//
//	I E F J       B0 B1 B2 B3
//	G A B K   =   C4 C5 C6 S2
//	H C D L       C1 C2 C3 S1
//	M N O         A0 A1 A2
func twoxSaIKernel[P pixel.Pixel, O pixel.Ops[P]](ops O) blockFunc[P] {
	return func(w *Window[P], out *Block[P]) {
		a, b, c, d := w.C5, w.C6, w.C2, w.C3
		e, f, g, h := w.B1, w.B2, w.C4, w.C1
		i, j, k, l := w.B0, w.B3, w.S2, w.S1
		m, n, o := w.A0, w.A1, w.A2

		var right, below, corner P

		switch w.Classify() {
		case CaseDiagonal:
			if (a == e && b == l) || (a == c && a == f && b != e && b == j) {
				right = a
			} else {
				right = ops.Blend2(a, b)
			}
			if (a == g && c == o) || (a == b && a == h && g != c && c == m) {
				below = a
			} else {
				below = ops.Blend2(a, c)
			}
			corner = a

		case CaseAntiDiagonal:
			if (b == f && a == h) || (b == e && b == d && a != f && a == i) {
				right = b
			} else {
				right = ops.Blend2(a, b)
			}
			if (c == h && a == f) || (c == g && c == d && a != h && a == i) {
				below = c
			} else {
				below = ops.Blend2(a, c)
			}
			corner = b

		case CaseAmbiguous:
			if a == b {
				right, below, corner = a, a, a
				break
			}
			right = ops.Blend2(a, b)
			below = ops.Blend2(a, c)

			r := Compare(a, b, g, e)
			r += Compare(b, a, k, f)
			r += Compare(b, a, h, n)
			r += Compare(a, b, l, o)
			switch {
			case r > 0:
				corner = a
			case r < 0:
				corner = b
			default:
				corner = ops.Blend4(a, b, c, d)
			}

		default:
			corner = ops.Blend4(a, b, c, d)

			switch {
			case a == c && a == f && b != e && b == j:
				right = a
			case b == e && b == d && a != f && a == i:
				right = b
			default:
				right = ops.Blend2(a, b)
			}

			switch {
			case a == b && a == h && g != c && c == m:
				below = a
			case c == g && c == d && a != h && a == i:
				below = c
			default:
				below = ops.Blend2(a, c)
			}
		}

		out[0], out[1], out[2], out[3] = a, right, below, corner
	}
}

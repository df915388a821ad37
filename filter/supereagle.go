package filter

import "github.com/user-none/softfilter/pixel"

// SuperEagle is the 2x edge-adaptive smoother derived from Eagle. Unlike
// Super2xSaI it resolves ambiguous blocks into symmetric pairs and fills
// generic blocks with 3:1 corner blends of the opposite diagonal.
var SuperEagle Descriptor = newKernelDescriptor("supereagle", "SuperEagle", 2,
	superEagleKernel[uint16](pixel.RGB565{}),
	superEagleKernel[uint32](pixel.XRGB8888{}))

func superEagleKernel[P pixel.Pixel, O pixel.Ops[P]](ops O) blockFunc[P] {
	return func(w *Window[P], out *Block[P]) {
		var p1a, p1b, p2a, p2b P

		switch w.Classify() {
		case CaseAntiDiagonal:
			p1b, p2a = w.C2, w.C2
			if w.C1 == w.C2 || w.C6 == w.B2 {
				p1a = ops.Blend2(w.C2, ops.Blend2(w.C2, w.C5))
			} else {
				p1a = ops.Blend2(w.C5, w.C6)
			}
			if w.C6 == w.S2 || w.C2 == w.A1 {
				p2b = ops.Blend2(w.C2, ops.Blend2(w.C2, w.C3))
			} else {
				p2b = ops.Blend2(w.C2, w.C3)
			}

		case CaseDiagonal:
			p1a, p2b = w.C5, w.C5
			if w.B1 == w.C5 || w.C3 == w.S1 {
				p1b = ops.Blend2(w.C5, ops.Blend2(w.C5, w.C6))
			} else {
				p1b = ops.Blend2(w.C5, w.C6)
			}
			if w.C3 == w.A2 || w.C4 == w.C5 {
				p2a = ops.Blend2(w.C5, ops.Blend2(w.C5, w.C2))
			} else {
				p2a = ops.Blend2(w.C2, w.C3)
			}

		case CaseAmbiguous:
			switch r := w.Vote(); {
			case r > 0:
				p1b, p2a = w.C2, w.C2
				p1a = ops.Blend2(w.C5, w.C6)
				p2b = p1a
			case r < 0:
				p1a, p2b = w.C5, w.C5
				p1b = ops.Blend2(w.C5, w.C6)
				p2a = p1b
			default:
				p1a, p2b = w.C5, w.C5
				p1b, p2a = w.C2, w.C2
			}

		default:
			anti := ops.Blend2(w.C2, w.C6)
			diag := ops.Blend2(w.C5, w.C3)
			p1a = ops.Blend4(w.C5, w.C5, w.C5, anti)
			p2b = ops.Blend4(w.C3, w.C3, w.C3, anti)
			p1b = ops.Blend4(w.C6, w.C6, w.C6, diag)
			p2a = ops.Blend4(w.C2, w.C2, w.C2, diag)
		}

		out[0], out[1], out[2], out[3] = p1a, p1b, p2a, p2b
	}
}

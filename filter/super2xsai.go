package filter

import "github.com/user-none/softfilter/pixel"

// Super2xSaI is the 2x edge-adaptive smoother by Derek Liauw Kie Fa. Corners
// next to a continuing edge get a 3:1 weighted blend toward that edge.
var Super2xSaI Descriptor = newKernelDescriptor("super2xsai", "Super2xSaI", 2,
	super2xSaIKernel[uint16](pixel.RGB565{}),
	super2xSaIKernel[uint32](pixel.XRGB8888{}))

func super2xSaIKernel[P pixel.Pixel, O pixel.Ops[P]](ops O) blockFunc[P] {
	return func(w *Window[P], out *Block[P]) {
		var p1a, p1b, p2a, p2b P

		// Right column
		switch w.Classify() {
		case CaseAntiDiagonal:
			p1b, p2b = w.C2, w.C2
		case CaseDiagonal:
			p1b, p2b = w.C5, w.C5
		case CaseAmbiguous:
			switch r := w.Vote(); {
			case r > 0:
				p1b, p2b = w.C6, w.C6
			case r < 0:
				p1b, p2b = w.C5, w.C5
			default:
				p1b = ops.Blend2(w.C5, w.C6)
				p2b = p1b
			}
		default:
			switch {
			case w.C6 == w.C3 && w.C3 == w.A1 && w.C2 != w.A2 && w.C3 != w.A0:
				p2b = ops.Blend4(w.C3, w.C3, w.C3, w.C2)
			case w.C5 == w.C2 && w.C2 == w.A2 && w.A1 != w.C3 && w.C2 != w.A3:
				p2b = ops.Blend4(w.C2, w.C2, w.C2, w.C3)
			default:
				p2b = ops.Blend2(w.C2, w.C3)
			}

			switch {
			case w.C6 == w.C3 && w.C6 == w.B1 && w.C5 != w.B2 && w.C6 != w.B0:
				p1b = ops.Blend4(w.C6, w.C6, w.C6, w.C5)
			case w.C5 == w.C2 && w.C5 == w.B2 && w.B1 != w.C6 && w.C5 != w.B3:
				p1b = ops.Blend4(w.C6, w.C5, w.C5, w.C5)
			default:
				p1b = ops.Blend2(w.C5, w.C6)
			}
		}

		// Left column
		switch {
		case w.C5 == w.C3 && w.C2 != w.C6 && w.C4 == w.C5 && w.C5 != w.A2:
			p2a = ops.Blend2(w.C2, w.C5)
		case w.C5 == w.C1 && w.C6 == w.C5 && w.C4 != w.C2 && w.C5 != w.A0:
			p2a = ops.Blend2(w.C2, w.C5)
		default:
			p2a = w.C2
		}

		switch {
		case w.C2 == w.C6 && w.C5 != w.C3 && w.C1 == w.C2 && w.C2 != w.B2:
			p1a = ops.Blend2(w.C2, w.C5)
		case w.C4 == w.C2 && w.C3 == w.C2 && w.C1 != w.C5 && w.C2 != w.B0:
			p1a = ops.Blend2(w.C2, w.C5)
		default:
			p1a = w.C5
		}

		out[0], out[1], out[2], out[3] = p1a, p1b, p2a, p2b
	}
}

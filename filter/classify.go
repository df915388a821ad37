package filter

// Case is the structural classification of a window's centre 2x2 block
// (C5 C6 / C2 C3).
type Case int

const (
	// CaseGeneric: neither diagonal of the centre block is uniform.
	CaseGeneric Case = iota
	// CaseAntiDiagonal: C2 == C6 and C5 != C3, a sharp edge along the
	// anti-diagonal.
	CaseAntiDiagonal
	// CaseDiagonal: C5 == C3 and C2 != C6.
	CaseDiagonal
	// CaseAmbiguous: both diagonals are uniform. Includes the flat block.
	CaseAmbiguous
)

// String returns the case name.
func (c Case) String() string {
	switch c {
	case CaseGeneric:
		return "generic"
	case CaseAntiDiagonal:
		return "anti-diagonal"
	case CaseDiagonal:
		return "diagonal"
	case CaseAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Compare is one directional edge vote: +1 when w differs from the pair
// (y, z) and x does not, -1 for the reverse, 0 otherwise.
func Compare[P comparable](w, x, y, z P) int {
	r := 0
	if w != y || w != z {
		r++
	}
	if x != y || x != z {
		r--
	}
	return r
}

// Classify returns the structural case of the window's centre block.
func (w *Window[P]) Classify() Case {
	switch {
	case w.C2 == w.C6 && w.C5 != w.C3:
		return CaseAntiDiagonal
	case w.C5 == w.C3 && w.C2 != w.C6:
		return CaseDiagonal
	case w.C5 == w.C3 && w.C2 == w.C6:
		return CaseAmbiguous
	default:
		return CaseGeneric
	}
}

// Vote sums four directional comparisons between C6 and C5 around the centre
// block. The result lies in [-4, 4]; positive favours C6, negative C5.
func (w *Window[P]) Vote() int {
	r := Compare(w.C6, w.C5, w.C1, w.A1)
	r += Compare(w.C6, w.C5, w.C4, w.B1)
	r += Compare(w.C6, w.C5, w.A2, w.S1)
	r += Compare(w.C6, w.C5, w.B2, w.S2)
	return r
}

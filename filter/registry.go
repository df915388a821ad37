package filter

import (
	"fmt"
	"slices"
	"strings"
)

// builtin lists every filter in display order. Written only at init.
var builtin = []Descriptor{
	Super2xSaI,
	SuperEagle,
	TwoxSaI,
	Scale2x,
	Scale3x,
	EPX,
	Normal2x,
	Scanlines,
	Darken,
}

// Registry returns all built-in filters in display order. The slice is a
// copy and may be modified by the caller.
func Registry() []Descriptor {
	return slices.Clone(builtin)
}

// IDs returns the ID of every built-in filter in display order.
func IDs() []string {
	ids := make([]string, len(builtin))
	for i, d := range builtin {
		ids[i] = d.ID()
	}
	return ids
}

// Lookup finds a filter by ID or display name, ignoring case.
func Lookup(name string) (Descriptor, error) {
	name = strings.TrimSpace(name)
	for _, d := range builtin {
		if strings.EqualFold(d.ID(), name) || strings.EqualFold(d.Name(), name) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Next returns the filter after id in display order, wrapping around. An
// unknown id yields the first filter. Negative steps move backwards.
func Next(id string, step int) Descriptor {
	i := slices.IndexFunc(builtin, func(d Descriptor) bool {
		return strings.EqualFold(d.ID(), id)
	})
	if i < 0 {
		return builtin[0]
	}
	n := len(builtin)
	return builtin[((i+step)%n+n)%n]
}

// Scale returns the integer scale factor of d, or 0 when d does not report
// one.
func Scale(d Descriptor) int {
	if s, ok := d.(interface{ Scale() int }); ok {
		return s.Scale()
	}
	return 0
}

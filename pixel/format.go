// Package pixel describes the packed pixel encodings consumed by the software
// filters and provides the blend primitives they share.
//
// Two encodings are supported:
//
//	RGB565   16 bits: rrrrrggg gggbbbbb
//	XRGB8888 32 bits: xxxxxxxx rrrrrrrr gggggggg bbbbbbbb
//
// Buffers are plain byte slices read through native-endian element views, the
// same layout libretro frontends hand to video drivers.
package pixel

import (
	"errors"
	"fmt"
	"strings"
)

// Format identifies a packed pixel encoding. Values are single bits so a set
// of supported formats can be expressed as a bitmask.
type Format uint

const (
	FormatRGB565 Format = 1 << iota
	FormatXRGB8888

	// FormatNone is the empty set.
	FormatNone Format = 0
)

// Bytes per pixel for each encoding
const (
	BPPRGB565   = 2
	BPPXRGB8888 = 4
)

// ErrUnknownFormat is returned when a format name cannot be parsed
var ErrUnknownFormat = errors.New("unknown pixel format")

// Valid reports whether f names exactly one supported encoding.
func (f Format) Valid() bool {
	return f == FormatRGB565 || f == FormatXRGB8888
}

// Has reports whether the set f contains the single format o.
func (f Format) Has(o Format) bool {
	return o.Valid() && f&o == o
}

// BytesPerPixel returns the element size of f, or 0 when f is not a single
// supported encoding.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGB565:
		return BPPRGB565
	case FormatXRGB8888:
		return BPPXRGB8888
	default:
		return 0
	}
}

// String returns the display name of the format or format set.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatRGB565:
		return "RGB565"
	case FormatXRGB8888:
		return "XRGB8888"
	}

	var names []string
	if f&FormatRGB565 != 0 {
		names = append(names, "RGB565")
	}
	if f&FormatXRGB8888 != 0 {
		names = append(names, "XRGB8888")
	}
	if rest := f &^ (FormatRGB565 | FormatXRGB8888); rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint(rest)))
	}
	return strings.Join(names, "|")
}

// ParseFormat parses a format name as used in config files and flags.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb565", "565", "16":
		return FormatRGB565, nil
	case "xrgb8888", "8888", "32", "rgb32":
		return FormatXRGB8888, nil
	default:
		return FormatNone, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

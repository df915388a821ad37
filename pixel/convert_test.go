package pixel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// TestConvertRGBAToXRGB8888_Basic verifies channel placement
func TestConvertRGBAToXRGB8888_Basic(t *testing.T) {
	src := []byte{0xFF, 0x80, 0x40, 0x00}
	dst := make([]uint32, 1)

	ConvertRGBAToXRGB8888(src, dst, 1)

	if dst[0] != 0xFFFF8040 {
		t.Errorf("dst[0] = %#08x, want 0xFFFF8040", dst[0])
	}
}

// TestConvertRGBAToXRGB8888_Alpha verifies alpha is replaced by an opaque pad
func TestConvertRGBAToXRGB8888_Alpha(t *testing.T) {
	testCases := []struct {
		name     string
		srcAlpha byte
	}{
		{"zero alpha", 0x00},
		{"half alpha", 0x80},
		{"full alpha", 0xFF},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := []byte{0x12, 0x34, 0x56, tc.srcAlpha}
			dst := make([]uint32, 1)

			ConvertRGBAToXRGB8888(src, dst, 1)

			if dst[0]>>24 != 0xFF {
				t.Errorf("X channel = %#02x, want 0xFF (input alpha was %#02x)", dst[0]>>24, tc.srcAlpha)
			}
		})
	}
}

// TestConvertRGBAToXRGB8888_Empty handles empty input
func TestConvertRGBAToXRGB8888_Empty(t *testing.T) {
	// Should not panic
	ConvertRGBAToXRGB8888([]byte{}, []uint32{}, 0)
}

// TestRGB565_RoundTrip checks that packing the expansion of every 16-bit
// value gives the value back.
func TestRGB565_RoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		r, g, b := UnpackRGB565(uint16(v))
		if got := PackRGB565(r, g, b); got != uint16(v) {
			t.Fatalf("PackRGB565(UnpackRGB565(%#04x)) = %#04x", v, got)
		}
	}
}

// TestUnpackRGB565_FullScale verifies channel maxima expand to 0xFF
func TestUnpackRGB565_FullScale(t *testing.T) {
	r, g, b := UnpackRGB565(0xFFFF)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Errorf("UnpackRGB565(0xFFFF) = (%#02x, %#02x, %#02x), want all 0xFF", r, g, b)
	}
	r, g, b = UnpackRGB565(0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("UnpackRGB565(0) = (%#02x, %#02x, %#02x), want all 0", r, g, b)
	}
}

// TestFromImage_XRGB8888 converts an NRGBA image and reads it back
func TestFromImage_XRGB8888(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.Set(10, 20, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
	img.Set(12, 21, color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})

	fr := FromImage(img, FormatXRGB8888)

	if fr.Width != 3 || fr.Height != 2 {
		t.Fatalf("frame size = %dx%d, want 3x2", fr.Width, fr.Height)
	}
	if got := fr.Pixel(0, 0); got != 0xFF112233 {
		t.Errorf("Pixel(0, 0) = %#08x, want 0xFF112233", got)
	}
	if got := fr.Pixel(2, 1); got != 0xFFAABBCC {
		t.Errorf("Pixel(2, 1) = %#08x, want 0xFFAABBCC", got)
	}

	back := fr.ToRGBA()
	if c := back.RGBAAt(2, 1); c != (color.RGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF}) {
		t.Errorf("ToRGBA pixel (2, 1) = %v", c)
	}
}

// TestFromImage_RGB565 checks quantisation to 5:6:5
func TestFromImage_RGB565(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 0xFF, G: 0x80, B: 0x08, A: 0xFF})

	fr := FromImage(img, FormatRGB565)

	want := uint32(0x1F<<11 | 0x20<<5 | 0x01)
	if got := fr.Pixel(0, 0); got != want {
		t.Errorf("Pixel(0, 0) = %#04x, want %#04x", got, want)
	}
}

// TestFrame_Validate covers stride and buffer checks
func TestFrame_Validate(t *testing.T) {
	tests := []struct {
		name string
		fr   Frame
		err  error
	}{
		{"ok", Frame{Format: FormatRGB565, Width: 4, Height: 2, Stride: 8, Pix: make([]byte, 16)}, nil},
		{"padded stride", Frame{Format: FormatXRGB8888, Width: 2, Height: 2, Stride: 16, Pix: make([]byte, 24)}, nil},
		{"format set", Frame{Format: FormatRGB565 | FormatXRGB8888, Width: 1, Height: 1, Stride: 4, Pix: make([]byte, 4)}, ErrInvalidFormat},
		{"short stride", Frame{Format: FormatXRGB8888, Width: 4, Height: 1, Stride: 8, Pix: make([]byte, 16)}, ErrBadGeometry},
		{"odd stride", Frame{Format: FormatXRGB8888, Width: 1, Height: 1, Stride: 6, Pix: make([]byte, 8)}, ErrBadGeometry},
		{"short buffer", Frame{Format: FormatRGB565, Width: 4, Height: 2, Stride: 8, Pix: make([]byte, 15)}, ErrBadGeometry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fr.Validate()
			if tc.err == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("Validate() = %v, want %v", err, tc.err)
			}
		})
	}
}

// TestFrame_SetPixel checks element placement honours the stride
func TestFrame_SetPixel(t *testing.T) {
	fr := &Frame{Format: FormatRGB565, Width: 2, Height: 2, Stride: 6, Pix: make([]byte, 12)}
	fr.SetPixel(1, 1, 0xBEEF)

	view := View16(fr.Pix)
	if view[4] != 0xBEEF {
		t.Errorf("element 4 = %#04x, want 0xBEEF", view[4])
	}
	if got := fr.Pixel(1, 1); got != 0xBEEF {
		t.Errorf("Pixel(1, 1) = %#04x, want 0xBEEF", got)
	}
}

// TestNewFrame_Aligned verifies 32-bit views over a new frame are usable
func TestNewFrame_Aligned(t *testing.T) {
	fr := NewFrame(FormatXRGB8888, 3, 3)
	if len(fr.Pix) != 36 || fr.Stride != 12 {
		t.Fatalf("len(Pix) = %d, Stride = %d, want 36, 12", len(fr.Pix), fr.Stride)
	}
	fr.Fill(0x00ABCDEF)
	for i, v := range View32(fr.Pix) {
		if v != 0x00ABCDEF {
			t.Fatalf("element %d = %#08x, want 0x00ABCDEF", i, v)
		}
	}
}

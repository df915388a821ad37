package pixel

import (
	"math/rand"
	"testing"
)

// TestBlend2_XRGB8888_Golden pins exact outputs derived from the masks
func TestBlend2_XRGB8888_Golden(t *testing.T) {
	ops := XRGB8888{}
	tests := []struct {
		a, b, want uint32
	}{
		{0x00000000, 0x02020202, 0x01010101},
		{0x00000000, 0x01010101, 0x00000000}, // odd halves round down
		{0x01010101, 0x01010101, 0x01010101}, // shared low bit restored
		{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF},
		{0xFFFFFFFF, 0x00000000, 0x7F7F7F7F},
		{0x00FF0000, 0x0000FF00, 0x007F7F00},
		{0x00102030, 0x00305070, 0x00203850},
	}

	for _, tc := range tests {
		if got := ops.Blend2(tc.a, tc.b); got != tc.want {
			t.Errorf("Blend2(%#08x, %#08x) = %#08x, want %#08x", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestBlend2_RGB565_Golden pins exact 16-bit outputs. Bit 11 (red LSB) is
// cleared by the 0xF7DE mask, so 0x0842 halves to 0x0021.
func TestBlend2_RGB565_Golden(t *testing.T) {
	ops := RGB565{}
	tests := []struct {
		a, b, want uint16
	}{
		{0x0000, 0x0842, 0x0021},
		{0x0000, 0x1084, 0x0842},
		{0x0821, 0x0821, 0x0821},
		{0xFFFF, 0xFFFF, 0xFFFF},
		{0xFFFF, 0x0000, 0x7BEF},
		{0xF800, 0x07E0, 0x7BE0},
		{0x001F, 0x0000, 0x000F},
	}

	for _, tc := range tests {
		if got := ops.Blend2(tc.a, tc.b); got != tc.want {
			t.Errorf("Blend2(%#04x, %#04x) = %#04x, want %#04x", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestBlend4_Golden pins exact 4-way averages for both formats
func TestBlend4_Golden(t *testing.T) {
	o32 := XRGB8888{}
	tests32 := []struct {
		a, b, c, d, want uint32
	}{
		{0x00000000, 0x00000000, 0x00000000, 0x04040404, 0x01010101},
		{0x03030303, 0x03030303, 0x03030303, 0x03030303, 0x03030303},
		{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF},
		{0x00FF0000, 0x00FF0000, 0x00FF0000, 0x00000000, 0x00BF0000},
		{0x01010101, 0x01010101, 0x01010101, 0x00000000, 0x00000000},
	}
	for _, tc := range tests32 {
		if got := o32.Blend4(tc.a, tc.b, tc.c, tc.d); got != tc.want {
			t.Errorf("XRGB8888 Blend4(%#08x, %#08x, %#08x, %#08x) = %#08x, want %#08x",
				tc.a, tc.b, tc.c, tc.d, got, tc.want)
		}
	}

	o16 := RGB565{}
	tests16 := []struct {
		a, b, c, d, want uint16
	}{
		{0x0000, 0x0000, 0x0000, 0x2104, 0x0841},
		{0x1863, 0x1863, 0x1863, 0x1863, 0x1863},
		{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{0xF800, 0xF800, 0xF800, 0x0000, 0xB800},
	}
	for _, tc := range tests16 {
		if got := o16.Blend4(tc.a, tc.b, tc.c, tc.d); got != tc.want {
			t.Errorf("RGB565 Blend4(%#04x, %#04x, %#04x, %#04x) = %#04x, want %#04x",
				tc.a, tc.b, tc.c, tc.d, got, tc.want)
		}
	}
}

// TestBlend2_Symmetric checks blend2(a, b) == blend2(b, a) on random inputs
func TestBlend2_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	o16, o32 := RGB565{}, XRGB8888{}

	for i := 0; i < 10000; i++ {
		a, b := rng.Uint32(), rng.Uint32()
		if o32.Blend2(a, b) != o32.Blend2(b, a) {
			t.Fatalf("XRGB8888 Blend2 not symmetric for %#08x, %#08x", a, b)
		}
		a16, b16 := uint16(a), uint16(b)
		if o16.Blend2(a16, b16) != o16.Blend2(b16, a16) {
			t.Fatalf("RGB565 Blend2 not symmetric for %#04x, %#04x", a16, b16)
		}
	}
}

// TestBlend_Identity checks that blending a colour with itself is exact
func TestBlend_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	o16, o32 := RGB565{}, XRGB8888{}

	for i := 0; i < 10000; i++ {
		c := rng.Uint32()
		if got := o32.Blend2(c, c); got != c {
			t.Fatalf("XRGB8888 Blend2(c, c) = %#08x, want %#08x", got, c)
		}
		if got := o32.Blend4(c, c, c, c); got != c {
			t.Fatalf("XRGB8888 Blend4(c, c, c, c) = %#08x, want %#08x", got, c)
		}
		c16 := uint16(c)
		if got := o16.Blend2(c16, c16); got != c16 {
			t.Fatalf("RGB565 Blend2(c, c) = %#04x, want %#04x", got, c16)
		}
		if got := o16.Blend4(c16, c16, c16, c16); got != c16 {
			t.Fatalf("RGB565 Blend4(c, c, c, c) = %#04x, want %#04x", got, c16)
		}
	}
}

// TestBlend_ChannelBounds checks every channel of the result lies between
// the channels of the inputs, so no carry leaked across fields.
func TestBlend_ChannelBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	o16 := RGB565{}

	fields := []struct{ shift, mask uint16 }{{11, 0x1F}, {5, 0x3F}, {0, 0x1F}}
	for i := 0; i < 10000; i++ {
		a, b := uint16(rng.Uint32()), uint16(rng.Uint32())
		got := o16.Blend2(a, b)
		for _, f := range fields {
			ca, cb, cg := a>>f.shift&f.mask, b>>f.shift&f.mask, got>>f.shift&f.mask
			lo, hi := min(ca, cb), max(ca, cb)
			if cg < lo || cg > hi {
				t.Fatalf("Blend2(%#04x, %#04x) = %#04x: channel at shift %d is %d, outside [%d, %d]",
					a, b, got, f.shift, cg, lo, hi)
			}
		}
	}
}

package pixel

// Pixel is a packed pixel element.
type Pixel interface {
	~uint16 | ~uint32
}

// Ops are the blend primitives for one encoding. Both operations work on the
// packed value directly; channels are never unpacked.
type Ops[P Pixel] interface {
	// Blend2 is the unweighted average of two pixels.
	Blend2(a, b P) P
	// Blend4 is the unweighted average of four pixels.
	Blend4(a, b, c, d P) P
}

// Per-channel masks. The *Mask values clear the low bit (or two bits) of every
// channel so the shifted halves cannot carry into a neighbour; the *Low values
// select exactly those bits for the rounding correction.
const (
	rgb565Mask2 uint16 = 0xF7DE
	rgb565Low2  uint16 = 0x0821
	rgb565Mask4 uint16 = 0xE79C
	rgb565Low4  uint16 = 0x1863

	xrgb8888Mask2 uint32 = 0xFEFEFEFE
	xrgb8888Low2  uint32 = 0x01010101
	xrgb8888Mask4 uint32 = 0xFCFCFCFC
	xrgb8888Low4  uint32 = 0x03030303
)

// RGB565 implements Ops for 16-bit 5:6:5 pixels.
type RGB565 struct{}

// Blend2 averages a and b, keeping the shared low bit of each channel.
func (RGB565) Blend2(a, b uint16) uint16 {
	return (a&rgb565Mask2)>>1 + (b&rgb565Mask2)>>1 + (a & b & rgb565Low2)
}

// Blend4 averages a, b, c and d. The low two bits of each channel are summed
// separately and their carry is added back.
func (RGB565) Blend4(a, b, c, d uint16) uint16 {
	hi := (a&rgb565Mask4)>>2 + (b&rgb565Mask4)>>2 + (c&rgb565Mask4)>>2 + (d&rgb565Mask4)>>2
	lo := ((a&rgb565Low4 + b&rgb565Low4 + c&rgb565Low4 + d&rgb565Low4) >> 2) & rgb565Low4
	return hi + lo
}

// XRGB8888 implements Ops for 32-bit pixels. The padding byte is blended like
// a colour channel.
type XRGB8888 struct{}

// Blend2 averages a and b, keeping the shared low bit of each channel.
func (XRGB8888) Blend2(a, b uint32) uint32 {
	return (a&xrgb8888Mask2)>>1 + (b&xrgb8888Mask2)>>1 + (a & b & xrgb8888Low2)
}

// Blend4 averages a, b, c and d.
func (XRGB8888) Blend4(a, b, c, d uint32) uint32 {
	hi := (a&xrgb8888Mask4)>>2 + (b&xrgb8888Mask4)>>2 + (c&xrgb8888Mask4)>>2 + (d&xrgb8888Mask4)>>2
	lo := ((a&xrgb8888Low4 + b&xrgb8888Low4 + c&xrgb8888Low4 + d&xrgb8888Low4) >> 2) & xrgb8888Low4
	return hi + lo
}

// Compile-time interface checks.
var (
	_ Ops[uint16] = RGB565{}
	_ Ops[uint32] = XRGB8888{}
)

package pixel

import (
	"errors"
	"fmt"
	"unsafe"
)

// Frame errors
var (
	ErrInvalidFormat = errors.New("frame format must be a single supported encoding")
	ErrBadGeometry   = errors.New("frame geometry does not fit its buffer")
)

// Frame is a caller-owned raster. Stride is in bytes and may exceed
// Width*BytesPerPixel.
type Frame struct {
	Format Format
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// NewFrame allocates a tightly packed frame. The backing store is allocated as
// 32-bit words so element views are always aligned.
func NewFrame(f Format, width, height int) *Frame {
	bpp := f.BytesPerPixel()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * bpp
	return &Frame{
		Format: f,
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    alignedBytes(stride * height),
	}
}

func alignedBytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	words := make([]uint32, (n+3)/4)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n)
}

// RequiredLen is the minimum buffer length for the frame's geometry: every row
// but the last spans a full stride, the last only its pixels.
func RequiredLen(width, height, stride, bpp int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (height-1)*stride + width*bpp
}

// Validate checks that the frame's format, stride and buffer agree.
func (fr *Frame) Validate() error {
	if !fr.Format.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, fr.Format)
	}
	bpp := fr.Format.BytesPerPixel()
	if fr.Width < 0 || fr.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadGeometry, fr.Width, fr.Height)
	}
	if fr.Stride%bpp != 0 || fr.Stride < fr.Width*bpp {
		return fmt.Errorf("%w: stride %d for width %d at %d bytes per pixel", ErrBadGeometry, fr.Stride, fr.Width, bpp)
	}
	if need := RequiredLen(fr.Width, fr.Height, fr.Stride, bpp); len(fr.Pix) < need {
		return fmt.Errorf("%w: buffer is %d bytes, need %d", ErrBadGeometry, len(fr.Pix), need)
	}
	return nil
}

// Pixel returns the packed value at (x, y) widened to 32 bits.
func (fr *Frame) Pixel(x, y int) uint32 {
	off := y*fr.Stride + x*fr.Format.BytesPerPixel()
	switch fr.Format {
	case FormatRGB565:
		return uint32(*(*uint16)(unsafe.Pointer(&fr.Pix[off])))
	case FormatXRGB8888:
		return *(*uint32)(unsafe.Pointer(&fr.Pix[off]))
	}
	return 0
}

// SetPixel stores v at (x, y), truncated to the frame's element size.
func (fr *Frame) SetPixel(x, y int, v uint32) {
	off := y*fr.Stride + x*fr.Format.BytesPerPixel()
	switch fr.Format {
	case FormatRGB565:
		*(*uint16)(unsafe.Pointer(&fr.Pix[off])) = uint16(v)
	case FormatXRGB8888:
		*(*uint32)(unsafe.Pointer(&fr.Pix[off])) = v
	}
}

// Fill sets every pixel of the frame to v.
func (fr *Frame) Fill(v uint32) {
	for y := 0; y < fr.Height; y++ {
		for x := 0; x < fr.Width; x++ {
			fr.SetPixel(x, y, v)
		}
	}
}

// View16 reinterprets b as native-endian 16-bit elements. A trailing odd byte
// is not part of the view.
func View16(b []byte) []uint16 {
	if len(b) < 2 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2)
}

// View32 reinterprets b as native-endian 32-bit elements.
func View32(b []byte) []uint32 {
	if len(b) < 4 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), len(b)/4)
}

package pixel

import (
	"image"

	"golang.org/x/image/draw"
)

// PackRGB565 packs 8-bit channels into an RGB565 value, dropping low bits.
func PackRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// UnpackRGB565 expands an RGB565 value to 8-bit channels. The high bits of
// each channel are replicated into the low bits so 0x1F maps to 0xFF.
func UnpackRGB565(p uint16) (r, g, b uint8) {
	r5 := uint8(p >> 11 & 0x1F)
	g6 := uint8(p >> 5 & 0x3F)
	b5 := uint8(p & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// PackXRGB8888 packs 8-bit channels into an XRGB8888 value with an opaque
// padding byte.
func PackXRGB8888(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ConvertRGBAToXRGB8888 converts n RGBA pixels (image.RGBA byte order) to
// XRGB8888. Alpha is discarded and the padding byte set to 0xFF.
func ConvertRGBAToXRGB8888(src []byte, dst []uint32, n int) {
	for i := 0; i < n; i++ {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = PackXRGB8888(s[0], s[1], s[2])
	}
}

// ConvertXRGB8888ToRGBA converts n XRGB8888 pixels to opaque RGBA bytes.
func ConvertXRGB8888ToRGBA(src []uint32, dst []byte, n int) {
	for i := 0; i < n; i++ {
		p := src[i]
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0] = uint8(p >> 16)
		d[1] = uint8(p >> 8)
		d[2] = uint8(p)
		d[3] = 0xFF
	}
}

// ConvertRGBAToRGB565 converts n RGBA pixels to RGB565.
func ConvertRGBAToRGB565(src []byte, dst []uint16, n int) {
	for i := 0; i < n; i++ {
		s := src[i*4 : i*4+4 : i*4+4]
		dst[i] = PackRGB565(s[0], s[1], s[2])
	}
}

// ConvertRGB565ToRGBA converts n RGB565 pixels to opaque RGBA bytes.
func ConvertRGB565ToRGBA(src []uint16, dst []byte, n int) {
	for i := 0; i < n; i++ {
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0], d[1], d[2] = UnpackRGB565(src[i])
		d[3] = 0xFF
	}
}

// FromImage converts img into a new frame of format f. Images other than
// *image.RGBA are first drawn onto an RGBA canvas.
func FromImage(img image.Image, f Format) *Frame {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	}

	fr := NewFrame(f, b.Dx(), b.Dy())
	// Geometry matches by construction.
	_ = fr.CopyFromRGBA(rgba.Pix[rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y):], rgba.Stride)
	return fr
}

// CopyFromRGBA fills the frame from RGBA rows with the given byte stride.
func (fr *Frame) CopyFromRGBA(src []byte, srcStride int) error {
	if err := fr.Validate(); err != nil {
		return err
	}
	if len(src) < RequiredLen(fr.Width, fr.Height, srcStride, 4) {
		return ErrBadGeometry
	}
	for y := 0; y < fr.Height; y++ {
		row := src[y*srcStride:]
		dst := fr.Pix[y*fr.Stride:]
		switch fr.Format {
		case FormatRGB565:
			ConvertRGBAToRGB565(row, View16(dst), fr.Width)
		case FormatXRGB8888:
			ConvertRGBAToXRGB8888(row, View32(dst), fr.Width)
		}
	}
	return nil
}

// CopyToRGBA writes the frame as opaque RGBA rows with the given byte stride.
func (fr *Frame) CopyToRGBA(dst []byte, dstStride int) error {
	if err := fr.Validate(); err != nil {
		return err
	}
	if len(dst) < RequiredLen(fr.Width, fr.Height, dstStride, 4) {
		return ErrBadGeometry
	}
	for y := 0; y < fr.Height; y++ {
		row := fr.Pix[y*fr.Stride:]
		out := dst[y*dstStride:]
		switch fr.Format {
		case FormatRGB565:
			ConvertRGB565ToRGBA(View16(row), out, fr.Width)
		case FormatXRGB8888:
			ConvertXRGB8888ToRGBA(View32(row), out, fr.Width)
		}
	}
	return nil
}

// ToRGBA returns the frame as a new *image.RGBA.
func (fr *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fr.Width, fr.Height))
	_ = fr.CopyToRGBA(img.Pix, img.Stride)
	return img
}

package frameloader

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an encoded image. The returned string is the format name
// reported by the decoder ("png", "bmp", ...).
func Decode(data []byte) (image.Image, string, error) {
	img, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return img, kind, nil
}

// LoadImage loads and decodes the image at path, looking inside archives.
// The returned string is the image's file name.
func LoadImage(path string) (image.Image, string, error) {
	data, name, err := LoadFrame(path)
	if err != nil {
		return nil, "", err
	}
	img, _, err := Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, name, nil
}

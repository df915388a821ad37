package scaler

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// letterbox centres img on a black canvas of the given size. Images that do
// not fit are scaled down with their aspect ratio preserved; smaller images
// are copied 1:1 so pixel art stays sharp.
func letterbox(img image.Image, width, height int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Rect, image.NewUniform(color.Black), image.Point{}, draw.Src)

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return canvas
	}

	if w <= width && h <= height {
		x := (width - w) / 2
		y := (height - h) / 2
		draw.Draw(canvas, image.Rect(x, y, x+w, y+h), img, b.Min, draw.Over)
		return canvas
	}

	// Fit the longer side, rounding the other one down.
	fw, fh := width, h*width/w
	if fh > height {
		fw, fh = w*height/h, height
	}
	fw = max(fw, 1)
	fh = max(fh, 1)
	x := (width - fw) / 2
	y := (height - fh) / 2
	draw.ApproxBiLinear.Scale(canvas, image.Rect(x, y, x+fw, y+fh), img, b, draw.Over, nil)
	return canvas
}

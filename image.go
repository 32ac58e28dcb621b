package main

import (
	"bytes"
	"image"
	"image/png"
)

// newCanvas returns a fully transparent RGBA image.
func newCanvas(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitRect centers a w x h box inside a width x height target, scaled to fit
// while keeping its aspect ratio.
func fitRect(w, h float64, width, height int) (x, y, outW, outH float64) {
	scale := float64(width) / w
	if s := float64(height) / h; s < scale {
		scale = s
	}
	outW = w * scale
	outH = h * scale
	x = (float64(width) - outW) / 2
	y = (float64(height) - outH) / 2
	return x, y, outW, outH
}

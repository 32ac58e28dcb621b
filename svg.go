//go:build !nosvg

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize renders the SVG at filePath into a width x height PNG.
func (svgRasterizer) Rasterize(filePath string, width, height int) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	svgIcon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	viewBoxW := svgIcon.ViewBox.W
	viewBoxH := svgIcon.ViewBox.H
	if viewBoxW <= 0 || viewBoxH <= 0 {
		return nil, fmt.Errorf("%s: viewBox has no usable size (%gx%g)", filePath, viewBoxW, viewBoxH)
	}

	x, y, w, h := fitRect(viewBoxW, viewBoxH, width, height)
	svgIcon.SetTarget(x, y, w, h)

	img := newCanvas(width, height)
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	svgIcon.Draw(raster, 1.0)
	return encodePNG(img)
}

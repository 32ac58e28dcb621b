//go:build nosvg

package main

func (svgRasterizer) Rasterize(filePath string, width, height int) ([]byte, error) {
	return nil, ErrMissingDependency
}

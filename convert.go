package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const (
	svgPath = "assets/icon/secure_bdrs_icon.svg"
	pngPath = "assets/icon/secure_bdrs_icon.png"

	iconWidth  = 1024
	iconHeight = 1024
)

// Rasterizer turns a vector image on disk into encoded PNG bytes.
type Rasterizer interface {
	Rasterize(filePath string, width, height int) ([]byte, error)
}

type svgRasterizer struct{}

// convert renders input to output at iconWidth x iconHeight. Every error
// returned is a *ConversionError.
func convert(r Rasterizer, input, output string) error {
	if err := checkInput(input); err != nil {
		return err
	}
	if r == nil {
		return &ConversionError{Kind: MissingDependency, Err: ErrMissingDependency}
	}

	pngData, err := r.Rasterize(input, iconWidth, iconHeight)
	if err != nil {
		return classify(err)
	}

	if err := writeFile(output, pngData); err != nil {
		return classify(err)
	}
	return nil
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ConversionError{Kind: MissingInputFile, Path: path, Err: err}
	}
	if err != nil {
		return classify(err)
	}
	if info.IsDir() {
		return &ConversionError{Kind: MissingInputFile, Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}
	return nil
}

// writeFile truncates path and writes data. The file is closed on every path
// and a failed close is reported.
func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).Add(color.Bold)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

func main() {
	os.Exit(run(svgRasterizer{}, os.Stdout))
}

// run converts the launcher icon, reports the outcome on out and returns the
// process exit status.
func run(r Rasterizer, out io.Writer) int {
	err := convert(r, svgPath, pngPath)
	if err == nil {
		green.Fprintf(out, "✓ Successfully converted %s to %s\n", svgPath, pngPath)
		fmt.Fprintf(out, "  Size: %dx%d pixels\n", iconWidth, iconHeight)
		fmt.Fprintln(out, `  Next step: run "flutter pub run flutter_launcher_icons"`)
		return 0
	}

	var ce *ConversionError
	if !errors.As(err, &ce) {
		ce = classify(err)
	}

	switch ce.Kind {
	case MissingInputFile:
		red.Fprintf(out, "Error: %s\n", ce)
		return 1
	case MissingDependency:
		red.Fprintf(out, "Error: %s.\n", ce)
		fmt.Fprintln(out, "Rebuild without the nosvg tag: go build .")
		yellow.Fprintln(out, "\nAlternatively, you can:")
		fmt.Fprintf(out, "1. Use an online SVG to PNG converter\n")
		fmt.Fprintf(out, "2. Open the SVG in a browser and export as PNG (%dx%d)\n", iconWidth, iconHeight)
		fmt.Fprintf(out, "3. Use Inkscape or another vector graphics tool\n")
	default:
		red.Fprintf(out, "Error: %s\n", ce)
		yellow.Fprintln(out, "\nAlternative: Use an online converter or graphics tool")
	}
	return 0
}

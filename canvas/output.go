package canvas

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format selects the output format of Render.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// Render creates a width x height canvas of the given format, lets paint
// draw onto it and writes the result to w.
func Render(w io.Writer, format Format, width, height float64, paint func(Context)) error {
	wl, hl := vg.Length(width), vg.Length(height)
	switch format {
	case PNG, "":
		img := vgimg.New(wl, hl)
		paint(NewVG(draw.New(img)))
		_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
		return err
	case SVG:
		img := vgsvg.New(wl, hl)
		paint(NewVG(draw.New(img)))
		_, err := img.WriteTo(w)
		return err
	default:
		return fmt.Errorf("canvas: unknown output format %q", format)
	}
}

// WriteFile is like Render but writes to the named file.
func WriteFile(name string, format Format, width, height float64, paint func(Context)) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Render(f, format, width, height, paint); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Package canvas defines the 2D drawing surface the axis renders onto.
//
// The Context interface follows the immediate mode model of an HTML
// canvas: a current transformation, a current font and style, a path that
// is built with MoveTo/LineTo and stroked, and a state stack manipulated by
// Save and Restore. Coordinates grow to the right and downwards.
//
// Two implementations are provided: VG draws onto a gonum.org/v1/plot
// vg.Canvas (and thus to PNG, SVG, PDF, ...) and Recorder which records
// all operations and is used in tests.
package canvas

import (
	"fmt"
	"image/color"
	"strings"
)

// Context is a stateful 2D drawing surface.
type Context interface {
	// Save pushes the current state (transformation, font, colors,
	// line style and text alignment) onto the state stack.
	Save()
	// Restore pops the state stack. Restore on an empty stack is a no-op.
	Restore()

	Translate(x, y float64)
	// Rotate rotates the current transformation clockwise by angle
	// radians (y grows downwards).
	Rotate(angle float64)

	SetFont(f Font)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetLineDash(dash []float64, offset float64)
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke strokes the current path with the current stroke style.
	Stroke()

	// FillText draws text anchored at (x,y) according to the current
	// alignment, baseline, font and fill color.
	FillText(text string, x, y float64)
	// FillRect fills the axis aligned rectangle with the current fill color.
	FillRect(x, y, w, h float64)

	// MeasureText returns the advance width of text rendered in font f.
	MeasureText(f Font, text string) float64
}

// TextAlign is the horizontal alignment of text relative to its anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	return []string{"left", "center", "right"}[int(a)]
}

// TextBaseline is the vertical alignment of text relative to its anchor.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

func (b TextBaseline) String() string {
	return []string{"alphabetic", "top", "middle", "bottom"}[int(b)]
}

// Font describes a font by size (in canvas units), style and family.
type Font struct {
	Size   float64
	Style  string // "normal", "bold", "italic" or "bold italic"
	Family string
}

// String formats f like a CSS font shorthand, e.g. "bold 12px Helvetica".
func (f Font) String() string {
	return fmt.Sprintf("%s %gpx %s", f.Style, f.Size, f.Family)
}

// Bold reports whether f's style asks for a bold face.
func (f Font) Bold() bool {
	return strings.Contains(strings.ToLower(f.Style), "bold")
}

// Italic reports whether f's style asks for an italic or oblique face.
func (f Font) Italic() bool {
	s := strings.ToLower(f.Style)
	return strings.Contains(s, "italic") || strings.Contains(s, "oblique")
}

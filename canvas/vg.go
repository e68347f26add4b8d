package canvas

import (
	"image/color"
	"log/slog"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// VG implements Context on top of a gonum.org/v1/plot draw.Canvas.
//
// The gonum canvas has its origin in the lower left corner with y growing
// upwards. VG keeps its own transformation (y growing downwards, origin in
// the upper left corner of the draw.Canvas rectangle) and converts every
// point just before handing it to the underlying vg.Canvas.
type VG struct {
	dc draw.Canvas

	state state
	stack []state

	path  vg.Path
	fonts map[string]vg.Font
}

type state struct {
	m        affine
	font     Font
	fill     color.Color
	line     draw.LineStyle
	align    TextAlign
	baseline TextBaseline
}

// NewVG returns a Context drawing onto dc.
func NewVG(dc draw.Canvas) *VG {
	return &VG{
		dc: dc,
		state: state{
			m:    identity,
			font: Font{Size: 12, Style: "normal", Family: "Helvetica"},
			fill: color.Black,
			line: draw.LineStyle{Color: color.Black, Width: 1},
		},
		fonts: make(map[string]vg.Font),
	}
}

func (c *VG) Save() {
	c.stack = append(c.stack, c.state)
	c.dc.Push()
}

func (c *VG) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.Pop()
}

func (c *VG) Translate(x, y float64)         { c.state.m = c.state.m.translate(x, y) }
func (c *VG) Rotate(angle float64)           { c.state.m = c.state.m.rotate(angle) }
func (c *VG) SetFont(f Font)                 { c.state.font = f }
func (c *VG) SetFillColor(col color.Color)   { c.state.fill = col }
func (c *VG) SetStrokeColor(col color.Color) { c.state.line.Color = col }
func (c *VG) SetLineWidth(w float64)         { c.state.line.Width = vg.Length(w) }
func (c *VG) SetTextAlign(a TextAlign)       { c.state.align = a }
func (c *VG) SetTextBaseline(b TextBaseline) { c.state.baseline = b }
func (c *VG) BeginPath()                     { c.path = c.path[:0] }
func (c *VG) MoveTo(x, y float64)            { c.path.Move(c.device(x, y)) }
func (c *VG) LineTo(x, y float64)            { c.path.Line(c.device(x, y)) }

func (c *VG) SetLineDash(dash []float64, offset float64) {
	dashes := make([]vg.Length, len(dash))
	for i, d := range dash {
		dashes[i] = vg.Length(d)
	}
	c.state.line.Dashes = dashes
	c.state.line.DashOffs = vg.Length(offset)
}

// device converts the user space point (x,y) to a gonum canvas point.
func (c *VG) device(x, y float64) vg.Point {
	dx, dy := c.state.m.apply(x, y)
	return vg.Point{
		X: c.dc.Min.X + vg.Length(dx),
		Y: c.dc.Max.Y - vg.Length(dy),
	}
}

func (c *VG) Stroke() {
	if len(c.path) == 0 || c.state.line.Color == nil || c.state.line.Width <= 0 {
		return
	}
	c.dc.SetLineStyle(c.state.line)
	c.dc.Stroke(c.path)
}

func (c *VG) FillRect(x, y, w, h float64) {
	if c.state.fill == nil {
		return
	}
	var p vg.Path
	p.Move(c.device(x, y))
	p.Line(c.device(x+w, y))
	p.Line(c.device(x+w, y+h))
	p.Line(c.device(x, y+h))
	p.Close()
	c.dc.SetColor(c.state.fill)
	c.dc.Fill(p)
}

func (c *VG) FillText(text string, x, y float64) {
	if text == "" || c.state.fill == nil {
		return
	}
	f := c.font(c.state.font)
	ext := f.Extents()

	var dx, dy vg.Length
	switch c.state.align {
	case AlignCenter:
		dx = -f.Width(text) / 2
	case AlignRight:
		dx = -f.Width(text)
	}
	// dy is the offset of the baseline below the anchor. Descent is
	// negative.
	switch c.state.baseline {
	case BaselineTop:
		dy = ext.Ascent
	case BaselineMiddle:
		dy = (ext.Ascent + ext.Descent) / 2
	case BaselineBottom:
		dy = ext.Descent
	}

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Translate(c.device(x, y))
	c.dc.Rotate(-c.state.m.angle())
	c.dc.SetColor(c.state.fill)
	c.dc.FillString(f, vg.Point{X: dx, Y: -dy}, text)
}

func (c *VG) MeasureText(f Font, text string) float64 {
	vf := c.font(f)
	return float64(vf.Width(text))
}

// font returns the vg font best matching f. Fonts are cached by
// their descriptor.
func (c *VG) font(f Font) vg.Font {
	key := f.String()
	if vf, ok := c.fonts[key]; ok {
		return vf
	}
	name := vgFontName(f)
	vf, err := vg.MakeFont(name, vg.Length(f.Size))
	if err != nil {
		slog.Debug("canvas: font not available, using Helvetica", "font", name, "err", err)
		vf, err = vg.MakeFont("Helvetica", vg.Length(f.Size))
		if err != nil {
			panic(err)
		}
	}
	c.fonts[key] = vf
	return vf
}

// vgFontName maps a CSS like font family list and style to one of the
// standard fonts known to package vg.
func vgFontName(f Font) string {
	base := "Helvetica"
families:
	for _, fam := range strings.Split(f.Family, ",") {
		fam = strings.ToLower(strings.Trim(strings.TrimSpace(fam), `'"`))
		switch {
		case strings.HasPrefix(fam, "times"), fam == "serif":
			base = "Times"
		case strings.HasPrefix(fam, "courier"), fam == "monospace":
			base = "Courier"
		case strings.HasPrefix(fam, "helvetica"), fam == "arial", fam == "sans-serif":
			base = "Helvetica"
		default:
			continue
		}
		break families
	}

	bold, italic := f.Bold(), f.Italic()
	switch {
	case base == "Times" && bold && italic:
		return "Times-BoldItalic"
	case base == "Times" && bold:
		return "Times-Bold"
	case base == "Times" && italic:
		return "Times-Italic"
	case base == "Times":
		return "Times-Roman"
	case bold && italic:
		return base + "-BoldOblique"
	case bold:
		return base + "-Bold"
	case italic:
		return base + "-Oblique"
	}
	return base
}

package datatable

import (
	"math"

	"github.com/vdobler/datatable/canvas"
	"github.com/vdobler/datatable/data"
)

// ----------------------------------------------------------------------------
// Panel

// A Geom draws the visible datasets of a chart onto its panel.
type Geom interface {
	Draw(p *Panel)
}

// A ValueRanger is a Geom whose drawn values differ from the data values,
// e.g. stacked bars. The value scale covers the returned range too.
type ValueRanger interface {
	ValueRange(d *data.Chart) Interval
}

// A Panel is the plot area of a chart: the region between the axis and
// the chart padding in which the geoms draw.
type Panel struct {
	Area   Rect
	Scale  Scale
	Values *ValueScale
	Data   *data.Chart

	ctx canvas.Context
}

// Context returns the drawing surface of p.
func (p *Panel) Context() canvas.Context { return p.ctx }

// Horizontal reports whether the categories run along the x axis.
func (p *Panel) Horizontal() bool { return p.Scale.IsHorizontal() }

// Series returns the datasets to draw.
func (p *Panel) Series() []data.Dataset { return p.Data.VisibleDatasets() }

// IndexRange returns the range of category indices shown on the axis.
func (p *Panel) IndexRange() (min, max int) { return p.Scale.IndexRange() }

// MapValue maps the data value v to a canvas coordinate perpendicular to
// the category axis. It returns NaN if v cannot be mapped.
func (p *Panel) MapValue(v float64) float64 {
	if p.Horizontal() {
		return p.Values.Map(v, Interval{p.Area.Bottom, p.Area.Top})
	}
	return p.Values.Map(v, Interval{p.Area.Left, p.Area.Right})
}

// MapXY maps the value v of the category index to a canvas point. ok is
// false if index lies outside the axis range or v cannot be mapped.
func (p *Panel) MapXY(index int, v float64) (x, y float64, ok bool) {
	min, max := p.Scale.IndexRange()
	if index < min || index > max {
		return 0, 0, false
	}
	c, u := p.Scale.PixelForValue(index), p.MapValue(v)
	if math.IsNaN(u) {
		return 0, 0, false
	}
	if p.Horizontal() {
		return c, u, true
	}
	return u, c, true
}

// Band returns the distance between two neighbouring categories.
func (p *Panel) Band() float64 {
	min, max := p.Scale.IndexRange()
	if max > min {
		return math.Abs(p.Scale.PixelForTick(1) - p.Scale.PixelForTick(0))
	}
	if p.Horizontal() {
		return p.Area.Width()
	}
	return p.Area.Height()
}

// Baseline returns the canvas coordinate bars start from: the value 0 if
// it is in range, else the lower edge of the value range.
func (p *Panel) Baseline() float64 {
	v := 0.0
	if !p.Values.InRange(v) {
		v = p.Values.Min
	}
	return p.MapValue(v)
}

// drawGrid draws a line across the panel at each major value tick.
func (p *Panel) drawGrid(style GridStyle) {
	if style.Color == nil || style.Width <= 0 {
		return
	}
	ctx := p.ctx
	scoped(ctx, func() {
		ctx.SetStrokeColor(style.Color)
		ctx.SetLineWidth(style.Width)
		ctx.BeginPath()
		for _, t := range p.Values.Ticks() {
			u := p.MapValue(t.Value)
			if math.IsNaN(u) {
				continue
			}
			if p.Horizontal() {
				ctx.MoveTo(p.Area.Left, u)
				ctx.LineTo(p.Area.Right, u)
			} else {
				ctx.MoveTo(u, p.Area.Top)
				ctx.LineTo(u, p.Area.Bottom)
			}
		}
		ctx.Stroke()
	})
}

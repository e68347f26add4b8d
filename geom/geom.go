// Package geom provides geometric objects to display the datasets of a
// chart in its panel.
//
// Each geom draws all visible datasets: Line connects the values of a
// dataset, Bar draws one rectangle per dataset and category. Datasets are
// drawn in the color given by their BorderColor.
package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/datatable"
	"github.com/vdobler/datatable/canvas"
	"github.com/vdobler/datatable/data"
)

// ----------------------------------------------------------------------------
// Line

// Line connects the values of each dataset in category order by straight
// line segments. Missing values (NaN) interrupt the line.
type Line struct {
	Width  float64   // line width, 0 means 2
	Dashes []float64 // dash pattern, nil draws solid lines

	// Points is the half size of the square marker drawn at each value.
	// Zero draws no markers.
	Points float64
}

// Draw implements datatable.Geom.Draw.
func (l Line) Draw(p *datatable.Panel) {
	width := l.Width
	if width == 0 {
		width = 2
	}
	min, max := p.IndexRange()
	for _, ds := range p.Series() {
		col := seriesColor(ds)
		var pts [][2]float64 // current run of connected points
		var runs [][][2]float64
		for k := min; k <= max; k++ {
			x, y, ok := p.MapXY(k, value(ds, k))
			if !ok {
				if len(pts) > 0 {
					runs = append(runs, pts)
					pts = nil
				}
				continue
			}
			pts = append(pts, [2]float64{x, y})
		}
		if len(pts) > 0 {
			runs = append(runs, pts)
		}
		l.drawRuns(p.Context(), runs, col, width)
	}
}

func (l Line) drawRuns(ctx canvas.Context, runs [][][2]float64, col color.Color, width float64) {
	ctx.Save()
	defer ctx.Restore()

	ctx.SetStrokeColor(col)
	ctx.SetLineWidth(width)
	ctx.SetLineDash(l.Dashes, 0)
	ctx.BeginPath()
	for _, run := range runs {
		ctx.MoveTo(run[0][0], run[0][1])
		for _, pt := range run[1:] {
			ctx.LineTo(pt[0], pt[1])
		}
	}
	ctx.Stroke()

	if l.Points <= 0 {
		return
	}
	ctx.SetFillColor(col)
	for _, run := range runs {
		for _, pt := range run {
			ctx.FillRect(pt[0]-l.Points, pt[1]-l.Points, 2*l.Points, 2*l.Points)
		}
	}
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws rectangles standing/hanging from the baseline of the panel,
// one per dataset and category.
type Bar struct {
	Position string  // "dodge" (default) or "stack"
	GGap     float64 // Gap between groups as fraction of the band, 0 means 0.2.
	BGap     float64 // Gap inside a group as fraction of the band.

	// Alpha is the opacity of the fill, 0 means 0.5. The border is
	// always opaque.
	Alpha float64
	// Border is the width of the border, 0 draws none.
	Border float64
}

// Draw implements datatable.Geom.Draw.
func (b Bar) Draw(p *datatable.Panel) {
	series := p.Series()
	if len(series) == 0 {
		return
	}
	groups := NewBarGroups(b.Position, b.GGap, b.BGap, len(series))
	band := p.Band()
	base := p.Baseline()
	min, max := p.IndexRange()

	for k := min; k <= max; k++ {
		var pos, neg float64 // stacked sums
		for i, ds := range series {
			v := value(ds, k)
			if math.IsNaN(v) {
				continue
			}
			// Both ends of the bar in value space.
			from, to := 0.0, v
			if groups.Position == "stack" {
				if v < 0 {
					from, to = neg, neg+v
					neg += v
				} else {
					from, to = pos, pos+v
					pos += v
				}
			}
			x, y, ok := p.MapXY(k, to)
			if !ok {
				continue
			}
			c := x
			if !p.Horizontal() {
				c = y
			}
			u0, u1 := base, p.MapValue(to)
			if groups.Position == "stack" {
				u0 = p.MapValue(from)
			}
			center, halfwidth := groups.Width(c, band, i)
			r := bandRect(p.Horizontal(), center, halfwidth, u0, u1)
			b.drawRect(p.Context(), r, seriesColor(ds))
		}
	}
}

// ValueRange implements datatable.ValueRanger: stacked bars cover the
// range of the sums of the positive and negative values per category.
func (b Bar) ValueRange(d *data.Chart) datatable.Interval {
	r := datatable.Interval{Min: 0, Max: 0}
	if b.Position != "stack" {
		return r
	}
	series := d.VisibleDatasets()
	n := 0
	for _, ds := range series {
		if len(ds.Data) > n {
			n = len(ds.Data)
		}
	}
	for k := 0; k < n; k++ {
		var pos, neg float64
		for _, ds := range series {
			v := value(ds, k)
			switch {
			case v > 0:
				pos += v
			case v < 0:
				neg += v
			}
		}
		r.Min = math.Min(r.Min, neg)
		r.Max = math.Max(r.Max, pos)
	}
	return r
}

func (b Bar) drawRect(ctx canvas.Context, r datatable.Rect, col color.Color) {
	alpha := b.Alpha
	if alpha == 0 {
		alpha = 0.5
	}
	ctx.Save()
	defer ctx.Restore()

	ctx.SetFillColor(withAlpha(col, alpha))
	ctx.FillRect(r.Left, r.Top, r.Width(), r.Height())
	if b.Border <= 0 {
		return
	}
	ctx.SetStrokeColor(col)
	ctx.SetLineWidth(b.Border)
	ctx.BeginPath()
	ctx.MoveTo(r.Left, r.Top)
	ctx.LineTo(r.Right, r.Top)
	ctx.LineTo(r.Right, r.Bottom)
	ctx.LineTo(r.Left, r.Bottom)
	ctx.LineTo(r.Left, r.Top)
	ctx.Stroke()
}

// bandRect returns the rectangle of a bar centered at center across the
// category axis spanning u0 to u1 along the value axis.
func bandRect(horizontal bool, center, halfwidth, u0, u1 float64) datatable.Rect {
	if horizontal {
		return CanonicRect(datatable.Rect{
			Left: center - halfwidth, Right: center + halfwidth,
			Top: u1, Bottom: u0,
		})
	}
	return CanonicRect(datatable.Rect{
		Left: u0, Right: u1,
		Top: center - halfwidth, Bottom: center + halfwidth,
	})
}

// ----------------------------------------------------------------------------
// BarGroups helps determining bar sizes for Bar

// BarGroups positions the bars of one category inside its band.
type BarGroups struct {
	Position string  // "dodge" or "stack"
	Ggap     float64 // between groups
	Dgap     float64 // between bars inside a group if dodged
	N        int     // bars per group
}

// NewBarGroups creates a BarGroups for n bars per category with sensible
// gaps between bars.
func NewBarGroups(position string, groupGap, barGap float64, n int) BarGroups {
	if position == "" {
		position = "dodge"
	}
	if groupGap == 0 {
		groupGap = 0.2
	}
	return BarGroups{
		Position: position,
		Ggap:     groupGap,
		Dgap:     barGap,
		N:        n,
	}
}

// Width returns the center and the halfwidth of bar i of the category at
// x with the given band width.
func (bg BarGroups) Width(x, band float64, i int) (center float64, halfwidth float64) {
	nonGapWidth := band * (1 - bg.Ggap)

	if bg.Position != "dodge" || bg.N <= 1 {
		return x, nonGapWidth / 2
	}

	halfwidth = nonGapWidth / float64(2*bg.N)
	center = x + float64(2*i-bg.N+1)*halfwidth
	halfwidth -= band * bg.Dgap
	if halfwidth < 0 {
		halfwidth = 0
	}
	return center, halfwidth
}

package datatable

import (
	"image/color"

	"github.com/vdobler/datatable/canvas"
)

// tableLayout maps rows and columns of the data table to pixels.
//
// Row 0 is the top edge of the header row which holds the tick labels,
// row r+1 the top edge of the r'th series. Column -1 is the left edge of
// the row label gutter, column c the grid line left of the c'th tick.
type tableLayout struct {
	a       *Axis
	rows    int // visible series
	columns int // ticks

	top, rowHeight, rotationExtra float64
	alias                         float64
	offsetGridLines               bool
}

func (a *Axis) tableLayout() tableLayout {
	gl := a.Options.GridLines
	font := a.ParseFont(a.Options.Ticks.MinorFont())
	t := tableLayout{
		a:               a,
		rows:            len(a.VisibleSeries()),
		columns:         len(a.ticks),
		top:             a.Top + a.tickMarkLength(),
		rowHeight:       font.Size * 1.5,
		rotationExtra:   a.maxLabelTextHeight(),
		alias:           aliasPixel(gl.ZeroLineWidth),
		offsetGridLines: gl.OffsetGridLines && len(a.ticks) > 1,
	}
	if a.Options.Position == Bottom {
		t.top += a.Options.Ticks.Padding
	}
	return t
}

// Row returns the y coordinate of the top edge of row r.
func (t tableLayout) Row(r int) float64 {
	y := t.top + t.rowHeight*float64(r)
	if r > 0 {
		y += t.rotationExtra
	}
	return y
}

// Column returns the x coordinate of the left edge of column c.
func (t tableLayout) Column(c int) float64 {
	if c == -1 {
		return t.a.Left
	}
	return t.a.LineValue(c, t.offsetGridLines) + t.alias
}

// Cell returns the center of the cell in column c of series row r. Column
// 0 is the row label, column j+1 the value of the j'th tick.
func (t tableLayout) Cell(c, r int) (x, y float64) {
	x = (t.Column(c-1) + t.Column(c)) / 2
	y = (t.Row(r+1) + t.Row(r+2)) / 2
	return x, y
}

// drawDataTable draws the row labels, the values and the grid of the data
// table.
func (a *Axis) drawDataTable() {
	dt := a.Options.DataTable
	if !dt.Display || !a.IsHorizontal() {
		return
	}
	series := a.VisibleSeries()
	if len(series) == 0 {
		return
	}

	ctx := a.ctx
	t := a.tableLayout()
	fontOpts := a.tableFont()
	textColor := a.Global.ParseFontColor(a.Options.Ticks.FontOptions)

	scoped(ctx, func() {
		ctx.SetFont(a.ParseFont(fontOpts))
		ctx.SetTextBaseline(canvas.BaselineMiddle)
		ctx.SetTextAlign(canvas.AlignCenter)
		for r, ds := range series {
			ctx.SetFillColor(ParseColor(ds.BorderColor, textColor))
			x, y := t.Cell(0, r)
			ctx.FillText(ds.Label, x, y)

			ctx.SetFillColor(textColor)
			for j := 0; j < t.columns; j++ {
				k := a.MinIndex + j
				if k < 0 || k >= len(ds.Data) {
					continue
				}
				x, y := t.Cell(j+1, r)
				ctx.FillText(a.formatValue(ds.Data[k]), x, y)
			}
		}
	})

	if dt.LineWidth == 0 {
		return
	}
	scoped(ctx, func() {
		ctx.SetLineWidth(dt.LineWidth)
		ctx.SetStrokeColor(ParseColor(dt.Color, color.Black))
		ctx.BeginPath()

		// Horizontal lines, the top one spans the categories only.
		right := t.Column(t.columns)
		for i := 0; i <= t.rows+1; i++ {
			left := t.Column(-1)
			if i == 0 {
				left = t.Column(0)
			}
			y := t.Row(i)
			ctx.MoveTo(left, y)
			ctx.LineTo(right, y)
		}

		// Vertical lines, the gutter's left edge starts below the header.
		bottom := t.Row(t.rows + 1)
		ctx.MoveTo(t.Column(-1), t.Row(1))
		ctx.LineTo(t.Column(-1), bottom)
		for c := 0; c <= t.columns; c++ {
			x := t.Column(c)
			ctx.MoveTo(x, t.Row(0))
			ctx.LineTo(x, bottom)
		}
		ctx.Stroke()
	})
}

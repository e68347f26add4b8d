package datatable

import (
	"image/color"
	"log/slog"

	"github.com/vdobler/datatable/canvas"
	"github.com/vdobler/datatable/data"
)

// ----------------------------------------------------------------------------
// Chart

// GridStyle is the style of the value grid lines in the panel.
type GridStyle struct {
	Color color.Color
	Width float64
}

// Chart is a host for one category axis: it lays out the axis and the
// panel, trains the value scale and draws the axis and the geoms.
type Chart struct {
	Data   *data.Chart
	Scale  Scale
	Values *ValueScale
	Geoms  []Geom

	// Padding is the space left free around the chart.
	Padding Padding

	// Background fills the whole canvas if non-nil.
	Background color.Color

	// Grid is the style of the value grid lines.
	Grid GridStyle
}

// NewChart returns a chart of d with the given category scale, a linear
// value scale and default padding.
func NewChart(d *data.Chart, scale Scale) *Chart {
	return &Chart{
		Data:    d,
		Scale:   scale,
		Values:  NewValueScale(),
		Padding: Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Grid: GridStyle{
			Color: color.NRGBA{0, 0, 0, 0x10},
			Width: 1,
		},
	}
}

// Layout fits the axis into a canvas of the given size and places it.
// It returns the panel of the chart.
func (c *Chart) Layout(ctx canvas.Context, width, height float64) *Panel {
	c.Scale.SetContext(ctx)
	area := Rect{
		Left:   c.Padding.Left,
		Top:    c.Padding.Top,
		Right:  width - c.Padding.Right,
		Bottom: height - c.Padding.Bottom,
	}

	plotArea := area
	if c.Scale.IsHorizontal() {
		size := c.Scale.Update(area.Width(), area.Height()/2, Padding{})
		box := Rect{Left: area.Left, Right: area.Right}
		if c.Scale.Position() == Top {
			box.Top, box.Bottom = area.Top, area.Top+size.Height
			plotArea.Top = box.Bottom
		} else {
			box.Top, box.Bottom = area.Bottom-size.Height, area.Bottom
			plotArea.Bottom = box.Top
		}
		c.Scale.Place(box)
	} else {
		size := c.Scale.Update(area.Width()/2, area.Height(), Padding{})
		box := Rect{Top: area.Top, Bottom: area.Bottom}
		if c.Scale.Position() == Right {
			box.Left, box.Right = area.Right-size.Width, area.Right
			plotArea.Right = box.Left
		} else {
			box.Left, box.Right = area.Left, area.Left+size.Width
			plotArea.Left = box.Right
		}
		c.Scale.Place(box)
	}

	c.Values.Train(c.Data, c.Geoms)
	slog.Debug("datatable: chart layout",
		"axis", c.Scale.Bounds(), "panel", plotArea, "values", c.Values.String())

	return &Panel{
		Area:   plotArea,
		Scale:  c.Scale,
		Values: c.Values,
		Data:   c.Data,
		ctx:    ctx,
	}
}

// Render lays out the chart and draws it onto ctx.
func (c *Chart) Render(ctx canvas.Context, width, height float64) {
	if c.Background != nil {
		scoped(ctx, func() {
			ctx.SetFillColor(c.Background)
			ctx.FillRect(0, 0, width, height)
		})
	}

	panel := c.Layout(ctx, width, height)
	panel.drawGrid(c.Grid)
	c.Scale.Draw(panel.Area)
	for _, g := range c.Geoms {
		g.Draw(panel)
	}
}

// WriteFile renders the chart into the named file.
func (c *Chart) WriteFile(name string, format canvas.Format, width, height float64) error {
	return canvas.WriteFile(name, format, width, height, func(ctx canvas.Context) {
		c.Render(ctx, width, height)
	})
}

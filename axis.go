package datatable

import (
	"math"
	"strconv"

	"github.com/vdobler/datatable/data"
)

// Axis is a category axis with an optional data table below it.
//
// The categories are the labels of the chart data, the rows of the data
// table are the datasets currently visible in the legend. Axis implements
// Scale.
type Axis struct {
	Base

	// Data is the chart data the axis reads labels and datasets from.
	// It is never modified.
	Data *data.Chart

	// Format formats the values in the data table. If nil, values are
	// formatted with DataTable.Precision decimals.
	Format func(v float64) string

	tickLabels []string
}

// NewAxis returns a category table axis configured by opts reading from
// chart.
func NewAxis(opts Options, chart *data.Chart) *Axis {
	a := &Axis{Data: chart}
	a.Options = opts
	a.Global = DefaultGlobal(12)
	a.hooks = a
	return a
}

// Dimensions is the number of rows and columns of the data table.
type Dimensions struct {
	Rows, Columns int
}

// Labels returns the category labels: Options.Labels if set, else the
// XLabels (horizontal axis) or YLabels (vertical axis) of the data, else
// its Labels.
func (a *Axis) Labels() []string {
	if len(a.Options.Labels) > 0 {
		return a.Options.Labels
	}
	if a.Data == nil {
		return nil
	}
	if a.IsHorizontal() && len(a.Data.XLabels) > 0 {
		return a.Data.XLabels
	}
	if !a.IsHorizontal() && len(a.Data.YLabels) > 0 {
		return a.Data.YLabels
	}
	return a.Data.Labels
}

// VisibleSeries returns the datasets not hidden in the legend.
func (a *Axis) VisibleSeries() []data.Dataset {
	if a.Data == nil {
		return nil
	}
	return a.Data.VisibleDatasets()
}

// Dimensions returns the number of visible series and categories.
func (a *Axis) Dimensions() Dimensions {
	return Dimensions{Rows: len(a.VisibleSeries()), Columns: len(a.Labels())}
}

// DetermineDataLimits sets MinIndex and MaxIndex to the full label range
// narrowed by Ticks.Min and Ticks.Max if these name a label.
func (a *Axis) DetermineDataLimits() {
	labels := a.Labels()
	a.MinIndex, a.MaxIndex = 0, len(labels)-1

	if min := a.Options.Ticks.Min; min != nil {
		if i := indexOf(labels, *min); i != -1 {
			a.MinIndex = i
		}
	}
	if max := a.Options.Ticks.Max; max != nil {
		if i := indexOf(labels, *max); i != -1 {
			a.MaxIndex = i
		}
	}
}

// BuildTicks returns the labels between MinIndex and MaxIndex inclusive.
func (a *Axis) BuildTicks() []string {
	labels := a.Labels()
	switch {
	case a.MinIndex == 0 && a.MaxIndex == len(labels)-1:
		a.tickLabels = labels
	case a.MinIndex > a.MaxIndex || a.MaxIndex >= len(labels):
		a.tickLabels = nil
	default:
		a.tickLabels = labels[a.MinIndex : a.MaxIndex+1]
	}
	return a.tickLabels
}

func indexOf(list []string, s string) int {
	for i, l := range list {
		if l == s {
			return i
		}
	}
	return -1
}

// tableShown reports whether the data table is displayed and has rows.
func (a *Axis) tableShown() bool {
	return a.Options.DataTable.Display && len(a.VisibleSeries()) > 0
}

// tableFont is the font of the data table's row labels and cells.
func (a *Axis) tableFont() FontOptions { return a.Options.Ticks.MajorFont() }

// GutterWidth returns the width reserved left of the first category for
// the row labels of the data table: the width of the longest visible
// series name. It is zero for vertical axes and if no table is shown.
func (a *Axis) GutterWidth() float64 {
	if !a.IsHorizontal() || !a.tableShown() {
		return 0
	}
	var names []string
	for _, ds := range a.VisibleSeries() {
		names = append(names, ds.Label)
	}
	return a.LongestText(a.ParseFont(a.tableFont()), names)
}

// PixelForValue returns the pixel of the category with the given index.
//
// On a horizontal axis the usable width is divided into one band per tick
// (Offset) or into tickCount-1 intervals; the category is placed at the
// center of its band or on its interval boundary. On a vertical axis the
// categories are spread linearly from top to bottom.
func (a *Axis) PixelForValue(index int) float64 {
	n := len(a.ticks)
	// Relative to MinIndex so a restricted range starts at the near edge
	// instead of being pushed past the far one.
	i := float64(index - a.MinIndex)

	if a.IsHorizontal() {
		gutter := a.GutterWidth()
		inner := a.Width - (a.PaddingLeft + a.PaddingRight) - gutter
		intervals := n
		if !a.Options.Offset {
			intervals--
		}
		tickWidth := inner / math.Max(float64(intervals), 1)
		pixel := tickWidth*i + a.PaddingLeft
		if a.Options.Offset {
			pixel += tickWidth / 2
		}

		v := a.Left + math.Round(pixel)
		if a.IsFullWidth() {
			v += a.Margins.Left
		}
		return v + gutter
	}

	inner := a.Height - (a.PaddingTop + a.PaddingBottom)
	return a.Top + i*(inner/math.Max(float64(n-1), 1))
}

// PixelForTick returns the pixel of the i'th tick.
func (a *Axis) PixelForTick(i int) float64 {
	return a.PixelForValue(i + a.MinIndex)
}

// BasePixel returns the pixel of the chart area edge the axis starts from.
func (a *Axis) BasePixel() float64 {
	return a.Bottom
}

// LineValue returns the pixel of the grid line of tick index. With
// offsetGridLines the line is moved half the way to the previous tick
// (or, for the first tick, half the way away from the next tick) so that
// grid lines separate the categories.
func (a *Axis) LineValue(index int, offsetGridLines bool) float64 {
	v := a.PixelForTick(index)
	if offsetGridLines {
		if index == 0 {
			v -= (a.PixelForTick(1) - v) / 2
		} else {
			v -= (v - a.PixelForTick(index-1)) / 2
		}
	}
	return v
}

// AfterFit enlarges a horizontal axis to make room for one line per
// visible series in the data table. Vertical axes carry no table.
func (a *Axis) AfterFit() {
	if !a.IsHorizontal() {
		return
	}
	font := a.ParseFont(a.Options.Ticks.FontOptions)
	rows := float64(len(a.VisibleSeries()))
	lineSpace := font.Size * 0.5
	extra := font.Size*rows + lineSpace*rows

	a.MinSize.Height += extra
	a.Height += extra
}

// formatValue formats a data table cell. NaN yields an empty cell.
func (a *Axis) formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	if a.Format != nil {
		return a.Format(v)
	}
	return strconv.FormatFloat(v, 'f', a.Options.DataTable.Precision, 64)
}

package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/datatable"
	"github.com/vdobler/datatable/data"
)

// value returns the value of ds at category index k, NaN if there is none.
func value(ds data.Dataset, k int) float64 {
	if k < 0 || k >= len(ds.Data) {
		return math.NaN()
	}
	return ds.Data[k]
}

// seriesColor returns the color of ds, black if it has none.
func seriesColor(ds data.Dataset) color.Color {
	return datatable.ParseColor(ds.BorderColor, color.Black)
}

// withAlpha returns c with its opacity scaled by alpha.
func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * math.Max(0, math.Min(alpha, 1))))
	return n
}

// CanonicRect returns the canonical form of r, i.e. its Left and Top
// edges having smaller coordinates than its Right and Bottom edges.
func CanonicRect(r datatable.Rect) datatable.Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

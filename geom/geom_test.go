package geom

import (
	"image/color"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/datatable"
	"github.com/vdobler/datatable/canvas"
	"github.com/vdobler/datatable/data"
)

var red = color.NRGBA{0xff, 0, 0, 0xff}

func render(t *testing.T, d *data.Chart, geoms ...datatable.Geom) (*canvas.Recorder, *datatable.Axis) {
	t.Helper()
	d.BuildLegend()
	axis := datatable.NewAxis(datatable.DefaultOptions(), d)
	chart := datatable.NewChart(d, axis)
	chart.Geoms = geoms
	rec := canvas.NewRecorder()
	chart.Render(rec, 400, 300)
	require.Equal(t, 0, rec.Depth(), "unbalanced Save/Restore")
	return rec, axis
}

func strokesIn(rec *canvas.Recorder, c color.Color) []canvas.Op {
	var ops []canvas.Op
	for _, op := range rec.Named("Stroke") {
		if op.Stroke == c {
			ops = append(ops, op)
		}
	}
	return ops
}

func TestBarDodge(t *testing.T) {
	d := &data.Chart{
		Labels: []string{"A", "B", "C"},
		Datasets: []data.Dataset{
			{Label: "s1", Data: []float64{1, 2, 3}, BorderColor: "#f00"},
			{Label: "s2", Data: []float64{3, 2, 1}, BorderColor: "#00f"},
		},
	}
	rec, axis := render(t, d, Bar{})

	bars := rec.Named("FillRect")
	require.Len(t, bars, 6)

	// Bars of one category touch and are centered on the category.
	left, right := bars[0], bars[1]
	assert.InDelta(t, left.X+left.W, right.X, 1e-9)
	assert.InDelta(t, axis.PixelForValue(0), right.X, 1e-9)
	assert.Greater(t, right.H, left.H)

	// All bars stand on the same baseline.
	for i, b := range bars {
		assert.InDelta(t, bars[0].Y+bars[0].H, b.Y+b.H, 1e-9, "bar %d", i)
	}
}

func TestBarHiddenSeries(t *testing.T) {
	d := &data.Chart{
		Labels: []string{"A", "B"},
		Datasets: []data.Dataset{
			{Label: "s1", Data: []float64{1, 2}},
			{Label: "s2", Data: []float64{3, 2}, Hidden: true},
		},
	}
	rec, _ := render(t, d, Bar{})
	assert.Len(t, rec.Named("FillRect"), 2)
}

func TestBarStackValueRange(t *testing.T) {
	d := &data.Chart{
		Labels: []string{"A", "B", "C"},
		Datasets: []data.Dataset{
			{Label: "s1", Data: []float64{1, 2, -3}},
			{Label: "s2", Data: []float64{3, 2, -1}},
		},
	}
	d.BuildLegend()
	assert.Equal(t, datatable.Interval{Min: -4, Max: 4}, Bar{Position: "stack"}.ValueRange(d))
	assert.Equal(t, datatable.Interval{Min: 0, Max: 0}, Bar{}.ValueRange(d))

	d.Toggle("s2")
	assert.Equal(t, datatable.Interval{Min: -3, Max: 2}, Bar{Position: "stack"}.ValueRange(d))
}

func TestBarStack(t *testing.T) {
	d := &data.Chart{
		Labels: []string{"A"},
		Datasets: []data.Dataset{
			{Label: "s1", Data: []float64{1}},
			{Label: "s2", Data: []float64{2}},
		},
	}
	rec, _ := render(t, d, Bar{Position: "stack"})
	bars := rec.Named("FillRect")
	require.Len(t, bars, 2)
	// The second bar sits on top of the first.
	assert.InDelta(t, bars[0].Y, bars[1].Y+bars[1].H, 1e-9)
	assert.InDelta(t, bars[0].X, bars[1].X, 1e-9)
	assert.InDelta(t, 2*bars[0].H, bars[1].H, 1e-9)
}

var barGroupsTests = []struct {
	position     string
	n, i         int
	center, half float64
}{
	{"dodge", 1, 0, 50, 40},
	{"dodge", 2, 0, 30, 20},
	{"dodge", 2, 1, 70, 20},
	{"dodge", 4, 3, 80, 10},
	{"stack", 4, 3, 50, 40},
}

func TestBarGroupsWidth(t *testing.T) {
	for i, tc := range barGroupsTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			bg := NewBarGroups(tc.position, 0, 0, tc.n)
			center, half := bg.Width(50, 100, tc.i)
			if math.Abs(center-tc.center) > 1e-9 || math.Abs(half-tc.half) > 1e-9 {
				t.Errorf("%s n=%d Width(50, 100, %d) = %g, %g, want %g, %g",
					tc.position, tc.n, tc.i, center, half, tc.center, tc.half)
			}
		})
	}
}

func TestLineGaps(t *testing.T) {
	d := &data.Chart{
		Labels: []string{"A", "B", "C", "D"},
		Datasets: []data.Dataset{
			{Label: "s1", Data: []float64{1, 2, math.NaN(), 4}, BorderColor: "#ff0000"},
		},
	}
	rec, axis := render(t, d, Line{Points: 2})

	strokes := strokesIn(rec, red)
	require.Len(t, strokes, 1)
	path := strokes[0].Path
	require.Len(t, path, 1, "the gap must interrupt the line")
	assert.Equal(t, axis.PixelForValue(0), path[0].X1)
	assert.Equal(t, axis.PixelForValue(1), path[0].X2)
	assert.Greater(t, path[0].Y1, path[0].Y2, "larger values are drawn higher")

	markers := rec.Named("FillRect")
	assert.Len(t, markers, 3)
}

func TestCanonicRect(t *testing.T) {
	got := CanonicRect(datatable.Rect{Left: 5, Top: 7, Right: 1, Bottom: 2})
	assert.Equal(t, datatable.Rect{Left: 1, Top: 2, Right: 5, Bottom: 7}, got)
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0x80}, withAlpha(red, 0.5))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, withAlpha(red, 2))
}

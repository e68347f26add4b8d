package datatable

import (
	"image/color"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/datatable/canvas"
	"github.com/vdobler/datatable/data"
)

func drawn(t *testing.T, opts Options, series ...string) (*Axis, *canvas.Recorder) {
	t.Helper()
	a := NewAxis(opts, quarters(series...))
	rec := canvas.NewRecorder()
	layout(a, rec, 400)
	a.Draw(Rect{Left: 0, Top: -300, Right: 400, Bottom: 0})
	return a, rec
}

func TestSaveRestoreBalanced(t *testing.T) {
	for _, pos := range []Position{Top, Bottom, Left, Right} {
		opts := DefaultOptions()
		opts.Position = pos
		opts.DataTable.Display = true
		opts.ScaleLabel.Display = true
		opts.ScaleLabel.LabelString = "Quarter"
		_, rec := drawn(t, opts, "North", "South")

		assert.Equal(t, 0, rec.Depth(), string(pos))
		assert.Equal(t, len(rec.Named("Save")), len(rec.Named("Restore")), string(pos))
		assert.Equal(t, 1, rec.MaxDepth, string(pos))
	}
}

func TestDrawHidden(t *testing.T) {
	opts := DefaultOptions()
	opts.Display = false
	_, rec := drawn(t, opts, "North")
	assert.Empty(t, rec.Ops)
}

func TestTicksAndGridLines(t *testing.T) {
	a, rec := drawn(t, DefaultOptions())
	strokes := rec.Named("Stroke")
	require.Len(t, strokes, 4+1) // one per tick and the border

	for i, s := range strokes[:4] {
		require.Len(t, s.Path, 2, "tick %d", i)
		mark, grid := s.Path[0], s.Path[1]
		x := a.LineValue(i, true) + 0.5
		assert.Equal(t, canvas.Segment{X1: x, Y1: 0, X2: x, Y2: 10}, mark, "tick mark %d", i)
		assert.Equal(t, canvas.Segment{X1: x, Y1: -300, X2: x, Y2: 0}, grid, "grid line %d", i)
	}

	// The first grid line sits on the left edge and stays visible.
	assert.Equal(t, 0.0, a.LineValue(0, true))
	assert.Equal(t, color.NRGBA{0, 0, 0, 26}, strokes[0].Stroke)
	assert.Equal(t, color.NRGBA{0, 0, 0, 26}, strokes[1].Stroke)

	border := strokes[4]
	assert.Equal(t, []canvas.Segment{{X1: 0, Y1: 0.5, X2: 400, Y2: 0.5}}, border.Path)
}

func TestGridLineOutsideAxis(t *testing.T) {
	for _, pos := range []Position{Bottom, Left} {
		t.Run(string(pos), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Position = pos
			opts.Offset = false
			a, rec := drawn(t, opts)
			strokes := rec.Named("Stroke")
			require.Len(t, strokes, 4+1)

			// Without bands the first tick sits on the edge, its grid
			// line is moved half a step outside and not drawn.
			edge := a.Left
			if pos == Left {
				edge = a.Top
			}
			assert.Less(t, a.LineValue(0, true), edge)
			assert.Equal(t, color.Transparent, strokes[0].Stroke)
			assert.Equal(t, color.NRGBA{0, 0, 0, 26}, strokes[1].Stroke)
		})
	}
}

func TestZeroLine(t *testing.T) {
	opts := DefaultOptions()
	opts.GridLines.ZeroLineIndex = 2
	opts.GridLines.ZeroLineWidth = 2
	opts.GridLines.ZeroLineBorderDash = []float64{4, 2}
	_, rec := drawn(t, opts)

	strokes := rec.Named("Stroke")
	zero := strokes[2]
	assert.Equal(t, 2.0, zero.Width)
	assert.Equal(t, []float64{4, 2}, zero.Dash)
	assert.Equal(t, color.NRGBA{0, 0, 0, 64}, zero.Stroke)
	assert.Equal(t, 1.0, strokes[1].Width)
	assert.Empty(t, strokes[1].Dash)
}

func TestTickLabels(t *testing.T) {
	a, rec := drawn(t, DefaultOptions())
	labels := rec.Named("FillText")
	require.Len(t, labels, 4)
	for i, l := range labels {
		assert.Equal(t, a.PixelForTick(i), l.X)
		// tick mark + padding + 3
		assert.Equal(t, 23.0, l.Y)
		assert.Equal(t, canvas.AlignCenter, l.Align)
		assert.Equal(t, canvas.BaselineTop, l.Baseline)
		assert.Equal(t, canvas.Font{Size: 12, Style: "normal", Family: DefaultGlobal(12).FontFamily}, l.Font)
		assert.Equal(t, color.NRGBA{0x66, 0x66, 0x66, 0xff}, l.Fill)
	}
}

func TestTickLabelPlacement(t *testing.T) {
	tests := []struct {
		pos      Position
		mirror   bool
		align    canvas.TextAlign
		baseline canvas.TextBaseline
		// anchor of label i given the placed axis
		anchor func(a *Axis, i int) (x, y float64)
	}{
		{Bottom, false, canvas.AlignCenter, canvas.BaselineTop,
			func(a *Axis, i int) (float64, float64) { return a.PixelForTick(i), a.Top + 23 }},
		{Top, false, canvas.AlignCenter, canvas.BaselineBottom,
			func(a *Axis, i int) (float64, float64) { return a.PixelForTick(i), a.Bottom - 23 }},
		{Left, false, canvas.AlignRight, canvas.BaselineMiddle,
			func(a *Axis, i int) (float64, float64) { return a.Right - 20, a.PixelForTick(i) }},
		{Left, true, canvas.AlignLeft, canvas.BaselineMiddle,
			func(a *Axis, i int) (float64, float64) { return a.Right - 10, a.PixelForTick(i) }},
		{Right, false, canvas.AlignLeft, canvas.BaselineMiddle,
			func(a *Axis, i int) (float64, float64) { return a.Left + 20, a.PixelForTick(i) }},
		{Right, true, canvas.AlignRight, canvas.BaselineMiddle,
			func(a *Axis, i int) (float64, float64) { return a.Left + 10, a.PixelForTick(i) }},
	}
	for _, tc := range tests {
		name := string(tc.pos)
		if tc.mirror {
			name += "-mirror"
		}
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Position = tc.pos
			opts.Ticks.Mirror = tc.mirror
			a, rec := drawn(t, opts)

			labels := rec.Named("FillText")
			require.Len(t, labels, 4)
			for i, l := range labels {
				x, y := tc.anchor(a, i)
				assert.InDelta(t, x, l.X, 1e-9, "x of label %d", i)
				assert.InDelta(t, y, l.Y, 1e-9, "y of label %d", i)
				assert.Equal(t, tc.align, l.Align, "label %d", i)
				assert.Equal(t, tc.baseline, l.Baseline, "label %d", i)
				assert.Equal(t, 0.0, l.Angle)
			}
		})
	}
}

func TestRotatedTopLabels(t *testing.T) {
	d := &data.Chart{}
	for i := 0; i < 20; i++ {
		d.Labels = append(d.Labels, "Category "+strconv.Itoa(10+i))
	}
	opts := DefaultOptions()
	opts.Position = Top
	a := NewAxis(opts, d)
	rec := canvas.NewRecorder()
	layout(a, rec, 200)
	require.NotZero(t, a.LabelRotation)
	a.Draw(Rect{Left: 0, Top: 0, Right: 200, Bottom: 100})

	labels := rec.Named("FillText")
	require.NotEmpty(t, labels)
	for _, l := range labels {
		assert.Equal(t, canvas.AlignLeft, l.Align, l.Text)
		assert.Equal(t, canvas.BaselineMiddle, l.Baseline, l.Text)
		assert.Less(t, l.Y, a.Bottom, l.Text)
	}
}

func TestMultiLineLabels(t *testing.T) {
	opts := DefaultOptions()
	opts.Labels = []string{"a\nb", "c"}
	a := NewAxis(opts, quarters())
	rec := canvas.NewRecorder()
	layout(a, rec, 400)
	a.Draw(Rect{Left: 0, Top: -300, Right: 400, Bottom: 0})

	texts := rec.Named("FillText")
	require.Len(t, texts, 3)
	assert.Equal(t, "a", texts[0].Text)
	assert.Equal(t, "b", texts[1].Text)
	assert.Equal(t, texts[0].Y+18, texts[1].Y)
}

func TestScaleLabel(t *testing.T) {
	opts := DefaultOptions()
	opts.ScaleLabel.Display = true
	opts.ScaleLabel.LabelString = "Quarter"
	a, rec := drawn(t, opts)

	texts := rec.Named("FillText")
	label := texts[len(texts)-1]
	require.Equal(t, "Quarter", label.Text)
	assert.Equal(t, 200.0, label.X)
	assert.InDelta(t, a.Bottom-7.2-4, label.Y, 1e-9)
	assert.Equal(t, 0.0, label.Angle)

	opts.Position = Left
	a, rec = drawn(t, opts)
	texts = rec.Named("FillText")
	label = texts[len(texts)-1]
	assert.InDelta(t, a.Left+7.2+4, label.X, 1e-9)
	assert.InDelta(t, 100, label.Y, 1e-9)
	assert.InDelta(t, -math.Pi/2, label.Angle, 1e-9)
}

func TestTableWithoutGrid(t *testing.T) {
	opts := DefaultOptions()
	opts.DataTable.Display = true
	opts.DataTable.LineWidth = 0
	_, rec := drawn(t, opts, "North")

	assert.Contains(t, rec.Texts(), "North")
	for _, s := range rec.Named("Stroke") {
		assert.NotEqual(t, 0.0, s.Width)
	}
	assert.Len(t, rec.Named("Stroke"), 4+1)
}

func TestTableRowColors(t *testing.T) {
	opts := DefaultOptions()
	opts.DataTable.Display = true
	d := quarters("North")
	d.Datasets[0].BorderColor = "#00ff00"
	a := NewAxis(opts, d)
	rec := canvas.NewRecorder()
	layout(a, rec, 400)
	a.Draw(Rect{Left: 0, Top: -300, Right: 400, Bottom: 0})

	for _, op := range rec.Named("FillText") {
		switch op.Text {
		case "North":
			assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, op.Fill)
		default:
			assert.Equal(t, color.NRGBA{0x66, 0x66, 0x66, 0xff}, op.Fill, op.Text)
		}
	}
}

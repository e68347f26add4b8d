package datatable

import (
	"image/color"
	"math"

	"github.com/vdobler/datatable/canvas"
)

// magicOffset is the extra distance between tick marks and the labels of
// a horizontal axis.
const magicOffset = 3

// tickItem is everything needed to draw one tick: its tick mark, its grid
// line and its label.
type tickItem struct {
	tx1, ty1, tx2, ty2 float64 // tick mark
	x1, y1, x2, y2     float64 // grid line across the chart area

	glWidth      float64
	glColor      color.Color
	glDash       []float64
	glDashOffset float64

	labelX, labelY float64
	rotation       float64
	label          string
	major          bool
	align          canvas.TextAlign
	baseline       canvas.TextBaseline
}

// scoped runs f between a Save and a Restore of the context state. The
// Restore happens even if f panics.
func scoped(ctx canvas.Context, f func()) {
	ctx.Save()
	defer ctx.Restore()
	f()
}

// Draw draws the axis: grid lines, tick marks and labels, the data table,
// the scale label and the border. Grid lines span chartArea.
func (a *Axis) Draw(chartArea Rect) {
	if !a.Options.Display || a.ctx == nil {
		return
	}

	ticks := a.ticks
	if a.Options.Ticks.AutoSkip {
		ticks = a.AutoSkip(ticks)
	}

	for _, item := range a.tickItems(ticks, chartArea) {
		a.drawTick(item)
	}
	a.drawDataTable()
	a.drawScaleLabel()
	a.drawGridLineBorder()
}

// tickMarkLength returns the length of the tick marks, zero if they are
// not drawn.
func (a *Axis) tickMarkLength() float64 {
	gl := a.Options.GridLines
	if !gl.DrawTicks {
		return 0
	}
	return gl.TickMarkLength
}

// labelTextHeight returns the vertical extent added to label by the label
// rotation.
func (a *Axis) labelTextHeight(label string) float64 {
	font := a.ParseFont(a.Options.Ticks.MinorFont())
	sin := math.Sin(toRadians(a.LabelRotation))
	return sin * a.LongestText(font, []string{label})
}

// maxLabelTextHeight is labelTextHeight of the longest label.
func (a *Axis) maxLabelTextHeight() float64 {
	font := a.ParseFont(a.Options.Ticks.MinorFont())
	sin := math.Sin(toRadians(a.LabelRotation))
	return sin * a.LongestText(font, a.Labels())
}

func (a *Axis) tickItems(ticks []Tick, chartArea Rect) []tickItem {
	opts := a.Options
	gl, tickOpts := opts.GridLines, opts.Ticks
	position := opts.Position
	isRotated := a.LabelRotation != 0
	rotation := -toRadians(a.LabelRotation)
	tl := a.tickMarkLength()
	defaultColor := ParseColor("rgba(0, 0, 0, 0.1)", color.Black)

	xTickStart, xTickEnd := a.Right-tl, a.Right
	if position == Right {
		xTickStart, xTickEnd = a.Left, a.Left+tl
	}
	yTickStart, yTickEnd := a.Bottom-tl, a.Bottom
	if position == Bottom {
		yTickStart, yTickEnd = a.Top, a.Top+tl
	}

	offsetGridLines := gl.OffsetGridLines && len(ticks) > 1

	var items []tickItem
	for index, tick := range ticks {
		if tick.Skipped {
			continue
		}

		it := tickItem{
			label:    tick.Label,
			major:    tick.Major,
			rotation: rotation,
			align:    canvas.AlignCenter,
			baseline: canvas.BaselineMiddle,
		}
		if index == gl.ZeroLineIndex && opts.Offset == gl.OffsetGridLines {
			it.glWidth = gl.ZeroLineWidth
			it.glColor = ParseColor(gl.ZeroLineColor, defaultColor)
			it.glDash = gl.ZeroLineBorderDash
			it.glDashOffset = gl.ZeroLineBorderDashOffset
		} else {
			it.glWidth = gl.LineWidth.At(index, 1)
			it.glColor = ParseColor(gl.Color.At(index, ""), defaultColor)
			it.glDash = gl.BorderDash
			if it.glDash == nil {
				it.glDash = a.Global.BorderDash
			}
			it.glDashOffset = gl.BorderDashOffset
			if it.glDashOffset == 0 {
				it.glDashOffset = a.Global.BorderDashOffset
			}
		}

		if a.IsHorizontal() {
			labelYOffset := tl + tickOpts.Padding
			if position == Bottom {
				it.baseline = canvas.BaselineTop
				it.align = canvas.AlignCenter
				it.labelY = a.Top + labelYOffset + magicOffset + a.labelTextHeight(tick.Label)/2
			} else {
				if isRotated {
					it.baseline, it.align = canvas.BaselineMiddle, canvas.AlignLeft
				} else {
					it.baseline, it.align = canvas.BaselineBottom, canvas.AlignCenter
				}
				it.labelY = a.Bottom - labelYOffset - magicOffset - a.labelTextHeight(tick.Label)/2
			}

			x := a.LineValue(index, offsetGridLines)
			if x < a.Left {
				it.glColor = color.Transparent
			}
			x += aliasPixel(it.glWidth)

			it.labelX = a.PixelForTick(index) + tickOpts.LabelOffset

			it.tx1, it.tx2, it.x1, it.x2 = x, x, x, x
			it.ty1, it.ty2 = yTickStart, yTickEnd
			it.y1, it.y2 = chartArea.Top, chartArea.Bottom
		} else {
			isLeft := position == Left
			var labelXOffset float64
			if tickOpts.Mirror {
				it.align = canvas.AlignRight
				if isLeft {
					it.align = canvas.AlignLeft
				}
				labelXOffset = tickOpts.Padding
			} else {
				it.align = canvas.AlignLeft
				if isLeft {
					it.align = canvas.AlignRight
				}
				labelXOffset = tl + tickOpts.Padding
			}
			it.labelX = a.Left + labelXOffset
			if isLeft {
				it.labelX = a.Right - labelXOffset
			}

			y := a.LineValue(index, offsetGridLines)
			if y < a.Top {
				it.glColor = color.Transparent
			}
			y += aliasPixel(it.glWidth)

			it.labelY = a.PixelForTick(index) + tickOpts.LabelOffset

			it.tx1, it.tx2 = xTickStart, xTickEnd
			it.x1, it.x2 = chartArea.Left, chartArea.Right
			it.ty1, it.ty2, it.y1, it.y2 = y, y, y, y
		}

		items = append(items, it)
	}
	return items
}

// drawTick draws the tick mark, grid line and label of one tick.
func (a *Axis) drawTick(it tickItem) {
	ctx := a.ctx
	gl, tickOpts := a.Options.GridLines, a.Options.Ticks

	if gl.Display && (gl.DrawTicks || gl.DrawOnChartArea) {
		scoped(ctx, func() {
			ctx.SetLineWidth(it.glWidth)
			ctx.SetStrokeColor(it.glColor)
			ctx.SetLineDash(it.glDash, it.glDashOffset)
			ctx.BeginPath()
			if gl.DrawTicks {
				ctx.MoveTo(it.tx1, it.ty1)
				ctx.LineTo(it.tx2, it.ty2)
			}
			if gl.DrawOnChartArea {
				ctx.MoveTo(it.x1, it.y1)
				ctx.LineTo(it.x2, it.y2)
			}
			ctx.Stroke()
		})
	}

	if !tickOpts.Display {
		return
	}
	fontOpts := tickOpts.MinorFont()
	if it.major {
		fontOpts = tickOpts.MajorFont()
	}
	font := a.ParseFont(fontOpts)
	lineSpacing := a.ParseFont(tickOpts.MinorFont()).Size * 1.5
	scoped(ctx, func() {
		ctx.Translate(it.labelX, it.labelY)
		ctx.Rotate(it.rotation)
		ctx.SetFont(font)
		ctx.SetFillColor(a.Global.ParseFontColor(fontOpts))
		ctx.SetTextBaseline(it.baseline)
		ctx.SetTextAlign(it.align)
		y := 0.0
		for _, line := range splitLines(it.label) {
			ctx.FillText(line, 0, y)
			y += lineSpacing
		}
	})
}

// drawScaleLabel draws the axis title centered along the axis.
func (a *Axis) drawScaleLabel() {
	sl := a.Options.ScaleLabel
	if !sl.Display {
		return
	}
	ctx := a.ctx
	halfLineHeight := a.Global.lineHeight(sl) / 2
	pad := sl.Padding

	var x, y, rotation float64
	if a.IsHorizontal() {
		x = a.Left + (a.Right-a.Left)/2
		if a.Options.Position == Bottom {
			y = a.Bottom - halfLineHeight - pad.Bottom
		} else {
			y = a.Top + halfLineHeight + pad.Top
		}
	} else {
		isLeft := a.Options.Position == Left
		if isLeft {
			x = a.Left + halfLineHeight + pad.Top
			rotation = -0.5 * math.Pi
		} else {
			x = a.Right - halfLineHeight - pad.Top
			rotation = 0.5 * math.Pi
		}
		y = a.Top + (a.Bottom-a.Top)/2
	}

	scoped(ctx, func() {
		ctx.Translate(x, y)
		ctx.Rotate(rotation)
		ctx.SetTextAlign(canvas.AlignCenter)
		ctx.SetTextBaseline(canvas.BaselineMiddle)
		ctx.SetFillColor(a.Global.ParseFontColor(sl.FontOptions))
		ctx.SetFont(a.ParseFont(sl.FontOptions))
		ctx.FillText(sl.LabelString, 0, 0)
	})
}

// drawGridLineBorder draws the line along the chart facing edge of the
// axis.
func (a *Axis) drawGridLineBorder() {
	gl := a.Options.GridLines
	if !gl.DrawBorder {
		return
	}
	ctx := a.ctx
	width := gl.LineWidth.At(0, 1)
	col := ParseColor(gl.Color.At(0, ""), ParseColor("rgba(0, 0, 0, 0.1)", color.Black))

	x1, x2, y1, y2 := a.Left, a.Right, a.Top, a.Bottom
	alias := aliasPixel(width)
	if a.IsHorizontal() {
		y1 = a.Top
		if a.Options.Position == Top {
			y1 = a.Bottom
		}
		y1 += alias
		y2 = y1
	} else {
		x1 = a.Left
		if a.Options.Position == Left {
			x1 = a.Right
		}
		x1 += alias
		x2 = x1
	}

	scoped(ctx, func() {
		ctx.SetLineWidth(width)
		ctx.SetStrokeColor(col)
		ctx.BeginPath()
		ctx.MoveTo(x1, y1)
		ctx.LineTo(x2, y2)
		ctx.Stroke()
	})
}

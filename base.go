package datatable

import (
	"log/slog"
	"math"
	"strings"

	"github.com/vdobler/datatable/canvas"
)

// Rect is an axis aligned rectangle in canvas coordinates, y grows
// downwards.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size is the extent of a box.
type Size struct {
	Width, Height float64
}

// Tick is one resolved category tick.
type Tick struct {
	Label string
	Major bool

	// Skipped is set by AutoSkip on ticks whose label must not be drawn.
	Skipped bool
}

// Scale is an axis which can be laid out and drawn by a Chart.
//
// Update runs one layout pass: data limits, ticks, label rotation and
// size fitting; it returns the size the axis needs. The chart then
// places the axis with Place and, after drawing the plot area, calls
// Draw.
type Scale interface {
	Position() Position
	IsHorizontal() bool
	SetContext(ctx canvas.Context)
	Update(maxWidth, maxHeight float64, margins Padding) Size
	Place(r Rect)
	Bounds() Rect
	IndexRange() (min, max int)
	PixelForValue(index int) float64
	PixelForTick(i int) float64
	Draw(chartArea Rect)
}

// lifecycle are the hooks a concrete axis type provides to Base.
type lifecycle interface {
	DetermineDataLimits()
	BuildTicks() []string
	PixelForTick(i int) float64
	AfterFit()
}

// Base implements the generic part of an axis: layout pass, fitting,
// label rotation, auto skipping, font and text measurement. Concrete
// axis types embed Base and provide the lifecycle hooks.
type Base struct {
	Options Options
	Global  Global

	ctx   canvas.Context
	hooks lifecycle

	// Bounds of the axis box.
	Left, Top, Right, Bottom float64
	Width, Height            float64

	PaddingLeft, PaddingRight, PaddingTop, PaddingBottom float64

	Margins             Padding
	MaxWidth, MaxHeight float64
	MinSize             Size

	// LabelRotation is the rotation of the tick labels in degrees.
	LabelRotation float64

	MinIndex, MaxIndex int

	ticks             []Tick
	longestLabelWidth float64
	longestTextCache  textCache
}

func (b *Base) Position() Position            { return b.Options.Position }
func (b *Base) IsHorizontal() bool            { return b.Options.Position.Horizontal() }
func (b *Base) IsFullWidth() bool             { return b.Options.FullWidth }
func (b *Base) SetContext(ctx canvas.Context) { b.ctx = ctx }
func (b *Base) IndexRange() (int, int)        { return b.MinIndex, b.MaxIndex }

// Ticks returns the ticks of the last layout pass.
func (b *Base) Ticks() []Tick { return b.ticks }

func (b *Base) Bounds() Rect {
	return Rect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

// Place sets the bounds of the axis box.
func (b *Base) Place(r Rect) {
	b.Left, b.Top, b.Right, b.Bottom = r.Left, r.Top, r.Right, r.Bottom
	b.Width, b.Height = r.Width(), r.Height()
	if b.IsHorizontal() && b.IsFullWidth() {
		b.Width -= b.Margins.Width()
	}
}

// ParseFont resolves font options against the global defaults.
func (b *Base) ParseFont(o FontOptions) canvas.Font { return b.Global.ParseFont(o) }

// LongestText returns the width of the widest of texts in font. Widths
// are memoized until the next layout pass.
func (b *Base) LongestText(font canvas.Font, texts []string) float64 {
	if b.longestTextCache == nil {
		b.longestTextCache = make(textCache)
	}
	return longestText(b.ctx, font, texts, b.longestTextCache)
}

// Update runs a layout pass and returns the minimum size of the axis.
func (b *Base) Update(maxWidth, maxHeight float64, margins Padding) Size {
	b.longestTextCache = make(textCache)
	b.MaxWidth, b.MaxHeight, b.Margins = maxWidth, maxHeight, margins

	b.setDimensions()

	b.hooks.DetermineDataLimits()

	labels := b.hooks.BuildTicks()
	b.ticks = make([]Tick, len(labels))
	for i, l := range labels {
		b.ticks[i] = Tick{Label: l}
	}

	b.calculateTickRotation()
	b.fit()
	b.hooks.AfterFit()

	slog.Debug("datatable: layout",
		"position", b.Options.Position,
		"minIndex", b.MinIndex, "maxIndex", b.MaxIndex,
		"ticks", len(b.ticks), "rotation", b.LabelRotation,
		"width", b.Width, "height", b.Height)

	return b.MinSize
}

func (b *Base) setDimensions() {
	if b.IsHorizontal() {
		b.Width = b.MaxWidth
		b.Left, b.Right = 0, b.Width
	} else {
		b.Height = b.MaxHeight
		b.Top, b.Bottom = 0, b.Height
	}
	b.PaddingLeft, b.PaddingRight, b.PaddingTop, b.PaddingBottom = 0, 0, 0, 0
}

func (b *Base) labels() []string {
	labels := make([]string, len(b.ticks))
	for i, t := range b.ticks {
		labels[i] = t.Label
	}
	return labels
}

// calculateTickRotation rotates the tick labels of a horizontal axis in
// one degree steps until the longest label fits its band or MaxRotation
// is reached.
func (b *Base) calculateTickRotation() {
	opts := b.Options.Ticks
	b.LabelRotation = opts.MinRotation
	if !opts.Display || !b.IsHorizontal() || len(b.ticks) < 2 {
		return
	}

	font := b.ParseFont(opts.MinorFont())
	original := b.LongestText(font, b.labels())
	labelWidth := original
	tickWidth := b.hooks.PixelForTick(1) - b.hooks.PixelForTick(0) - 6

	for labelWidth > tickWidth && b.LabelRotation < opts.MaxRotation {
		rad := toRadians(b.LabelRotation)
		if math.Sin(rad)*original > b.MaxHeight {
			b.LabelRotation--
			break
		}
		b.LabelRotation++
		labelWidth = math.Cos(rad) * original
	}
}

// fit determines the minimum size of the axis from tick marks, tick
// labels and the scale label.
func (b *Base) fit() {
	opts := b.Options
	gl, tickOpts, sl := opts.GridLines, opts.Ticks, opts.ScaleLabel
	font := b.ParseFont(tickOpts.MinorFont())

	tickMarkLength := 0.0
	if gl.Display && gl.DrawTicks {
		tickMarkLength = gl.TickMarkLength
	}

	var size Size
	if b.IsHorizontal() {
		size.Width = b.MaxWidth
		if b.IsFullWidth() {
			size.Width -= b.Margins.Width()
		}
		size.Height = tickMarkLength
	} else {
		size.Width = tickMarkLength
		size.Height = b.MaxHeight
	}

	if sl.Display {
		thickness := b.Global.lineHeight(sl) + sl.Padding.Height()
		if b.IsHorizontal() {
			size.Height += thickness
		} else {
			size.Width += thickness
		}
	}

	if tickOpts.Display && len(b.ticks) > 0 {
		labels := b.labels()
		largest := b.LongestText(font, labels)
		b.longestLabelWidth = largest
		lines := 1
		for _, l := range labels {
			if n := len(splitLines(l)); n > lines {
				lines = n
			}
		}
		lineSpace := font.Size * 0.5
		sin, cos := math.Sincos(toRadians(b.LabelRotation))

		if b.IsHorizontal() {
			labelHeight := sin*largest + font.Size*float64(lines) +
				lineSpace*float64(lines-1) + lineSpace
			size.Height = math.Min(b.MaxHeight, size.Height+labelHeight+tickOpts.Padding)

			// Labels on grid lines must not stick out of the axis.
			if !opts.Offset {
				first := b.LongestText(font, labels[:1])
				last := b.LongestText(font, labels[len(labels)-1:])
				if b.LabelRotation != 0 {
					if opts.Position == Bottom {
						b.PaddingLeft = cos*first + 3
					} else {
						b.PaddingLeft = cos*lineSpace + 3
					}
					b.PaddingRight = cos*lineSpace + 3
				} else {
					b.PaddingLeft = first/2 + 3
					b.PaddingRight = last/2 + 3
				}
			}
		} else {
			labelWidth := largest + tickOpts.Padding
			if tickOpts.Mirror {
				labelWidth = 0
			}
			size.Width = math.Min(b.MaxWidth, size.Width+labelWidth)
			if !opts.Offset {
				b.PaddingTop = font.Size / 2
				b.PaddingBottom = font.Size / 2
			}
		}
	}

	b.handleMargins()
	b.MinSize = size
	b.Width, b.Height = size.Width, size.Height
}

func (b *Base) handleMargins() {
	b.PaddingLeft = math.Max(b.PaddingLeft-b.Margins.Left, 0)
	b.PaddingTop = math.Max(b.PaddingTop-b.Margins.Top, 0)
	b.PaddingRight = math.Max(b.PaddingRight-b.Margins.Right, 0)
	b.PaddingBottom = math.Max(b.PaddingBottom-b.Margins.Bottom, 0)
}

// AutoSkip returns a copy of ticks in which the labels which would
// overlap their neighbours are marked as Skipped. The last tick is never
// skipped.
func (b *Base) AutoSkip(ticks []Tick) []Tick {
	opts := b.Options.Ticks
	n := len(ticks)
	result := make([]Tick, n)
	copy(result, ticks)

	rotated := b.longestLabelWidth * math.Cos(toRadians(b.LabelRotation))
	skipRatio := 0
	if b.IsHorizontal() {
		axisLength := b.Width - (b.PaddingLeft + b.PaddingRight)
		if need := (rotated + opts.AutoSkipPadding) * float64(n); axisLength > 0 && need > axisLength {
			skipRatio = 1 + int(math.Floor(need/axisLength))
		}
	}
	if opts.MaxTicksLimit > 0 && n > opts.MaxTicksLimit {
		if r := n / opts.MaxTicksLimit; r > skipRatio {
			skipRatio = r
		}
	}
	if skipRatio <= 1 {
		return result
	}

	for i := range result {
		if (i%skipRatio > 0 || i+skipRatio >= n) && i != n-1 {
			result[i].Skipped = true
		}
	}
	return result
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

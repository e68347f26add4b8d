package datatable

import (
	"image/color"
	"math"

	"github.com/vdobler/datatable/canvas"
)

// Global holds the chart wide defaults options fall back to.
type Global struct {
	FontSize   float64
	FontStyle  string
	FontFamily string
	FontColor  string

	BorderDash       []float64
	BorderDashOffset float64
}

// DefaultGlobal returns the global defaults for the given base font size.
func DefaultGlobal(baseFontSize float64) Global {
	return Global{
		FontSize:   baseFontSize,
		FontStyle:  "normal",
		FontFamily: "'Helvetica Neue', 'Helvetica', 'Arial', sans-serif",
		FontColor:  "#666",
	}
}

// ParseFont resolves the font options o against g.
func (g Global) ParseFont(o FontOptions) canvas.Font {
	f := canvas.Font{Size: o.FontSize, Style: o.FontStyle, Family: o.FontFamily}
	if f.Size == 0 {
		f.Size = g.FontSize
	}
	if f.Style == "" {
		f.Style = g.FontStyle
	}
	if f.Family == "" {
		f.Family = g.FontFamily
	}
	return f
}

// ParseFontColor resolves the font color of o against g.
func (g Global) ParseFontColor(o FontOptions) color.Color {
	c := o.FontColor
	if c == "" {
		c = g.FontColor
	}
	return ParseColor(c, color.Black)
}

// lineHeight returns the line height of the scale label in canvas units.
func (g Global) lineHeight(o ScaleLabelOptions) float64 {
	f := g.ParseFont(o.FontOptions)
	lh := o.LineHeight
	if lh <= 0 {
		lh = 1.2
	}
	return lh * f.Size
}

// ----------------------------------------------------------------------------
// Text measurement

// textCache memoizes text widths per font.
type textCache map[string]map[string]float64

// longestText returns the width of the widest of texts rendered in font
// using ctx for measurement. Widths are memoized in cache. Multi-line
// texts are measured line by line.
func longestText(ctx canvas.Context, font canvas.Font, texts []string, cache textCache) float64 {
	if ctx == nil {
		return 0
	}
	key := font.String()
	widths := cache[key]
	if widths == nil {
		widths = make(map[string]float64)
		if cache != nil {
			cache[key] = widths
		}
	}
	longest := 0.0
	for _, t := range texts {
		for _, line := range splitLines(t) {
			w, ok := widths[line]
			if !ok {
				w = ctx.MeasureText(font, line)
				widths[line] = w
			}
			longest = math.Max(longest, w)
		}
	}
	return longest
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// aliasPixel returns the offset which aligns a line of the given width
// with the pixel grid.
func aliasPixel(width float64) float64 {
	if math.Mod(width, 2) != 0 {
		return 0.5
	}
	return 0
}

package datatable

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/plotutil"

	"github.com/vdobler/datatable/data"
)

var namedColors = map[string]color.Color{
	"black":       color.Black,
	"white":       color.White,
	"transparent": color.Transparent,
	"red":         color.NRGBA{0xff, 0, 0, 0xff},
	"green":       color.NRGBA{0, 0x80, 0, 0xff},
	"blue":        color.NRGBA{0, 0, 0xff, 0xff},
	"gray":        color.NRGBA{0x80, 0x80, 0x80, 0xff},
	"grey":        color.NRGBA{0x80, 0x80, 0x80, 0xff},
}

// ParseColor parses s as a CSS like color: "#rgb", "#rrggbb",
// "rgb(r, g, b)", "rgba(r, g, b, a)" or one of a few color names.
// If s cannot be parsed def is returned.
func ParseColor(s string, def color.Color) color.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def
	}
	if c, ok := namedColors[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return def
		}
		r, g, b := c.RGB255()
		return color.NRGBA{r, g, b, 0xff}
	}
	if c, ok := parseRGBA(s); ok {
		return c
	}
	return def
}

func parseRGBA(s string) (color.Color, bool) {
	var args string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args = s[5 : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[4 : len(s)-1]
	default:
		return nil, false
	}
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, false
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, false
		}
		v[i] = f
	}
	return color.NRGBA{
		R: clamp8(v[0]),
		G: clamp8(v[1]),
		B: clamp8(v[2]),
		A: clamp8(v[3] * 255),
	}, true
}

func clamp8(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f + 0.5)
}

// hexColor formats c as "#rrggbb".
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// AssignColors sets the BorderColor of all datasets in chart which have
// none to the default plot color of their position.
func AssignColors(chart *data.Chart) {
	for i := range chart.Datasets {
		if chart.Datasets[i].BorderColor == "" {
			chart.Datasets[i].BorderColor = hexColor(plotutil.Color(i))
		}
	}
}

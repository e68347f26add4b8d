package datatable

import (
	"image/color"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vdobler/datatable/data"
)

var def = color.NRGBA{1, 2, 3, 4}

var colorTests = []struct {
	in   string
	want color.Color
}{
	{"#f00", color.NRGBA{0xff, 0, 0, 0xff}},
	{"#336699", color.NRGBA{0x33, 0x66, 0x99, 0xff}},
	{"  #336699 ", color.NRGBA{0x33, 0x66, 0x99, 0xff}},
	{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 0xff}},
	{"rgba(0, 0, 0, 0.1)", color.NRGBA{0, 0, 0, 26}},
	{"rgba(300, -5, 0, 1)", color.NRGBA{0xff, 0, 0, 0xff}},
	{"RED", color.NRGBA{0xff, 0, 0, 0xff}},
	{"transparent", color.Transparent},
	{"", def},
	{"#12", def},
	{"rgb(1, 2)", def},
	{"rgb(a, b, c)", def},
	{"hsl(0, 0%, 0%)", def},
}

func TestParseColor(t *testing.T) {
	for i, tc := range colorTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := ParseColor(tc.in, def); got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAssignColors(t *testing.T) {
	d := &data.Chart{Datasets: []data.Dataset{
		{Label: "a"},
		{Label: "b", BorderColor: "#123456"},
		{Label: "c"},
	}}
	AssignColors(d)

	assert.NotEmpty(t, d.Datasets[0].BorderColor)
	assert.Equal(t, "#123456", d.Datasets[1].BorderColor)
	assert.NotEqual(t, d.Datasets[0].BorderColor, d.Datasets[2].BorderColor)
	for _, ds := range d.Datasets {
		assert.NotEqual(t, def, ParseColor(ds.BorderColor, def), ds.Label)
	}

	// Colors depend on the position only, not on visibility.
	before := d.Datasets[2].BorderColor
	d.Datasets[2].BorderColor = ""
	d.Datasets[0].Hidden = true
	AssignColors(d)
	assert.Equal(t, before, d.Datasets[2].BorderColor)
}

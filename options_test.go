package datatable

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const optionsYAML = `
position: top
gridLines:
  color: [red, blue]
  lineWidth: 2
  zeroLineIndex: 0
ticks:
  min: Q2
  fontSize: 14
  major:
    fontStyle: bold
dataTable:
  display: true
scaleLabel:
  display: true
  labelString: Quarter
  padding: 6
unknownKey: 1
`

func decode(t *testing.T, src string) Options {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	opts, err := DecodeOptions(&node, DefaultOptions())
	require.NoError(t, err)
	return opts
}

func TestDecodeOptions(t *testing.T) {
	opts := decode(t, optionsYAML)

	assert.Equal(t, Top, opts.Position)
	assert.True(t, opts.Offset, "unset keys keep their default")
	assert.True(t, opts.FullWidth)

	gl := opts.GridLines
	assert.Equal(t, "red", gl.Color.At(0, ""))
	assert.Equal(t, "blue", gl.Color.At(1, ""))
	assert.Equal(t, "", gl.Color.At(2, ""))
	assert.Equal(t, 2.0, gl.LineWidth.At(5, 1))
	assert.Equal(t, 0, gl.ZeroLineIndex)
	assert.Equal(t, 10.0, gl.TickMarkLength)

	require.NotNil(t, opts.Ticks.Min)
	assert.Equal(t, "Q2", *opts.Ticks.Min)
	assert.Nil(t, opts.Ticks.Max)
	assert.Equal(t, 10.0, opts.Ticks.Padding)
	assert.Equal(t, FontOptions{FontSize: 14}, opts.Ticks.MinorFont())
	assert.Equal(t, FontOptions{FontSize: 14, FontStyle: "bold"}, opts.Ticks.MajorFont())

	assert.True(t, opts.DataTable.Display)
	assert.Equal(t, 0.1, opts.DataTable.LineWidth)
	assert.Equal(t, "#000", opts.DataTable.Color)

	assert.Equal(t, "Quarter", opts.ScaleLabel.LabelString)
	assert.Equal(t, Padding{6, 6, 6, 6}, opts.ScaleLabel.Padding)
	assert.Equal(t, 1.2, opts.ScaleLabel.LineHeight)
}

func TestDecodeOptionsNil(t *testing.T) {
	opts, err := DecodeOptions(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	opts, err = DecodeOptions(&yaml.Node{}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestDecodeOptionsError(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("ticks: [1, 2]"), &node))
	_, err := DecodeOptions(&node, DefaultOptions())
	assert.Error(t, err)
}

var paddingTests = []struct {
	in   interface{}
	want Padding
}{
	{5, Padding{5, 5, 5, 5}},
	{2.5, Padding{2.5, 2.5, 2.5, 2.5}},
	{map[string]interface{}{"top": 1, "left": 2.5}, Padding{Top: 1, Left: 2.5}},
	{Padding{1, 2, 3, 4}, Padding{1, 2, 3, 4}},
	{"wide", Padding{}},
	{nil, Padding{}},
}

func TestToPadding(t *testing.T) {
	for i, tc := range paddingTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := ToPadding(tc.in); got != tc.want {
				t.Errorf("ToPadding(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPaddingYAML(t *testing.T) {
	var p struct {
		A Padding `yaml:"a"`
		B Padding `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 3\nb: {right: 4, bottom: 1}"), &p))
	assert.Equal(t, Padding{3, 3, 3, 3}, p.A)
	assert.Equal(t, Padding{Right: 4, Bottom: 1}, p.B)
	assert.Equal(t, 4.0, p.B.Width())
	assert.Equal(t, 1.0, p.B.Height())
}

func TestPerIndex(t *testing.T) {
	assert.Equal(t, 7, Scalar(7).At(100, 1))
	assert.Equal(t, 1, PerIndex[int]{}.At(0, 1))
	l := List(1, 2)
	assert.Equal(t, 2, l.At(1, 0))
	assert.Equal(t, 0, l.At(2, 0))
	assert.Equal(t, 0, l.At(-1, 0))
}

func TestPosition(t *testing.T) {
	assert.True(t, Top.Horizontal())
	assert.True(t, Bottom.Horizontal())
	assert.True(t, Position("diagonal").Horizontal())
	assert.False(t, Left.Horizontal())
	assert.False(t, Right.Horizontal())
}

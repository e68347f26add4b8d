package datatable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Position is the side of the chart area an axis is attached to.
type Position string

const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Left   Position = "left"
	Right  Position = "right"
)

// Horizontal reports whether p is Top or Bottom. Unknown positions are
// treated like Bottom.
func (p Position) Horizontal() bool {
	return p != Left && p != Right
}

// Options configures a category table axis. The zero value is not useful,
// start from DefaultOptions.
type Options struct {
	Display  bool     `yaml:"display"`
	Position Position `yaml:"position"`

	// Offset centers the category labels between two grid lines
	// (band layout) instead of placing them on the grid lines.
	Offset bool `yaml:"offset"`

	// FullWidth lets a horizontal axis span the full chart width.
	FullWidth bool `yaml:"fullWidth"`

	// Labels overrides the category labels of the chart data.
	Labels []string `yaml:"labels"`

	GridLines  GridLineOptions   `yaml:"gridLines"`
	Ticks      TickOptions       `yaml:"ticks"`
	DataTable  DataTableOptions  `yaml:"dataTable"`
	ScaleLabel ScaleLabelOptions `yaml:"scaleLabel"`
}

// GridLineOptions controls grid lines, tick marks and the axis border.
type GridLineOptions struct {
	Display          bool              `yaml:"display"`
	Color            PerIndex[string]  `yaml:"color"`
	LineWidth        PerIndex[float64] `yaml:"lineWidth"`
	BorderDash       []float64         `yaml:"borderDash"`
	BorderDashOffset float64           `yaml:"borderDashOffset"`
	DrawBorder       bool              `yaml:"drawBorder"`
	DrawOnChartArea  bool              `yaml:"drawOnChartArea"`
	DrawTicks        bool              `yaml:"drawTicks"`
	TickMarkLength   float64           `yaml:"tickMarkLength"`

	// OffsetGridLines moves grid lines to the category boundaries.
	OffsetGridLines bool `yaml:"offsetGridLines"`

	// The grid line at ZeroLineIndex is drawn in the zero line style.
	// A negative index disables the zero line.
	ZeroLineIndex            int       `yaml:"zeroLineIndex"`
	ZeroLineWidth            float64   `yaml:"zeroLineWidth"`
	ZeroLineColor            string    `yaml:"zeroLineColor"`
	ZeroLineBorderDash       []float64 `yaml:"zeroLineBorderDash"`
	ZeroLineBorderDashOffset float64   `yaml:"zeroLineBorderDashOffset"`
}

// FontOptions selects a font and its color. Zero values fall back to the
// global defaults.
type FontOptions struct {
	FontSize   float64 `yaml:"fontSize"`
	FontStyle  string  `yaml:"fontStyle"`
	FontFamily string  `yaml:"fontFamily"`
	FontColor  string  `yaml:"fontColor"`
}

// merge returns o with all fields set in override replaced.
func (o FontOptions) merge(override FontOptions) FontOptions {
	if override.FontSize != 0 {
		o.FontSize = override.FontSize
	}
	if override.FontStyle != "" {
		o.FontStyle = override.FontStyle
	}
	if override.FontFamily != "" {
		o.FontFamily = override.FontFamily
	}
	if override.FontColor != "" {
		o.FontColor = override.FontColor
	}
	return o
}

// TickOptions controls the tick labels.
type TickOptions struct {
	FontOptions `yaml:",inline"`

	Display     bool    `yaml:"display"`
	Padding     float64 `yaml:"padding"`
	LabelOffset float64 `yaml:"labelOffset"`
	MinRotation float64 `yaml:"minRotation"` // degrees
	MaxRotation float64 `yaml:"maxRotation"` // degrees
	Mirror      bool    `yaml:"mirror"`

	AutoSkip        bool    `yaml:"autoSkip"`
	AutoSkipPadding float64 `yaml:"autoSkipPadding"`
	MaxTicksLimit   int     `yaml:"maxTicksLimit"`

	// Min and Max restrict the axis to the categories between them.
	// Values which are not a category are ignored.
	Min *string `yaml:"min"`
	Max *string `yaml:"max"`

	// Minor and Major override the font options for minor and major
	// ticks.
	Minor FontOptions `yaml:"minor"`
	Major FontOptions `yaml:"major"`
}

// MinorFont returns the font options of minor tick labels.
func (t TickOptions) MinorFont() FontOptions { return t.FontOptions.merge(t.Minor) }

// MajorFont returns the font options of major tick labels.
func (t TickOptions) MajorFont() FontOptions { return t.MinorFont().merge(t.Major) }

// DataTableOptions controls the data table drawn below the axis.
type DataTableOptions struct {
	Display bool `yaml:"display"`

	// LineWidth of the table grid. Zero suppresses the grid.
	LineWidth float64 `yaml:"lineWidth"`
	Color     string  `yaml:"color"`

	// Precision is the number of decimals of the cell values, -1
	// selects the smallest number necessary.
	Precision int `yaml:"precision"`
}

// ScaleLabelOptions controls the axis title.
type ScaleLabelOptions struct {
	FontOptions `yaml:",inline"`

	Display     bool    `yaml:"display"`
	LabelString string  `yaml:"labelString"`
	LineHeight  float64 `yaml:"lineHeight"` // in units of the font size
	Padding     Padding `yaml:"padding"`
}

// DefaultOptions returns the default configuration of the datatable scale
// type.
func DefaultOptions() Options {
	return Options{
		Display:   true,
		Position:  Bottom,
		Offset:    true,
		FullWidth: true,
		GridLines: GridLineOptions{
			Display:         true,
			Color:           Scalar("rgba(0, 0, 0, 0.1)"),
			LineWidth:       Scalar(1.0),
			DrawBorder:      true,
			DrawOnChartArea: true,
			DrawTicks:       true,
			TickMarkLength:  10,
			OffsetGridLines: true,
			ZeroLineIndex:   -1,
			ZeroLineWidth:   1,
			ZeroLineColor:   "rgba(0, 0, 0, 0.25)",
		},
		Ticks: TickOptions{
			Display:     true,
			Padding:     10,
			MaxRotation: 50,
			AutoSkip:    true,
		},
		DataTable: DataTableOptions{
			LineWidth: 0.1,
			Color:     "#000",
			Precision: -1,
		},
		ScaleLabel: ScaleLabelOptions{
			LineHeight: 1.2,
			Padding:    Padding{Top: 4, Bottom: 4},
		},
	}
}

// DecodeOptions decodes node on top of defaults. Keys not known are
// ignored, keys not present keep their default.
func DecodeOptions(node *yaml.Node, defaults Options) (Options, error) {
	opts := defaults
	if node == nil || node.Kind == 0 {
		return opts, nil
	}
	if err := node.Decode(&opts); err != nil {
		return defaults, fmt.Errorf("datatable: decoding options: %w", err)
	}
	return opts, nil
}

// ----------------------------------------------------------------------------
// PerIndex

// PerIndex is an option which is either a single value used for all ticks
// or a list of values, one per tick.
type PerIndex[T any] struct {
	Values []T
	List   bool
}

// Scalar returns a PerIndex using v for all ticks.
func Scalar[T any](v T) PerIndex[T] { return PerIndex[T]{Values: []T{v}} }

// List returns a PerIndex with one value per tick.
func List[T any](v ...T) PerIndex[T] { return PerIndex[T]{Values: v, List: true} }

// At returns the value for tick i or def if there is none.
func (p PerIndex[T]) At(i int, def T) T {
	if !p.List {
		if len(p.Values) == 0 {
			return def
		}
		return p.Values[0]
	}
	if i < 0 || i >= len(p.Values) {
		return def
	}
	return p.Values[i]
}

func (p *PerIndex[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var list []T
		if err := value.Decode(&list); err != nil {
			return err
		}
		*p = List(list...)
		return nil
	}
	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	*p = Scalar(v)
	return nil
}

func (p PerIndex[T]) MarshalYAML() (interface{}, error) {
	if p.List {
		return p.Values, nil
	}
	if len(p.Values) == 0 {
		return nil, nil
	}
	return p.Values[0], nil
}

// ----------------------------------------------------------------------------
// Padding

// Padding holds four sided insets.
type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Width returns the sum of the horizontal insets.
func (p Padding) Width() float64 { return p.Left + p.Right }

// Height returns the sum of the vertical insets.
func (p Padding) Height() float64 { return p.Top + p.Bottom }

// ToPadding converts a configuration value to a Padding: a number applies
// to all four sides, a map sets the named sides. Anything else yields
// zero padding.
func ToPadding(v interface{}) Padding {
	switch v := v.(type) {
	case Padding:
		return v
	case float64:
		return Padding{v, v, v, v}
	case int:
		f := float64(v)
		return Padding{f, f, f, f}
	case map[string]interface{}:
		side := func(name string) float64 {
			switch s := v[name].(type) {
			case float64:
				return s
			case int:
				return float64(s)
			}
			return 0
		}
		return Padding{
			Top:    side("top"),
			Right:  side("right"),
			Bottom: side("bottom"),
			Left:   side("left"),
		}
	}
	return Padding{}
}

func (p *Padding) UnmarshalYAML(value *yaml.Node) error {
	var v interface{}
	if err := value.Decode(&v); err != nil {
		return err
	}
	*p = ToPadding(v)
	return nil
}

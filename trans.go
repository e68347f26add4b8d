// Value Transformations
//
// Transformations map the value range of the data to the canvas.
package datatable

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropriate Ticker. The two functions map two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// IdentityTrans does not transform at all.
var IdentityTrans = Transformation{
	Name:    "identity",
	Trans:   func(from, to Interval, x float64) float64 { return x },
	Inverse: func(from, to Interval, y float64) float64 { return y },
	Ticker:  plot.DefaultTicks{},
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: plot.DefaultTicks{},
}

// SqrtTrans maps the square root of the values linearly, emphasizing
// small values.
var SqrtTrans = Transformation{
	Name: "sqrt",
	Trans: func(from, to Interval, x float64) float64 {
		root := Interval{math.Sqrt(math.Max(from.Min, 0)), math.Sqrt(from.Max)}
		return LinearTrans.Trans(root, to, math.Sqrt(math.Max(x, 0)))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		root := Interval{math.Sqrt(math.Max(from.Min, 0)), math.Sqrt(from.Max)}
		r := LinearTrans.Inverse(root, to, y)
		return r * r
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps the values logarithmically. Only positive values can be
// mapped.
var Log10Trans = Transformation{
	Name: "log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(10, t*math.Log10(from.Max/from.Min))
	},
	Ticker: plot.LogTicks{},
}

// TransformationByName returns the transformation called name. The empty
// name selects LinearTrans.
func TransformationByName(name string) (Transformation, error) {
	switch name {
	case "", LinearTrans.Name:
		return LinearTrans, nil
	case IdentityTrans.Name:
		return IdentityTrans, nil
	case SqrtTrans.Name:
		return SqrtTrans, nil
	case Log10Trans.Name, "log":
		return Log10Trans, nil
	}
	return Transformation{}, fmt.Errorf("%w %q", ErrUnknownTransformation, name)
}

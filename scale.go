package datatable

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"

	"github.com/vdobler/datatable/data"
)

// ----------------------------------------------------------------------------
// ValueScale

// ValueScale is the scale of the data values, perpendicular to the
// category axis. It autoscales to the values of the visible datasets.
type ValueScale struct {
	// Data is the range covered by the visible values.
	Data Interval

	// Interval captures the range of this scale. It may be larger or
	// smaller than the actual Data range.
	Interval

	// Trans maps Interval to the canvas.
	Trans Transformation

	// Autoscaling can be used to control autoscaling of this scale.
	Autoscaling

	// BeginAtZero includes 0 in the autoscaled range of a linear scale.
	BeginAtZero bool
}

// NewValueScale returns a new linear value scale which autoscales to the
// actual data.
func NewValueScale() *ValueScale {
	s := &ValueScale{
		Data:     unsetInterval(),
		Interval: unsetInterval(),
		Trans:    LinearTrans,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
	}
	s.Autoscaling.Expand.Relative = 0.05

	return s
}

// Train resets the data range of s to the values of the visible datasets
// of chart and the value ranges of those geoms which are ValueRangers
// and autoscales s.
func (s *ValueScale) Train(chart *data.Chart, geoms []Geom) {
	s.Data = unsetInterval()
	for _, ds := range chart.VisibleDatasets() {
		for _, v := range ds.Data {
			if s.isLog() && v <= 0 {
				continue
			}
			s.Data.Update(v)
		}
	}
	for _, g := range geoms {
		if vr, ok := g.(ValueRanger); ok {
			r := vr.ValueRange(chart)
			s.Data.Update(r.Min, r.Max)
		}
	}
	if s.BeginAtZero && !s.isLog() {
		s.Data.Update(0)
	}
	s.autoscale()
}

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *ValueScale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *ValueScale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data interval of s is valid.
func (s *ValueScale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// InRange reports whether x lies in the range of s.
func (s *ValueScale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

// Map maps v to the canvas interval to. It returns NaN if s is
// degenerate or v cannot be transformed.
func (s *ValueScale) Map(v float64, to Interval) float64 {
	if math.IsNaN(v) || math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return math.NaN()
	}
	if s.isLog() && v <= 0 {
		return math.NaN()
	}
	return s.Trans.Trans(s.Interval, to, v)
}

// Ticks returns the major ticks of s.
func (s *ValueScale) Ticks() []plot.Tick {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return nil
	}
	var major []plot.Tick
	for _, t := range s.Trans.Ticker.Ticks(s.Min, s.Max) {
		if t.IsMinor() {
			continue
		}
		major = append(major, t)
	}
	return major
}

func (s *ValueScale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.Trans.Name)
}

func (s *ValueScale) isLog() bool { return s.Trans.Name == Log10Trans.Name }

// autoscale turns the data range into an actual scale range.
func (s *ValueScale) autoscale() {
	if !s.HasData() {
		s.Interval = Interval{0, 1}
		if s.isLog() {
			s.Interval = Interval{1, 10}
		}
		return
	}

	lo, hi := s.Data.Min, s.Data.Max
	if s.isLog() {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	ext := s.Expand.Relative*(hi-lo) + s.Expand.Absolute
	lo, hi = lo-ext, hi+ext
	if s.isLog() {
		lo, hi = math.Pow(10, lo), math.Pow(10, hi)
	} else if s.BeginAtZero {
		// Expansion must not move an axis starting at zero away from it.
		if s.Data.Min == 0 {
			lo = 0
		}
		if s.Data.Max == 0 {
			hi = 0
		}
	}

	// Determine the edges of s. A degenerate range is a fixed value,
	// a non-degenerate range clips the autoscaled value.
	s.Min = clip(lo, s.MinRange)
	s.Max = clip(hi, s.MaxRange)
}

func clip(x float64, r Interval) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	if r.Min > x {
		x = r.Min
	}
	if r.Max < x {
		x = r.Max
	}
	return x
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

func (i *Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn of autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}

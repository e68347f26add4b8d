// Package data contains the chart data read by the category table axis
// and loaders to fill it from spreadsheets.
package data

import "math"

// Dataset is one data series: a name, one value per category and the
// color used to draw it. Missing values are NaN.
type Dataset struct {
	Label       string    `yaml:"label"`
	Data        []float64 `yaml:"data"`
	BorderColor string    `yaml:"borderColor"`
	Hidden      bool      `yaml:"hidden"`
}

// LegendItem reports the visibility of the datasets labeled Text.
type LegendItem struct {
	Text   string
	Hidden bool
}

// Chart is the data of one chart.
type Chart struct {
	// Labels are the category labels. XLabels and YLabels, if set, take
	// precedence for horizontal and vertical axes respectively.
	Labels  []string `yaml:"labels"`
	XLabels []string `yaml:"xLabels"`
	YLabels []string `yaml:"yLabels"`

	Datasets []Dataset `yaml:"datasets"`

	// Legend is maintained by BuildLegend and Toggle.
	Legend []LegendItem `yaml:"-"`
}

// BuildLegend (re)creates the legend with one item per dataset, hidden
// iff the dataset is marked Hidden.
func (c *Chart) BuildLegend() {
	c.Legend = c.Legend[:0]
	for _, ds := range c.Datasets {
		c.Legend = append(c.Legend, LegendItem{Text: ds.Label, Hidden: ds.Hidden})
	}
}

// SetHidden sets the visibility of all legend items named name and
// reports whether there was one.
func (c *Chart) SetHidden(name string, hidden bool) bool {
	found := false
	for i := range c.Legend {
		if c.Legend[i].Text == name {
			c.Legend[i].Hidden = hidden
			found = true
		}
	}
	return found
}

// Toggle flips the visibility of the legend items named name and
// reports whether there was one.
func (c *Chart) Toggle(name string) bool {
	found := false
	for i := range c.Legend {
		if c.Legend[i].Text == name {
			c.Legend[i].Hidden = !c.Legend[i].Hidden
			found = true
		}
	}
	return found
}

// IsVisible reports whether the legend contains a not hidden item named
// label.
func (c *Chart) IsVisible(label string) bool {
	for _, l := range c.Legend {
		if !l.Hidden && l.Text == label {
			return true
		}
	}
	return false
}

// VisibleDatasets returns the datasets whose legend item is not hidden
// in their original order.
func (c *Chart) VisibleDatasets() []Dataset {
	var visible []Dataset
	for _, ds := range c.Datasets {
		if c.IsVisible(ds.Label) {
			visible = append(visible, ds)
		}
	}
	return visible
}

// ValueRange returns the minimum and maximum of all non NaN values of the
// given datasets. Both are NaN if there is no such value.
func ValueRange(datasets []Dataset) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, ds := range datasets {
		for _, v := range ds.Data {
			if math.IsNaN(v) {
				continue
			}
			min, max = math.Min(min, v), math.Max(max, v)
		}
	}
	if min > max {
		return math.NaN(), math.NaN()
	}
	return min, max
}

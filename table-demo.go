//go:build ignore
// +build ignore

package main

import (
	"image/color"
	"log"
	"math"

	"github.com/vdobler/datatable"
	"github.com/vdobler/datatable/canvas"
	"github.com/vdobler/datatable/data"
	"github.com/vdobler/datatable/geom"
)

func main() {
	sales := &data.Chart{
		Labels: []string{"Q1", "Q2", "Q3", "Q4"},
		Datasets: []data.Dataset{
			{Label: "North", Data: []float64{12, 19, 3, 5}},
			{Label: "South", Data: []float64{2, 3, 20, 5}},
			{Label: "West", Data: []float64{8, math.NaN(), 11, 14}},
		},
	}
	sales.BuildLegend()
	datatable.AssignColors(sales)

	opts := datatable.DefaultOptions()
	opts.DataTable.Display = true
	opts.ScaleLabel.Display = true
	opts.ScaleLabel.LabelString = "Quarter"

	chart := datatable.NewChart(sales, datatable.NewAxis(opts, sales))
	chart.Background = color.White
	chart.Geoms = []datatable.Geom{geom.Bar{Border: 1}}
	write(chart, "table.png")

	// Same chart without the West region.
	sales.Toggle("West")
	write(chart, "table-hidden.png")
	sales.Toggle("West")

	months := &data.Chart{
		Labels: []string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
	}
	for i, name := range []string{"Rain", "Sun"} {
		ds := data.Dataset{Label: name}
		for m := range months.Labels {
			ds.Data = append(ds.Data, math.Round(50+40*math.Sin(float64(m+3*i)/2)))
		}
		months.Datasets = append(months.Datasets, ds)
	}
	months.BuildLegend()
	datatable.AssignColors(months)

	opts = datatable.DefaultOptions()
	opts.DataTable.Display = true
	opts.DataTable.Precision = 0
	chart = datatable.NewChart(months, datatable.NewAxis(opts, months))
	chart.Background = color.White
	chart.Geoms = []datatable.Geom{geom.Line{Points: 3}}
	write(chart, "table-rotated.png")
}

func write(chart *datatable.Chart, name string) {
	err := chart.WriteFile("testdata/"+name, canvas.PNG, 600, 400)
	if err != nil {
		log.Fatal(err)
	}
}

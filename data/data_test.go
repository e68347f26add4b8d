package data

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleChart() *Chart {
	c := &Chart{
		Labels: []string{"Q1", "Q2", "Q3"},
		Datasets: []Dataset{
			{Label: "Revenue", Data: []float64{1, 2, 3}},
			{Label: "Cost", Data: []float64{-1, math.NaN(), 7}},
			{Label: "Margin", Data: []float64{0, 0, 0}, Hidden: true},
		},
	}
	c.BuildLegend()
	return c
}

func labels(datasets []Dataset) []string {
	var names []string
	for _, ds := range datasets {
		names = append(names, ds.Label)
	}
	return names
}

func TestVisibleDatasets(t *testing.T) {
	c := sampleChart()
	assert.Equal(t, []string{"Revenue", "Cost"}, labels(c.VisibleDatasets()))

	require.True(t, c.Toggle("Revenue"))
	assert.Equal(t, []string{"Cost"}, labels(c.VisibleDatasets()))

	require.True(t, c.SetHidden("Margin", false))
	assert.Equal(t, []string{"Cost", "Margin"}, labels(c.VisibleDatasets()))

	assert.False(t, c.Toggle("Nope"))
	assert.False(t, c.SetHidden("Nope", true))
}

func TestVisibleDatasetsWithoutLegend(t *testing.T) {
	c := sampleChart()
	c.Legend = nil
	assert.Empty(t, c.VisibleDatasets())
}

func TestValueRange(t *testing.T) {
	c := sampleChart()
	min, max := ValueRange(c.Datasets)
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)

	min, max = ValueRange([]Dataset{{Data: []float64{math.NaN()}}})
	assert.True(t, math.IsNaN(min))
	assert.True(t, math.IsNaN(max))
}

func writeWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	name := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(name))
	return name
}

func TestReadXLSX(t *testing.T) {
	name := writeWorkbook(t, map[string]interface{}{
		"B1": "Q1", "C1": "Q2", "D1": "Q3",
		"A2": "Revenue", "B2": 10, "C2": 20.5, "D2": 30,
		"A3": "Cost", "B3": 4, "C3": "n/a",
		"A5": "Margin", "D5": 3,
	})

	c, err := ReadXLSX(name, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, c.Labels)
	require.Len(t, c.Datasets, 3)

	assert.Equal(t, "Revenue", c.Datasets[0].Label)
	assert.Equal(t, []float64{10, 20.5, 30}, c.Datasets[0].Data)

	cost := c.Datasets[1].Data
	assert.Equal(t, 4.0, cost[0])
	assert.True(t, math.IsNaN(cost[1]))
	assert.True(t, math.IsNaN(cost[2]))

	assert.Equal(t, "Margin", c.Datasets[2].Label)
	assert.True(t, math.IsNaN(c.Datasets[2].Data[0]))
	assert.Equal(t, 3.0, c.Datasets[2].Data[2])

	assert.Len(t, c.Legend, 3)
	assert.Len(t, c.VisibleDatasets(), 3)
}

func TestReadXLSXErrors(t *testing.T) {
	name := writeWorkbook(t, map[string]interface{}{"A1": "only a corner"})

	_, err := ReadXLSX(name, "Sheet1")
	assert.True(t, errors.Is(err, ErrNoLabels), "got %v", err)

	_, err = ReadXLSX(name, "Missing")
	assert.True(t, errors.Is(err, ErrSheetNotFound), "got %v", err)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "Missing", le.Sheet)

	_, err = ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	assert.Error(t, err)
}

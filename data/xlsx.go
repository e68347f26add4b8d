package data

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads chart data from the named sheet of an Excel workbook.
// An empty sheet name selects the first sheet.
//
// The first row holds the category labels starting in column B, every
// further row with a non-empty first cell is a dataset named by that cell.
// Cells which are empty or not numeric become NaN.
func ReadXLSX(path, sheet string) (*Chart, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return readWorkbook(f, path, sheet)
}

func readWorkbook(f *excelize.File, path, sheet string) (*Chart, error) {
	sheets := f.GetSheetList()
	if sheet == "" && len(sheets) > 0 {
		sheet = sheets[0]
	}
	if !contains(sheets, sheet) {
		return nil, &LoadError{Source: path, Sheet: sheet, Err: ErrSheetNotFound}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Source: path, Sheet: sheet, Err: err}
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, &LoadError{Source: path, Sheet: sheet, Err: ErrNoLabels}
	}

	chart := &Chart{}
	for _, cell := range rows[0][1:] {
		chart.Labels = append(chart.Labels, strings.TrimSpace(cell))
	}

	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		ds := Dataset{
			Label: strings.TrimSpace(row[0]),
			Data:  make([]float64, len(chart.Labels)),
		}
		for j := range ds.Data {
			ds.Data[j] = math.NaN()
			if j+1 < len(row) {
				ds.Data[j] = parseValue(row[j+1])
			}
		}
		chart.Datasets = append(chart.Datasets, ds)
	}
	chart.BuildLegend()

	return chart, nil
}

// parseValue parses a cell as a number, returning NaN if it is none.
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}

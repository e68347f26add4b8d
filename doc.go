// Package datatable draws category axes with a data table below them.
//
// It uses gonum.org/v1/plot for rendering but lays out and draws the axis
// itself on an HTML canvas like drawing surface (see package canvas).
//
// Axis
//
// An Axis maps the categories of a chart (its labels) to pixels. In band
// layout (Options.Offset) each category is centered in its own band and
// the grid lines separate the categories, otherwise categories lie on the
// grid lines. Tick labels are rotated in one degree steps until the
// longest label fits its band.
//
// Data table
//
// With DataTable.Display the axis reserves one row per visible dataset
// below its tick labels and draws a table: the dataset names in a gutter
// left of the first category and the values aligned with the categories.
// Hiding a dataset in the legend (data.Chart.Toggle) removes its row.
//
// Layout
//
// A layout pass (Scale.Update) determines the category range, builds the
// ticks, computes the label rotation and fits the axis size; AfterFit
// grows the axis by the table rows. Chart runs the layout, places the
// axis and its Panel and draws the axis and the geoms (see package geom).
//
// Configuration
//
// Scale types are registered by name (RegisterScaleType); the type
// "datatable" is always available. Options are decoded from YAML on top
// of the defaults of the type, see Config and DecodeOptions.
package datatable

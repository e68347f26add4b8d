// Command datatable renders a category chart with a data table below its
// axis from a YAML chart description or an Excel workbook.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/datatable"
	"github.com/vdobler/datatable/canvas"
	"github.com/vdobler/datatable/data"
	"github.com/vdobler/datatable/geom"
)

var (
	outputPath string
	format     string
	sheet      string
	hide       []string
	geomName   string
	width      float64
	height     float64
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datatable",
		Short: "Render category charts with a data table below the axis",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log layout details")

	renderCmd := &cobra.Command{
		Use:   "render [chart.yaml|book.xlsx]",
		Short: "Render a chart to PNG or SVG",
		Long: `render draws the chart described by a YAML file or the first
(or --sheet) worksheet of an Excel workbook. In a worksheet the first row
holds the category labels, the first column the dataset names.`,
		Args: cobra.ExactArgs(1),
		RunE: render,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input with .png or .svg extension)")
	renderCmd.Flags().StringVar(&format, "format", "", "Output format: png or svg (default: from output extension)")
	renderCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from a workbook (default: first sheet)")
	renderCmd.Flags().StringArrayVar(&hide, "hide", nil, "Hide the named dataset (repeatable)")
	renderCmd.Flags().StringVar(&geomName, "geom", "", "Geom drawing the data: line, bar, stack or none")
	renderCmd.Flags().Float64Var(&width, "width", 0, "Width of the chart")
	renderCmd.Flags().Float64Var(&height, "height", 0, "Height of the chart")

	defaultsCmd := &cobra.Command{
		Use:   "defaults [scale-type]",
		Short: "Print the default options of a scale type as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  defaults,
	}

	rootCmd.AddCommand(renderCmd, defaultsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func render(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig(inputPath)
	if err != nil {
		return err
	}
	if geomName != "" {
		cfg.Geom = geomName
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}

	chart, err := cfg.NewChart()
	if err != nil {
		return fmt.Errorf("building chart from %s: %w", inputPath, err)
	}
	g, err := geomByName(cfg.Geom)
	if err != nil {
		return err
	}
	if g != nil {
		chart.Geoms = append(chart.Geoms, g)
	}
	for _, name := range hide {
		if !chart.Data.SetHidden(name, true) {
			slog.Warn("no such dataset", "name", name)
		}
	}

	out, outFormat, err := output(inputPath)
	if err != nil {
		return err
	}
	if err := chart.WriteFile(out, outFormat, cfg.Width, cfg.Height); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	slog.Info("chart written", "file", out, "format", outFormat)
	return nil
}

// loadConfig reads a YAML config or creates a default config for the data
// of a workbook.
func loadConfig(path string) (*datatable.Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		d, err := data.ReadXLSX(path, sheet)
		if err != nil {
			return nil, err
		}
		cfg := datatable.DefaultConfig()
		cfg.Data = *d
		// Workbooks are shown with their values, that is what they are for.
		var node yaml.Node
		if err := node.Encode(map[string]interface{}{
			"dataTable": map[string]interface{}{"display": true},
		}); err != nil {
			return nil, err
		}
		cfg.Scale.Options = node
		return &cfg, nil
	default:
		return datatable.ReadConfig(path)
	}
}

// output determines the output file and its format.
func output(inputPath string) (string, canvas.Format, error) {
	out := outputPath
	f := canvas.Format(strings.ToLower(format))
	if f == "" {
		f = canvas.PNG
		if strings.EqualFold(filepath.Ext(out), ".svg") {
			f = canvas.SVG
		}
	}
	if f != canvas.PNG && f != canvas.SVG {
		return "", "", fmt.Errorf("invalid format: %s (must be png or svg)", format)
	}
	if out == "" {
		out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + string(f)
	}
	return out, f, nil
}

func geomByName(name string) (datatable.Geom, error) {
	switch name {
	case "line":
		return geom.Line{Points: 3}, nil
	case "bar", "dodge":
		return geom.Bar{Border: 1}, nil
	case "stack":
		return geom.Bar{Position: "stack", Border: 1}, nil
	case "none", "":
		return nil, nil
	}
	return nil, fmt.Errorf("invalid geom: %s (must be line, bar, stack or none)", name)
}

func defaults(cmd *cobra.Command, args []string) error {
	name := "datatable"
	if len(args) > 0 {
		name = args[0]
	}
	opts, err := datatable.ScaleDefaults(name)
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(datatable.ScaleTypes(), ", "))
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return err
	}
	return enc.Close()
}

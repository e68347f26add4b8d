package datatable

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vdobler/datatable/data"
)

// Config is the YAML description of a chart.
type Config struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    Padding `yaml:"padding"`
	Background string  `yaml:"background"`

	// Geom names the geom drawing the data, e.g. "line" or "bar".
	Geom string `yaml:"geom"`

	Values ValuesConfig `yaml:"values"`
	Data   data.Chart   `yaml:"data"`
	Scale  ScaleConfig  `yaml:"scale"`
}

// ValuesConfig configures the value scale.
type ValuesConfig struct {
	Transformation string   `yaml:"transformation"`
	BeginAtZero    bool     `yaml:"beginAtZero"`
	Min            *float64 `yaml:"min"`
	Max            *float64 `yaml:"max"`
}

// ScaleConfig selects the category scale type. Options are decoded on
// top of the defaults registered for Type.
type ScaleConfig struct {
	Type    string    `yaml:"type"`
	Options yaml.Node `yaml:"options"`
}

// DefaultConfig returns the configuration used for keys missing in a
// config file.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     400,
		Padding:    Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Background: "white",
		Geom:       "line",
		Values:     ValuesConfig{Transformation: LinearTrans.Name},
		Scale:      ScaleConfig{Type: "datatable"},
	}
}

// LoadConfig decodes a YAML config from r on top of DefaultConfig.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("datatable: decoding config: %w", err)
	}
	return &cfg, nil
}

// ReadConfig reads the YAML config file name.
func ReadConfig(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, &data.LoadError{Source: name, Err: err}
	}
	return cfg, nil
}

// NewChart builds the chart described by cfg. The legend of the data is
// rebuilt and datasets without a color get a default one.
func (cfg *Config) NewChart() (*Chart, error) {
	d := cfg.Data
	d.Datasets = append([]data.Dataset(nil), cfg.Data.Datasets...)
	d.Legend = nil
	d.BuildLegend()
	AssignColors(&d)
	if len(d.Labels) == 0 && len(d.XLabels) == 0 && len(d.YLabels) == 0 {
		return nil, data.ErrNoLabels
	}

	scale, err := NewScale(cfg.Scale.Type, &cfg.Scale.Options, &d)
	if err != nil {
		return nil, err
	}
	trans, err := TransformationByName(cfg.Values.Transformation)
	if err != nil {
		return nil, err
	}

	c := NewChart(&d, scale)
	c.Padding = cfg.Padding
	c.Background = ParseColor(cfg.Background, nil)
	c.Values.Trans = trans
	c.Values.BeginAtZero = cfg.Values.BeginAtZero
	if cfg.Values.Min != nil {
		c.Values.FixMin(*cfg.Values.Min)
	}
	if cfg.Values.Max != nil {
		c.Values.FixMax(*cfg.Values.Max)
	}
	return c, nil
}


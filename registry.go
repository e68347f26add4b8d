package datatable

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vdobler/datatable/data"
)

// ScaleConstructor creates a scale from resolved options reading from
// chart.
type ScaleConstructor func(opts Options, chart *data.Chart) Scale

type scaleType struct {
	ctor     ScaleConstructor
	defaults func() Options
}

var (
	registryMu sync.RWMutex
	registry   = map[string]scaleType{}
)

func init() {
	RegisterScaleType("datatable", func(opts Options, chart *data.Chart) Scale {
		return NewAxis(opts, chart)
	}, DefaultOptions)
}

// RegisterScaleType makes a scale type available under name. Registering
// a name twice replaces the first registration.
func RegisterScaleType(name string, ctor ScaleConstructor, defaults func() Options) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = scaleType{ctor: ctor, defaults: defaults}
}

// ScaleTypes returns the registered scale type names in sorted order.
func ScaleTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScaleDefaults returns the default options of the scale type name.
func ScaleDefaults(name string) (Options, error) {
	registryMu.RLock()
	st, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return Options{}, fmt.Errorf("%w %q", ErrUnknownScaleType, name)
	}
	return st.defaults(), nil
}

// NewScale creates a scale of type name. The options in node (which may
// be nil) are decoded on top of the type's defaults.
func NewScale(name string, node *yaml.Node, chart *data.Chart) (Scale, error) {
	registryMu.RLock()
	st, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScaleType, name)
	}
	opts, err := DecodeOptions(node, st.defaults())
	if err != nil {
		return nil, err
	}
	return st.ctor(opts, chart), nil
}

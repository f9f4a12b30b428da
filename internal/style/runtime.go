package style

import (
	"sort"
	"sync"

	"plotthemes/internal/colormap"
	"plotthemes/internal/colors"
)

// Runtime is an in-memory Sink standing in for a plotting library's global
// style state. The mutex keeps the maps consistent; it does not serialise
// theme applications, so concurrent appliers still race and the last one wins.
type Runtime struct {
	mu        sync.RWMutex
	params    Params
	colormaps map[string]colormap.Colormap
	colors    map[string]colors.Color
	styles    map[string]Params
	fonts     map[string]bool
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithFonts installs a font catalog. Without one every family is accepted.
func WithFonts(families ...string) RuntimeOption {
	return func(r *Runtime) {
		r.fonts = make(map[string]bool, len(families))
		for _, f := range families {
			r.fonts[f] = true
		}
	}
}

// NewRuntime returns a runtime holding the factory defaults.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		params:    Defaults(),
		colormaps: make(map[string]colormap.Colormap),
		colors:    make(map[string]colors.Color),
		styles:    make(map[string]Params),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Sink = (*Runtime)(nil)

func (r *Runtime) SetDefaultFont(family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.params[KeyFontFamily] = family
	r.params[KeyFontSansSerif] = family
}

func (r *Runtime) SetColorCycle(cycle []colors.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.params[KeyPropCycle] = append([]colors.Color(nil), cycle...)
}

// RegisterColorMap stores cm under its name, replacing any previous entry.
func (r *Runtime) RegisterColorMap(cm colormap.Colormap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colormaps[cm.Name()] = cm
}

func (r *Runtime) RegisterColor(c colors.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colors[c.Name()] = c
}

func (r *Runtime) ResetParams() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.params = Defaults()
}

func (r *Runtime) UpdateParams(p Params) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range p.Clone() {
		r.params[k] = v
	}
}

func (r *Runtime) RegisterStyle(name string, p Params) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[name] = p.Clone()
}

func (r *Runtime) HasFont(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fonts == nil {
		return true
	}
	return r.fonts[family]
}

// Fonts lists the catalog, or nil when none was installed.
func (r *Runtime) Fonts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fonts == nil {
		return nil
	}
	return sortedKeys(r.fonts)
}

func (r *Runtime) DefaultFont() string {
	family, _ := r.Param(KeyFontFamily).(string)
	return family
}

func (r *Runtime) ColorCycle() []colors.Color {
	cycle, _ := r.Param(KeyPropCycle).([]colors.Color)
	return append([]colors.Color(nil), cycle...)
}

func (r *Runtime) Param(key string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params[key]
}

// Params returns a snapshot of the current parameters.
func (r *Runtime) Params() Params {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params.Clone()
}

func (r *Runtime) ColorMap(name string) (colormap.Colormap, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cm, ok := r.colormaps[name]
	return cm, ok
}

func (r *Runtime) ColorMapNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.colormaps)
}

func (r *Runtime) Color(name string) (colors.Color, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.colors[name]
	return c, ok
}

func (r *Runtime) Style(name string) (Params, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.styles[name]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (r *Runtime) StyleNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.styles)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package preset overrides heuristic column mapping for known export
// layouts. A preset recognizes its format from the parsed table and
// rewrites the analyzer's column list with fixed mappings, leaving the
// heuristic guess in place where it has no opinion.
package preset

import (
	"strings"

	"github.com/tilikirja-dev/tilikirja/internal/analyze"
	"github.com/tilikirja-dev/tilikirja/internal/csvfile"
)

// Preset describes one known export format.
type Preset interface {
	// Name identifies the preset ("procountor").
	Name() string
	// Matches reports whether the parsed table looks like this format.
	Matches(t csvfile.Table) bool
	// Apply rewrites column mappings. It must not mutate its input or
	// the table rows; it returns a new column list.
	Apply(cols []analyze.Column) []analyze.Column
	// DefaultAccount is the recommended counter-account number.
	DefaultAccount() string
	// ValidRow reports whether a data row is structurally importable.
	// Invalid rows are skipped silently before import.
	ValidRow(row []string) bool
}

// Registry holds named presets in registration order.
type Registry struct {
	presets []Preset
	names   map[string]bool
}

// NewRegistry creates an empty preset registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]bool)}
}

// Register adds a preset. Panics on duplicate name.
func (r *Registry) Register(p Preset) {
	key := strings.ToLower(p.Name())
	if r.names[key] {
		panic("duplicate preset name: " + key)
	}
	r.names[key] = true
	r.presets = append(r.presets, p)
}

// Get returns the preset with the given name, or nil.
func (r *Registry) Get(name string) Preset {
	for _, p := range r.presets {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}

// Detect returns the first registered preset matching the table, or
// nil when the file is not a recognized format.
func (r *Registry) Detect(t csvfile.Table) Preset {
	for _, p := range r.presets {
		if p.Matches(t) {
			return p
		}
	}
	return nil
}

// DefaultRegistry returns a registry with all built-in presets.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Procountor{})
	return r
}

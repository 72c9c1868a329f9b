package control

import (
	"sort"
	"sync"
)

const (
	defaultPriority = 100
	defaultIcon     = "settings"
)

// Registry stores control definitions keyed by type. Iteration follows
// insertion order; replacing a definition keeps its original position.
type Registry struct {
	mu    sync.RWMutex
	defs  map[Type]Definition
	order []Type
}

// NewRegistry creates a registry seeded with the given definitions.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[Type]Definition, len(defs))}
	for _, def := range defs {
		r.Register(def.Type, def)
	}
	return r
}

// Register inserts or replaces the definition for t, filling unset fields
// with catalog defaults.
func (r *Registry) Register(t Type, def Definition) {
	def.Type = t
	if def.Label == "" {
		def.Label = string(t)
	}
	if def.CSSProperties == nil {
		def.CSSProperties = []string{}
	}
	if def.Options == nil {
		def.Options = map[string]any{}
	}
	if def.Group == "" {
		def.Group = GroupStyle
	}
	if def.Priority == 0 {
		def.Priority = defaultPriority
	}
	if def.Icon == "" {
		def.Icon = defaultIcon
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[t]; !exists {
		r.order = append(r.order, t)
	}
	r.defs[t] = def
}

// Get returns the definition registered for t.
func (r *Registry) Get(t Type) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[t]
	return def, ok
}

// Has reports whether t is registered.
func (r *Registry) Has(t Type) bool {
	_, ok := r.Get(t)
	return ok
}

// Count returns the number of registered controls.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// All returns every definition in insertion order.
func (r *Registry) All() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Definition, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.defs[t])
	}
	return out
}

// ByGroup returns the definitions belonging to g in insertion order.
func (r *Registry) ByGroup(g Group) []Definition {
	return r.filter(func(def Definition) bool { return def.Group == g })
}

// Sorted returns every definition ordered by ascending priority. Ties keep
// insertion order.
func (r *Registry) Sorted() []Definition {
	defs := r.All()
	SortByPriority(defs)
	return defs
}

// ControlsForProperty returns the types whose CSS properties include property.
func (r *Registry) ControlsForProperty(property string) []Type {
	var out []Type
	seen := make(map[Type]struct{})
	for _, def := range r.filter(func(def Definition) bool { return def.OwnsProperty(property) }) {
		if _, dup := seen[def.Type]; dup {
			continue
		}
		seen[def.Type] = struct{}{}
		out = append(out, def.Type)
	}
	return out
}

// ResponsiveControls returns the types whose values may vary per breakpoint.
func (r *Registry) ResponsiveControls() []Type {
	return typesOf(r.filter(func(def Definition) bool { return def.Responsive }))
}

// HoverControls returns the types that support a distinct hover value.
func (r *Registry) HoverControls() []Type {
	return typesOf(r.filter(func(def Definition) bool { return def.Hover }))
}

// Unregister removes t and reports whether it was present.
func (r *Registry) Unregister(t Type) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.defs[t]; !ok {
		return false
	}
	delete(r.defs, t)
	for i, existing := range r.order {
		if existing == t {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Override shallow-merges patch into the definition for t. Unknown types are
// left alone and reported with false.
func (r *Registry) Override(t Type, patch Patch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	def, ok := r.defs[t]
	if !ok {
		return false
	}
	r.defs[t] = patch.apply(def)
	return true
}

func (r *Registry) filter(keep func(Definition) bool) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Definition
	for _, t := range r.order {
		if def := r.defs[t]; keep(def) {
			out = append(out, def)
		}
	}
	return out
}

// SortByPriority orders defs by ascending priority in place, stable on ties.
func SortByPriority(defs []Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].Priority < defs[j].Priority
	})
}

func typesOf(defs []Definition) []Type {
	out := make([]Type, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.Type)
	}
	return out
}

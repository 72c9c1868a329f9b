package cssprop

import (
	"sort"
	"strings"
)

// Properties is a flat CSS property/value map keyed by kebab-case names.
type Properties map[string]string

// Set stores value under name when value is not empty.
func (p Properties) Set(name, value string) {
	if value == "" {
		return
	}
	p[name] = value
}

// Names returns the property names in lexical order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge copies every entry of other into p, overwriting collisions.
func (p Properties) Merge(other Properties) {
	for name, value := range other {
		p[name] = value
	}
}

// Camel returns a copy of p keyed by camelCase names.
func (p Properties) Camel() map[string]string {
	out := make(map[string]string, len(p))
	for name, value := range p {
		out[ToCamel(name)] = value
	}
	return out
}

// String renders the declarations as an inline style with sorted names.
func (p Properties) String() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p))
	for _, name := range p.Names() {
		parts = append(parts, name+": "+p[name])
	}
	return strings.Join(parts, "; ")
}

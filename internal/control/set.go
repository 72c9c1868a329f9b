package control

import (
	"bytes"
	"encoding/json"
)

// Set is an insertion-ordered collection of resolved definitions without
// duplicate types.
type Set struct {
	order []Type
	defs  map[Type]Definition
}

// NewSet builds a set from defs, keeping the first occurrence of each type.
func NewSet(defs ...Definition) *Set {
	s := &Set{defs: make(map[Type]Definition, len(defs))}
	for _, def := range defs {
		s.Add(def)
	}
	return s
}

// Add appends def unless its type is already present.
func (s *Set) Add(def Definition) bool {
	if s.defs == nil {
		s.defs = make(map[Type]Definition)
	}
	if _, exists := s.defs[def.Type]; exists {
		return false
	}
	s.defs[def.Type] = def
	s.order = append(s.order, def.Type)
	return true
}

// Get returns the definition for t.
func (s *Set) Get(t Type) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.defs[t]
	return def, ok
}

// Has reports whether t is in the set.
func (s *Set) Has(t Type) bool {
	_, ok := s.Get(t)
	return ok
}

// Len returns the number of definitions.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Types returns the types in insertion order.
func (s *Set) Types() []Type {
	if s == nil {
		return nil
	}
	return append([]Type(nil), s.order...)
}

// Definitions returns the definitions in insertion order.
func (s *Set) Definitions() []Definition {
	if s == nil {
		return nil
	}
	out := make([]Definition, 0, len(s.order))
	for _, t := range s.order {
		out = append(out, s.defs[t])
	}
	return out
}

// MarshalJSON encodes the set as an object keyed by type, preserving order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, def := range s.Definitions() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(def.Type))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(def)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

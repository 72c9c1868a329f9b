// Package classmap maps storefront CSS classes to the property panel controls
// and default values they bring.
package classmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/ports"
	pperrors "github.com/alexisbeaulieu97/proppanel/pkg/errors"
)

//go:embed mappings.yaml
var builtinMappings []byte

// Mapping describes how one CSS class is edited.
type Mapping struct {
	ClassName   string            `json:"className" yaml:"class"`
	Controls    []control.Type    `json:"controls" yaml:"controls"`
	Defaults    map[string]string `json:"defaults" yaml:"defaults"`
	Readonly    bool              `json:"readonly" yaml:"readonly"`
	Description string            `json:"description" yaml:"description"`
}

func (m Mapping) clone() Mapping {
	m.Controls = slices.Clone(m.Controls)
	if m.Controls == nil {
		m.Controls = []control.Type{}
	}
	m.Defaults = maps.Clone(m.Defaults)
	if m.Defaults == nil {
		m.Defaults = map[string]string{}
	}
	return m
}

// ControlLookup resolves control types to their definitions.
type ControlLookup interface {
	Get(t control.Type) (control.Definition, bool)
}

// PanelConfig is the class-derived part of a panel configuration.
type PanelConfig struct {
	Controls        *control.Set      `json:"controls"`
	Defaults        map[string]string `json:"defaults"`
	ReadonlyClasses []string          `json:"readonlyClasses"`
	CSSClasses      []string          `json:"cssClasses"`
}

// Catalog holds the class mappings. Lookups of unknown classes return empty
// results.
type Catalog struct {
	mu       sync.RWMutex
	order    []string
	mappings map[string]Mapping
	controls ControlLookup
	base     ports.BaseStyles
}

// NewCatalog builds a catalog over mappings. controls resolves types in
// BuildPanelConfig; base may be nil when no theme definitions are available.
func NewCatalog(controls ControlLookup, base ports.BaseStyles, mappings ...Mapping) *Catalog {
	c := &Catalog{
		mappings: make(map[string]Mapping, len(mappings)),
		controls: controls,
		base:     base,
	}
	for _, m := range mappings {
		c.RegisterMapping(m.ClassName, m)
	}
	return c
}

// NewDefaultCatalog builds a catalog from the embedded mapping table.
func NewDefaultCatalog(controls ControlLookup, base ports.BaseStyles) (*Catalog, error) {
	mappings, err := Builtin()
	if err != nil {
		return nil, err
	}
	return NewCatalog(controls, base, mappings...), nil
}

var (
	builtinOnce sync.Once
	builtinList []Mapping
	builtinErr  error
)

// Builtin returns a copy of the embedded mapping table.
func Builtin() ([]Mapping, error) {
	builtinOnce.Do(func() {
		builtinList, builtinErr = Load(builtinMappings)
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	out := make([]Mapping, 0, len(builtinList))
	for _, m := range builtinList {
		out = append(out, m.clone())
	}
	return out, nil
}

// LoadFile reads a mapping table from disk.
func LoadFile(path string) ([]Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pperrors.NewParseError(path, 0, err)
	}
	mappings, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mappings, nil
}

// Load decodes a YAML list of class mappings.
func Load(data []byte) ([]Mapping, error) {
	var mappings []Mapping
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&mappings); err != nil {
		return nil, fmt.Errorf("decode class mappings: %w", err)
	}

	var errs error
	seen := make(map[string]struct{}, len(mappings))
	out := make([]Mapping, 0, len(mappings))
	for i, m := range mappings {
		if m.ClassName == "" {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("class mapping", fmt.Sprintf("#%d", i), "class is required", nil))
			continue
		}
		if _, dup := seen[m.ClassName]; dup {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("class mapping", m.ClassName, "duplicate class", nil))
			continue
		}
		seen[m.ClassName] = struct{}{}
		out = append(out, m.clone())
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// RegisterMapping adds or replaces the mapping for className. Missing fields
// fall back to no controls, no defaults, editable and no description.
func (c *Catalog) RegisterMapping(className string, m Mapping) {
	m = m.clone()
	m.ClassName = className

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.mappings[className]; !exists {
		c.order = append(c.order, className)
	}
	c.mappings[className] = m
}

// Mapping returns the mapping for className.
func (c *Catalog) Mapping(className string) (Mapping, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.mappings[className]
	if !ok {
		return Mapping{}, false
	}
	return m.clone(), true
}

// ControlsForClass returns the control types of className, empty when unknown.
func (c *Catalog) ControlsForClass(className string) []control.Type {
	m, _ := c.Mapping(className)
	if m.Controls == nil {
		return []control.Type{}
	}
	return m.Controls
}

// DefaultsForClass returns the mapping defaults of className, empty when unknown.
func (c *Catalog) DefaultsForClass(className string) map[string]string {
	m, _ := c.Mapping(className)
	if m.Defaults == nil {
		return map[string]string{}
	}
	return m.Defaults
}

// IsReadonly reports whether className locks style edits.
func (c *Catalog) IsReadonly(className string) bool {
	m, _ := c.Mapping(className)
	return m.Readonly
}

// Description returns the human description of className.
func (c *Catalog) Description(className string) (string, bool) {
	m, ok := c.Mapping(className)
	return m.Description, ok
}

// ClassNames returns the known classes in registration order.
func (c *Catalog) ClassNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// IsValidClass reports whether className is known here or to the theme's
// own style definitions.
func (c *Catalog) IsValidClass(className string) bool {
	if _, ok := c.Mapping(className); ok {
		return true
	}
	return c.base != nil && c.base.HasDefinition(className)
}

// MergedDefaults returns the theme styles of className overlaid with the
// mapping defaults.
func (c *Catalog) MergedDefaults(className string) map[string]string {
	out := map[string]string{}
	if c.base != nil {
		maps.Copy(out, c.base.Styles(className))
	}
	maps.Copy(out, c.DefaultsForClass(className))
	return out
}

// BuildPanelConfig collects the controls, defaults and readonly flags of
// classNames. Control types keep first-seen order, later classes win default
// collisions, and types unknown to the control lookup are dropped.
func (c *Catalog) BuildPanelConfig(classNames []string) PanelConfig {
	cfg := PanelConfig{
		Controls:        control.NewSet(),
		Defaults:        map[string]string{},
		ReadonlyClasses: []string{},
		CSSClasses:      slices.Clone(classNames),
	}
	if cfg.CSSClasses == nil {
		cfg.CSSClasses = []string{}
	}

	var types []control.Type
	for _, name := range classNames {
		m, ok := c.Mapping(name)
		if !ok {
			continue
		}
		for _, t := range m.Controls {
			if !slices.Contains(types, t) {
				types = append(types, t)
			}
		}
		maps.Copy(cfg.Defaults, m.Defaults)
		if m.Readonly {
			cfg.ReadonlyClasses = append(cfg.ReadonlyClasses, name)
		}
	}

	if c.controls != nil {
		for _, t := range types {
			if def, ok := c.controls.Get(t); ok {
				cfg.Controls.Add(def)
			}
		}
	}
	return cfg
}

// ClassInfo summarises one class for the class picker.
type ClassInfo struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Readonly     bool   `json:"readonly"`
	ControlCount int    `json:"controlCount"`
}

// ClassGroup is one section of the class picker.
type ClassGroup struct {
	Name    string      `json:"name"`
	Classes []ClassInfo `json:"classes"`
}

// OtherGroup collects classes no prefix rule claims.
const OtherGroup = "Inne"

// groupRules is matched in order against class names; the first prefix wins.
var groupRules = []struct {
	prefix string
	group  string
}{
	{"pd-base-grid", "Layout"},
	{"grid-", "Layout"},
	{"pd-intro", "Intro"},
	{"pd-model", "Intro"},
	{"pd-cover", "Cover"},
	{"pd-asset", "Parametry"},
	{"bg-", "Tla"},
	{"pd-merit", "Zalety"},
	{"pd-specification", "Specyfikacja"},
	{"pd-slider", "Slider"},
	{"pd-parallax", "Parallax"},
	{"pd-pseudo-parallax", "Parallax"},
	{"pd-feature", "Cechy"},
	{"text-", "Tekst"},
	{"pd-icon", "Ikony"},
}

func groupOf(className string) string {
	for _, rule := range groupRules {
		if strings.HasPrefix(className, rule.prefix) {
			return rule.group
		}
	}
	return OtherGroup
}

// GroupedClasses classifies every known class by prefix. Groups appear in
// rule order with OtherGroup last; empty groups are omitted.
func (c *Catalog) GroupedClasses() []ClassGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byGroup := make(map[string][]ClassInfo)
	for _, name := range c.order {
		m := c.mappings[name]
		g := groupOf(name)
		byGroup[g] = append(byGroup[g], ClassInfo{
			Name:         name,
			Description:  m.Description,
			Readonly:     m.Readonly,
			ControlCount: len(m.Controls),
		})
	}

	out := []ClassGroup{}
	seen := make(map[string]struct{})
	for _, rule := range groupRules {
		if _, done := seen[rule.group]; done {
			continue
		}
		seen[rule.group] = struct{}{}
		if classes := byGroup[rule.group]; len(classes) > 0 {
			out = append(out, ClassGroup{Name: rule.group, Classes: classes})
		}
	}
	if classes := byGroup[OtherGroup]; len(classes) > 0 {
		out = append(out, ClassGroup{Name: OtherGroup, Classes: classes})
	}
	return out
}

// Package panel assembles the property panel configuration for one element
// being edited.
package panel

import (
	"context"
	"maps"
	"slices"

	"github.com/alexisbeaulieu97/proppanel/internal/classmap"
	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
	"github.com/alexisbeaulieu97/proppanel/internal/formatter"
	"github.com/alexisbeaulieu97/proppanel/internal/logger"
	"github.com/alexisbeaulieu97/proppanel/internal/ports"
	"github.com/alexisbeaulieu97/proppanel/internal/resolver"
	"github.com/alexisbeaulieu97/proppanel/internal/styledefs"
	"github.com/alexisbeaulieu97/proppanel/internal/validation"
)

// DefaultElement is the tag assumed when a request names none.
const DefaultElement = "div"

// Request identifies the element being edited.
type Request struct {
	Classes   []string
	Styles    map[string]string // current inline values, camelCase keys
	Tag       string
	BlockType string
}

// ClassesTab is the content of the classes tab.
type ClassesTab struct {
	Current           []string               `json:"current"`
	Available         []classmap.ClassGroup  `json:"available"`
	PrestashopClasses []styledefs.ClassGroup `json:"prestashopClasses"`
}

// Configuration is the resolved panel for one element.
type Configuration struct {
	Tabs            []Tab                              `json:"tabs"`
	ClassesTab      ClassesTab                         `json:"classesTab"`
	Controls        *control.Set                       `json:"controls"`
	Values          Values                             `json:"values"`
	Defaults        map[string]string                  `json:"defaults"`
	AppliedDefaults map[control.Type]map[string]string `json:"appliedDefaults"`
	CSSClasses      []string                           `json:"cssClasses"`
	ReadonlyClasses []string                           `json:"readonlyClasses"`
	ElementType     string                             `json:"elementType"`
	BlockType       string                             `json:"blockType,omitempty"`
	SectionLabel    string                             `json:"sectionLabel,omitempty"`
	Responsive      []control.Type                     `json:"responsive"`
	HoverSupported  []control.Type                     `json:"hoverSupported"`
}

// Tab returns the tab with key.
func (c *Configuration) Tab(key string) (Tab, bool) {
	for _, tab := range c.Tabs {
		if tab.Key == key {
			return tab, true
		}
	}
	return Tab{}, false
}

// groupedClasses is implemented by theme definitions that know their own
// class picker groups.
type groupedClasses interface {
	Grouped() []styledefs.ClassGroup
}

// Service builds panel configurations and converts control values.
type Service struct {
	controls  *control.Registry
	classes   *classmap.Catalog
	base      ports.BaseStyles
	resolver  *resolver.Resolver
	formatter *formatter.Formatter
	logger    ports.Logger
}

// NewService wires a service over the catalogs. blocks and base may be nil.
func NewService(controls *control.Registry, classes *classmap.Catalog, blocks ports.BlockRegistry, base ports.BaseStyles, log ports.Logger) *Service {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Service{
		controls:  controls,
		classes:   classes,
		base:      base,
		resolver:  resolver.New(controls, classes, resolver.WithBlocks(blocks), resolver.WithLogger(log)),
		formatter: formatter.New(controls),
		logger:    log.With("component", "panel"),
	}
}

// Controls returns the control catalog.
func (s *Service) Controls() *control.Registry { return s.controls }

// BuildConfiguration resolves controls, defaults and values for the element
// described by req. It never fails; unknown classes, tags and blocks simply
// contribute nothing.
func (s *Service) BuildConfiguration(ctx context.Context, req Request) *Configuration {
	tag := req.Tag
	if tag == "" {
		tag = DefaultElement
	}
	classes := slices.Clone(req.Classes)
	if classes == nil {
		classes = []string{}
	}

	classConfig := s.classes.BuildPanelConfig(classes)
	controls := s.resolver.Resolve(ctx, classes, tag, req.BlockType)
	defs := controls.Definitions()

	defaults := s.MergedDefaults(classes)
	flat := mergeValues(defaults, req.Styles)

	cfg := &Configuration{
		Tabs:       buildTabs(defs),
		ClassesTab: s.classesTab(classes),
		Controls:   controls,
		Values: Values{
			Flat:      flat,
			ByControl: groupValues(flat, defs),
		},
		Defaults:        defaults,
		AppliedDefaults: s.ApplyDefaults(defs, defaults),
		CSSClasses:      classes,
		ReadonlyClasses: classConfig.ReadonlyClasses,
		ElementType:     tag,
		BlockType:       req.BlockType,
		Responsive:      []control.Type{},
		HoverSupported:  []control.Type{},
	}
	if label, ok := s.resolver.SectionLabel(req.BlockType); ok {
		cfg.SectionLabel = label
	}
	for _, def := range defs {
		if def.Responsive {
			cfg.Responsive = append(cfg.Responsive, def.Type)
		}
		if def.Hover {
			cfg.HoverSupported = append(cfg.HoverSupported, def.Type)
		}
	}

	s.logger.Debug(ctx, "assembled panel configuration",
		"element_type", tag,
		"block_type", req.BlockType,
		"class_count", len(classes),
		"control_count", controls.Len(),
	)
	return cfg
}

func (s *Service) classesTab(current []string) ClassesTab {
	tab := ClassesTab{
		Current:           current,
		Available:         s.classes.GroupedClasses(),
		PrestashopClasses: []styledefs.ClassGroup{},
	}
	if grouped, ok := s.base.(groupedClasses); ok {
		if groups := grouped.Grouped(); groups != nil {
			tab.PrestashopClasses = groups
		}
	}
	return tab
}

// ResolveControls returns the controls applicable to an element.
func (s *Service) ResolveControls(ctx context.Context, classes []string, tag, blockType string) *control.Set {
	return s.resolver.Resolve(ctx, classes, tag, blockType)
}

// MergedDefaults merges the defaults of every class, later classes winning.
func (s *Service) MergedDefaults(classes []string) map[string]string {
	defaults := map[string]string{}
	for _, class := range classes {
		maps.Copy(defaults, s.classes.MergedDefaults(class))
	}
	return defaults
}

// ApplyDefaults picks, for each control, the defaults that feed one of its
// CSS properties. Keys keep the form they were found under. Controls with no
// applicable defaults are left out.
func (s *Service) ApplyDefaults(controls []control.Definition, defaults map[string]string) map[control.Type]map[string]string {
	applied := make(map[control.Type]map[string]string)
	for _, def := range controls {
		values := map[string]string{}
		for _, property := range def.CSSProperties {
			if key, v, ok := lookupProperty(defaults, property); ok {
				values[key] = v
			}
		}
		if len(values) > 0 {
			applied[def.Type] = values
		}
	}
	return applied
}

// FormatToCSS converts a control value into CSS declarations.
func (s *Service) FormatToCSS(controlType control.Type, value cssvalue.Value) cssprop.Properties {
	return s.formatter.Format(controlType, value)
}

// ParseCSS converts CSS declarations into a control value. Types without a
// dedicated parser get a flat camelCase copy.
func (s *Service) ParseCSS(ctx context.Context, controlType control.Type, css cssprop.Properties) cssvalue.Structured {
	if !s.formatter.HasParser(controlType) {
		s.logger.Debug(ctx, "no dedicated parser, copying declarations", "control_type", controlType)
	}
	return s.formatter.Parse(controlType, css)
}

// ValidateValues checks flat values against the properties of controls and
// returns the problems per control type. It is advisory and never blocks
// assembly; an empty map means every checked value is acceptable.
func (s *Service) ValidateValues(values map[string]string, controls []control.Definition) map[control.Type][]string {
	return validation.Failures(validation.RunChecks(controls, values))
}

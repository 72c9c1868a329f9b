// Package control holds the catalog of editable control types shown in the
// property panel and the metadata each one carries.
package control

import (
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
)

// Type identifies one editable style aspect, e.g. "typography".
type Type string

const (
	BoxModel          Type = "box-model"
	Typography        Type = "typography"
	ColorPicker       Type = "color-picker"
	GradientEditor    Type = "gradient-editor"
	LayoutFlex        Type = "layout-flex"
	LayoutGrid        Type = "layout-grid"
	Border            Type = "border"
	Background        Type = "background"
	Effects           Type = "effects"
	Transform         Type = "transform"
	Position          Type = "position"
	Size              Type = "size"
	SliderSettings    Type = "slider-settings"
	ParallaxSettings  Type = "parallax-settings"
	MediaPicker       Type = "media-picker"
	HoverStates       Type = "hover-states"
	Transition        Type = "transition"
	DeviceSwitcher    Type = "device-switcher"
	ResponsiveWrapper Type = "responsive-wrapper"
	ImageSettings     Type = "image-settings"
	ListSettings      Type = "list-settings"
)

// Types converts plain identifiers into control types.
func Types(names ...string) []Type {
	out := make([]Type, 0, len(names))
	for _, name := range names {
		out = append(out, Type(name))
	}
	return out
}

// Group decides which panel tab a control surfaces under.
type Group string

const (
	GroupStyle       Group = "Style"
	GroupLayout      Group = "Layout"
	GroupAdvanced    Group = "Advanced"
	GroupInteractive Group = "Interactive"
	GroupContent     Group = "Content"
	GroupStates      Group = "States"
)

// Groups lists every group in display order.
func Groups() []Group {
	return []Group{GroupStyle, GroupLayout, GroupAdvanced, GroupInteractive, GroupContent, GroupStates}
}

// Valid reports whether g is one of the known groups.
func (g Group) Valid() bool {
	for _, known := range Groups() {
		if g == known {
			return true
		}
	}
	return false
}

// Definition describes one control type.
type Definition struct {
	Type          Type           `json:"type"`
	Label         string         `json:"label"`
	CSSProperties []string       `json:"cssProperties"`
	DefaultValue  cssvalue.Value `json:"defaultValue"`
	Options       map[string]any `json:"options"`
	Group         Group          `json:"group"`
	Priority      int            `json:"priority"`
	Icon          string         `json:"icon"`
	Responsive    bool           `json:"responsive"`
	Hover         bool           `json:"hover"`
}

// OwnsProperty reports whether the control lists property among its CSS properties.
func (d Definition) OwnsProperty(property string) bool {
	for _, p := range d.CSSProperties {
		if p == property {
			return true
		}
	}
	return false
}

// Patch carries the fields of an Override call. Nil fields are left untouched.
type Patch struct {
	Label         *string
	CSSProperties []string
	DefaultValue  cssvalue.Value
	Options       map[string]any
	Group         *Group
	Priority      *int
	Icon          *string
	Responsive    *bool
	Hover         *bool
}

func (p Patch) apply(def Definition) Definition {
	if p.Label != nil {
		def.Label = *p.Label
	}
	if p.CSSProperties != nil {
		def.CSSProperties = append([]string(nil), p.CSSProperties...)
	}
	if p.DefaultValue != nil {
		def.DefaultValue = p.DefaultValue
	}
	if p.Options != nil {
		def.Options = p.Options
	}
	if p.Group != nil {
		def.Group = *p.Group
	}
	if p.Priority != nil {
		def.Priority = *p.Priority
	}
	if p.Icon != nil {
		def.Icon = *p.Icon
	}
	if p.Responsive != nil {
		def.Responsive = *p.Responsive
	}
	if p.Hover != nil {
		def.Hover = *p.Hover
	}
	return def
}

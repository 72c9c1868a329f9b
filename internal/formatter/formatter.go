// Package formatter converts control values to flat CSS declarations and back.
package formatter

import (
	"slices"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
)

type formatFunc func(cssvalue.Structured) cssprop.Properties

type parseFunc func(cssprop.Properties) cssvalue.Structured

// ControlLookup reports whether a control type is registered.
type ControlLookup interface {
	Has(t control.Type) bool
}

// simpleProperties are control types that name a CSS property directly. A
// scalar value for one of them is emitted verbatim.
var simpleProperties = []control.Type{
	"color", "background-color", "backgroundColor",
	"opacity", "visibility", "display", "overflow",
	"cursor", "pointer-events", "user-select",
	"text-transform", "text-decoration", "text-align",
	"font-size", "font-weight", "font-family", "line-height",
	"width", "height", "min-width", "max-width", "min-height", "max-height",
	"z-index", "zIndex",
}

// IsSimpleProperty reports whether t is a direct CSS property name.
func IsSimpleProperty(t control.Type) bool {
	return slices.Contains(simpleProperties, t)
}

// Formatter dispatches on control type. It is safe for concurrent use.
type Formatter struct {
	controls   ControlLookup
	formatters map[control.Type]formatFunc
	parsers    map[control.Type]parseFunc
}

// New creates a formatter that only formats types known to controls.
func New(controls ControlLookup) *Formatter {
	return &Formatter{
		controls: controls,
		formatters: map[control.Type]formatFunc{
			control.BoxModel:       formatBoxModel,
			control.Typography:     formatTypography,
			control.GradientEditor: formatGradient,
			control.LayoutFlex:     formatFlex,
			control.LayoutGrid:     formatGrid,
			control.Effects:        formatEffects,
			control.Transform:      formatTransform,
			control.Transition:     formatTransition,
			control.Border:         formatBorder,
			control.Background:     formatBackground,
			control.Position:       formatPosition,
			control.Size:           formatSize,
			control.ImageSettings:  formatImageSettings,
			control.ListSettings:   formatListSettings,
		},
		parsers: map[control.Type]parseFunc{
			control.BoxModel:   parseBoxModel,
			control.Typography: parseTypography,
			control.LayoutFlex: parseFlex,
			control.LayoutGrid: parseGrid,
		},
	}
}

// Format converts value into CSS declarations for control type t. Empty and
// no-op fields are left out. Unknown types produce no declarations.
func (f *Formatter) Format(t control.Type, value cssvalue.Value) cssprop.Properties {
	css := cssprop.Properties{}

	simple := IsSimpleProperty(t)
	if scalar, ok := value.(cssvalue.Scalar); ok && simple {
		css.Set(cssprop.ToKebab(string(t)), string(scalar))
		return css
	}

	if !simple && (f.controls == nil || !f.controls.Has(t)) {
		return css
	}

	structured, ok := value.(cssvalue.Structured)
	if !ok || structured == nil {
		return css
	}

	format, ok := f.formatters[t]
	if !ok {
		format = formatGeneric
	}
	return format(structured)
}

// Parse converts CSS declarations keyed by kebab-case names into the
// structured value of control type t. Types without a dedicated parser get
// a flat camelCase copy of the declarations.
func (f *Formatter) Parse(t control.Type, css cssprop.Properties) cssvalue.Structured {
	if css == nil {
		css = cssprop.Properties{}
	}
	if parse, ok := f.parsers[t]; ok {
		return parse(css)
	}
	return parseGeneric(css)
}

// HasParser reports whether t has a dedicated CSS parser.
func (f *Formatter) HasParser(t control.Type) bool {
	_, ok := f.parsers[t]
	return ok
}

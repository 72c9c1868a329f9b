// Package cssprop names CSS properties and holds flat property/value maps.
package cssprop

import (
	"strings"
	"unicode"
)

// kebabNames maps camelCase property names to their CSS spelling.
var kebabNames = map[string]string{
	// typography
	"fontSize":       "font-size",
	"fontWeight":     "font-weight",
	"fontFamily":     "font-family",
	"fontStyle":      "font-style",
	"lineHeight":     "line-height",
	"letterSpacing":  "letter-spacing",
	"textAlign":      "text-align",
	"textDecoration": "text-decoration",
	"textTransform":  "text-transform",
	"whiteSpace":     "white-space",
	"wordBreak":      "word-break",
	"wordSpacing":    "word-spacing",

	// colors and background
	"color":                "color",
	"backgroundColor":      "background-color",
	"borderColor":          "border-color",
	"background":           "background",
	"backgroundImage":      "background-image",
	"backgroundSize":       "background-size",
	"backgroundPosition":   "background-position",
	"backgroundRepeat":     "background-repeat",
	"backgroundAttachment": "background-attachment",

	// spacing
	"margin":        "margin",
	"marginTop":     "margin-top",
	"marginRight":   "margin-right",
	"marginBottom":  "margin-bottom",
	"marginLeft":    "margin-left",
	"padding":       "padding",
	"paddingTop":    "padding-top",
	"paddingRight":  "padding-right",
	"paddingBottom": "padding-bottom",
	"paddingLeft":   "padding-left",

	// sizing
	"width":     "width",
	"minWidth":  "min-width",
	"maxWidth":  "max-width",
	"height":    "height",
	"minHeight": "min-height",
	"maxHeight": "max-height",

	// border
	"border":       "border",
	"borderWidth":  "border-width",
	"borderStyle":  "border-style",
	"borderRadius": "border-radius",
	"borderTop":    "border-top",
	"borderRight":  "border-right",
	"borderBottom": "border-bottom",
	"borderLeft":   "border-left",

	// display and position
	"display":    "display",
	"position":   "position",
	"top":        "top",
	"right":      "right",
	"bottom":     "bottom",
	"left":       "left",
	"zIndex":     "z-index",
	"overflow":   "overflow",
	"overflowX":  "overflow-x",
	"overflowY":  "overflow-y",
	"visibility": "visibility",
	"opacity":    "opacity",

	// flex
	"flexDirection":  "flex-direction",
	"flexWrap":       "flex-wrap",
	"justifyContent": "justify-content",
	"alignItems":     "align-items",
	"alignContent":   "align-content",
	"alignSelf":      "align-self",
	"flex":           "flex",
	"flexGrow":       "flex-grow",
	"flexShrink":     "flex-shrink",
	"flexBasis":      "flex-basis",
	"order":          "order",
	"gap":            "gap",
	"rowGap":         "row-gap",
	"columnGap":      "column-gap",

	// grid
	"gridTemplateColumns": "grid-template-columns",
	"gridTemplateRows":    "grid-template-rows",
	"gridColumn":          "grid-column",
	"gridRow":             "grid-row",
	"gridArea":            "grid-area",
	"gridAutoFlow":        "grid-auto-flow",
	"gridAutoColumns":     "grid-auto-columns",
	"gridAutoRows":        "grid-auto-rows",

	// transform and transition
	"transform":                "transform",
	"transformOrigin":          "transform-origin",
	"transition":               "transition",
	"transitionDuration":       "transition-duration",
	"transitionTimingFunction": "transition-timing-function",
	"transitionDelay":          "transition-delay",
	"transitionProperty":       "transition-property",

	// effects
	"boxShadow":      "box-shadow",
	"textShadow":     "text-shadow",
	"filter":         "filter",
	"backdropFilter": "backdrop-filter",

	"cursor":            "cursor",
	"listStyle":         "list-style",
	"listStyleType":     "list-style-type",
	"listStylePosition": "list-style-position",
	"objectFit":         "object-fit",
	"objectPosition":    "object-position",
	"inset":             "inset",
	"aspectRatio":       "aspect-ratio",
	"borderCollapse":    "border-collapse",
	"tableLayout":       "table-layout",
}

var camelNames = func() map[string]string {
	reversed := make(map[string]string, len(kebabNames))
	for camel, kebab := range kebabNames {
		reversed[kebab] = camel
	}
	return reversed
}()

// ToKebab converts a camelCase property name to its CSS form. Names already in
// kebab-case pass through unchanged.
func ToKebab(name string) string {
	if kebab, ok := kebabNames[name]; ok {
		return kebab
	}

	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamel converts a CSS property name to the camelCase key used by
// structured values and class defaults.
func ToCamel(name string) string {
	if camel, ok := camelNames[name]; ok {
		return camel
	}

	parts := strings.Split(name, "-")
	var b strings.Builder
	b.Grow(len(name))
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(part[:1]) + part[1:])
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

// Known reports whether name is a camelCase property with an explicit mapping.
func Known(name string) bool {
	_, ok := kebabNames[name]
	return ok
}

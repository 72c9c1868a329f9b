package formatter

import (
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
)

// valueOr returns css[property] when present, even if empty.
func valueOr(css cssprop.Properties, property, fallback string) string {
	if v, ok := css[property]; ok {
		return v
	}
	return fallback
}

func emptyBox() cssvalue.Structured {
	return cssvalue.Structured{"top": "", "right": "", "bottom": "", "left": "", "linked": false}
}

func linkedBox(value string) cssvalue.Structured {
	return cssvalue.Structured{"top": value, "right": "", "bottom": "", "left": "", "linked": true}
}

func parseBoxModel(css cssprop.Properties) cssvalue.Structured {
	value := cssvalue.Structured{"borderRadius": emptyBox()}

	for _, property := range []string{"margin", "padding"} {
		if shorthand, ok := css[property]; ok {
			value[property] = linkedBox(shorthand)
			continue
		}
		box := emptyBox()
		for _, side := range sides {
			box[side] = css[property+"-"+side]
		}
		value[property] = box
	}

	if radius, ok := css["border-radius"]; ok {
		value["borderRadius"] = linkedBox(radius)
	}

	return value
}

func parseTypography(css cssprop.Properties) cssvalue.Structured {
	return cssvalue.Structured{
		"fontSize":       valueOr(css, "font-size", ""),
		"fontWeight":     valueOr(css, "font-weight", "400"),
		"fontFamily":     valueOr(css, "font-family", "inherit"),
		"fontStyle":      valueOr(css, "font-style", "normal"),
		"lineHeight":     valueOr(css, "line-height", ""),
		"letterSpacing":  valueOr(css, "letter-spacing", ""),
		"textTransform":  valueOr(css, "text-transform", "none"),
		"textDecoration": valueOr(css, "text-decoration", "none"),
		"textAlign":      valueOr(css, "text-align", "left"),
	}
}

func parseFlex(css cssprop.Properties) cssvalue.Structured {
	return cssvalue.Structured{
		"display":        valueOr(css, "display", "flex"),
		"flexDirection":  valueOr(css, "flex-direction", "row"),
		"flexWrap":       valueOr(css, "flex-wrap", "nowrap"),
		"justifyContent": valueOr(css, "justify-content", "flex-start"),
		"alignItems":     valueOr(css, "align-items", "stretch"),
		"gap":            valueOr(css, "gap", ""),
	}
}

func parseGrid(css cssprop.Properties) cssvalue.Structured {
	return cssvalue.Structured{
		"display":             valueOr(css, "display", "grid"),
		"gridTemplateColumns": valueOr(css, "grid-template-columns", ""),
		"gridTemplateRows":    valueOr(css, "grid-template-rows", ""),
		"gap":                 valueOr(css, "gap", "1rem"),
	}
}

func parseGeneric(css cssprop.Properties) cssvalue.Structured {
	value := make(cssvalue.Structured, len(css))
	for property, v := range css {
		value[cssprop.ToCamel(property)] = v
	}
	return value
}

package formatter

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
)

// field pairs a structured key with the CSS property it feeds.
type field struct {
	key      string
	property string
}

var (
	sides = []string{"top", "right", "bottom", "left"}

	// Unlinked radius values map logical sides onto corners.
	radiusCorners = []field{
		{"top", "border-top-left-radius"},
		{"right", "border-top-right-radius"},
		{"bottom", "border-bottom-right-radius"},
		{"left", "border-bottom-left-radius"},
	}

	typographyFields = []field{
		{"fontSize", "font-size"},
		{"fontWeight", "font-weight"},
		{"fontFamily", "font-family"},
		{"fontStyle", "font-style"},
		{"lineHeight", "line-height"},
		{"letterSpacing", "letter-spacing"},
		{"textTransform", "text-transform"},
		{"textDecoration", "text-decoration"},
		{"textAlign", "text-align"},
	}

	// Emitted whenever set, even to the CSS default, so a later style merge
	// overwrites an earlier non-default value.
	typographyAlwaysEmit = []string{"text-transform", "text-decoration", "text-align"}
	typographySkipValues = []string{"", "inherit", "normal"}

	flexFields = []field{
		{"display", "display"},
		{"flexDirection", "flex-direction"},
		{"flexWrap", "flex-wrap"},
		{"justifyContent", "justify-content"},
		{"alignItems", "align-items"},
		{"alignContent", "align-content"},
		{"gap", "gap"},
		{"rowGap", "row-gap"},
		{"columnGap", "column-gap"},
	}

	gridFields = []field{
		{"display", "display"},
		{"gridTemplateColumns", "grid-template-columns"},
		{"gridTemplateRows", "grid-template-rows"},
		{"gap", "gap"},
		{"rowGap", "row-gap"},
		{"columnGap", "column-gap"},
		{"gridAutoFlow", "grid-auto-flow"},
	}

	sizeFields = []field{
		{"width", "width"},
		{"height", "height"},
		{"minWidth", "min-width"},
		{"maxWidth", "max-width"},
		{"minHeight", "min-height"},
		{"maxHeight", "max-height"},
	}

	directBackgroundFields = []field{
		{"backgroundColor", "background-color"},
		{"backgroundImage", "background-image"},
		{"backgroundSize", "background-size"},
		{"backgroundPosition", "background-position"},
		{"backgroundRepeat", "background-repeat"},
	}

	imageSizePresets = map[string]string{
		"full":   "100%",
		"large":  "75%",
		"medium": "50%",
		"small":  "25%",
	}
)

const imageShadow = "0 4px 12px rgba(0, 0, 0, 0.15)"

func copyFields(css cssprop.Properties, value cssvalue.Structured, fields []field) {
	for _, f := range fields {
		css.Set(f.property, value.String(f.key))
	}
}

func formatBoxModel(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	for _, property := range []string{"margin", "padding"} {
		box := value.Object(property)
		if box == nil {
			continue
		}
		if box.Bool("linked") {
			css.Set(property, box.String("top"))
			continue
		}
		for _, side := range sides {
			css.Set(property+"-"+side, box.String(side))
		}
	}

	if radius := value.Object("borderRadius"); radius != nil {
		if radius.Bool("linked") {
			css.Set("border-radius", radius.String("top"))
		} else {
			copyFields(css, radius, radiusCorners)
		}
	}

	return css
}

func formatTypography(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}
	for _, f := range typographyFields {
		v := value.String(f.key)
		if slices.Contains(typographyAlwaysEmit, f.property) {
			css.Set(f.property, v)
			continue
		}
		if !slices.Contains(typographySkipValues, v) {
			css.Set(f.property, v)
		}
	}
	return css
}

func formatGradient(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	stops := value.Objects("stops")
	if len(stops) == 0 {
		return css
	}

	parts := make([]string, 0, len(stops))
	for _, stop := range stops {
		parts = append(parts, fmt.Sprintf("%s %s%%", stop.String("color"), stop.String("position")))
	}
	list := strings.Join(parts, ", ")

	if value.StringOr("type", "linear") == "linear" {
		css.Set("background", fmt.Sprintf("linear-gradient(%sdeg, %s)", value.StringOr("angle", "180"), list))
	} else {
		css.Set("background", fmt.Sprintf("radial-gradient(circle, %s)", list))
	}
	return css
}

func formatFlex(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}
	copyFields(css, value, flexFields)
	return css
}

func formatGrid(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}
	copyFields(css, value, gridFields)
	return css
}

func formatEffects(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	if shadow := value.Object("boxShadow"); shadow != nil && shadow.Bool("enabled") {
		inset := ""
		if shadow.Bool("inset") {
			inset = "inset "
		}
		css.Set("box-shadow", fmt.Sprintf("%s%s %s %s %s %s", inset,
			shadow.String("x"), shadow.String("y"), shadow.String("blur"), shadow.String("spread"), shadow.String("color")))
	}

	if shadow := value.Object("textShadow"); shadow != nil && shadow.Bool("enabled") {
		css.Set("text-shadow", fmt.Sprintf("%s %s %s %s",
			shadow.String("x"), shadow.String("y"), shadow.String("blur"), shadow.String("color")))
	}

	if opacity := value.String("opacity"); opacity != "1" {
		css.Set("opacity", opacity)
	}

	return css
}

func formatTransform(value cssvalue.Structured) cssprop.Properties {
	var fns []string

	if rotate := value.StringOr("rotate", "0"); rotate != "0" {
		fns = append(fns, fmt.Sprintf("rotate(%sdeg)", rotate))
	}

	scaleX, scaleY := value.StringOr("scaleX", "1"), value.StringOr("scaleY", "1")
	if scaleX != "1" || scaleY != "1" {
		fns = append(fns, fmt.Sprintf("scale(%s, %s)", scaleX, scaleY))
	}

	translateX, translateY := value.StringOr("translateX", "0"), value.StringOr("translateY", "0")
	if translateX != "0" || translateY != "0" {
		fns = append(fns, fmt.Sprintf("translate(%s, %s)", translateX, translateY))
	}

	skewX, skewY := value.StringOr("skewX", "0"), value.StringOr("skewY", "0")
	if skewX != "0" || skewY != "0" {
		fns = append(fns, fmt.Sprintf("skew(%sdeg, %sdeg)", skewX, skewY))
	}

	css := cssprop.Properties{}
	css.Set("transform", strings.Join(fns, " "))
	if origin := value.String("origin"); origin != "center" {
		css.Set("transform-origin", origin)
	}
	return css
}

func formatTransition(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}
	if !value.Bool("enabled") {
		return css
	}

	css.Set("transition", fmt.Sprintf("%s %s %s %s",
		value.StringOr("property", "all"),
		value.StringOr("duration", "0.3s"),
		value.StringOr("timing", "ease"),
		value.StringOr("delay", "0s"),
	))
	return css
}

func formatBorder(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	width := value.String("width")
	style := value.StringOr("style", "solid")
	color := value.String("color")

	switch {
	case width != "" && color != "":
		css.Set("border", fmt.Sprintf("%s %s %s", width, style, color))
	case width != "":
		css.Set("border-width", width)
	}

	if style != "solid" {
		css.Set("border-style", style)
	}
	css.Set("border-radius", value.String("radius"))

	return css
}

// isDirectBackground detects the shape that already carries camelCase CSS
// keys, as opposed to the typed {type, color, image, ...} shape.
func isDirectBackground(value cssvalue.Structured) bool {
	return value["backgroundImage"] != nil || value["backgroundColor"] != nil
}

func formatBackground(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	if isDirectBackground(value) {
		copyFields(css, value, directBackgroundFields)
		if attachment := value.String("backgroundAttachment"); attachment != "scroll" {
			css.Set("background-attachment", attachment)
		}
		return css
	}

	switch value.StringOr("type", "color") {
	case "color":
		css.Set("background-color", value.String("color"))
	case "image":
		image := value.String("image")
		if image == "" {
			break
		}
		css.Set("background-image", fmt.Sprintf("url('%s')", image))
		css.Set("background-position", value.StringOr("position", "center"))
		css.Set("background-size", value.StringOr("size", "cover"))
		css.Set("background-repeat", value.StringOr("repeat", "no-repeat"))
		if attachment := value.StringOr("attachment", "scroll"); attachment != "scroll" {
			css.Set("background-attachment", attachment)
		}
	case "gradient":
		return formatGradient(gradientOf(value))
	}

	return css
}

// gradientOf extracts the gradient-editor value from a typed background.
// The gradient kind travels as gradientType because type is taken by the
// background discriminator.
func gradientOf(value cssvalue.Structured) cssvalue.Structured {
	if nested := value.Object("gradient"); nested != nil {
		return nested
	}
	out := make(cssvalue.Structured, len(value))
	for k, v := range value {
		out[k] = v
	}
	out["type"] = value.StringOr("gradientType", "linear")
	return out
}

func formatPosition(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	if position := value.StringOr("position", "relative"); position != "static" {
		css.Set("position", position)
	}
	for _, side := range sides {
		css.Set(side, value.String(side))
	}
	css.Set("z-index", value.String("zIndex"))

	return css
}

func formatSize(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}
	copyFields(css, value, sizeFields)
	return css
}

func formatImageSettings(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	size := value.StringOr("size", "full")
	if size == "custom" {
		css.Set("width", value.String("customWidth"))
		if height := value.String("customHeight"); height != "auto" {
			css.Set("height", height)
		}
	} else if width, ok := imageSizePresets[size]; ok {
		css.Set("width", width)
		css.Set("height", "auto")
	}

	// Both margins are always written so a previous alignment never survives.
	css.Set("display", "block")
	switch value.StringOr("alignment", "left") {
	case "center":
		css.Set("margin-left", "auto")
		css.Set("margin-right", "auto")
	case "right":
		css.Set("margin-left", "auto")
		css.Set("margin-right", "0")
	default:
		css.Set("margin-left", "0")
		css.Set("margin-right", "auto")
	}

	if fit := value.String("objectFit"); fit != "fill" {
		css.Set("object-fit", fit)
	}

	switch radius := value.String("borderRadius"); radius {
	case "", "0", "0px":
	default:
		css.Set("border-radius", radius)
	}

	if value.Bool("shadow") {
		css.Set("box-shadow", imageShadow)
	}

	return css
}

func formatListSettings(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	// checkmarks, icons and arrows draw their own markers
	switch value.StringOr("listStyle", "checkmarks") {
	case "numbers":
		css.Set("list-style-type", value.StringOr("numberingStyle", "decimal"))
	case "bullets":
		css.Set("list-style-type", value.StringOr("bulletStyle", "disc"))
	case "none":
		css.Set("list-style-type", "none")
	}

	if gap := value.String("itemGap"); gap != "0" {
		css.Set("gap", gap)
	}
	if indent := value.String("indentation"); indent != "0" {
		css.Set("padding-left", indent)
	}

	layout := value.StringOr("layout", "vertical")
	columns := value.Int("columns", 1)
	switch {
	case layout == "grid" || (layout == "horizontal" && columns > 1):
		css.Set("display", "grid")
		css.Set("grid-template-columns", fmt.Sprintf("repeat(%d, 1fr)", columns))
	case layout == "horizontal":
		css.Set("display", "flex")
		css.Set("flex-wrap", "wrap")
	}

	return css
}

// formatGeneric maps every scalar field to its kebab-case property. Nested
// structures have no CSS form and are skipped.
func formatGeneric(value cssvalue.Structured) cssprop.Properties {
	css := cssprop.Properties{}

	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch value[k].(type) {
		case map[string]any, cssvalue.Structured, []any:
			continue
		}
		css.Set(cssprop.ToKebab(k), value.String(k))
	}
	return css
}

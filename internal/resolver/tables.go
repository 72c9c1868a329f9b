package resolver

import "github.com/alexisbeaulieu97/proppanel/internal/control"

var (
	baseControls = control.Types("box-model", "size")

	textTags = tagSet("h1", "h2", "h3", "h4", "h5", "h6", "p", "span", "a", "li", "label", "figcaption", "caption", "td", "th")

	containerTags = tagSet("div", "section", "article", "aside", "nav", "header", "footer", "main", "ul", "ol", "figure", "table", "tbody", "thead", "tr")

	imageTags = tagSet("img", "picture", "source", "figure")

	mediaTags = tagSet("video", "iframe", "embed")

	tableTags = tagSet("table", "td", "th", "tr")

	// Typography and color never apply to these, whatever contributed them.
	nonTextTags = tagSet("img", "picture", "source", "video", "iframe", "embed", "audio", "canvas", "svg", "hr", "br")

	textOnlyControls = []control.Type{control.Typography, control.ColorPicker}
)

// sectionKinds maps block types sent by the editor canvas, without their
// "pd-" prefix, to the section kinds of the section block.
var sectionKinds = map[string]string{
	"cover":           "cover",
	"parallax":        "parallax",
	"pseudo-parallax": "parallax",
	"intro":           "intro",
	"merits":          "merits",
	"specification":   "specification",
	"asset-list":      "asset-list",
	"slider":          "slider",
	"more-links":      "more-links",
	"where-2-ride":    "where-2-ride",
	"footer":          "footer",
	"block":           "block",
	"section":         "block",
	"base":            "block",
	"base-grid":       "intro",
	"block-row":       "block",
}

// prefixedTypes are storefront block types that the fallback table stores
// with a "pd-" prefix.
var prefixedTypes = tagSet(
	"intro", "cover", "slider", "parallax", "specification", "merits",
	"features", "more-links", "footer", "header", "gallery", "video",
	"accordion", "tabs", "cta", "hero", "grid", "section", "block", "base",
	"asset-list", "base-grid", "pseudo-parallax", "where-2-ride", "block-row",
)

// fallbackControls is consulted when no block declares controls itself.
// Types missing from the control catalog are dropped at resolution.
var fallbackControls = map[string][]control.Type{
	// media
	"image":           control.Types("image-settings", "border", "effects"),
	"image-gallery":   control.Types("image-settings", "layout-grid"),
	"video-embed":     control.Types("size", "border"),
	"parallax-image":  control.Types("parallax-settings", "background", "effects"),
	"picture-element": control.Types("image-settings", "size"),
	"cover":           control.Types("image-settings", "background", "effects", "size"),

	// content
	"heading":      control.Types("typography", "color-picker"),
	"text":         control.Types("typography", "color-picker"),
	"feature-card": control.Types("background", "border", "effects", "typography"),
	"spec-table":   control.Types("border", "typography"),
	"merit-list":   control.Types("layout-flex", "layout-grid", "color-picker", "typography"),
	"info-card":    control.Types("background", "border", "effects"),

	// layout
	"hero-banner":  control.Types("parallax-settings", "effects", "position", "background"),
	"grid-section": control.Types("layout-grid", "position"),
	"two-column":   control.Types("layout-flex", "size"),
	"three-column": control.Types("layout-flex", "size"),
	"full-width":   control.Types("background", "size"),

	// interactive
	"slider":     control.Types("slider-settings", "size"),
	"accordion":  control.Types("border", "typography", "color-picker", "transition"),
	"tabs":       control.Types("typography", "color-picker", "border"),
	"cta-button": control.Types("typography", "background", "border", "effects", "hover-states", "transition"),

	// storefront sections
	"pd-merits":          control.Types("list-settings", "layout-flex", "layout-grid", "color-picker", "typography", "box-model"),
	"pd-slider":          control.Types("slider-settings", "size"),
	"pd-parallax":        control.Types("parallax-settings", "background", "image-settings", "effects"),
	"pd-specification":   control.Types("border", "typography", "background", "table-settings"),
	"pd-asset-list":      control.Types("list-settings", "layout-grid", "layout-flex", "typography", "color-picker", "box-model"),
	"prestashop-section": control.Types("background", "size", "layout-flex"),
	"pd-intro":           control.Types("typography", "background", "layout-flex", "image-settings", "size", "box-model"),
	"pd-cover":           control.Types("image-settings", "background", "effects", "size", "parallax-settings"),
	"pd-features":        control.Types("layout-grid", "color-picker", "typography"),
	"pd-more-links":      control.Types("layout-flex", "typography", "background"),
	"pd-footer":          control.Types("typography", "background", "layout-flex"),
	"pd-header":          control.Types("typography", "background", "layout-flex"),
	"pd-gallery":         control.Types("layout-grid", "image-settings", "effects"),
	"pd-video":           control.Types("size", "border", "effects"),
	"pd-accordion":       control.Types("border", "typography", "color-picker", "transition"),
	"pd-tabs":            control.Types("typography", "color-picker", "border"),
	"pd-cta":             control.Types("typography", "background", "border", "effects"),
	"pd-hero":            control.Types("parallax-settings", "effects", "background", "size"),
	"pd-grid":            control.Types("layout-grid", "background"),
	"pd-section":         control.Types("background", "size", "layout-flex"),
	"pd-block":           control.Types("background", "layout-flex", "size"),
	"pd-base":            control.Types("background", "layout-flex", "size"),
	"pd-base-grid":       control.Types("layout-grid", "background", "box-model", "size"),
	"pd-pseudo-parallax": control.Types("parallax-settings", "background", "image-settings", "effects", "size"),
	"pd-where-2-ride":    control.Types("layout-grid", "typography", "link-settings", "box-model"),
	"pd-block-row":       control.Types("layout-flex", "background", "border", "box-model"),

	// imported markup
	"raw-html": control.Types("typography", "color-picker", "background", "border", "effects"),
}

func tagSet(tags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

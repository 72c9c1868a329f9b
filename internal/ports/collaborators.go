package ports

import (
	"context"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
)

// BaseStyles exposes the storefront's own per-class style definitions. Keys of
// the returned maps are camelCase CSS property names.
type BaseStyles interface {
	Styles(className string) map[string]string
	HasDefinition(className string) bool
}

// SelectorControls binds a CSS selector (or the literal "root") to the
// controls offered for elements it matches.
type SelectorControls struct {
	Selector string         `json:"selector" yaml:"selector"`
	Controls []control.Type `json:"controls" yaml:"controls"`
}

// Block is a page-builder block that may declare its own property panel
// controls per selector.
type Block interface {
	HasPropertyPanelConfig() bool
	// PropertyPanelConfig returns the controls declared for selector, or nil.
	PropertyPanelConfig(selector string) []control.Type
}

// SectionControls is implemented by blocks that render several storefront
// section kinds and know which controls each selector of a kind accepts.
// The returned list is ordered as declared. Implementations may be backed by
// remote data, so callers must tolerate errors and empty results.
type SectionControls interface {
	PropertyPanelControlsForType(ctx context.Context, kind string) ([]SelectorControls, error)
}

// BlockRegistry looks up blocks by their type identifier.
type BlockRegistry interface {
	Get(blockType string) (Block, bool)
}

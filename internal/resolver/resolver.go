// Package resolver decides which property panel controls apply to one element
// from its classes, its tag and the block it belongs to.
package resolver

import (
	"context"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/proppanel/internal/blocks"
	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/logger"
	"github.com/alexisbeaulieu97/proppanel/internal/ports"
)

// ControlLookup resolves control types to definitions.
type ControlLookup interface {
	Get(t control.Type) (control.Definition, bool)
}

// ClassLookup yields the controls a CSS class contributes.
type ClassLookup interface {
	ControlsForClass(className string) []control.Type
}

// Resolver computes applicable controls. It holds no per-call state, so
// identical inputs always resolve identically.
type Resolver struct {
	controls ControlLookup
	classes  ClassLookup
	blocks   ports.BlockRegistry
	logger   ports.Logger
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithBlocks sets the block registry consulted for block types.
func WithBlocks(registry ports.BlockRegistry) Option {
	return func(r *Resolver) {
		r.blocks = registry
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l ports.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a resolver over the given catalogs.
func New(controls ControlLookup, classes ClassLookup, opts ...Option) *Resolver {
	r := &Resolver{
		controls: controls,
		classes:  classes,
		logger:   logger.NewNoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "resolver")
	return r
}

// Resolve returns the controls applicable to an element, in contribution
// order without duplicates. blockType may be empty. Tag names are matched
// case-insensitively. The result is never empty for a catalog that knows
// box-model and size.
func (r *Resolver) Resolve(ctx context.Context, classes []string, tag, blockType string) *control.Set {
	types := r.ResolveTypes(ctx, classes, tag, blockType)

	set := control.NewSet()
	for _, t := range types {
		if def, ok := r.controls.Get(t); ok {
			set.Add(def)
		}
	}
	return set
}

// ResolveTypes is Resolve without the final catalog lookup. Types unknown
// to the catalog are still listed.
func (r *Resolver) ResolveTypes(ctx context.Context, classes []string, tag, blockType string) []control.Type {
	tag = strings.ToLower(strings.TrimSpace(tag))

	var types []control.Type
	if r.classes != nil {
		for _, class := range classes {
			types = append(types, r.classes.ControlsForClass(class)...)
		}
	}
	types = append(types, TagControls(tag)...)
	if blockType != "" {
		types = append(types, r.BlockControls(ctx, blockType, "root", classes)...)
	}

	types = dedupe(types)
	if has(nonTextTags, tag) {
		types = slices.DeleteFunc(types, func(t control.Type) bool {
			return slices.Contains(textOnlyControls, t)
		})
	}
	return types
}

// TagControls returns the base controls every element of tag gets.
func TagControls(tag string) []control.Type {
	out := slices.Clone(baseControls)
	if has(textTags, tag) {
		out = append(out, control.Typography, control.ColorPicker)
	}
	if has(containerTags, tag) {
		out = append(out, control.LayoutFlex, control.Background)
	}
	if has(imageTags, tag) {
		out = append(out, control.ImageSettings, control.Border, control.Effects)
	}
	if has(mediaTags, tag) {
		out = append(out, control.Border, control.Effects)
	}
	if has(tableTags, tag) {
		out = append(out, control.Border)
	}
	return out
}

// BlockControls returns the controls a block type contributes for selector.
// Storefront sections match the element classes against the section's
// selectors first, then blocks may declare their own controls, and finally
// the static fallback table applies. Unknown block types contribute nothing.
func (r *Resolver) BlockControls(ctx context.Context, blockType, selector string, classes []string) []control.Type {
	if kind, ok := SectionKind(blockType); ok {
		if controls := r.sectionControls(ctx, kind, selector, classes); len(controls) > 0 {
			return controls
		}
	}

	if r.blocks != nil {
		if block, ok := r.blocks.Get(blockType); ok && block != nil && block.HasPropertyPanelConfig() {
			if controls := block.PropertyPanelConfig(selector); len(controls) > 0 {
				r.logger.Debug(ctx, "using block-defined controls",
					"block_type", blockType, "selector", selector, "controls", controls)
				return controls
			}
		}
	}

	if controls, ok := fallbackControls[NormalizeBlockType(blockType)]; ok {
		return slices.Clone(controls)
	}
	return slices.Clone(fallbackControls[blockType])
}

func (r *Resolver) sectionControls(ctx context.Context, kind, selector string, classes []string) []control.Type {
	if r.blocks == nil {
		return nil
	}
	block, ok := r.blocks.Get(blocks.SectionBlockType)
	if !ok {
		return nil
	}
	section, ok := block.(ports.SectionControls)
	if !ok {
		return nil
	}

	entries, err := section.PropertyPanelControlsForType(ctx, kind)
	if err != nil {
		r.logger.Debug(ctx, "section controls unavailable", "section_kind", kind, "error", err)
		return nil
	}

	if best, ok := matchSelectors(classes, entries); ok && len(best.Controls) > 0 {
		r.logger.Debug(ctx, "matched classes to section selector",
			"section_kind", kind, "selector", best.Selector, "classes", classes)
		return slices.Clone(best.Controls)
	}

	controls := controlsOf(entries, selector)
	if len(controls) == 0 {
		controls = controlsOf(entries, "root")
	}
	if len(controls) > 0 {
		r.logger.Debug(ctx, "using section root controls", "section_kind", kind, "selector", selector)
	}
	return controls
}

// SectionLabel returns the display label of the storefront section kind that
// blockType denotes, when the section block knows one.
func (r *Resolver) SectionLabel(blockType string) (string, bool) {
	kind, ok := SectionKind(blockType)
	if !ok || r.blocks == nil {
		return "", false
	}
	block, ok := r.blocks.Get(blocks.SectionBlockType)
	if !ok {
		return "", false
	}
	labeled, ok := block.(interface {
		KindLabel(kind string) (string, bool)
	})
	if !ok {
		return "", false
	}
	return labeled.KindLabel(kind)
}

// SectionKind maps a block type to the storefront section kind it denotes.
// A leading "pd-" is ignored.
func SectionKind(blockType string) (string, bool) {
	kind, ok := sectionKinds[strings.TrimPrefix(blockType, "pd-")]
	return kind, ok
}

// NormalizeBlockType adds the "pd-" prefix to bare storefront block types.
func NormalizeBlockType(blockType string) string {
	if strings.HasPrefix(blockType, "pd-") || !has(prefixedTypes, blockType) {
		return blockType
	}
	return "pd-" + blockType
}

func dedupe(types []control.Type) []control.Type {
	seen := make(map[control.Type]struct{}, len(types))
	out := make([]control.Type, 0, len(types))
	for _, t := range types {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

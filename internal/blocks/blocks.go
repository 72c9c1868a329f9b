// Package blocks is the page-builder block registry consulted when an element
// belongs to a known block type.
package blocks

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/ports"
	pperrors "github.com/alexisbeaulieu97/proppanel/pkg/errors"
)

// SectionBlockType is the block that wraps imported storefront sections.
const SectionBlockType = "prestashop-section"

//go:embed blocks.yaml
var builtinBlocks []byte

// Block is a block type with optional per-selector panel controls.
type Block struct {
	Type          string                   `yaml:"type"`
	Label         string                   `yaml:"label"`
	PanelControls []ports.SelectorControls `yaml:"panel_controls"`
}

var _ ports.Block = (*Block)(nil)

// HasPropertyPanelConfig reports whether the block declares any controls.
func (b *Block) HasPropertyPanelConfig() bool {
	return b != nil && len(b.PanelControls) > 0
}

// PropertyPanelConfig returns the controls declared for selector.
func (b *Block) PropertyPanelConfig(selector string) []control.Type {
	if b == nil {
		return nil
	}
	for _, entry := range b.PanelControls {
		if entry.Selector == selector {
			return append([]control.Type(nil), entry.Controls...)
		}
	}
	return nil
}

// SectionKind lists the selectors of one storefront section layout.
type SectionKind struct {
	Kind      string                   `yaml:"kind"`
	Label     string                   `yaml:"label"`
	Selectors []ports.SelectorControls `yaml:"selectors"`
}

// SectionBlock renders imported storefront sections and knows, per section
// kind, which controls each of its selectors accepts.
type SectionBlock struct {
	Block        `yaml:",inline"`
	FallbackRoot []control.Type `yaml:"fallback_root"`
	Kinds        []SectionKind  `yaml:"kinds"`
}

var _ ports.SectionControls = (*SectionBlock)(nil)

// PropertyPanelControlsForType returns the ordered selector list for kind. The
// first entry is always "root". Kinds without selectors get only the fallback
// root entry.
func (s *SectionBlock) PropertyPanelControlsForType(ctx context.Context, kind string) ([]ports.SelectorControls, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, k := range s.Kinds {
		if k.Kind != kind || len(k.Selectors) == 0 {
			continue
		}
		out := make([]ports.SelectorControls, 0, len(k.Selectors)+1)
		out = append(out, ports.SelectorControls{Selector: "root", Controls: s.PropertyPanelConfig("root")})
		return append(out, cloneSelectors(k.Selectors)...), nil
	}

	return []ports.SelectorControls{{
		Selector: "root",
		Controls: append([]control.Type(nil), s.FallbackRoot...),
	}}, nil
}

// KindLabel returns the display label of kind.
func (s *SectionBlock) KindLabel(kind string) (string, bool) {
	for _, k := range s.Kinds {
		if k.Kind == kind {
			return k.Label, true
		}
	}
	return "", false
}

func cloneSelectors(in []ports.SelectorControls) []ports.SelectorControls {
	out := make([]ports.SelectorControls, 0, len(in))
	for _, entry := range in {
		out = append(out, ports.SelectorControls{
			Selector: entry.Selector,
			Controls: append([]control.Type(nil), entry.Controls...),
		})
	}
	return out
}

type document struct {
	Section *SectionBlock `yaml:"section"`
	Blocks  []Block       `yaml:"blocks"`
}

// Registry maps block types to blocks. It satisfies ports.BlockRegistry.
type Registry struct {
	mu     sync.RWMutex
	blocks map[string]ports.Block
}

var _ ports.BlockRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{blocks: make(map[string]ports.Block)}
}

// Register stores b under blockType, replacing any previous entry.
func (r *Registry) Register(blockType string, b ports.Block) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks[blockType] = b
}

// Get returns the block registered for blockType.
func (r *Registry) Get(blockType string) (ports.Block, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.blocks[blockType]
	return b, ok
}

// Types returns the registered block types sorted by name.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.blocks))
	for t := range r.blocks {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Default returns a registry built from the embedded block table.
func Default() (*Registry, error) {
	return Load(builtinBlocks)
}

// LoadFile reads a block table from disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pperrors.NewParseError(path, 0, err)
	}
	reg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Load decodes a block table. All structural problems are reported together.
func Load(data []byte) (*Registry, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode block table: %w", err)
	}

	reg := NewRegistry()
	var errs error

	if doc.Section != nil {
		if doc.Section.Type == "" {
			doc.Section.Type = SectionBlockType
		}
		errs = multierr.Append(errs, checkSelectors(doc.Section.Type, doc.Section.PanelControls))
		seenKinds := make(map[string]struct{}, len(doc.Section.Kinds))
		for _, k := range doc.Section.Kinds {
			if _, dup := seenKinds[k.Kind]; dup || k.Kind == "" {
				errs = multierr.Append(errs, pperrors.NewDefinitionError("section kind", k.Kind, "kind must be unique and non-empty", nil))
				continue
			}
			seenKinds[k.Kind] = struct{}{}
			errs = multierr.Append(errs, checkSelectors(doc.Section.Type+"/"+k.Kind, k.Selectors))
		}
		reg.Register(doc.Section.Type, doc.Section)
	}

	for i := range doc.Blocks {
		b := doc.Blocks[i]
		if b.Type == "" {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("block", fmt.Sprintf("#%d", i), "type is required", nil))
			continue
		}
		if _, dup := reg.Get(b.Type); dup {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("block", b.Type, "duplicate block type", nil))
			continue
		}
		errs = multierr.Append(errs, checkSelectors(b.Type, b.PanelControls))
		reg.Register(b.Type, &b)
	}

	if errs != nil {
		return nil, errs
	}
	return reg, nil
}

func checkSelectors(key string, entries []ports.SelectorControls) error {
	var errs error
	for i, entry := range entries {
		if entry.Selector == "" {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("block", key, fmt.Sprintf("selector #%d is empty", i), nil))
		}
		if len(entry.Controls) == 0 {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("block", key, fmt.Sprintf("selector %q lists no controls", entry.Selector), nil))
		}
	}
	return errs
}

package control

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
	pperrors "github.com/alexisbeaulieu97/proppanel/pkg/errors"
)

//go:embed definitions.yaml
var builtinDefinitions []byte

var (
	builtinOnce sync.Once
	builtinDefs []Definition
	builtinErr  error
)

type definitionEntry struct {
	Type          string         `yaml:"type"`
	Label         string         `yaml:"label"`
	CSSProperties []string       `yaml:"css_properties"`
	Default       any            `yaml:"default"`
	Options       map[string]any `yaml:"options"`
	Group         string         `yaml:"group"`
	Priority      int            `yaml:"priority"`
	Icon          string         `yaml:"icon"`
	Responsive    bool           `yaml:"responsive"`
	Hover         bool           `yaml:"hover"`
}

// LoadDefinitions decodes a YAML list of control definitions. Every invalid
// entry is reported, not just the first.
func LoadDefinitions(data []byte) ([]Definition, error) {
	var entries []definitionEntry
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode control definitions: %w", err)
	}

	var errs error
	seen := make(map[string]struct{}, len(entries))
	defs := make([]Definition, 0, len(entries))
	for i, entry := range entries {
		if entry.Type == "" {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("control", fmt.Sprintf("#%d", i), "type is required", nil))
			continue
		}
		if _, dup := seen[entry.Type]; dup {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("control", entry.Type, "duplicate control type", nil))
			continue
		}
		seen[entry.Type] = struct{}{}

		group := Group(entry.Group)
		if entry.Group != "" && !group.Valid() {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("control", entry.Type, fmt.Sprintf("unknown group %q", entry.Group), nil))
			continue
		}

		defs = append(defs, Definition{
			Type:          Type(entry.Type),
			Label:         entry.Label,
			CSSProperties: entry.CSSProperties,
			DefaultValue:  cssvalue.From(entry.Default),
			Options:       entry.Options,
			Group:         group,
			Priority:      entry.Priority,
			Icon:          entry.Icon,
			Responsive:    entry.Responsive,
			Hover:         entry.Hover,
		})
	}

	if errs != nil {
		return nil, errs
	}
	return defs, nil
}

// Builtin returns the control definitions shipped with the binary.
func Builtin() ([]Definition, error) {
	builtinOnce.Do(func() {
		builtinDefs, builtinErr = LoadDefinitions(builtinDefinitions)
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return append([]Definition(nil), builtinDefs...), nil
}

// NewDefaultRegistry creates a registry holding the built-in controls.
func NewDefaultRegistry() (*Registry, error) {
	defs, err := Builtin()
	if err != nil {
		return nil, err
	}
	return NewRegistry(defs...), nil
}

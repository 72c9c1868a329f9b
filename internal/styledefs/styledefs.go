// Package styledefs provides the storefront theme's own style definitions per
// CSS class. It backs class defaults in the property panel.
package styledefs

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	pperrors "github.com/alexisbeaulieu97/proppanel/pkg/errors"
)

//go:embed styles.yaml
var builtinStyles []byte

type entry struct {
	Class  string            `yaml:"class"`
	Group  string            `yaml:"group"`
	Styles map[string]string `yaml:"styles"`
}

// ClassGroup is a named set of theme classes shown together in the class picker.
type ClassGroup struct {
	Name    string   `json:"name"`
	Classes []string `json:"classes"`
}

// Definitions maps class names to camelCase styles. It is read-only after
// construction.
type Definitions struct {
	order  []string
	styles map[string]map[string]string
	groups []ClassGroup
}

var (
	defaultOnce sync.Once
	defaultDefs *Definitions
	defaultErr  error
)

// Default returns the definitions embedded in the binary.
func Default() (*Definitions, error) {
	defaultOnce.Do(func() {
		defaultDefs, defaultErr = Load(builtinStyles)
	})
	return defaultDefs, defaultErr
}

// LoadFile reads definitions from a YAML file on disk.
func LoadFile(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pperrors.NewParseError(path, 0, err)
	}
	defs, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Load decodes a YAML list of {class, styles} entries.
func Load(data []byte) (*Definitions, error) {
	var entries []entry
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode style definitions: %w", err)
	}

	defs := &Definitions{styles: make(map[string]map[string]string, len(entries))}
	var errs error
	for i, e := range entries {
		if e.Class == "" {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("style", fmt.Sprintf("#%d", i), "class is required", nil))
			continue
		}
		if _, dup := defs.styles[e.Class]; dup {
			errs = multierr.Append(errs, pperrors.NewDefinitionError("style", e.Class, "duplicate class", nil))
			continue
		}
		styles := e.Styles
		if styles == nil {
			styles = map[string]string{}
		}
		defs.styles[e.Class] = styles
		defs.order = append(defs.order, e.Class)
		if e.Group != "" {
			defs.addToGroup(e.Group, e.Class)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return defs, nil
}

// Styles returns a copy of the styles defined for className, empty when unknown.
func (d *Definitions) Styles(className string) map[string]string {
	out := map[string]string{}
	if d == nil {
		return out
	}
	for k, v := range d.styles[className] {
		out[k] = v
	}
	return out
}

// HasDefinition reports whether className is defined, even with no styles.
func (d *Definitions) HasDefinition(className string) bool {
	if d == nil {
		return false
	}
	_, ok := d.styles[className]
	return ok
}

// MergedStyles merges the styles of every class in order; later classes win.
func (d *Definitions) MergedStyles(classNames []string) map[string]string {
	out := map[string]string{}
	for _, name := range classNames {
		for k, v := range d.Styles(name) {
			out[k] = v
		}
	}
	return out
}

// ClassNames returns every defined class in file order.
func (d *Definitions) ClassNames() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.order...)
}

// Grouped returns the grouped classes in order of first appearance. Classes
// without a group are left out.
func (d *Definitions) Grouped() []ClassGroup {
	if d == nil {
		return nil
	}
	out := make([]ClassGroup, 0, len(d.groups))
	for _, g := range d.groups {
		out = append(out, ClassGroup{Name: g.Name, Classes: append([]string(nil), g.Classes...)})
	}
	return out
}

func (d *Definitions) addToGroup(name, className string) {
	for i := range d.groups {
		if d.groups[i].Name == name {
			d.groups[i].Classes = append(d.groups[i].Classes, className)
			return
		}
	}
	d.groups = append(d.groups, ClassGroup{Name: name, Classes: []string{className}})
}

package config

import (
	"github.com/alexisbeaulieu97/proppanel/internal/classmap"
	"github.com/alexisbeaulieu97/proppanel/internal/control"
)

// ApplyControlOverrides patches the registry with the configured overrides.
// It returns the types that were not registered.
func (c *Config) ApplyControlOverrides(registry *control.Registry) []string {
	var missing []string
	for _, o := range c.ControlOverrides {
		patch := control.Patch{
			Label:      o.Label,
			Priority:   o.Priority,
			Icon:       o.Icon,
			Responsive: o.Responsive,
			Hover:      o.Hover,
		}
		if o.Group != nil {
			group := control.Group(*o.Group)
			patch.Group = &group
		}
		if !registry.Override(control.Type(o.Type), patch) {
			missing = append(missing, o.Type)
		}
	}
	return missing
}

// ApplyClassMappings registers the configured class mappings, replacing any
// built-in mapping of the same class.
func (c *Config) ApplyClassMappings(catalog *classmap.Catalog) {
	for _, m := range c.ClassMappings {
		catalog.RegisterMapping(m.Class, classmap.Mapping{
			ClassName:   m.Class,
			Controls:    control.Types(m.Controls...),
			Defaults:    m.Defaults,
			Readonly:    m.Readonly,
			Description: m.Description,
		})
	}
}

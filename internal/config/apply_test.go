package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/proppanel/internal/classmap"
	"github.com/alexisbeaulieu97/proppanel/internal/control"
)

func TestApplyControlOverrides(t *testing.T) {
	t.Parallel()

	registry, err := control.NewDefaultRegistry()
	require.NoError(t, err)

	cfg := &Config{ControlOverrides: []ControlOverride{
		{Type: "typography", Label: ptr("Tekst"), Priority: ptr(1), Group: ptr("Layout")},
		{Type: "missing"},
	}}

	require.Equal(t, []string{"missing"}, cfg.ApplyControlOverrides(registry))

	def, ok := registry.Get(control.Typography)
	require.True(t, ok)
	require.Equal(t, "Tekst", def.Label)
	require.Equal(t, 1, def.Priority)
	require.Equal(t, control.GroupLayout, def.Group)
	require.True(t, def.Responsive)
}

func TestApplyClassMappings(t *testing.T) {
	t.Parallel()

	registry, err := control.NewDefaultRegistry()
	require.NoError(t, err)
	catalog := classmap.NewCatalog(registry, nil, classmap.Mapping{
		ClassName: "pd-x",
		Controls:  control.Types("size"),
	})

	cfg := &Config{ClassMappings: []ClassMapping{
		{Class: "pd-x", Controls: []string{"background"}, Readonly: true},
		{Class: "pd-y", Controls: []string{"border"}, Defaults: map[string]string{"borderWidth": "1px"}},
	}}
	cfg.ApplyClassMappings(catalog)

	require.Equal(t, control.Types("background"), catalog.ControlsForClass("pd-x"))
	require.True(t, catalog.IsReadonly("pd-x"))
	require.Equal(t, control.Types("border"), catalog.ControlsForClass("pd-y"))
	require.Equal(t, map[string]string{"borderWidth": "1px"}, catalog.DefaultsForClass("pd-y"))
}

package control

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
	pperrors "github.com/alexisbeaulieu97/proppanel/pkg/errors"
)

func TestBuiltinDefinitions(t *testing.T) {
	t.Parallel()

	r, err := NewDefaultRegistry()
	require.NoError(t, err)
	require.Equal(t, 21, r.Count())

	typography, ok := r.Get(Typography)
	require.True(t, ok)
	require.Equal(t, "Typografia", typography.Label)
	require.Equal(t, GroupStyle, typography.Group)
	require.Equal(t, 5, typography.Priority)
	require.True(t, typography.Responsive)
	require.True(t, typography.Hover)
	require.Len(t, typography.CSSProperties, 9)

	device, ok := r.Get(DeviceSwitcher)
	require.True(t, ok)
	require.Equal(t, cssvalue.Scalar("desktop"), device.DefaultValue)

	gradient, ok := r.Get(GradientEditor)
	require.True(t, ok)
	value, isStructured := gradient.DefaultValue.(cssvalue.Structured)
	require.True(t, isStructured)
	require.Equal(t, 180, value.Int("angle", 0))
	require.Len(t, value.Objects("stops"), 2)

	slider, ok := r.Get(SliderSettings)
	require.True(t, ok)
	require.Empty(t, slider.CSSProperties)

	require.Equal(t, []Type{ImageSettings, ListSettings}, typesOf(r.ByGroup(GroupContent)))
	require.Equal(t, DeviceSwitcher, r.Sorted()[0].Type)
}

func TestLoadDefinitionsReportsEveryProblem(t *testing.T) {
	t.Parallel()

	data := []byte(`
- type: ok
- label: missing type
- type: ok
- type: weird
  group: Sidebar
`)

	_, err := LoadDefinitions(data)
	require.Error(t, err)

	var defErr *pperrors.DefinitionError
	require.ErrorAs(t, err, &defErr)
	require.Contains(t, err.Error(), "type is required")
	require.Contains(t, err.Error(), "duplicate control type")
	require.Contains(t, err.Error(), `unknown group "Sidebar"`)
}

func TestLoadDefinitionsRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := LoadDefinitions([]byte("- type: a\n  colour: red\n"))
	require.ErrorContains(t, err, "decode control definitions")
}

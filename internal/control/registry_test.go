package control

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
)

func TestRegisterFillsDefaults(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("custom-widget", Definition{})

	def, ok := r.Get("custom-widget")
	require.True(t, ok)
	require.Equal(t, Type("custom-widget"), def.Type)
	require.Equal(t, "custom-widget", def.Label)
	require.Equal(t, GroupStyle, def.Group)
	require.Equal(t, 100, def.Priority)
	require.Equal(t, "settings", def.Icon)
	require.NotNil(t, def.CSSProperties)
	require.NotNil(t, def.Options)
	require.False(t, def.Responsive)
	require.False(t, def.Hover)
}

func TestRegisterReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	r := NewRegistry(
		Definition{Type: "a", Priority: 1},
		Definition{Type: "b", Priority: 2},
	)
	r.Register("a", Definition{Label: "Replaced", Priority: 5})

	all := r.All()
	require.Len(t, all, 2)
	require.Equal(t, Type("a"), all[0].Type)
	require.Equal(t, "Replaced", all[0].Label)
	require.Equal(t, 2, r.Count())
}

func TestGetUnknownReturnsAbsent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, ok := r.Get("missing")
	require.False(t, ok)
	require.False(t, r.Has("missing"))
}

func TestSortedIsStableOnTies(t *testing.T) {
	t.Parallel()

	r := NewRegistry(
		Definition{Type: "late", Priority: 30},
		Definition{Type: "first-tie", Priority: 10},
		Definition{Type: "second-tie", Priority: 10},
		Definition{Type: "early", Priority: 1},
	)

	require.Equal(t, []Type{"early", "first-tie", "second-tie", "late"}, typesOf(r.Sorted()))
}

func TestByGroupAndCapabilities(t *testing.T) {
	t.Parallel()

	r := NewRegistry(
		Definition{Type: "a", Group: GroupLayout, Responsive: true},
		Definition{Type: "b", Group: GroupStyle, Hover: true},
		Definition{Type: "c", Group: GroupLayout, Responsive: true, Hover: true},
	)

	require.Equal(t, []Type{"a", "c"}, typesOf(r.ByGroup(GroupLayout)))
	require.Empty(t, r.ByGroup(GroupStates))
	require.Equal(t, []Type{"a", "c"}, r.ResponsiveControls())
	require.Equal(t, []Type{"b", "c"}, r.HoverControls())
}

func TestControlsForProperty(t *testing.T) {
	t.Parallel()

	r := NewRegistry(
		Definition{Type: "color-picker", CSSProperties: []string{"color", "background-color"}},
		Definition{Type: "background", CSSProperties: []string{"background", "background-color", "background-color"}},
		Definition{Type: "size", CSSProperties: []string{"width"}},
	)

	require.Equal(t, []Type{"color-picker", "background"}, r.ControlsForProperty("background-color"))
	require.Empty(t, r.ControlsForProperty("transform"))
}

func TestUnregister(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Definition{Type: "a"}, Definition{Type: "b"}, Definition{Type: "c"})

	require.True(t, r.Unregister("b"))
	require.False(t, r.Unregister("b"))
	require.Equal(t, []Type{"a", "c"}, typesOf(r.All()))
	require.Equal(t, 2, r.Count())
}

func TestOverrideShallowMerges(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Definition{
		Type:          "border",
		Label:         "Obramowanie",
		CSSProperties: []string{"border"},
		Group:         GroupAdvanced,
		Priority:      35,
		DefaultValue:  cssvalue.Structured{"style": "solid"},
	})

	label := "Border"
	priority := 3
	hover := true
	require.True(t, r.Override("border", Patch{Label: &label, Priority: &priority, Hover: &hover}))

	def, ok := r.Get("border")
	require.True(t, ok)
	require.Equal(t, "Border", def.Label)
	require.Equal(t, 3, def.Priority)
	require.True(t, def.Hover)
	require.Equal(t, GroupAdvanced, def.Group)
	require.Equal(t, []string{"border"}, def.CSSProperties)
	require.Equal(t, cssvalue.Structured{"style": "solid"}, def.DefaultValue)

	require.False(t, r.Override("missing", Patch{Label: &label}))
	require.False(t, r.Has("missing"))
}

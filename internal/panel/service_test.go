package panel

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/proppanel/internal/blocks"
	"github.com/alexisbeaulieu97/proppanel/internal/classmap"
	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
	"github.com/alexisbeaulieu97/proppanel/internal/styledefs"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	controls, err := control.NewDefaultRegistry()
	require.NoError(t, err)
	base, err := styledefs.Default()
	require.NoError(t, err)
	classes, err := classmap.NewDefaultCatalog(controls, base)
	require.NoError(t, err)
	registry, err := blocks.Default()
	require.NoError(t, err)

	return NewService(controls, classes, registry, base, nil)
}

func tabKeys(tabs []Tab) []string {
	keys := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		keys = append(keys, tab.Key)
	}
	return keys
}

func tabTypes(tab Tab) []control.Type {
	types := make([]control.Type, 0, len(tab.Controls))
	for _, def := range tab.Controls {
		types = append(types, def.Type)
	}
	return types
}

func TestBuildConfigurationIntroHeading(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	cfg := svc.BuildConfiguration(context.Background(), Request{
		Classes: []string{"pd-intro__heading"},
		Tag:     "h1",
	})

	require.Equal(t, control.Types("layout-grid", "typography", "color-picker", "box-model", "size"), cfg.Controls.Types())
	require.Equal(t, []string{"style", "layout", "content", "advanced", ClassesTabKey}, tabKeys(cfg.Tabs))

	style, ok := cfg.Tab("style")
	require.True(t, ok)
	require.Equal(t, control.Types("typography", "color-picker"), tabTypes(style))

	layout, ok := cfg.Tab("layout")
	require.True(t, ok)
	require.Equal(t, control.Types("box-model", "layout-grid", "size"), tabTypes(layout))

	classesTab, ok := cfg.Tab(ClassesTabKey)
	require.True(t, ok)
	require.Empty(t, classesTab.Controls)

	require.Equal(t, "grid", cfg.Defaults["display"])
	require.Equal(t, "800", cfg.Defaults["fontWeight"])
	require.Equal(t, "clamp(2rem, 5vw, 3.5rem)", cfg.Values.ByControl[control.Typography]["fontSize"])
	require.Equal(t, "160px auto", cfg.Values.ByControl[control.LayoutGrid]["gridTemplateColumns"])
	require.Equal(t, "#000", cfg.Values.ByControl[control.ColorPicker]["color"])
	require.Empty(t, cfg.Values.ByControl[control.Size])

	require.Equal(t, "clamp(2rem, 5vw, 3.5rem)", cfg.AppliedDefaults[control.Typography]["fontSize"])
	require.Equal(t, "160px auto", cfg.AppliedDefaults[control.LayoutGrid]["gridTemplateColumns"])
	require.NotContains(t, cfg.AppliedDefaults, control.Size)

	require.Equal(t, "h1", cfg.ElementType)
	require.Equal(t, []string{"pd-intro__heading"}, cfg.ClassesTab.Current)
	require.NotEmpty(t, cfg.ClassesTab.Available)
	require.NotEmpty(t, cfg.ClassesTab.PrestashopClasses)
	require.Contains(t, cfg.Responsive, control.Typography)
	require.Contains(t, cfg.HoverSupported, control.ColorPicker)
	require.NotContains(t, cfg.HoverSupported, control.Size)
}

func TestBuildConfigurationCurrentStylesWin(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	cfg := svc.BuildConfiguration(context.Background(), Request{
		Classes: []string{"pd-intro__heading"},
		Styles:  map[string]string{"fontSize": "2rem", "width": "50%"},
		Tag:     "h1",
	})

	require.Equal(t, "2rem", cfg.Values.Flat["fontSize"])
	require.Equal(t, "2rem", cfg.Values.ByControl[control.Typography]["fontSize"])
	require.Equal(t, "50%", cfg.Values.ByControl[control.Size]["width"])
	require.Equal(t, "clamp(2rem, 5vw, 3.5rem)", cfg.Defaults["fontSize"])
	require.Equal(t, "clamp(2rem, 5vw, 3.5rem)", cfg.AppliedDefaults[control.Typography]["fontSize"])
}

func TestBuildConfigurationDefaultsToDiv(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	cfg := svc.BuildConfiguration(context.Background(), Request{})

	require.Equal(t, DefaultElement, cfg.ElementType)
	require.Equal(t, control.Types("box-model", "size", "layout-flex", "background"), cfg.Controls.Types())
	require.NotNil(t, cfg.CSSClasses)
	require.Empty(t, cfg.CSSClasses)
	require.Empty(t, cfg.ReadonlyClasses)
}

func TestBuildConfigurationImageSource(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	cfg := svc.BuildConfiguration(context.Background(), Request{
		Tag:    "img",
		Styles: map[string]string{"src": "/img/a.jpg", "objectFit": "cover"},
	})

	image := cfg.Values.ByControl[control.ImageSettings]
	require.Equal(t, "/img/a.jpg", image["imageUrl"])
	require.Equal(t, "/img/a.jpg", image["src"])
	require.Equal(t, "cover", image["objectFit"])

	content, ok := cfg.Tab("content")
	require.True(t, ok)
	require.Equal(t, control.Types("image-settings"), tabTypes(content))
	require.False(t, cfg.Controls.Has(control.Typography))
}

func TestBuildConfigurationBlock(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	cfg := svc.BuildConfiguration(context.Background(), Request{
		Tag:       "div",
		BlockType: "testimonial",
	})

	require.Equal(t, "testimonial", cfg.BlockType)
	require.Empty(t, cfg.SectionLabel)
	require.True(t, cfg.Controls.Has(control.Effects))
	advanced, ok := cfg.Tab("advanced")
	require.True(t, ok)
	require.Equal(t, control.Types("border", "effects"), tabTypes(advanced))
}

func TestBuildConfigurationSectionLabel(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	cfg := svc.BuildConfiguration(context.Background(), Request{
		Classes:   []string{"pd-pseudo-parallax__title"},
		Tag:       "h2",
		BlockType: "pd-pseudo-parallax",
	})

	require.Equal(t, "Parallax (obraz)", cfg.SectionLabel)
	require.True(t, cfg.Controls.Has(control.Typography))
}

func TestConfigurationJSON(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	cfg := svc.BuildConfiguration(context.Background(), Request{
		Classes: []string{"pd-intro__heading"},
		Tag:     "h1",
	})

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	values, ok := decoded["values"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "grid", values["display"])
	require.Contains(t, values, "typography")
	require.Contains(t, decoded, "tabs")
	require.Contains(t, decoded, "classesTab")

	applied, ok := decoded["appliedDefaults"].(map[string]any)
	require.True(t, ok)
	typography, ok := applied["typography"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "clamp(2rem, 5vw, 3.5rem)", typography["fontSize"])
	require.NotContains(t, decoded, "sectionLabel")
}

func TestMergedDefaultsLaterClassWins(t *testing.T) {
	t.Parallel()

	controls := control.NewRegistry()
	classes := classmap.NewCatalog(controls, nil,
		classmap.Mapping{ClassName: "a", Defaults: map[string]string{"color": "red", "fontSize": "1rem"}},
		classmap.Mapping{ClassName: "b", Defaults: map[string]string{"color": "blue"}},
	)
	svc := NewService(controls, classes, nil, nil, nil)

	require.Equal(t, map[string]string{"color": "blue", "fontSize": "1rem"}, svc.MergedDefaults([]string{"a", "b"}))
	require.Equal(t, map[string]string{"color": "red", "fontSize": "1rem"}, svc.MergedDefaults([]string{"b", "a"}))
	require.Empty(t, svc.MergedDefaults(nil))
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	typography, _ := svc.Controls().Get(control.Typography)
	size, _ := svc.Controls().Get(control.Size)

	applied := svc.ApplyDefaults([]control.Definition{typography, size}, map[string]string{
		"fontSize":    "2rem",
		"line-height": "1.2",
		"gridColumn":  "1 / -1",
	})

	require.Equal(t, map[control.Type]map[string]string{
		control.Typography: {"fontSize": "2rem", "line-height": "1.2"},
	}, applied)
}

func TestValidateValues(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	colors, _ := svc.Controls().Get(control.ColorPicker)
	size, _ := svc.Controls().Get(control.Size)
	defs := []control.Definition{colors, size}

	require.Empty(t, svc.ValidateValues(map[string]string{"color": "#fff", "width": "100%"}, defs))

	problems := svc.ValidateValues(map[string]string{"color": "notacolor", "width": "wide"}, defs)
	require.Equal(t, []string{"invalid color: notacolor"}, problems[control.ColorPicker])
	require.Equal(t, []string{"invalid size value: wide"}, problems[control.Size])
}

func TestFormatAndParseDelegation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	css := svc.FormatToCSS(control.BoxModel, cssvalue.Structured{
		"margin": map[string]any{"top": "10px"},
	})
	require.Equal(t, "10px", css["margin-top"])

	parsed := svc.ParseCSS(context.Background(), control.BoxModel, cssprop.Properties{"margin-top": "4px"})
	require.Equal(t, "4px", parsed.Object("margin").StringOr("top", ""))
}

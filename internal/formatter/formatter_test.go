package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
)

func newFormatter(t *testing.T) *Formatter {
	t.Helper()

	controls, err := control.NewDefaultRegistry()
	require.NoError(t, err)
	return New(controls)
}

type obj = cssvalue.Structured

func TestFormat(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)

	tests := []struct {
		name        string
		controlType control.Type
		value       cssvalue.Value
		want        cssprop.Properties
	}{
		{
			name:        "linear gradient",
			controlType: control.GradientEditor,
			value: obj{"type": "linear", "angle": float64(90), "stops": []any{
				map[string]any{"color": "#fff", "position": float64(0)},
				map[string]any{"color": "#000", "position": float64(100)},
			}},
			want: cssprop.Properties{"background": "linear-gradient(90deg, #fff 0%, #000 100%)"},
		},
		{
			name:        "radial gradient",
			controlType: control.GradientEditor,
			value: obj{"type": "radial", "stops": []any{
				map[string]any{"color": "red", "position": "10"},
			}},
			want: cssprop.Properties{"background": "radial-gradient(circle, red 10%)"},
		},
		{
			name:        "gradient default angle",
			controlType: control.GradientEditor,
			value:       obj{"stops": []any{map[string]any{"color": "red", "position": 0}}},
			want:        cssprop.Properties{"background": "linear-gradient(180deg, red 0%)"},
		},
		{
			name:        "gradient without stops",
			controlType: control.GradientEditor,
			value:       obj{"type": "linear", "stops": []any{}},
			want:        cssprop.Properties{},
		},
		{
			name:        "border width without color",
			controlType: control.Border,
			value:       obj{"width": "1px", "style": "solid", "color": "", "radius": "4px"},
			want:        cssprop.Properties{"border-width": "1px", "border-radius": "4px"},
		},
		{
			name:        "border shorthand",
			controlType: control.Border,
			value:       obj{"width": "2px", "style": "dashed", "color": "#000"},
			want:        cssprop.Properties{"border": "2px dashed #000", "border-style": "dashed"},
		},
		{
			name:        "box model linked and unlinked",
			controlType: control.BoxModel,
			value: obj{
				"margin":       obj{"top": "8px", "right": "1px", "linked": true},
				"padding":      obj{"top": "1px", "right": "", "bottom": "3px", "left": "4px", "linked": false},
				"borderRadius": obj{"top": "1px", "right": "2px", "bottom": "3px", "left": "4px"},
			},
			want: cssprop.Properties{
				"margin":                     "8px",
				"padding-top":                "1px",
				"padding-bottom":             "3px",
				"padding-left":               "4px",
				"border-top-left-radius":     "1px",
				"border-top-right-radius":    "2px",
				"border-bottom-right-radius": "3px",
				"border-bottom-left-radius":  "4px",
			},
		},
		{
			name:        "typography skips neutral values",
			controlType: control.Typography,
			value: obj{
				"fontSize": "inherit", "fontWeight": "normal", "fontFamily": "Inter",
				"textAlign": "left", "textTransform": "none", "textDecoration": "",
			},
			want: cssprop.Properties{"font-family": "Inter", "text-align": "left", "text-transform": "none"},
		},
		{
			name:        "effects",
			controlType: control.Effects,
			value: obj{
				"boxShadow":  obj{"enabled": true, "inset": true, "x": "0", "y": "2px", "blur": "4px", "spread": "0", "color": "#000"},
				"textShadow": obj{"enabled": false, "x": "1px"},
				"opacity":    "1",
			},
			want: cssprop.Properties{"box-shadow": "inset 0 2px 4px 0 #000"},
		},
		{
			name:        "effects text shadow and opacity",
			controlType: control.Effects,
			value: obj{
				"textShadow": obj{"enabled": "1", "x": "1px", "y": "1px", "blur": "2px", "color": "red"},
				"opacity":    "0.5",
			},
			want: cssprop.Properties{"text-shadow": "1px 1px 2px red", "opacity": "0.5"},
		},
		{
			name:        "transform identity",
			controlType: control.Transform,
			value:       obj{"rotate": "0", "scaleX": "1", "scaleY": "1", "origin": "center"},
			want:        cssprop.Properties{},
		},
		{
			name:        "transform",
			controlType: control.Transform,
			value:       obj{"rotate": "45", "scaleX": "1.5", "translateY": "10px", "skewX": "5", "origin": "top left"},
			want: cssprop.Properties{
				"transform":        "rotate(45deg) scale(1.5, 1) translate(0, 10px) skew(5deg, 0deg)",
				"transform-origin": "top left",
			},
		},
		{
			name:        "transition disabled",
			controlType: control.Transition,
			value:       obj{"enabled": false, "property": "opacity", "duration": "1s"},
			want:        cssprop.Properties{},
		},
		{
			name:        "transition defaults",
			controlType: control.Transition,
			value:       obj{"enabled": true, "property": "opacity"},
			want:        cssprop.Properties{"transition": "opacity 0.3s ease 0s"},
		},
		{
			name:        "position static",
			controlType: control.Position,
			value:       obj{"position": "static", "top": "", "zIndex": ""},
			want:        cssprop.Properties{},
		},
		{
			name:        "position absolute",
			controlType: control.Position,
			value:       obj{"position": "absolute", "top": "0", "left": "10px", "zIndex": float64(5)},
			want:        cssprop.Properties{"position": "absolute", "top": "0", "left": "10px", "z-index": "5"},
		},
		{
			name:        "size",
			controlType: control.Size,
			value:       obj{"width": "100%", "maxWidth": "960px", "height": ""},
			want:        cssprop.Properties{"width": "100%", "max-width": "960px"},
		},
		{
			name:        "layout flex",
			controlType: control.LayoutFlex,
			value:       obj{"display": "flex", "flexDirection": "column", "gap": ""},
			want:        cssprop.Properties{"display": "flex", "flex-direction": "column"},
		},
		{
			name:        "layout grid",
			controlType: control.LayoutGrid,
			value:       obj{"gridTemplateColumns": "repeat(6, 1fr)", "gridAutoFlow": "row"},
			want:        cssprop.Properties{"grid-template-columns": "repeat(6, 1fr)", "grid-auto-flow": "row"},
		},
		{
			name:        "generic fallback",
			controlType: control.SliderSettings,
			value:       obj{"autoplay": true, "loop": false, "interval": float64(3000), "nested": obj{"a": "b"}, "empty": ""},
			want:        cssprop.Properties{"autoplay": "1", "interval": "3000"},
		},
		{
			name:        "simple scalar property",
			controlType: "backgroundColor",
			value:       cssvalue.Scalar("#fff"),
			want:        cssprop.Properties{"background-color": "#fff"},
		},
		{
			name:        "simple scalar empty",
			controlType: "z-index",
			value:       cssvalue.Scalar(""),
			want:        cssprop.Properties{},
		},
		{
			name:        "unregistered type",
			controlType: "made-up",
			value:       obj{"color": "red"},
			want:        cssprop.Properties{},
		},
		{
			name:        "scalar for structured type",
			controlType: control.Border,
			value:       cssvalue.Scalar("1px solid red"),
			want:        cssprop.Properties{},
		},
		{
			name:        "nil value",
			controlType: control.Size,
			value:       nil,
			want:        cssprop.Properties{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, f.Format(tt.controlType, tt.value))
		})
	}
}

func TestFormatBackground(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)

	t.Run("direct shape", func(t *testing.T) {
		t.Parallel()
		got := f.Format(control.Background, obj{
			"backgroundColor":      "",
			"backgroundImage":      "url('a.jpg')",
			"backgroundSize":       "cover",
			"backgroundAttachment": "scroll",
		})
		require.Equal(t, cssprop.Properties{"background-image": "url('a.jpg')", "background-size": "cover"}, got)
	})

	t.Run("direct shape keeps fixed attachment", func(t *testing.T) {
		t.Parallel()
		got := f.Format(control.Background, obj{"backgroundColor": "#eee", "backgroundAttachment": "fixed", "type": "image"})
		require.Equal(t, cssprop.Properties{"background-color": "#eee", "background-attachment": "fixed"}, got)
	})

	t.Run("typed color", func(t *testing.T) {
		t.Parallel()
		got := f.Format(control.Background, obj{"type": "color", "color": "#123456"})
		require.Equal(t, cssprop.Properties{"background-color": "#123456"}, got)
	})

	t.Run("typed image with defaults", func(t *testing.T) {
		t.Parallel()
		got := f.Format(control.Background, obj{"type": "image", "image": "/img/a.png"})
		require.Equal(t, cssprop.Properties{
			"background-image":    "url('/img/a.png')",
			"background-position": "center",
			"background-size":     "cover",
			"background-repeat":   "no-repeat",
		}, got)
	})

	t.Run("typed image without source", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, f.Format(control.Background, obj{"type": "image", "attachment": "fixed"}))
	})

	t.Run("typed gradient", func(t *testing.T) {
		t.Parallel()
		got := f.Format(control.Background, obj{
			"type":  "gradient",
			"angle": "45",
			"stops": []any{map[string]any{"color": "#fff", "position": "0"}},
		})
		require.Equal(t, cssprop.Properties{"background": "linear-gradient(45deg, #fff 0%)"}, got)

		got = f.Format(control.Background, obj{
			"type":     "gradient",
			"gradient": obj{"type": "radial", "stops": []any{map[string]any{"color": "#000", "position": "50"}}},
		})
		require.Equal(t, cssprop.Properties{"background": "radial-gradient(circle, #000 50%)"}, got)
	})
}

func TestFormatImageSettings(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)

	for _, alignment := range []string{"left", "center", "right", ""} {
		got := f.Format(control.ImageSettings, obj{"alignment": alignment})
		require.Contains(t, got, "margin-left", alignment)
		require.Contains(t, got, "margin-right", alignment)
		require.Equal(t, "block", got["display"])
	}

	got := f.Format(control.ImageSettings, obj{"alignment": "right", "size": "medium"})
	require.Equal(t, cssprop.Properties{
		"width":        "50%",
		"height":       "auto",
		"display":      "block",
		"margin-left":  "auto",
		"margin-right": "0",
	}, got)

	got = f.Format(control.ImageSettings, obj{
		"size":         "custom",
		"customWidth":  "320px",
		"customHeight": "auto",
		"alignment":    "center",
		"objectFit":    "fill",
		"borderRadius": "0px",
		"shadow":       "true",
	})
	require.Equal(t, cssprop.Properties{
		"width":        "320px",
		"display":      "block",
		"margin-left":  "auto",
		"margin-right": "auto",
		"box-shadow":   "0 4px 12px rgba(0, 0, 0, 0.15)",
	}, got)

	got = f.Format(control.ImageSettings, obj{"size": "unknown", "objectFit": "cover", "borderRadius": "8px", "shadow": false})
	require.Equal(t, cssprop.Properties{
		"display":       "block",
		"margin-left":   "0",
		"margin-right":  "auto",
		"object-fit":    "cover",
		"border-radius": "8px",
	}, got)
}

func TestFormatListSettings(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)

	tests := []struct {
		name  string
		value obj
		want  cssprop.Properties
	}{
		{
			name:  "checkmarks vertical emit nothing",
			value: obj{"listStyle": "checkmarks", "itemGap": "0", "indentation": ""},
			want:  cssprop.Properties{},
		},
		{
			name:  "numbers",
			value: obj{"listStyle": "numbers", "numberingStyle": "lower-roman", "itemGap": "1rem"},
			want:  cssprop.Properties{"list-style-type": "lower-roman", "gap": "1rem"},
		},
		{
			name:  "bullets default",
			value: obj{"listStyle": "bullets", "indentation": "2rem"},
			want:  cssprop.Properties{"list-style-type": "disc", "padding-left": "2rem"},
		},
		{
			name:  "none grid",
			value: obj{"listStyle": "none", "layout": "grid", "columns": float64(3)},
			want:  cssprop.Properties{"list-style-type": "none", "display": "grid", "grid-template-columns": "repeat(3, 1fr)"},
		},
		{
			name:  "horizontal with columns",
			value: obj{"layout": "horizontal", "columns": "2"},
			want:  cssprop.Properties{"display": "grid", "grid-template-columns": "repeat(2, 1fr)"},
		},
		{
			name:  "horizontal single column",
			value: obj{"layout": "horizontal"},
			want:  cssprop.Properties{"display": "flex", "flex-wrap": "wrap"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, f.Format(control.ListSettings, tt.value))
		})
	}
}

func TestFormatIgnoresUnknownTypesWithoutRegistry(t *testing.T) {
	t.Parallel()

	f := New(nil)
	require.Empty(t, f.Format(control.Size, obj{"width": "1px"}))
	require.Equal(t, cssprop.Properties{"color": "red"}, f.Format("color", cssvalue.Scalar("red")))
}

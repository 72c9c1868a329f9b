package panel

import (
	"encoding/json"
	"maps"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
)

// Values holds the element's current values twice: flat, keyed by camelCase
// property, and grouped per control type.
type Values struct {
	Flat      map[string]string                  `json:"flat"`
	ByControl map[control.Type]map[string]string `json:"byControl"`
}

// MarshalJSON emits one object with the flat keys and the per-control groups
// side by side, the shape editor widgets read.
func (v Values) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(v.Flat)+len(v.ByControl))
	for k, val := range v.Flat {
		merged[k] = val
	}
	for t, group := range v.ByControl {
		merged[string(t)] = group
	}
	return json.Marshal(merged)
}

// Non-CSS image attributes carried along for image-settings.
const (
	imageURLKey = "imageUrl"
	srcKey      = "src"
)

// mergeValues overlays current over defaults. Current always wins.
func mergeValues(defaults, current map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(current))
	maps.Copy(out, defaults)
	maps.Copy(out, current)
	return out
}

// lookupProperty finds property in flat by camelCase name, then kebab-case.
// It reports the key the value was found under.
func lookupProperty(flat map[string]string, property string) (string, string, bool) {
	camel := cssprop.ToCamel(property)
	if v, ok := flat[camel]; ok {
		return camel, v, true
	}
	if v, ok := flat[property]; ok {
		return property, v, true
	}
	return "", "", false
}

// groupValues reads each control's properties out of flat. Every control gets
// an entry, empty when nothing applies.
func groupValues(flat map[string]string, controls []control.Definition) map[control.Type]map[string]string {
	grouped := make(map[control.Type]map[string]string, len(controls))
	for _, def := range controls {
		values := map[string]string{}
		for _, property := range def.CSSProperties {
			if _, v, ok := lookupProperty(flat, property); ok {
				values[cssprop.ToCamel(property)] = v
			}
		}

		if def.Type == control.ImageSettings {
			if url, ok := flat[imageURLKey]; ok {
				values[imageURLKey] = url
			}
			if src, ok := flat[srcKey]; ok {
				values[srcKey] = src
				if _, has := values[imageURLKey]; !has {
					values[imageURLKey] = src
				}
			}
		}

		grouped[def.Type] = values
	}
	return grouped
}

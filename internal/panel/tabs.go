package panel

import (
	"slices"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
)

// ClassesTabKey names the tab that lists CSS classes instead of controls.
const ClassesTabKey = "classes"

// Tab is one section of the panel.
type Tab struct {
	Key      string               `json:"key"`
	Label    string               `json:"label"`
	Icon     string               `json:"icon"`
	Priority int                  `json:"priority"`
	Controls []control.Definition `json:"controls"`
}

type tabSpec struct {
	key      string
	label    string
	icon     string
	priority int
	groups   []control.Group
}

// tabSpecs is ordered by priority.
var tabSpecs = []tabSpec{
	{key: "style", label: "Style", icon: "palette", priority: 1, groups: []control.Group{control.GroupStyle}},
	{key: "layout", label: "Layout", icon: "layout", priority: 2, groups: []control.Group{control.GroupLayout}},
	{key: "content", label: "Tresc", icon: "image", priority: 3, groups: []control.Group{control.GroupContent}},
	{key: "advanced", label: "Zaawansowane", icon: "sliders", priority: 4, groups: []control.Group{
		control.GroupAdvanced, control.GroupInteractive, control.GroupStates,
	}},
	{key: ClassesTabKey, label: "Klasy CSS", icon: "code", priority: 5},
}

// buildTabs partitions controls by group. Every tab is present, the classes
// tab never carries controls, and each tab's controls are sorted by priority
// with ties in resolution order.
func buildTabs(controls []control.Definition) []Tab {
	tabs := make([]Tab, 0, len(tabSpecs))
	for _, spec := range tabSpecs {
		tab := Tab{
			Key:      spec.key,
			Label:    spec.label,
			Icon:     spec.icon,
			Priority: spec.priority,
			Controls: []control.Definition{},
		}
		for _, def := range controls {
			if slices.Contains(spec.groups, groupOf(def)) {
				tab.Controls = append(tab.Controls, def)
			}
		}
		control.SortByPriority(tab.Controls)
		tabs = append(tabs, tab)
	}
	return tabs
}

func groupOf(def control.Definition) control.Group {
	if def.Group == "" {
		return control.GroupStyle
	}
	return def.Group
}

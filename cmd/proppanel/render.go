package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/panel"
)

type panelStyles struct {
	title   lipgloss.Style
	tab     lipgloss.Style
	control lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

func newPanelStyles(styled bool) panelStyles {
	if !styled {
		plain := lipgloss.NewStyle()
		return panelStyles{title: plain, tab: plain, control: plain, value: plain, muted: plain, box: plain}
	}
	return panelStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		tab:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		control: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// tabIcons maps tab icon names to terminal glyphs.
var tabIcons = map[string]string{
	"palette": "🎨",
	"layout":  "▦",
	"image":   "🖼",
	"sliders": "⚙",
	"code":    "</>",
}

func tabHeading(tab panel.Tab, useUnicode bool) string {
	if icon, ok := tabIcons[tab.Icon]; ok && useUnicode {
		return fmt.Sprintf("%s %s", icon, tab.Label)
	}
	return fmt.Sprintf("[%s] %s", tab.Key, tab.Label)
}

// renderPanel writes a human readable view of cfg. Styling and icons are
// only used on terminals.
func renderPanel(w io.Writer, cfg *panel.Configuration, styled bool) error {
	st := newPanelStyles(styled)

	header := fmt.Sprintf("<%s>", cfg.ElementType)
	if len(cfg.CSSClasses) > 0 {
		header += " ." + strings.Join(cfg.CSSClasses, " .")
	}
	if cfg.BlockType != "" {
		header += " in " + cfg.BlockType
	}
	if cfg.SectionLabel != "" {
		header += " (" + cfg.SectionLabel + ")"
	}

	var sections []string
	sections = append(sections, st.title.Render(header))

	for _, tab := range cfg.Tabs {
		if tab.Key == panel.ClassesTabKey {
			sections = append(sections, renderClassesTab(st, tab, cfg, styled))
			continue
		}
		if len(tab.Controls) == 0 {
			continue
		}

		lines := []string{st.tab.Render(tabHeading(tab, styled))}
		for _, def := range tab.Controls {
			lines = append(lines, "  "+st.control.Render(def.Label)+st.muted.Render(" ("+string(def.Type)+")"+flagsOf(def)))
			for _, kv := range sortedValues(cfg.Values.ByControl[def.Type]) {
				lines = append(lines, "    "+st.value.Render(kv))
			}
		}
		sections = append(sections, st.box.Render(strings.Join(lines, "\n")))
	}

	_, err := fmt.Fprintln(w, strings.Join(sections, "\n"))
	return err
}

func renderClassesTab(st panelStyles, tab panel.Tab, cfg *panel.Configuration, styled bool) string {
	lines := []string{st.tab.Render(tabHeading(tab, styled))}
	if len(cfg.ClassesTab.Current) == 0 {
		lines = append(lines, "  "+st.muted.Render("(no classes)"))
	}
	readonly := make(map[string]bool, len(cfg.ReadonlyClasses))
	for _, class := range cfg.ReadonlyClasses {
		readonly[class] = true
	}
	for _, class := range cfg.ClassesTab.Current {
		line := "  " + st.control.Render(class)
		if readonly[class] {
			line += st.muted.Render(" (readonly)")
		}
		lines = append(lines, line)
	}
	return st.box.Render(strings.Join(lines, "\n"))
}

func flagsOf(def control.Definition) string {
	var flags []string
	if def.Responsive {
		flags = append(flags, "responsive")
	}
	if def.Hover {
		flags = append(flags, "hover")
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + strings.Join(flags, ", ")
}

func sortedValues(values map[string]string) []string {
	out := make([]string, 0, len(values))
	for k, v := range values {
		out = append(out, k+": "+v)
	}
	sort.Strings(out)
	return out
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

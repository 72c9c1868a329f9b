package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/htmlsource"
	"github.com/alexisbeaulieu97/proppanel/internal/panel"
)

// elementOptions describes the element under edit, either from flags or
// from an element picked out of an HTML file.
type elementOptions struct {
	classes   []string
	tag       string
	style     string
	blockType string
	htmlPath  string
	selector  string
}

func (o *elementOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.classes, "classes", nil, "CSS classes of the element, comma separated")
	cmd.Flags().StringVar(&o.tag, "tag", "", "HTML tag of the element")
	cmd.Flags().StringVar(&o.style, "style", "", "Inline style of the element, e.g. \"color: red; margin: 0\"")
	cmd.Flags().StringVar(&o.blockType, "block", "", "Block type the element belongs to")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "Read the element from this HTML file")
	cmd.Flags().StringVar(&o.selector, "selector", "", "CSS selector picking the element in --html")
}

// request builds the panel request. Flags given next to --html override what
// the file says.
func (o *elementOptions) request(defaultTag string) (panel.Request, error) {
	req := panel.Request{
		Classes:   o.classes,
		Tag:       strings.ToLower(strings.TrimSpace(o.tag)),
		BlockType: o.blockType,
	}

	if o.htmlPath != "" {
		if o.selector == "" {
			return panel.Request{}, fmt.Errorf("--selector is required with --html")
		}
		f, err := os.Open(o.htmlPath)
		if err != nil {
			return panel.Request{}, err
		}
		defer f.Close()

		el, err := htmlsource.Select(f, o.selector)
		if err != nil {
			return panel.Request{}, err
		}
		if len(req.Classes) == 0 {
			req.Classes = el.Classes
		}
		if req.Tag == "" {
			req.Tag = el.Tag
		}
		if req.BlockType == "" {
			req.BlockType = el.BlockType
		}
		req.Styles = el.Styles
	}

	if o.style != "" {
		props, err := cssprop.ParseInline(o.style)
		if err != nil {
			return panel.Request{}, fmt.Errorf("parse --style: %w", err)
		}
		if req.Styles == nil {
			req.Styles = map[string]string{}
		}
		for name, value := range props.Camel() {
			req.Styles[name] = value
		}
	}

	if req.Tag == "" {
		req.Tag = defaultTag
	}
	return req, nil
}

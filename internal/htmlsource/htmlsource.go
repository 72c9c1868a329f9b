// Package htmlsource reads the element under edit out of an HTML fragment.
package htmlsource

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
)

// BlockTypeAttr marks the block an element belongs to.
const BlockTypeAttr = "data-block-type"

// Element is what the panel needs to know about one HTML element.
type Element struct {
	Tag       string            `json:"tag"`
	Classes   []string          `json:"classes"`
	Styles    map[string]string `json:"styles"`
	Src       string            `json:"src,omitempty"`
	BlockType string            `json:"blockType,omitempty"`
}

// Select parses r and returns the first element matching selector. Inline
// styles are returned with camelCase names; src, when present, is carried
// along under "src" for image settings. The block type comes from the
// element or its nearest ancestor carrying data-block-type.
func Select(r io.Reader, selector string) (Element, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Element{}, fmt.Errorf("read html: %w", err)
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return Element{}, fmt.Errorf("no element matches %q", selector)
	}

	el := Element{
		Tag:     goquery.NodeName(sel),
		Classes: strings.Fields(sel.AttrOr("class", "")),
	}

	props, err := cssprop.ParseInline(sel.AttrOr("style", ""))
	if err != nil {
		return Element{}, fmt.Errorf("parse style of %q: %w", selector, err)
	}
	el.Styles = props.Camel()

	if src, ok := sel.Attr("src"); ok && src != "" {
		el.Src = src
		el.Styles["src"] = src
	}

	if blockType, ok := sel.Attr(BlockTypeAttr); ok {
		el.BlockType = blockType
	} else if holder := sel.ParentsFiltered("[" + BlockTypeAttr + "]").First(); holder.Length() > 0 {
		el.BlockType = holder.AttrOr(BlockTypeAttr, "")
	}

	return el, nil
}

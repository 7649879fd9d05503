// Package markdown assembles a markdown document into a single HTML element
// tree and renders it against a page template.
package markdown

import (
	"strings"

	"github.com/fwojciec/stanza"
	"github.com/fwojciec/stanza/blocks"
)

// Template placeholder markers, replaced literally.
const (
	titlePlaceholder   = "{{ Title }}"
	contentPlaceholder = "{{ Content }}"
)

// Document parses markdown into one top-level div element wrapping one
// child per block, in source order. A document with no blocks yields a div
// wrapping a single empty raw text leaf.
func Document(md string) (stanza.Node, error) {
	bs := blocks.Split(md)
	if len(bs) == 0 {
		return stanza.ParentNode{Tag: "div", Children: []stanza.Node{stanza.LeafNode{Value: stanza.String("")}}}, nil
	}
	children := make([]stanza.Node, 0, len(bs))
	for _, b := range bs {
		node, err := blocks.Build(b)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return stanza.ParentNode{Tag: "div", Children: children}, nil
}

// ToHTML converts a markdown document to its HTML string.
func ToHTML(md string) (string, error) {
	doc, err := Document(md)
	if err != nil {
		return "", err
	}
	return doc.Render()
}

// Title returns the text of the first line holding a level-1 heading.
// The scan is over lines, not blocks, so the heading need not open its own
// block. Returns stanza.ErrTitleNotFound when no such line exists.
func Title(md string) (string, error) {
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "##") {
			return strings.TrimSpace(strings.TrimLeft(line, "# ")), nil
		}
	}
	return "", stanza.ErrTitleNotFound
}

// Page converts markdown and substitutes it into the template, replacing
// every occurrence of the {{ Title }} and {{ Content }} placeholders.
// Substitution is literal: neither the title nor the content is
// HTML-escaped.
func Page(tmpl, md string) (string, error) {
	content, err := ToHTML(md)
	if err != nil {
		return "", err
	}
	title, err := Title(md)
	if err != nil {
		return "", err
	}
	out := strings.ReplaceAll(tmpl, titlePlaceholder, title)
	return strings.ReplaceAll(out, contentPlaceholder, content), nil
}

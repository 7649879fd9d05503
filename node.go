package stanza

import (
	"fmt"
	"strings"
)

// Attr is a single HTML attribute. Attributes are kept as an ordered slice
// rather than a map so that serialization order matches construction order.
type Attr struct {
	Name  string
	Value string
}

// Node is a sealed interface representing one element in an HTML tree.
// The unexported marker method prevents external implementations.
// Render serializes the node and its subtree to an HTML string.
type Node interface {
	node()
	Render() (string, error)
}

// voidElements are HTML tags with no closing form and no text content.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// LeafNode is an element with no children. An empty Tag means raw text: the
// value is emitted verbatim with no wrapping element. Value is a pointer so
// that an absent value is distinct from a present empty string; a non-void
// tagged leaf must carry a present value, which may be empty.
type LeafNode struct {
	Tag   string
	Value *string
	Attrs []Attr
}

// String returns a pointer to s, for populating optional leaf values.
func String(s string) *string { return &s }

func (LeafNode) node() {}

// Render serializes the leaf. Void-element tags emit no closing tag and no
// inner value.
func (n LeafNode) Render() (string, error) {
	if n.Tag == "" {
		if n.Value == nil {
			return "", nil
		}
		return *n.Value, nil
	}
	if voidElements[n.Tag] {
		return "<" + n.Tag + renderAttrs(n.Attrs) + ">", nil
	}
	if n.Value == nil {
		return "", fmt.Errorf("leaf <%s> requires a value: %w", n.Tag, ErrStructure)
	}
	return "<" + n.Tag + renderAttrs(n.Attrs) + ">" + *n.Value + "</" + n.Tag + ">", nil
}

// ParentNode is an element wrapping an ordered, non-empty sequence of child
// elements. The parent exclusively owns its children.
type ParentNode struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

func (ParentNode) node() {}

// Render serializes the parent and, depth-first, every child in order.
func (n ParentNode) Render() (string, error) {
	if n.Tag == "" {
		return "", fmt.Errorf("parent node requires a tag: %w", ErrStructure)
	}
	if len(n.Children) == 0 {
		return "", fmt.Errorf("parent <%s> requires children: %w", n.Tag, ErrStructure)
	}
	var b strings.Builder
	b.WriteString("<" + n.Tag + renderAttrs(n.Attrs) + ">")
	for _, child := range n.Children {
		html, err := child.Render()
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	b.WriteString("</" + n.Tag + ">")
	return b.String(), nil
}

// renderAttrs serializes attributes in slice order: one leading space, then
// key="value" pairs space-joined. Values are inserted verbatim, unescaped.
func renderAttrs(attrs []Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(" " + a.Name + `="` + a.Value + `"`)
	}
	return b.String()
}

// Interface compliance checks.
var (
	_ Node = LeafNode{}
	_ Node = ParentNode{}
)

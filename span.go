package stanza

import "fmt"

// SpanKind identifies the formatting of an inline text span.
type SpanKind string

const (
	SpanPlain  SpanKind = "plain"
	SpanBold   SpanKind = "bold"
	SpanItalic SpanKind = "italic"
	SpanCode   SpanKind = "code"
	SpanLink   SpanKind = "link"
	SpanImage  SpanKind = "image"
)

// Span is one contiguous run of inline text tagged with a formatting kind.
// URL is set only for link and image spans. Spans are plain comparable
// values: two spans are equal iff text, kind, and url are all equal.
type Span struct {
	Text string
	Kind SpanKind
	URL  string
}

// Node converts the span to its HTML leaf element. Plain spans become
// tagless raw text; images become a void img element whose alt text is the
// span text.
func (s Span) Node() (Node, error) {
	switch s.Kind {
	case SpanPlain:
		return LeafNode{Value: String(s.Text)}, nil
	case SpanBold:
		return LeafNode{Tag: "b", Value: String(s.Text)}, nil
	case SpanItalic:
		return LeafNode{Tag: "i", Value: String(s.Text)}, nil
	case SpanCode:
		return LeafNode{Tag: "code", Value: String(s.Text)}, nil
	case SpanLink:
		if s.URL == "" {
			return nil, fmt.Errorf("link %q: %w", s.Text, ErrMissingLinkTarget)
		}
		return LeafNode{Tag: "a", Value: String(s.Text), Attrs: []Attr{{Name: "href", Value: s.URL}}}, nil
	case SpanImage:
		if s.URL == "" {
			return nil, fmt.Errorf("image %q: %w", s.Text, ErrMissingImageTarget)
		}
		return LeafNode{Tag: "img", Attrs: []Attr{{Name: "src", Value: s.URL}, {Name: "alt", Value: s.Text}}}, nil
	default:
		return nil, fmt.Errorf("unknown span kind %q: %w", s.Kind, ErrStructure)
	}
}

// Package inline tokenizes a run of text into typed spans: plain, bold,
// italic, code, link, and image.
package inline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/stanza"
)

var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// Tokenize splits text into an ordered sequence of typed spans. Each stage
// of the pipeline only rewrites plain spans; spans produced by an earlier
// stage pass through untouched. Images are extracted before links so that
// ![alt](url) is never captured as a link, and bold is split before italic
// because its delimiter is a prefix-overlapping two-character token.
func Tokenize(text string) ([]stanza.Span, error) {
	spans := []stanza.Span{{Text: text, Kind: stanza.SpanPlain}}
	spans = splitImages(spans)
	spans = splitLinks(spans)

	stages := []struct {
		delim string
		kind  stanza.SpanKind
	}{
		{"**", stanza.SpanBold},
		{"*", stanza.SpanItalic},
		{"_", stanza.SpanItalic},
		{"`", stanza.SpanCode},
	}
	var err error
	for _, stage := range stages {
		spans, err = splitDelimiter(spans, stage.delim, stage.kind)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// Nodes tokenizes text and converts each span to its HTML leaf element.
func Nodes(text string) ([]stanza.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]stanza.Node, 0, len(spans))
	for _, s := range spans {
		n, err := s.Node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// ref is one extracted link or image reference: display text and target url.
type ref struct {
	text string
	url  string
}

func findImages(text string) []ref {
	var refs []ref
	for _, m := range imagePattern.FindAllStringSubmatch(text, -1) {
		refs = append(refs, ref{text: m[1], url: m[2]})
	}
	return refs
}

// findLinks matches [text](url) not preceded by a bang. Go's regexp has no
// lookbehind, so the preceding byte is checked on each match instead.
func findLinks(text string) []ref {
	var refs []ref
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		refs = append(refs, ref{text: text[m[2]:m[3]], url: text[m[4]:m[5]]})
	}
	return refs
}

func splitImages(spans []stanza.Span) []stanza.Span {
	return splitRefs(spans, stanza.SpanImage, findImages)
}

func splitLinks(spans []stanza.Span) []stanza.Span {
	return splitRefs(spans, stanza.SpanLink, findLinks)
}

// splitRefs rewrites each plain span around its extracted references, in
// source order: plain text before the reference (if non-empty), then the
// reference span, then the scan continues on the remainder.
func splitRefs(spans []stanza.Span, kind stanza.SpanKind, find func(string) []ref) []stanza.Span {
	var out []stanza.Span
	for _, s := range spans {
		if s.Kind != stanza.SpanPlain {
			out = append(out, s)
			continue
		}
		if s.Text == "" {
			continue
		}
		refs := find(s.Text)
		if len(refs) == 0 {
			out = append(out, s)
			continue
		}
		rest := s.Text
		for _, r := range refs {
			token := fmt.Sprintf("[%s](%s)", r.text, r.url)
			if kind == stanza.SpanImage {
				token = "!" + token
			}
			before, after, _ := strings.Cut(rest, token)
			if before != "" {
				out = append(out, stanza.Span{Text: before, Kind: stanza.SpanPlain})
			}
			out = append(out, stanza.Span{Text: r.text, Kind: kind, URL: r.url})
			rest = after
		}
		if rest != "" {
			out = append(out, stanza.Span{Text: rest, Kind: stanza.SpanPlain})
		}
	}
	return out
}

// splitDelimiter splits every plain span on delim. Parts alternate between
// outside (plain) at even indices and inside (kind) at odd indices; an even
// part count means an unmatched delimiter. Empty parts are dropped, so a
// plain span with empty text produces no output spans.
func splitDelimiter(spans []stanza.Span, delim string, kind stanza.SpanKind) ([]stanza.Span, error) {
	var out []stanza.Span
	for _, s := range spans {
		if s.Kind != stanza.SpanPlain {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.Text, delim)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("unmatched delimiter %q in %q: %w", delim, s.Text, stanza.ErrStructure)
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			k := stanza.SpanPlain
			if i%2 == 1 {
				k = kind
			}
			out = append(out, stanza.Span{Text: part, Kind: k})
		}
	}
	return out, nil
}

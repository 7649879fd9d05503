// Package blocks splits a markdown document into top-level blocks,
// classifies each block by structural pattern, and builds the matching HTML
// subtree.
package blocks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/stanza"
	"github.com/fwojciec/stanza/inline"
)

var (
	headingPattern     = regexp.MustCompile(`^(#{1,6}) `)
	languagePattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s+`)
)

// Split cuts a document on blank-line separators. Each block is trimmed of
// surrounding whitespace; blocks that are empty after trimming are dropped.
// Internal single newlines are preserved verbatim.
func Split(doc string) []string {
	var out []string
	for _, block := range strings.Split(doc, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Classify determines a block's structural type. The check is pure pattern
// matching over the block's lines: a block classifies the same regardless
// of its neighbors. Heading and code are checked before the quote and list
// checks; paragraph is the fallback.
func Classify(block string) stanza.BlockType {
	lines := strings.Split(block, "\n")

	if len(lines) == 1 && headingPattern.MatchString(lines[0]) {
		return stanza.BlockHeading
	}

	if first := strings.TrimSpace(lines[0]); strings.HasPrefix(first, "```") {
		if len(lines) == 1 {
			// A single-line fence must close itself and hold content:
			// six backticks alone is too short to qualify.
			trimmed := strings.TrimSpace(block)
			if strings.HasSuffix(trimmed, "```") && len(trimmed) > 6 {
				return stanza.BlockCode
			}
		} else if last := strings.TrimSpace(lines[len(lines)-1]); strings.HasPrefix(last, "```") {
			return stanza.BlockCode
		}
	}

	if allPrefixed(lines, ">") {
		return stanza.BlockQuote
	}
	if allPrefixed(lines, "- ") {
		return stanza.BlockUnorderedList
	}
	if isOrderedList(lines) {
		return stanza.BlockOrderedList
	}
	return stanza.BlockParagraph
}

func allPrefixed(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

// isOrderedList requires numbering to start at 1 and increment by exactly
// one on every line; any gap demotes the whole block.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, fmt.Sprintf("%d. ", i+1)) {
			return false
		}
	}
	return true
}

// Build classifies a block and constructs its HTML subtree, tokenizing
// inline content where the block type calls for it.
func Build(block string) (stanza.Node, error) {
	switch kind := Classify(block); kind {
	case stanza.BlockHeading:
		return buildHeading(block)
	case stanza.BlockCode:
		return buildCode(block)
	case stanza.BlockQuote:
		return buildQuote(block)
	case stanza.BlockUnorderedList:
		return buildList(block, "ul", stripUnorderedItem)
	case stanza.BlockOrderedList:
		return buildList(block, "ol", stripOrderedItem)
	case stanza.BlockParagraph:
		return buildParagraph(block)
	default:
		return nil, fmt.Errorf("unknown block type %q: %w", kind, stanza.ErrStructure)
	}
}

func buildHeading(block string) (stanza.Node, error) {
	m := headingPattern.FindStringSubmatch(block)
	if m == nil {
		return nil, fmt.Errorf("malformed heading %q: %w", block, stanza.ErrStructure)
	}
	level := len(m[1])
	content := strings.TrimSpace(strings.TrimLeft(block, "# "))
	children, err := inline.Nodes(content)
	if err != nil {
		return nil, err
	}
	return stanza.ParentNode{Tag: fmt.Sprintf("h%d", level), Children: children}, nil
}

// buildCode bypasses inline tokenization: the fenced content becomes a
// single raw text leaf under pre > code. If the first line after the
// opening fence is a bare language identifier it is dropped.
func buildCode(block string) (stanza.Node, error) {
	content := strings.TrimSpace(block)
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	lines := strings.Split(content, "\n")
	if len(lines) > 1 && languagePattern.MatchString(strings.TrimSpace(lines[0])) {
		content = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	code := stanza.ParentNode{Tag: "code", Children: []stanza.Node{stanza.LeafNode{Value: stanza.String(content)}}}
	return stanza.ParentNode{Tag: "pre", Children: []stanza.Node{code}}, nil
}

// buildQuote strips the leading > markers, rejoins the lines, and tokenizes
// the joined content once rather than per line.
func buildQuote(block string) (stanza.Node, error) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(strings.TrimLeft(line, ">")))
	}
	children, err := inline.Nodes(strings.Join(lines, "\n"))
	if err != nil {
		return nil, err
	}
	return stanza.ParentNode{Tag: "blockquote", Children: children}, nil
}

func stripUnorderedItem(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "- "))
}

func stripOrderedItem(line string) string {
	return strings.TrimSpace(orderedItemPattern.ReplaceAllString(line, ""))
}

// buildList emits one li per non-blank line, each tokenized independently.
func buildList(block, tag string, strip func(string) string) (stanza.Node, error) {
	var items []stanza.Node
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		children, err := inline.Nodes(strip(line))
		if err != nil {
			return nil, err
		}
		items = append(items, stanza.ParentNode{Tag: "li", Children: children})
	}
	return stanza.ParentNode{Tag: tag, Children: items}, nil
}

// buildParagraph tokenizes the whole block. An empty block yields a single
// empty raw text leaf so the parent keeps at least one child.
func buildParagraph(block string) (stanza.Node, error) {
	children, err := inline.Nodes(block)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		children = []stanza.Node{stanza.LeafNode{Value: stanza.String("")}}
	}
	return stanza.ParentNode{Tag: "p", Children: children}, nil
}

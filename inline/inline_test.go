package inline_test

import (
	"testing"

	"github.com/fwojciec/stanza"
	"github.com/fwojciec/stanza/inline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("plain text yields one plain span", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("just some text")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{{Text: "just some text", Kind: stanza.SpanPlain}}, spans)
	})

	t.Run("empty text yields no spans", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("")
		require.NoError(t, err)
		assert.Empty(t, spans)
	})

	t.Run("bold split alternates outside and inside", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("**a** and **b**")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "a", Kind: stanza.SpanBold},
			{Text: " and ", Kind: stanza.SpanPlain},
			{Text: "b", Kind: stanza.SpanBold},
		}, spans)
	})

	t.Run("italic splits on star and underscore", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("*one* and _two_")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "one", Kind: stanza.SpanItalic},
			{Text: " and ", Kind: stanza.SpanPlain},
			{Text: "two", Kind: stanza.SpanItalic},
		}, spans)
	})

	t.Run("bold is split before italic", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("**x**")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{{Text: "x", Kind: stanza.SpanBold}}, spans)
	})

	t.Run("inline code", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("run `go test` now")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "run ", Kind: stanza.SpanPlain},
			{Text: "go test", Kind: stanza.SpanCode},
			{Text: " now", Kind: stanza.SpanPlain},
		}, spans)
	})

	t.Run("unmatched delimiter fails", func(t *testing.T) {
		t.Parallel()
		_, err := inline.Tokenize("`x")
		assert.ErrorIs(t, err, stanza.ErrStructure)
		assert.Contains(t, err.Error(), "`")
	})

	t.Run("unmatched bold fails", func(t *testing.T) {
		t.Parallel()
		_, err := inline.Tokenize("a **b")
		assert.ErrorIs(t, err, stanza.ErrStructure)
	})

	t.Run("extracts links", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("see [docs](https://go.dev) and [src](https://github.com)")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "see ", Kind: stanza.SpanPlain},
			{Text: "docs", Kind: stanza.SpanLink, URL: "https://go.dev"},
			{Text: " and ", Kind: stanza.SpanPlain},
			{Text: "src", Kind: stanza.SpanLink, URL: "https://github.com"},
		}, spans)
	})

	t.Run("extracts images", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("an ![icon](icon.png) here")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "an ", Kind: stanza.SpanPlain},
			{Text: "icon", Kind: stanza.SpanImage, URL: "icon.png"},
			{Text: " here", Kind: stanza.SpanPlain},
		}, spans)
	})

	t.Run("image is never captured as a link", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("![a](x.png) [b](y.com)")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "a", Kind: stanza.SpanImage, URL: "x.png"},
			{Text: " ", Kind: stanza.SpanPlain},
			{Text: "b", Kind: stanza.SpanLink, URL: "y.com"},
		}, spans)
	})

	t.Run("link with empty display text", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("check [](https://x.com) out")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "check ", Kind: stanza.SpanPlain},
			{Text: "", Kind: stanza.SpanLink, URL: "https://x.com"},
			{Text: " out", Kind: stanza.SpanPlain},
		}, spans)
	})

	t.Run("link text is not re-split by delimiters", func(t *testing.T) {
		t.Parallel()
		spans, err := inline.Tokenize("[a_b](c)")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{{Text: "a_b", Kind: stanza.SpanLink, URL: "c"}}, spans)
	})

	t.Run("full pipeline", func(t *testing.T) {
		t.Parallel()
		text := "This is **text** with an _italic_ word and a `code block` and an " +
			"![obi wan image](https://i.imgur.com/fJRm4Vk.jpeg) and a [link](https://boot.dev)"
		spans, err := inline.Tokenize(text)
		require.NoError(t, err)
		assert.Equal(t, []stanza.Span{
			{Text: "This is ", Kind: stanza.SpanPlain},
			{Text: "text", Kind: stanza.SpanBold},
			{Text: " with an ", Kind: stanza.SpanPlain},
			{Text: "italic", Kind: stanza.SpanItalic},
			{Text: " word and a ", Kind: stanza.SpanPlain},
			{Text: "code block", Kind: stanza.SpanCode},
			{Text: " and an ", Kind: stanza.SpanPlain},
			{Text: "obi wan image", Kind: stanza.SpanImage, URL: "https://i.imgur.com/fJRm4Vk.jpeg"},
			{Text: " and a ", Kind: stanza.SpanPlain},
			{Text: "link", Kind: stanza.SpanLink, URL: "https://boot.dev"},
		}, spans)
	})
}

func TestNodes(t *testing.T) {
	t.Parallel()

	t.Run("converts spans to leaf elements", func(t *testing.T) {
		t.Parallel()
		nodes, err := inline.Nodes("Hello **world**")
		require.NoError(t, err)
		assert.Equal(t, []stanza.Node{
			stanza.LeafNode{Value: stanza.String("Hello ")},
			stanza.LeafNode{Tag: "b", Value: stanza.String("world")},
		}, nodes)
	})

	t.Run("propagates tokenizer failures", func(t *testing.T) {
		t.Parallel()
		_, err := inline.Nodes("broken *text")
		assert.ErrorIs(t, err, stanza.ErrStructure)
	})

	t.Run("empty text yields no nodes", func(t *testing.T) {
		t.Parallel()
		nodes, err := inline.Nodes("")
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})
}

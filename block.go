package stanza

// BlockType identifies the structural type of a top-level document block.
type BlockType string

const (
	BlockParagraph     BlockType = "paragraph"
	BlockHeading       BlockType = "heading"
	BlockCode          BlockType = "code"
	BlockQuote         BlockType = "quote"
	BlockUnorderedList BlockType = "unordered_list"
	BlockOrderedList   BlockType = "ordered_list"
)

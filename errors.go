package stanza

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrStructure indicates a malformed node tree or inline markup that
	// cannot be tokenized (e.g. an unmatched delimiter).
	ErrStructure = errors.New("structural error")

	// ErrTitleNotFound indicates a document with no level-1 heading line.
	ErrTitleNotFound = errors.New("no h1 heading found")

	// ErrMissingLinkTarget indicates a link span constructed without a url.
	ErrMissingLinkTarget = errors.New("link requires a url")

	// ErrMissingImageTarget indicates an image span constructed without a url.
	ErrMissingImageTarget = errors.New("image requires a url")
)

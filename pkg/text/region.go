package text

import (
	"context"
	"io"
)

// RegionRule defines a single anchored region replacement
type RegionRule struct {
	// StartMarker is the literal substring that opens the region
	StartMarker string

	// EndMarker is the literal substring that closes the region.
	// The marker itself is preserved in the output.
	EndMarker string

	// Replacement is the text spliced in place of the region
	Replacement string

	// FileFilterGlob is a glob pattern to filter which files the rule applies to
	FileFilterGlob string
}

// RegionResult contains the results of a region replacement operation
type RegionResult struct {
	// WasModified indicates if the splice changed the content
	WasModified bool

	// StartIndex is the byte offset of the first StartMarker occurrence, or -1
	StartIndex int

	// EndIndex is the byte offset of the first EndMarker occurrence, or -1
	EndIndex int

	// OriginalContent is the content before the splice
	OriginalContent []byte

	// ModifiedContent is the content after the splice
	ModifiedContent []byte
}

// RegionReplacer defines the interface for anchored region replacement
type RegionReplacer interface {
	// ReplaceRegion applies the rule to the content.
	// Returns a RegionResult containing the modified content and the
	// located marker offsets.
	ReplaceRegion(ctx context.Context, content io.Reader, rule RegionRule) (*RegionResult, error)

	// ValidateRule checks that the rule is valid
	ValidateRule(rule RegionRule) error
}

package text

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// MarkerNotFoundError reports the raw search result for each marker.
// A missing marker shows as -1, matching strings.Index.
type MarkerNotFoundError struct {
	StartIndex int
	EndIndex   int
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("markers not found: start=%d, end=%d", e.StartIndex, e.EndIndex)
}

// MissingStart reports whether the start marker was absent
func (e *MarkerNotFoundError) MissingStart() bool {
	return e.StartIndex < 0
}

// MissingEnd reports whether the end marker was absent
func (e *MarkerNotFoundError) MissingEnd() bool {
	return e.EndIndex < 0
}

// AnchorReplacer implements RegionReplacer using plain substring search
type AnchorReplacer struct{}

// NewAnchorReplacer creates a new AnchorReplacer
func NewAnchorReplacer() *AnchorReplacer {
	return &AnchorReplacer{}
}

// LocateRegion finds the first occurrence of each marker independently.
// Both searches run even if the first one misses, so the returned
// indices always describe both markers.
func (r *AnchorReplacer) LocateRegion(text string, rule RegionRule) (int, int, error) {
	startIdx := strings.Index(text, rule.StartMarker)
	endIdx := strings.Index(text, rule.EndMarker)
	if startIdx == -1 || endIdx == -1 {
		return startIdx, endIdx, &MarkerNotFoundError{StartIndex: startIdx, EndIndex: endIdx}
	}
	return startIdx, endIdx, nil
}

// Splice replaces text[startIdx:endIdx] with replacement. The end
// marker begins at endIdx, so it survives in the output.
func Splice(text string, startIdx, endIdx int, replacement string) string {
	return text[:startIdx] + replacement + text[endIdx:]
}

// ReplaceRegion implements RegionReplacer.ReplaceRegion
func (r *AnchorReplacer) ReplaceRegion(ctx context.Context, content io.Reader, rule RegionRule) (*RegionResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &RegionResult{
		StartIndex:      -1,
		EndIndex:        -1,
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	doc := string(originalContent)
	startIdx, endIdx, err := r.LocateRegion(doc, rule)
	result.StartIndex = startIdx
	result.EndIndex = endIdx
	if err != nil {
		return result, err
	}

	// The raw indices are used as-is: first occurrence wins for both
	// markers, and no ordering check is applied between them.
	modified := Splice(doc, startIdx, endIdx, rule.Replacement)
	result.WasModified = modified != doc
	result.ModifiedContent = []byte(modified)

	return result, nil
}

// ValidateRule implements RegionReplacer.ValidateRule
func (r *AnchorReplacer) ValidateRule(rule RegionRule) error {
	if rule.StartMarker == "" {
		return errors.Errorf("start_marker is required")
	}
	if rule.EndMarker == "" {
		return errors.Errorf("end_marker is required")
	}
	if rule.FileFilterGlob == "" {
		return errors.Errorf("file_filter_glob is required")
	}
	return nil
}

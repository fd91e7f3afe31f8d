package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorReplacer_ReplaceRegion(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		rule           RegionRule
		want           string
		wantStartIdx   int
		wantEndIdx     int
		wantModified   bool
		wantMissStart  bool
		wantMissEnd    bool
		wantMarkerFail bool
	}{
		{
			name:    "happy_path_preserves_end_marker",
			content: "X\nSTART\nold\nEND\nY",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
				Replacement: "NEW\n",
			},
			want:         "X\nNEW\nEND\nY",
			wantStartIdx: 2,
			wantEndIdx:   12,
			wantModified: true,
		},
		{
			name:    "missing_start_marker",
			content: "X\nold\nEND\nY",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
				Replacement: "NEW\n",
			},
			want:           "X\nold\nEND\nY",
			wantStartIdx:   -1,
			wantEndIdx:     6,
			wantMarkerFail: true,
			wantMissStart:  true,
		},
		{
			name:    "missing_end_marker",
			content: "X\nSTART\nold\nY",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
				Replacement: "NEW\n",
			},
			want:           "X\nSTART\nold\nY",
			wantStartIdx:   2,
			wantEndIdx:     -1,
			wantMarkerFail: true,
			wantMissEnd:    true,
		},
		{
			name:    "missing_both_markers",
			content: "X\nold\nY",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
				Replacement: "NEW\n",
			},
			want:           "X\nold\nY",
			wantStartIdx:   -1,
			wantEndIdx:     -1,
			wantMarkerFail: true,
			wantMissStart:  true,
			wantMissEnd:    true,
		},
		{
			name:    "first_occurrence_wins",
			content: "A\nSTART\none\nEND\nB\nSTART\ntwo\nEND\nC",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
				Replacement: "NEW\n",
			},
			want:         "A\nNEW\nEND\nB\nSTART\ntwo\nEND\nC",
			wantStartIdx: 2,
			wantEndIdx:   12,
			wantModified: true,
		},
		{
			name:    "empty_replacement_collapses_region",
			content: "X\nSTART\nold\nEND\nY",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
				Replacement: "",
			},
			want:         "X\nEND\nY",
			wantStartIdx: 2,
			wantEndIdx:   12,
			wantModified: true,
		},
		{
			// The raw indices are spliced without an ordering check, so
			// an end marker before the start marker duplicates the span
			// between them. Documented behavior, not a guard.
			name:    "inverted_marker_order_is_not_guarded",
			content: "END\nmid\nSTART",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
				Replacement: "R",
			},
			want:         "END\nmid\nREND\nmid\nSTART",
			wantStartIdx: 8,
			wantEndIdx:   0,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewAnchorReplacer()
			result, err := replacer.ReplaceRegion(
				context.Background(),
				strings.NewReader(tt.content),
				tt.rule,
			)

			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent), "original content should be preserved")
			assert.Equal(t, tt.wantStartIdx, result.StartIndex, "start index should match")
			assert.Equal(t, tt.wantEndIdx, result.EndIndex, "end index should match")

			if tt.wantMarkerFail {
				require.Error(t, err)
				var markerErr *MarkerNotFoundError
				require.ErrorAs(t, err, &markerErr)
				assert.Equal(t, tt.wantMissStart, markerErr.MissingStart(), "missing-start flag should match")
				assert.Equal(t, tt.wantMissEnd, markerErr.MissingEnd(), "missing-end flag should match")
				assert.False(t, result.WasModified, "content should not be modified on marker failure")
				assert.Equal(t, tt.want, string(result.ModifiedContent), "content should be untouched")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(result.ModifiedContent), "modified content should match")
			assert.Equal(t, tt.wantModified, result.WasModified, "modified flag should match")
		})
	}
}

func TestAnchorReplacer_SecondRunFails(t *testing.T) {
	// One-shot contract: the splice consumes the start marker, so a
	// second run over the patched output fails instead of no-opping.
	rule := RegionRule{
		StartMarker: "START",
		EndMarker:   "END",
		Replacement: "NEW\n",
	}
	replacer := NewAnchorReplacer()

	first, err := replacer.ReplaceRegion(context.Background(), strings.NewReader("X\nSTART\nold\nEND\nY"), rule)
	require.NoError(t, err)
	require.Equal(t, "X\nNEW\nEND\nY", string(first.ModifiedContent))

	second, err := replacer.ReplaceRegion(context.Background(), strings.NewReader(string(first.ModifiedContent)), rule)
	require.Error(t, err)

	var markerErr *MarkerNotFoundError
	require.ErrorAs(t, err, &markerErr)
	assert.True(t, markerErr.MissingStart(), "start marker should be gone after first run")
	assert.False(t, markerErr.MissingEnd(), "end marker should still be present")
	assert.Equal(t, string(first.ModifiedContent), string(second.ModifiedContent), "second run should not touch content")
}

func TestMarkerNotFoundError_Message(t *testing.T) {
	err := &MarkerNotFoundError{StartIndex: -1, EndIndex: 42}
	assert.Equal(t, "markers not found: start=-1, end=42", err.Error())
}

func TestAnchorReplacer_ValidateRule(t *testing.T) {
	tests := []struct {
		name      string
		rule      RegionRule
		wantError string
	}{
		{
			name: "valid_rule",
			rule: RegionRule{
				StartMarker:    "START",
				EndMarker:      "END",
				FileFilterGlob: "**/*.js",
			},
		},
		{
			name: "missing_start_marker",
			rule: RegionRule{
				EndMarker:      "END",
				FileFilterGlob: "**/*.js",
			},
			wantError: "start_marker is required",
		},
		{
			name: "missing_end_marker",
			rule: RegionRule{
				StartMarker:    "START",
				FileFilterGlob: "**/*.js",
			},
			wantError: "end_marker is required",
		},
		{
			name: "missing_file_filter",
			rule: RegionRule{
				StartMarker: "START",
				EndMarker:   "END",
			},
			wantError: "file_filter_glob is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewAnchorReplacer()
			err := replacer.ValidateRule(tt.rule)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

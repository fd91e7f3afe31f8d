package log

import (
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMarkerStatus(t *testing.T) {
	// Disable color so assertions see the plain text
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		name   string
		status MarkerStatus
		want   string
	}{
		{
			name:   "found",
			status: MarkerStatus{Name: "start", Index: 42},
			want:   "✓ start marker: found at byte 42",
		},
		{
			name:   "found_at_zero",
			status: MarkerStatus{Name: "end", Index: 0},
			want:   "✓ end marker: found at byte 0",
		},
		{
			name:   "not_found",
			status: MarkerStatus{Name: "end", Index: -1},
			want:   "✗ end marker: not found (index -1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMarkerStatus(tt.status))
		})
	}
}

func TestMarkerStatus_Found(t *testing.T) {
	assert.True(t, MarkerStatus{Index: 0}.Found())
	assert.True(t, MarkerStatus{Index: 17}.Found())
	assert.False(t, MarkerStatus{Index: -1}.Found())
}

func TestNewUserLogger(t *testing.T) {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	u := NewUserLogger(ctx)
	require.NotNil(t, u)

	// Exercise the mirrored logging paths; output goes to the test log
	u.LogMarkerStatus(
		MarkerStatus{Name: "start", Index: 3},
		MarkerStatus{Name: "end", Index: -1},
	)
	u.LogStateChange("locating markers")
	u.LogPatchSuccess("appointments.js", false)
	u.LogPatchSuccess("appointments.js", true)
	u.LogMarkersNotFound(-1, 120)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeSlot(t *testing.T) {
	start := time.Date(2025, 7, 11, 15, 0, 0, 0, time.UTC)

	slot := NewTimeSlot(start)

	assert.Equal(t, start, slot.Start)
	assert.Equal(t, start.Add(30*time.Minute), slot.End)
	assert.Equal(t, 30*time.Minute, slot.Duration())
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2025, 7, 11, 15, 0, 0, 0, time.UTC)
	slot := NewTimeSlot(base)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{
			name:     "identical interval overlaps",
			start:    base,
			end:      base.Add(30 * time.Minute),
			expected: true,
		},
		{
			name:     "partial overlap from the left",
			start:    base.Add(-15 * time.Minute),
			end:      base.Add(15 * time.Minute),
			expected: true,
		},
		{
			name:     "partial overlap from the right",
			start:    base.Add(15 * time.Minute),
			end:      base.Add(45 * time.Minute),
			expected: true,
		},
		{
			name:     "touching at slot end does not overlap",
			start:    base.Add(30 * time.Minute),
			end:      base.Add(60 * time.Minute),
			expected: false,
		},
		{
			name:     "touching at slot start does not overlap",
			start:    base.Add(-30 * time.Minute),
			end:      base,
			expected: false,
		},
		{
			name:     "disjoint interval",
			start:    base.Add(2 * time.Hour),
			end:      base.Add(3 * time.Hour),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slot.Overlaps(tt.start, tt.end))
		})
	}
}

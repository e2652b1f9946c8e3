package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarchDuration(t *testing.T) {
	tests := []struct {
		name     string
		fromX    int
		fromY    int
		toX      int
		toY      int
		expected time.Duration
	}{
		{"distance 500 takes 10 minutes", 100, 100, 600, 100, 10 * time.Minute},
		{"diagonal 3-4-5 triangle", 0, 0, 300, 400, 10 * time.Minute},
		{"same position still rounds to zero", 250, 250, 250, 250, 0},
		{"short hop rounds up to a full minute", 100, 100, 101, 100, 1 * time.Minute},
		{"non-integer distance rounds up", 0, 0, 100, 100, 3 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarchDuration(tt.fromX, tt.fromY, tt.toX, tt.toY))
		})
	}
}

func TestMarchDurationSymmetric(t *testing.T) {
	assert.Equal(t,
		MarchDuration(120, 340, 560, 180),
		MarchDuration(560, 180, 120, 340))
}

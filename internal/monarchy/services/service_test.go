package services

import (
	"math/rand"
	"testing"

	"go-westeros/internal/monarchy/models"

	"github.com/stretchr/testify/assert"
)

func TestTotalDue(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		rate   float64
		want   int64
	}{
		{"flat five percent", 1000, 5.0, 1050},
		{"fractional result floors", 1000, 12.7, 1127},
		{"floor drops the remainder", 999, 5.0, 1048},
		{"max rate boundary", 1000, 24.999, 1249},
		{"small principal", 1, 25.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDue(tt.amount, tt.rate))
		})
	}
}

func TestLoanRateBounds(t *testing.T) {
	// Same draw the service performs at issuance.
	for i := 0; i < 1000; i++ {
		rate := models.LoanRateMin + rand.Float64()*(models.LoanRateMax-models.LoanRateMin)
		assert.GreaterOrEqual(t, rate, models.LoanRateMin)
		assert.Less(t, rate, models.LoanRateMax)
	}
}

func TestTotalDueFixedAtIssuance(t *testing.T) {
	// The stored figure must not drift if recomputed later with the same
	// inputs.
	due := TotalDue(12345, 17.3)
	assert.Equal(t, due, TotalDue(12345, 17.3))
	assert.Equal(t, int64(14480), due)
}

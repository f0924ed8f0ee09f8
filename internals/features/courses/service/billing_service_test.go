package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhub_backend/internals/features/courses/model"
)

func TestComputeCost(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		cycle string
		want  float64
	}{
		{"monthly pakai harga dasar", 100, model.BillingCycleMonthly, 100},
		{"quarterly 3 bulan dibagi 0.95", 100, model.BillingCycleQuarterly, 315.79},
		{"semi-annual 6 bulan dibagi 0.95", 100, model.BillingCycleSemiAnnual, 631.58},
		{"annual 12 bulan dibagi 0.95", 100, model.BillingCycleAnnual, 1263.16},
		{"nominal NGN riil", 25000, model.BillingCycleQuarterly, 78947.37},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCost(tt.base, tt.cycle)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestComputeCostUnknownCycle(t *testing.T) {
	_, err := ComputeCost(100, "weekly")
	assert.ErrorIs(t, err, ErrUnknownBillingCycle)
}

func TestComputeEndDate(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		cycle string
		want  time.Time
	}{
		{model.BillingCycleMonthly, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)},
		{model.BillingCycleQuarterly, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
		{model.BillingCycleSemiAnnual, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)},
		{model.BillingCycleAnnual, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.cycle, func(t *testing.T) {
			got, err := ComputeEndDate(start, tt.cycle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ComputeEndDate(start, "weekly")
	assert.ErrorIs(t, err, ErrUnknownBillingCycle)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 315.79, Round2(315.789473))
	assert.Equal(t, 100.0, Round2(100))
	assert.Equal(t, 0.01, Round2(0.005))
}

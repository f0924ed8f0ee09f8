package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{PaymentStatusPending, PaymentStatusSuccessful, true},
		{PaymentStatusPending, PaymentStatusFailed, true},
		{PaymentStatusPending, PaymentStatusCancelled, true},
		{PaymentStatusPending, PaymentStatusRefunded, false},
		{PaymentStatusSuccessful, PaymentStatusRefunded, true},
		{PaymentStatusSuccessful, PaymentStatusFailed, false},
		{PaymentStatusSuccessful, PaymentStatusCancelled, false},
		{PaymentStatusFailed, PaymentStatusSuccessful, false},
		{PaymentStatusFailed, PaymentStatusPending, false},
		{PaymentStatusCancelled, PaymentStatusSuccessful, false},
		{PaymentStatusRefunded, PaymentStatusSuccessful, false},
		{PaymentStatusRefunded, PaymentStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_ke_"+tt.to, func(t *testing.T) {
			p := PaymentModel{PaymentStatus: tt.from}
			assert.Equal(t, tt.want, p.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []string{PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusRefunded}
	for _, s := range terminal {
		p := PaymentModel{PaymentStatus: s}
		assert.True(t, p.IsTerminal(), s)
	}

	open := []string{PaymentStatusPending, PaymentStatusSuccessful}
	for _, s := range open {
		p := PaymentModel{PaymentStatus: s}
		assert.False(t, p.IsTerminal(), s)
	}
}

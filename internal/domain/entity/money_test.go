package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsCents(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{amount: "10", want: true},
		{amount: "10.5", want: true},
		{amount: "10.50", want: true},
		{amount: "10.500", want: true},
		{amount: "10.005", want: false},
		{amount: "0.004", want: false},
		{amount: "-1.25", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCents(decimal.RequireFromString(tt.amount)))
		})
	}
}

package presentation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		bp   int
		want string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{1850, "18.50"},
		{10000, "100.00"},
		{-25, "-0.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.bp), "bp=%d", tt.bp)
	}
}

func TestUSD(t *testing.T) {
	tests := []struct {
		micro int64
		want  string
	}{
		{0, "0.000000"},
		{1, "0.000001"},
		{1_500_000, "1.500000"},
		{math.MaxInt64, "9223372036854.775807"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, USD(tt.micro), "micro=%d", tt.micro)
	}
}

func TestUSDCents(t *testing.T) {
	assert.Equal(t, "1.50", USDCents(1_500_000))
	assert.Equal(t, "0.01", USDCents(5_000))
	assert.Equal(t, "0.00", USDCents(4_999))
	assert.Equal(t, "1000.00", USDCents(999_999_999))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 25.0, Clamp(10, 25, 45))
	assert.Equal(t, 45.0, Clamp(50, 25, 45))
	assert.Equal(t, 30.0, Clamp(30, 25, 45))
}

func TestRounding(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{33.333, 1, 33.3},
		{33.36, 1, 33.4},
		{-1.25, 1, -1.3},
		{2.346, 2, 2.35},
		{7.6, 0, 8},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundTo(tt.value, tt.places), 1e-9, "RoundTo(%v, %d)", tt.value, tt.places)
	}
	assert.Equal(t, 37.3, Round1(37.26))
}

func TestHaversine(t *testing.T) {
	assert.Zero(t, Haversine(-23.55, -46.63, -23.55, -46.63))
	// one degree of latitude
	assert.InDelta(t, 111.19, Haversine(0, 0, 1, 0), 0.01)
	// São Paulo to Rio de Janeiro
	assert.InDelta(t, 360, Haversine(-23.5505, -46.6333, -22.9068, -43.1729), 10)
}

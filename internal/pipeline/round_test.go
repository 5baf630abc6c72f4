package pipeline

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.234, 1.23},
		{1.235, 1.24},
		{1.999, 2},
		{5, 5},
		{100, 100},
		{0, 0},
		{-1.234, -1.23},
		{-1.236, -1.24},
		{-1.235, -1.24}, // half away from zero
		{-5.99, -5.99},
		{0.1 + 0.2, 0.3},
		{1.005, 1.01},
		{2.675, 2.68},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

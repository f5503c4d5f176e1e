package service

import "testing"

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"new data with no history", 5, 0, 100},
		{"fifty percent growth", 15, 10, 50},
		{"shrinking", 5, 10, -50},
		{"no change", 10, 10, 0},
		{"rounds to one decimal", 10, 3, 233.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := growthPercent(tt.current, tt.previous); got != tt.want {
				t.Errorf("growthPercent(%d, %d) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

package process

import (
	"testing"

	"github.com/market-research/usage-statistics-go/data"
)

func statsOf(averages ...float64) []data.UserStat {
	stats := make([]data.UserStat, 0, len(averages))
	for _, average := range averages {
		stats = append(stats, data.UserStat{AverageTransactionsPerMonth: average, ActiveMonths: 1})
	}

	return stats
}

func TestAggregate_Empty(t *testing.T) {
	global := Aggregate(nil)
	if global != (data.GlobalStat{}) {
		t.Errorf("expected zero stats, got %+v", global)
	}
}

func TestAggregate_Singleton(t *testing.T) {
	global := Aggregate(statsOf(4.5))
	expected := data.GlobalStat{Min: 4.5, Max: 4.5, Mean: 4.5, Median: 4.5}
	if global != expected {
		t.Errorf("expected %+v, got %+v", expected, global)
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		stats    []data.UserStat
		expected data.GlobalStat
	}{
		{
			name:     "odd length",
			stats:    statsOf(3, 1, 2),
			expected: data.GlobalStat{Min: 1, Max: 3, Mean: 2, Median: 2},
		},
		{
			name:     "even length",
			stats:    statsOf(4, 1, 10, 2),
			expected: data.GlobalStat{Min: 1, Max: 10, Mean: 4.25, Median: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := Aggregate(tt.stats)
			if global != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, global)
			}
		})
	}
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	stats := statsOf(3, 1, 2)
	_ = Aggregate(stats)

	if stats[0].AverageTransactionsPerMonth != 3 || stats[1].AverageTransactionsPerMonth != 1 {
		t.Errorf("input was modified: %+v", stats)
	}
}

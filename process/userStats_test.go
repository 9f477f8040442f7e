package process

import (
	"testing"
	"time"

	"github.com/market-research/usage-statistics-go/data"
)

func unix(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Unix()
}

func txsAt(timestamps ...int64) []data.Transaction {
	txs := make([]data.Transaction, 0, len(timestamps))
	for _, timestamp := range timestamps {
		txs = append(txs, data.Transaction{TimeStamp: timestamp})
	}

	return txs
}

func TestComputeUserStat_Empty(t *testing.T) {
	stat := ComputeUserStat(nil, time.UTC)
	if stat.AverageTransactionsPerMonth != 0 || stat.ActiveMonths != 0 {
		t.Errorf("expected (0, 0), got %+v", stat)
	}
}

func TestComputeUserStat_SingleTransaction(t *testing.T) {
	stat := ComputeUserStat(txsAt(unix(2023, time.July, 20)), time.UTC)
	if stat.AverageTransactionsPerMonth != 1 || stat.ActiveMonths != 1 {
		t.Errorf("expected (1, 1), got %+v", stat)
	}
}

func TestComputeUserStat_OneMonth(t *testing.T) {
	timestamps := make([]int64, 0, 12)
	for day := 1; day <= 12; day++ {
		timestamps = append(timestamps, unix(2024, time.January, day*2))
	}

	stat := ComputeUserStat(txsAt(timestamps...), time.UTC)
	if stat.AverageTransactionsPerMonth != 12 || stat.ActiveMonths != 1 {
		t.Errorf("expected (12, 1), got %+v", stat)
	}
}

func TestComputeUserStat_ConsecutiveMonths(t *testing.T) {
	tests := []struct {
		name       string
		timestamps []int64
		months     int
	}{
		{
			name:       "two months",
			timestamps: []int64{unix(2023, time.March, 31), unix(2023, time.April, 1), unix(2023, time.April, 2)},
			months:     2,
		},
		{
			name:       "across new year",
			timestamps: []int64{unix(2023, time.November, 15), unix(2024, time.February, 1)},
			months:     4,
		},
		{
			name:       "unordered input",
			timestamps: []int64{unix(2024, time.March, 1), unix(2022, time.March, 1), unix(2023, time.March, 1)},
			months:     25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat := ComputeUserStat(txsAt(tt.timestamps...), time.UTC)

			expectedAverage := float64(len(tt.timestamps)) / float64(tt.months)
			if stat.ActiveMonths != tt.months {
				t.Errorf("expected %d months, got %d", tt.months, stat.ActiveMonths)
			}
			if stat.AverageTransactionsPerMonth != expectedAverage {
				t.Errorf("expected average %v, got %v", expectedAverage, stat.AverageTransactionsPerMonth)
			}
		})
	}
}

func TestComputeUserStat_UsesLocation(t *testing.T) {
	// 2024-01-31 23:30 UTC is already February in UTC+1
	endOfJanuary := time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC).Unix()
	startOfJanuary := unix(2024, time.January, 2)
	plusOne := time.FixedZone("UTC+1", 3600)

	utcStat := ComputeUserStat(txsAt(startOfJanuary, endOfJanuary), time.UTC)
	if utcStat.ActiveMonths != 1 {
		t.Errorf("expected 1 month in UTC, got %d", utcStat.ActiveMonths)
	}

	shiftedStat := ComputeUserStat(txsAt(startOfJanuary, endOfJanuary), plusOne)
	if shiftedStat.ActiveMonths != 2 {
		t.Errorf("expected 2 months in UTC+1, got %d", shiftedStat.ActiveMonths)
	}
}

func TestDurationMonths_ReversedTimestamps(t *testing.T) {
	// the formula is applied as is, out of order timestamps are not clamped
	duration := DurationMonths(unix(2024, time.March, 1), unix(2024, time.January, 1), time.UTC)
	if duration != -1 {
		t.Errorf("expected -1, got %d", duration)
	}

	duration = DurationMonths(unix(2024, time.February, 1), unix(2024, time.January, 1), time.UTC)
	if duration != 0 {
		t.Errorf("expected 0, got %d", duration)
	}
}

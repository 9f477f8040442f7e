package process

import (
	"sort"

	"github.com/market-research/usage-statistics-go/data"
)

func averagesOf(stats []data.UserStat) []float64 {
	averages := make([]float64, 0, len(stats))
	for _, stat := range stats {
		averages = append(averages, stat.AverageTransactionsPerMonth)
	}

	return averages
}

// Aggregate computes min, max, mean and median of the per month averages
func Aggregate(stats []data.UserStat) data.GlobalStat {
	averages := averagesOf(stats)
	if len(averages) == 0 {
		return data.GlobalStat{}
	}

	sort.Float64s(averages)

	sum := 0.0
	for _, average := range averages {
		sum += average
	}

	return data.GlobalStat{
		Min:    averages[0],
		Max:    averages[len(averages)-1],
		Mean:   sum / float64(len(averages)),
		Median: median(averages),
	}
}

// median expects sorted values
func median(sorted []float64) float64 {
	middle := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[middle]
	}

	return (sorted[middle-1] + sorted[middle]) / 2
}

package process

import (
	"math"
	"sort"

	"github.com/market-research/usage-statistics-go/data"
)

const iqrMultiplier = 1.5

// Percentile returns the p-th percentile (0..100) of values, interpolating linearly between
// the two closest ranks of position p/100*(n-1) in the sorted values
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	position := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))
	fraction := position - float64(lower)

	return sorted[lower] + (sorted[upper]-sorted[lower])*fraction
}

// FilterOutliers keeps the stats whose average lies strictly inside
// (Q1 - 1.5*IQR, Q3 + 1.5*IQR), in their original order. Bounds are recomputed on each
// call, so filtering an already filtered slice can remove more entries.
func FilterOutliers(stats []data.UserStat) []data.UserStat {
	filtered := make([]data.UserStat, 0, len(stats))
	if len(stats) == 0 {
		return filtered
	}

	averages := averagesOf(stats)
	q1 := Percentile(averages, 25)
	q3 := Percentile(averages, 75)
	step := iqrMultiplier * (q3 - q1)
	lowerBound := q1 - step
	upperBound := q3 + step

	for _, stat := range stats {
		if lowerBound < stat.AverageTransactionsPerMonth && stat.AverageTransactionsPerMonth < upperBound {
			filtered = append(filtered, stat)
		}
	}

	log.Debug("outliers removed",
		"q1", q1,
		"q3", q3,
		"lower bound", lowerBound,
		"upper bound", upperBound,
		"removed", len(stats)-len(filtered),
	)

	return filtered
}

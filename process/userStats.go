package process

import (
	"time"

	"github.com/market-research/usage-statistics-go/data"
)

// DurationMonths counts the calendar months touched between two unix timestamps, both
// ends included, with the calendar taken in loc. The count is not clamped: timestamps in
// reverse order can give zero or a negative number.
func DurationMonths(start int64, end int64, loc *time.Location) int {
	startDate := time.Unix(start, 0).In(loc)
	endDate := time.Unix(end, 0).In(loc)

	yearsDiff := endDate.Year() - startDate.Year()
	monthsDiff := int(endDate.Month()) - int(startDate.Month())

	return yearsDiff*12 + monthsDiff + 1
}

// ComputeUserStat derives the activity duration and the average number of transactions
// per month of a single address
func ComputeUserStat(txs []data.Transaction, loc *time.Location) data.UserStat {
	if len(txs) == 0 {
		return data.UserStat{}
	}

	minTimestamp, maxTimestamp := txs[0].TimeStamp, txs[0].TimeStamp
	for _, tx := range txs[1:] {
		if tx.TimeStamp < minTimestamp {
			minTimestamp = tx.TimeStamp
		}
		if tx.TimeStamp > maxTimestamp {
			maxTimestamp = tx.TimeStamp
		}
	}

	durationMonths := DurationMonths(minTimestamp, maxTimestamp, loc)
	average := 0.0
	if durationMonths != 0 {
		average = float64(len(txs)) / float64(durationMonths)
	}

	return data.UserStat{
		AverageTransactionsPerMonth: average,
		ActiveMonths:                durationMonths,
	}
}

package data

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

const statusOK = "1"

// BlockRef selects a single block, used as both start and end of a range query
type BlockRef struct {
	Name   string
	Number uint64
}

// ExplorerResponse holds the fields of an explorer API response that the processors look at
type ExplorerResponse struct {
	HTTPStatus int
	Status     string
	Message    string
	Result     gjson.Result
}

// IsOK returns true if both the HTTP layer and the explorer reported success
func (er *ExplorerResponse) IsOK() bool {
	return er != nil && er.HTTPStatus == http.StatusOK && er.Status == statusOK
}

// Transaction is a single entry of an address transaction list. Raw keeps the original
// JSON so fields the statistics do not use still travel with the record.
type Transaction struct {
	Hash        string `json:"hash"`
	BlockNumber uint64 `json:"blockNumber"`
	From        string `json:"from"`
	To          string `json:"to"`
	TimeStamp   int64  `json:"timeStamp"`
	Raw         string `json:"-"`
}

type UserStat struct {
	Address                     string  `json:"address"`
	AverageTransactionsPerMonth float64 `json:"averageTransactionsPerMonth"`
	ActiveMonths                int     `json:"activeMonths"`
}

type GlobalStat struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

type PlotLabels struct {
	Title  string
	XLabel string
	YLabel string
}

// UsageReport is the outcome of one pipeline run
type UsageReport struct {
	RunID            string     `json:"runId"`
	Chain            string     `json:"chain"`
	MergedAddresses  int        `json:"mergedAddresses"`
	FetchedAddresses int        `json:"fetchedAddresses"`
	ActiveAccounts   int        `json:"activeAccounts"`
	AnalyzedAccounts int        `json:"analyzedAccounts"`
	Global           GlobalStat `json:"global"`
	Users            []UserStat `json:"users"`
}

// Averages returns the per month averages of the analyzed users, in report order
func (ur *UsageReport) Averages() []float64 {
	averages := make([]float64, 0, len(ur.Users))
	for _, stat := range ur.Users {
		averages = append(averages, stat.AverageTransactionsPerMonth)
	}

	return averages
}

func (ur *UsageReport) SummaryLines() []string {
	return []string{
		fmt.Sprintf("Merged addresses: %d", ur.MergedAddresses),
		fmt.Sprintf("Addresses with transactions: %d", ur.FetchedAddresses),
		fmt.Sprintf("Active accounts: %d", ur.ActiveAccounts),
		fmt.Sprintf("Number of accounts analyzed: %d", ur.AnalyzedAccounts),
		fmt.Sprintf("Min Global Transactions per Month: %v", ur.Global.Min),
		fmt.Sprintf("Max Global Transactions per Month: %v", ur.Global.Max),
		fmt.Sprintf("Global Average Transactions per Month: %v", ur.Global.Mean),
		fmt.Sprintf("Global Median Transactions per Month: %v", ur.Global.Median),
	}
}

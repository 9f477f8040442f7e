package process

import (
	"context"
	"net/url"

	"github.com/market-research/usage-statistics-go/data"
)

// ExplorerHandler defines what a block explorer client should be able do
type ExplorerHandler interface {
	DoGetRequest(ctx context.Context, params url.Values) (*data.ExplorerResponse, error)
}

type AddressCollectorHandler interface {
	CollectAddresses(ctx context.Context, blocks []data.BlockRef) (map[string]struct{}, error)
}

type TransactionsFetcherHandler interface {
	FetchAll(ctx context.Context, addresses map[string]struct{}) map[string][]data.Transaction
}

// PlotHandler renders the distribution of the analyzed averages
type PlotHandler interface {
	Plot(values []float64, labels data.PlotLabels) error
}

type UsageHandler interface {
	ProcessUsage(ctx context.Context) (*data.UsageReport, error)
}

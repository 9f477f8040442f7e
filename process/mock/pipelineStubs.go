package mock

import (
	"context"

	"github.com/market-research/usage-statistics-go/data"
)

// AddressCollectorStub -
type AddressCollectorStub struct {
	CollectAddressesCalled func(ctx context.Context, blocks []data.BlockRef) (map[string]struct{}, error)
}

// CollectAddresses -
func (acs *AddressCollectorStub) CollectAddresses(ctx context.Context, blocks []data.BlockRef) (map[string]struct{}, error) {
	if acs.CollectAddressesCalled != nil {
		return acs.CollectAddressesCalled(ctx, blocks)
	}

	return map[string]struct{}{}, nil
}

// TransactionsFetcherStub -
type TransactionsFetcherStub struct {
	FetchAllCalled func(ctx context.Context, addresses map[string]struct{}) map[string][]data.Transaction
}

// FetchAll -
func (tfs *TransactionsFetcherStub) FetchAll(ctx context.Context, addresses map[string]struct{}) map[string][]data.Transaction {
	if tfs.FetchAllCalled != nil {
		return tfs.FetchAllCalled(ctx, addresses)
	}

	return map[string][]data.Transaction{}
}

// UsageHandlerStub -
type UsageHandlerStub struct {
	ProcessUsageCalled func(ctx context.Context) (*data.UsageReport, error)
}

// ProcessUsage -
func (uhs *UsageHandlerStub) ProcessUsage(ctx context.Context) (*data.UsageReport, error) {
	if uhs.ProcessUsageCalled != nil {
		return uhs.ProcessUsageCalled(ctx)
	}

	return &data.UsageReport{}, nil
}

package mock

import (
	"context"
	"net/url"

	"github.com/market-research/usage-statistics-go/data"
)

// ExplorerStub -
type ExplorerStub struct {
	DoGetRequestCalled func(ctx context.Context, params url.Values) (*data.ExplorerResponse, error)
	Calls              []url.Values
}

// DoGetRequest -
func (es *ExplorerStub) DoGetRequest(ctx context.Context, params url.Values) (*data.ExplorerResponse, error) {
	es.Calls = append(es.Calls, params)
	if es.DoGetRequestCalled != nil {
		return es.DoGetRequestCalled(ctx, params)
	}

	return &data.ExplorerResponse{}, nil
}

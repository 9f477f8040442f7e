package process

import (
	"context"
	"fmt"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/market-research/usage-statistics-go/data"
)

var log = logger.GetOrCreate("process")

type addressCollector struct {
	explorer      ExplorerHandler
	tokenContract string
	sender        string
	pageSize      int
}

// NewAddressCollector creates the component that gathers the recipients of the token
// transfers made by sender at the configured blocks
func NewAddressCollector(
	explorer ExplorerHandler,
	tokenContract string,
	sender string,
	pageSize int,
) (*addressCollector, error) {
	if explorer == nil {
		return nil, ErrNilExplorerHandler
	}
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	return &addressCollector{
		explorer:      explorer,
		tokenContract: tokenContract,
		sender:        sender,
		pageSize:      pageSize,
	}, nil
}

// CollectAddresses returns the union of the recipients found at every block. A block whose
// query fails upstream adds nothing, a transport error stops the collection.
func (ac *addressCollector) CollectAddresses(ctx context.Context, blocks []data.BlockRef) (map[string]struct{}, error) {
	merged := make(map[string]struct{})
	for _, block := range blocks {
		recipients, err := ac.fetchRecipients(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("cannot collect addresses at block %s (%d): %w", block.Name, block.Number, err)
		}

		log.Debug("collected recipients", "block", block.Name, "number", block.Number, "num addresses", len(recipients))

		for address := range recipients {
			merged[address] = struct{}{}
		}
	}

	return merged, nil
}

func (ac *addressCollector) fetchRecipients(ctx context.Context, block data.BlockRef) (map[string]struct{}, error) {
	response, err := ac.explorer.DoGetRequest(ctx, tokenTransfersAtBlock(ac.tokenContract, ac.sender, block.Number, ac.pageSize))
	if err != nil {
		return nil, err
	}

	recipients := make(map[string]struct{})
	if !response.IsOK() {
		log.Warn("no token transfers for block",
			"block", block.Name,
			"number", block.Number,
			"http status", response.HTTPStatus,
			"message", response.Message,
		)
		return recipients, nil
	}

	for _, transfer := range response.Result.Array() {
		to := transfer.Get("to").String()
		if to == "" {
			continue
		}

		recipients[to] = struct{}{}
	}

	return recipients, nil
}

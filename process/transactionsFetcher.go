package process

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/market-research/usage-statistics-go/data"
	"github.com/tidwall/gjson"
)

type transactionsFetcher struct {
	explorer   ExplorerHandler
	delay      time.Duration
	startBlock uint64
	endBlock   uint64
	pageSize   int
	sleep      func(d time.Duration)
}

// NewTransactionsFetcher creates the component that reads the transaction list of every
// address while keeping under callsPerSecond explorer calls
func NewTransactionsFetcher(
	explorer ExplorerHandler,
	callsPerSecond int,
	startBlock uint64,
	endBlock uint64,
	pageSize int,
) (*transactionsFetcher, error) {
	if explorer == nil {
		return nil, ErrNilExplorerHandler
	}
	if callsPerSecond <= 0 {
		return nil, ErrInvalidCallsPerSecond
	}
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	return &transactionsFetcher{
		explorer:   explorer,
		delay:      time.Second / time.Duration(callsPerSecond),
		startBlock: startBlock,
		endBlock:   endBlock,
		pageSize:   pageSize,
		sleep:      time.Sleep,
	}, nil
}

// FetchAll returns the transactions of every address that could be read. Addresses whose
// fetch failed are left out of the map instead of being mapped to an empty list.
func (tf *transactionsFetcher) FetchAll(ctx context.Context, addresses map[string]struct{}) map[string][]data.Transaction {
	sorted := make([]string, 0, len(addresses))
	for address := range addresses {
		sorted = append(sorted, address)
	}
	sort.Strings(sorted)

	transactionsPerAddress := make(map[string][]data.Transaction, len(sorted))
	for idx, address := range sorted {
		txs, ok := tf.fetchTransactions(ctx, address)
		if ok {
			transactionsPerAddress[address] = txs
		}

		tf.sleep(tf.delay)

		if (idx+1)%100 == 0 {
			log.Info("fetching transactions", "processed", idx+1, "total", len(sorted), "with data", len(transactionsPerAddress))
		}
	}

	return transactionsPerAddress
}

func (tf *transactionsFetcher) fetchTransactions(ctx context.Context, address string) ([]data.Transaction, bool) {
	response, err := tf.explorer.DoGetRequest(ctx, transactionsOfAddress(address, tf.startBlock, tf.endBlock, tf.pageSize))
	if err != nil {
		log.Warn("cannot fetch transactions", "address", address, "error", err.Error())
		return nil, false
	}
	if !response.IsOK() {
		log.Debug("no transactions", "address", address, "http status", response.HTTPStatus, "message", response.Message)
		return nil, false
	}

	txs, err := parseTransactions(response.Result)
	if err != nil {
		log.Warn("cannot parse transactions", "address", address, "error", err.Error())
		return nil, false
	}

	return txs, true
}

func parseTransactions(result gjson.Result) ([]data.Transaction, error) {
	items := result.Array()
	txs := make([]data.Transaction, 0, len(items))
	for _, item := range items {
		timestamp, err := strconv.ParseInt(item.Get("timeStamp").String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp of transaction %s: %w", item.Get("hash").String(), err)
		}

		txs = append(txs, data.Transaction{
			Hash:        item.Get("hash").String(),
			BlockNumber: item.Get("blockNumber").Uint(),
			From:        item.Get("from").String(),
			To:          item.Get("to").String(),
			TimeStamp:   timestamp,
			Raw:         item.Raw,
		})
	}

	return txs, nil
}

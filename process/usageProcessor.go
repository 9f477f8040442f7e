package process

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/market-research/usage-statistics-go/data"
)

// ArgsUsageProcessor holds the components wired together by the usage processor
type ArgsUsageProcessor struct {
	Collector  AddressCollectorHandler
	Fetcher    TransactionsFetcherHandler
	Plotter    PlotHandler
	Blocks     []data.BlockRef
	Chain      string
	Location   *time.Location
	PlotLabels data.PlotLabels
	Output     io.Writer
}

type usageProcessor struct {
	collector  AddressCollectorHandler
	fetcher    TransactionsFetcherHandler
	plotter    PlotHandler
	blocks     []data.BlockRef
	chain      string
	location   *time.Location
	plotLabels data.PlotLabels
	output     io.Writer
}

func NewUsageProcessor(args ArgsUsageProcessor) (*usageProcessor, error) {
	if args.Collector == nil {
		return nil, ErrNilAddressCollector
	}
	if args.Fetcher == nil {
		return nil, ErrNilTransactionsFetcher
	}
	if args.Plotter == nil {
		return nil, ErrNilPlotHandler
	}

	location := args.Location
	if location == nil {
		location = time.Local
	}
	output := args.Output
	if output == nil {
		output = io.Discard
	}

	return &usageProcessor{
		collector:  args.Collector,
		fetcher:    args.Fetcher,
		plotter:    args.Plotter,
		blocks:     args.Blocks,
		chain:      args.Chain,
		location:   location,
		plotLabels: args.PlotLabels,
		output:     output,
	}, nil
}

// ProcessUsage runs the whole pipeline: collect the cohort, fetch its transactions, compute
// the per user statistics, drop inactive users and outliers, aggregate and plot
func (up *usageProcessor) ProcessUsage(ctx context.Context) (*data.UsageReport, error) {
	addresses, err := up.collector.CollectAddresses(ctx, up.blocks)
	if err != nil {
		return nil, err
	}
	log.Info("merged addresses", "total", len(addresses))

	transactionsPerAddress := up.fetcher.FetchAll(ctx, addresses)
	log.Info("fetched transactions", "chain", up.chain, "addresses with data", len(transactionsPerAddress))

	activeUserStats := up.activeUserStats(transactionsPerAddress)
	filteredStats := FilterOutliers(activeUserStats)

	report := &data.UsageReport{
		RunID:            uuid.New().String(),
		Chain:            up.chain,
		MergedAddresses:  len(addresses),
		FetchedAddresses: len(transactionsPerAddress),
		ActiveAccounts:   len(activeUserStats),
		AnalyzedAccounts: len(filteredStats),
		Global:           Aggregate(filteredStats),
		Users:            filteredStats,
	}

	up.printReport(report)

	err = up.plotter.Plot(report.Averages(), up.plotLabels)
	if err != nil {
		return nil, fmt.Errorf("cannot plot distribution: %w", err)
	}

	return report, nil
}

// activeUserStats keeps the users with a non zero monthly average, ordered by address
func (up *usageProcessor) activeUserStats(transactionsPerAddress map[string][]data.Transaction) []data.UserStat {
	addresses := make([]string, 0, len(transactionsPerAddress))
	for address := range transactionsPerAddress {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	stats := make([]data.UserStat, 0, len(addresses))
	for _, address := range addresses {
		stat := ComputeUserStat(transactionsPerAddress[address], up.location)
		if stat.AverageTransactionsPerMonth <= 0 {
			continue
		}

		stat.Address = address
		stats = append(stats, stat)
	}

	return stats
}

func (up *usageProcessor) printReport(report *data.UsageReport) {
	for _, line := range report.SummaryLines() {
		_, _ = fmt.Fprintln(up.output, line)
	}
}

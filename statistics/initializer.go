package statistics

import (
	"io"

	"github.com/market-research/usage-statistics-go/config"
	"github.com/market-research/usage-statistics-go/explorerClient"
	"github.com/market-research/usage-statistics-go/plot"
	"github.com/market-research/usage-statistics-go/process"
)

// CreateStatsHandler wires the usage pipeline for the given chain. The cohort is always
// collected on the collector chain of the configuration. An empty plotFile disables the histogram.
func CreateStatsHandler(cfg *config.Config, chain string, plotFile string, output io.Writer) (StatsHandler, error) {
	collectorExplorer, err := cfg.ResolveChain(cfg.Collector.Chain)
	if err != nil {
		return nil, err
	}

	usageExplorer, err := cfg.ResolveChain(chain)
	if err != nil {
		return nil, err
	}

	location, err := cfg.General.Location()
	if err != nil {
		return nil, err
	}

	collectorClient, err := explorerClient.NewExplorerClient(collectorExplorer.URL, collectorExplorer.APIKey, cfg.General.HTTPTimeout())
	if err != nil {
		return nil, err
	}

	usageClient, err := explorerClient.NewExplorerClient(usageExplorer.URL, usageExplorer.APIKey, cfg.General.HTTPTimeout())
	if err != nil {
		return nil, err
	}

	collector, err := process.NewAddressCollector(
		collectorClient,
		cfg.Collector.TokenContractAddress,
		cfg.Collector.SenderAddress,
		cfg.Collector.PageSize,
	)
	if err != nil {
		return nil, err
	}

	fetcher, err := process.NewTransactionsFetcher(
		usageClient,
		cfg.Fetcher.CallsPerSecond,
		cfg.Fetcher.StartBlock,
		cfg.Fetcher.EndBlock,
		cfg.Fetcher.PageSize,
	)
	if err != nil {
		return nil, err
	}

	plotter, err := createPlotter(plotFile, cfg.Plot.Bins)
	if err != nil {
		return nil, err
	}

	usageHandler, err := process.NewUsageProcessor(process.ArgsUsageProcessor{
		Collector:  collector,
		Fetcher:    fetcher,
		Plotter:    plotter,
		Blocks:     cfg.Collector.Blocks,
		Chain:      usageExplorer.Name,
		Location:   location,
		PlotLabels: cfg.Plot.PlotLabels(usageExplorer.Name),
		Output:     output,
	})
	if err != nil {
		return nil, err
	}

	return process.NewStatisticsProcessor(usageHandler)
}

func createPlotter(plotFile string, bins int) (process.PlotHandler, error) {
	if plotFile == "" {
		return plot.NewDisabledPlotter(), nil
	}

	return plot.NewHistogram(plotFile, bins)
}

package main

import (
	"context"
	"io/ioutil"
	"os"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/market-research/usage-statistics-go/config"
	"github.com/market-research/usage-statistics-go/statistics"
	"github.com/urfave/cli"
)

var log = logger.GetOrCreate("main")

var (
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The main configuration file to load",
		Value: "./config/config.toml",
	}
	// envFile defines a flag for the path to a .env file holding the explorer API keys
	envFile = cli.StringFlag{
		Name:  "env-file",
		Usage: "The .env file with the explorer API keys",
		Value: ".env",
	}
	chain = cli.StringFlag{
		Name:  "chain",
		Usage: "The chain on which the usage of the collected addresses is measured",
		Value: "gnosis",
	}
	outputFile = cli.StringFlag{
		Name:  "output-file",
		Usage: "The output file with statistics",
		Value: "output.json",
	}
	plotFile = cli.StringFlag{
		Name:  "plot-file",
		Usage: "The PNG file with the distribution histogram, empty to skip plotting",
		Value: "distribution.png",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "The logger level(s) and pattern(s), for example *:INFO or process:DEBUG",
		Value: "*:INFO",
	}
)

func main() {
	app := cli.NewApp()

	app.Name = "Chain Usage Statistics GO"
	app.Version = "v1.0.0"
	app.Usage = "Measures how actively a cohort of token recipients use a chain"
	app.Flags = []cli.Flag{
		configurationFile,
		envFile,
		chain,
		outputFile,
		plotFile,
		logLevel,
	}

	app.Action = startStatistics

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startStatistics(ctx *cli.Context) error {
	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	err = config.LoadEnvFile(ctx.GlobalString(envFile.Name))
	if err != nil {
		return err
	}

	generalConfig, err := config.LoadConfig(ctx.GlobalString(configurationFile.Name))
	if err != nil {
		return err
	}

	statsHandler, err := statistics.CreateStatsHandler(
		generalConfig,
		ctx.GlobalString(chain.Name),
		ctx.GlobalString(plotFile.Name),
		os.Stdout,
	)
	if err != nil {
		return err
	}

	bytes, err := statsHandler.ProcessUsage(context.Background())
	if err != nil {
		return err
	}

	outputFileV := ctx.GlobalString(outputFile.Name)
	log.Info("writing statistics", "file", outputFileV)

	return ioutil.WriteFile(outputFileV, bytes, 0644)
}

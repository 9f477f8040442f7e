package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ElrondNetwork/elrond-go/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/market-research/usage-statistics-go/data"
)

var (
	// ErrUnknownChain signals that the requested chain has no explorer configured
	ErrUnknownChain = errors.New("unknown chain")
	// ErrMissingAPIKey signals that the environment holds no API key for a chain
	ErrMissingAPIKey = errors.New("missing explorer API key")
	// ErrInvalidAddress signals a malformed token contract or sender address
	ErrInvalidAddress = errors.New("invalid address")
	ErrNoBlocks       = errors.New("no collector blocks configured")
)

// Config holds the statistics configuration
type Config struct {
	General   GeneralConfig
	Collector CollectorConfig
	Fetcher   FetcherConfig
	Plot      PlotConfig
	Chains    []ChainConfig
}

type GeneralConfig struct {
	Timezone             string
	HTTPTimeoutInSeconds int
}

// CollectorConfig describes the token transfers that define the cohort of addresses
type CollectorConfig struct {
	Chain                string
	TokenContractAddress string
	SenderAddress        string
	PageSize             int
	Blocks               []data.BlockRef
}

type FetcherConfig struct {
	CallsPerSecond int
	StartBlock     uint64
	EndBlock       uint64
	PageSize       int
}

type PlotConfig struct {
	Bins        int
	TitleFormat string
	XLabel      string
	YLabel      string
}

// ChainConfig names an explorer endpoint and the environment variable holding its key
type ChainConfig struct {
	Name      string
	URL       string
	APIKeyEnv string
}

// Explorer is a chain explorer endpoint resolved at start-up
type Explorer struct {
	Name   string
	URL    string
	APIKey string
}

// LoadConfig reads the toml configuration file and checks it
func LoadConfig(filepath string) (*Config, error) {
	cfg := &Config{}
	err := core.LoadTomlFile(cfg, filepath)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnvFile loads API keys from a .env file. A missing file is not an error, the
// keys can come from the process environment as well.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

func (c *Config) Validate() error {
	if !common.IsHexAddress(c.Collector.TokenContractAddress) {
		return fmt.Errorf("%w: token contract %q", ErrInvalidAddress, c.Collector.TokenContractAddress)
	}
	if !common.IsHexAddress(c.Collector.SenderAddress) {
		return fmt.Errorf("%w: sender %q", ErrInvalidAddress, c.Collector.SenderAddress)
	}
	if len(c.Collector.Blocks) == 0 {
		return ErrNoBlocks
	}
	if c.Fetcher.CallsPerSecond <= 0 {
		return fmt.Errorf("invalid calls per second %d", c.Fetcher.CallsPerSecond)
	}
	if c.Plot.Bins <= 0 {
		return fmt.Errorf("invalid number of histogram bins %d", c.Plot.Bins)
	}

	return nil
}

// ResolveChain returns the explorer of the named chain with its API key read from the environment
func (c *Config) ResolveChain(name string) (Explorer, error) {
	for _, chain := range c.Chains {
		if !strings.EqualFold(chain.Name, name) {
			continue
		}

		apiKey := os.Getenv(chain.APIKeyEnv)
		if apiKey == "" {
			return Explorer{}, fmt.Errorf("%w: chain %s, variable %s", ErrMissingAPIKey, chain.Name, chain.APIKeyEnv)
		}

		return Explorer{
			Name:   chain.Name,
			URL:    chain.URL,
			APIKey: apiKey,
		}, nil
	}

	return Explorer{}, fmt.Errorf("%w: %s", ErrUnknownChain, name)
}

// Location returns the time zone used to bucket timestamps into calendar months
func (g GeneralConfig) Location() (*time.Location, error) {
	if g.Timezone == "" || g.Timezone == "Local" {
		return time.Local, nil
	}

	return time.LoadLocation(g.Timezone)
}

func (g GeneralConfig) HTTPTimeout() time.Duration {
	if g.HTTPTimeoutInSeconds <= 0 {
		return 30 * time.Second
	}

	return time.Duration(g.HTTPTimeoutInSeconds) * time.Second
}

// PlotLabels fills the chart title with the chain name
func (p PlotConfig) PlotLabels(chain string) data.PlotLabels {
	return data.PlotLabels{
		Title:  fmt.Sprintf(p.TitleFormat, strings.Title(chain)),
		XLabel: p.XLabel,
		YLabel: p.YLabel,
	}
}

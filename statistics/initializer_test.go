package statistics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/market-research/usage-statistics-go/config"
	"github.com/market-research/usage-statistics-go/data"
)

func newTestExplorer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("apikey") != "test-key" {
			_, _ = w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Invalid API Key"}`))
			return
		}

		switch query.Get("action") {
		case "tokentx":
			_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":[{"to":"0xa"},{"to":"0xb"},{"to":"0xc"}]}`))
		case "txlist":
			switch query.Get("address") {
			case "0xa":
				_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":[{"hash":"0x1","timeStamp":"1704110400"}]}`))
			case "0xb":
				_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":[{"hash":"0x2","timeStamp":"1704110400"},{"hash":"0x3","timeStamp":"1704196800"}]}`))
			default:
				_, _ = w.Write([]byte(`{"status":"0","message":"No transactions found","result":[]}`))
			}
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func createTestConfig(explorerURL string) *config.Config {
	return &config.Config{
		General: config.GeneralConfig{
			Timezone:             "UTC",
			HTTPTimeoutInSeconds: 5,
		},
		Collector: config.CollectorConfig{
			Chain:                "ethereum",
			TokenContractAddress: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
			SenderAddress:        "0xD152f549545093347A162Dce210e7293f1452150",
			PageSize:             1000,
			Blocks:               []data.BlockRef{{Name: "NewYork2022", Number: 15200849}},
		},
		Fetcher: config.FetcherConfig{
			CallsPerSecond: 1000,
			EndBlock:       99999999,
			PageSize:       1000,
		},
		Plot: config.PlotConfig{
			Bins:        30,
			TitleFormat: "Distribution of Average Transactions Per Month Per User (%s)",
			XLabel:      "Average Transactions Per Month",
			YLabel:      "Number of Users",
		},
		Chains: []config.ChainConfig{
			{Name: "ethereum", URL: explorerURL, APIKeyEnv: "TEST_ETHERSCAN_API_KEY"},
			{Name: "gnosis", URL: explorerURL, APIKeyEnv: "TEST_GNOSISSCAN_API_KEY"},
		},
	}
}

func TestCreateStatsHandler_MissingAPIKey(t *testing.T) {
	t.Setenv("TEST_ETHERSCAN_API_KEY", "test-key")
	t.Setenv("TEST_GNOSISSCAN_API_KEY", "")

	_, err := CreateStatsHandler(createTestConfig("http://localhost"), "gnosis", "", nil)
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestCreateStatsHandler_ProcessUsage(t *testing.T) {
	t.Setenv("TEST_ETHERSCAN_API_KEY", "test-key")
	t.Setenv("TEST_GNOSISSCAN_API_KEY", "test-key")
	server := newTestExplorer(t)
	plotFile := filepath.Join(t.TempDir(), "gnosis.png")
	output := &bytes.Buffer{}

	handler, err := CreateStatsHandler(createTestConfig(server.URL), "gnosis", plotFile, output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bytesReport, err := handler.ProcessUsage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := &data.UsageReport{}
	err = json.Unmarshal(bytesReport, report)
	if err != nil {
		t.Fatalf("invalid report: %v", err)
	}

	// 0xc has no transactions and is omitted, 0xa and 0xb average 1 and 2 per month
	if report.MergedAddresses != 3 || report.FetchedAddresses != 2 || report.ActiveAccounts != 2 {
		t.Errorf("unexpected counts %+v", report)
	}
	if report.AnalyzedAccounts != 2 || report.Global.Mean != 1.5 {
		t.Errorf("unexpected statistics %+v", report)
	}
	if output.Len() == 0 {
		t.Error("expected the summary to be printed")
	}

	_, err = os.Stat(plotFile)
	if err != nil {
		t.Errorf("expected the histogram to be written: %v", err)
	}
}

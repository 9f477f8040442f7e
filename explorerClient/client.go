package explorerClient

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/market-research/usage-statistics-go/data"
	"github.com/tidwall/gjson"
)

var log = logger.GetOrCreate("explorerClient")

// ErrEmptyURL signals that no explorer endpoint was provided
var ErrEmptyURL = errors.New("empty explorer url")

type explorerClient struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

// NewExplorerClient creates a client for an etherscan compatible explorer API
func NewExplorerClient(explorerURL string, apiKey string, timeout time.Duration) (*explorerClient, error) {
	if explorerURL == "" {
		return nil, ErrEmptyURL
	}
	_, err := url.ParseRequestURI(explorerURL)
	if err != nil {
		return nil, fmt.Errorf("cannot create explorer client %w", err)
	}

	return &explorerClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        explorerURL,
		apiKey:     apiKey,
	}, nil
}

// DoGetRequest will do a GET request with the given query parameters. A non 200 status or
// a body that is not JSON is returned as a response that is not OK, only transport
// failures are returned as errors.
func (ec *explorerClient) DoGetRequest(ctx context.Context, params url.Values) (*data.ExplorerResponse, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set("apikey", ec.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ec.url+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("accept", "application/json")

	res, err := ec.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	bodyBytes, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	response := &data.ExplorerResponse{
		HTTPStatus: res.StatusCode,
	}
	if !gjson.ValidBytes(bodyBytes) {
		log.Debug("explorer returned a non JSON body",
			"module", params.Get("module"),
			"action", params.Get("action"),
			"http status", res.StatusCode,
		)
		return response, nil
	}

	parsed := gjson.ParseBytes(bodyBytes)
	response.Status = parsed.Get("status").String()
	response.Message = parsed.Get("message").String()
	response.Result = parsed.Get("result")

	return response, nil
}

func closeBody(res *http.Response) {
	if res != nil && res.Body != nil {
		_ = res.Body.Close()
	}
}

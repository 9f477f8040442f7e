package process

import "errors"

// ErrNilExplorerHandler signals that a nil explorer handler has been provided
var ErrNilExplorerHandler = errors.New("nil explorer handler")

// ErrNilPlotHandler signals that a nil plot handler has been provided
var ErrNilPlotHandler = errors.New("nil plot handler")

var ErrNilAddressCollector = errors.New("nil address collector")

var ErrNilTransactionsFetcher = errors.New("nil transactions fetcher")

var ErrNilUsageHandler = errors.New("nil usage handler")

// ErrInvalidCallsPerSecond signals that the rate limit is not a positive number
var ErrInvalidCallsPerSecond = errors.New("invalid calls per second")

var ErrInvalidPageSize = errors.New("invalid page size")

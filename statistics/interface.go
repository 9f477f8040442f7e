package statistics

import "context"

type StatsHandler interface {
	ProcessUsage(ctx context.Context) ([]byte, error)
}

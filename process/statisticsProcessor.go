package process

import (
	"context"
	"encoding/json"
)

type statisticsProcessor struct {
	usageHandler UsageHandler
}

// NewStatisticsProcessor creates the entry point that runs a usage analysis and encodes its report
func NewStatisticsProcessor(usageHandler UsageHandler) (*statisticsProcessor, error) {
	if usageHandler == nil {
		return nil, ErrNilUsageHandler
	}

	return &statisticsProcessor{
		usageHandler: usageHandler,
	}, nil
}

func (sp *statisticsProcessor) ProcessUsage(ctx context.Context) ([]byte, error) {
	report, err := sp.usageHandler.ProcessUsage(ctx)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(report, "", " ")
}

package plot

import "github.com/market-research/usage-statistics-go/data"

type disabledPlotter struct{}

// NewDisabledPlotter creates a plotter that draws nothing, used when no plot file is requested
func NewDisabledPlotter() *disabledPlotter {
	return &disabledPlotter{}
}

func (dp *disabledPlotter) Plot(values []float64, _ data.PlotLabels) error {
	log.Debug("plotting disabled", "values", len(values))
	return nil
}

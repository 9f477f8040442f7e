package mock

import "github.com/market-research/usage-statistics-go/data"

// PlotterStub -
type PlotterStub struct {
	PlotCalled func(values []float64, labels data.PlotLabels) error
}

// Plot -
func (ps *PlotterStub) Plot(values []float64, labels data.PlotLabels) error {
	if ps.PlotCalled != nil {
		return ps.PlotCalled(values, labels)
	}

	return nil
}

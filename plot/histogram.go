package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/market-research/usage-statistics-go/data"
	"github.com/wcharczuk/go-chart"
)

var log = logger.GetOrCreate("plot")

const (
	chartWidth  = 1000
	chartHeight = 600
)

var ErrEmptyOutputPath = errors.New("empty plot output path")

// ErrInvalidBins signals a bin count lower than one
var ErrInvalidBins = errors.New("invalid number of bins")

type histogram struct {
	outputPath string
	bins       int
}

// NewHistogram creates a plotter that renders a histogram of the values as a PNG file
func NewHistogram(outputPath string, bins int) (*histogram, error) {
	if outputPath == "" {
		return nil, ErrEmptyOutputPath
	}
	if bins < 1 {
		return nil, ErrInvalidBins
	}

	return &histogram{
		outputPath: outputPath,
		bins:       bins,
	}, nil
}

// Plot writes the histogram of values to the output path. Nothing is written for an empty input.
func (h *histogram) Plot(values []float64, labels data.PlotLabels) error {
	if len(values) == 0 {
		log.Warn("nothing to plot", "title", labels.Title)
		return nil
	}

	edges, counts := Bin(values, h.bins)
	xValues, yValues := stepOutline(edges, counts)

	series := &chart.ContinuousSeries{
		Name: labels.Title,
		Style: chart.Style{
			Show:        true,
			StrokeWidth: 1,
			StrokeColor: chart.ColorBlack,
			FillColor:   chart.ColorBlue.WithAlpha(100),
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:      labels.Title,
		TitleStyle: chart.StyleShow(),
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{
			Padding: chart.Box{
				Top: 50,
			},
		},
		YAxis: chart.YAxis{
			Name:      labels.YLabel,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			GridMajorStyle: chart.Style{
				Show:        true,
				StrokeColor: chart.ColorAlternateGray,
				StrokeWidth: 1.0,
			},
		},
		XAxis: chart.XAxis{
			Name:      labels.XLabel,
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.2f", v.(float64))
			},
		},
		Series: []chart.Series{
			series,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return err
	}

	log.Info("histogram written", "path", h.outputPath, "values", len(values), "bins", h.bins)

	return ioutil.WriteFile(h.outputPath, buffer.Bytes(), 0644)
}

// Bin splits [min, max] of values in equal width bins and counts the values of each bin.
// The last bin also holds the maximum. When all values are equal the range is widened by
// half a unit on each side.
func Bin(values []float64, bins int) ([]float64, []float64) {
	if len(values) == 0 || bins < 1 {
		return nil, nil
	}

	minValue, maxValue := values[0], values[0]
	for _, value := range values[1:] {
		if value < minValue {
			minValue = value
		}
		if value > maxValue {
			maxValue = value
		}
	}
	if minValue == maxValue {
		minValue -= 0.5
		maxValue += 0.5
	}

	width := (maxValue - minValue) / float64(bins)
	edges := make([]float64, bins+1)
	for idx := range edges {
		edges[idx] = minValue + float64(idx)*width
	}
	edges[bins] = maxValue

	counts := make([]float64, bins)
	for _, value := range values {
		idx := int((value - minValue) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	return edges, counts
}

// stepOutline turns bins into the points of a closed step line, so a filled continuous
// series draws the bars of the histogram
func stepOutline(edges []float64, counts []float64) ([]float64, []float64) {
	xValues := make([]float64, 0, 2*len(counts)+2)
	yValues := make([]float64, 0, 2*len(counts)+2)

	xValues = append(xValues, edges[0])
	yValues = append(yValues, 0)
	for idx, count := range counts {
		xValues = append(xValues, edges[idx], edges[idx+1])
		yValues = append(yValues, count, count)
	}
	xValues = append(xValues, edges[len(edges)-1])
	yValues = append(yValues, 0)

	return xValues, yValues
}

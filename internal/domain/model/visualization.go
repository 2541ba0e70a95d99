// Package model contains domain models passed between layers.
package model

// PieSeries is the data behind a pie chart. Labels and Values are parallel.
type PieSeries struct {
	Labels []string `json:"labels" validate:"required"`
	Values []int    `json:"values" validate:"required"`
}

// BarSeries is the data behind a bar plot. Categories and Values are parallel.
type BarSeries struct {
	Categories []string `json:"categories" validate:"required"`
	Values     []int    `json:"values" validate:"required"`
}

// VisualizationData is the payload served by GET /api/data.
// Values are built fresh on every read and never mutated afterwards.
type VisualizationData struct {
	PieChart PieSeries `json:"piechart"`
	BarPlot  BarSeries `json:"barplot"`
}

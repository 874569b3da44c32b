package models

// Chart describes a chart embedded in a sheet.
type Chart struct {
	// Type is the plot type, e.g. "Column", "Bar", "Pie", "Line".
	Type string `json:"type"`
	// Title is the chart title text, if any.
	Title string `json:"title,omitempty"`
	// Series lists the plotted data series in order.
	Series []ChartSeries `json:"series,omitempty"`
}

// ChartSeries holds the range references of one series.
type ChartSeries struct {
	Name       string `json:"name,omitempty"`
	Categories string `json:"categories,omitempty"`
	Values     string `json:"values,omitempty"`
}

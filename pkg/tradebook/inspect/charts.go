package inspect

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
)

// chartTypes maps plot element names to chart type names.
var chartTypes = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// ExtractCharts reads the charts of every sheet of an xlsx package.
// excelize writes charts but cannot read them back, so the drawing and
// chart parts are parsed directly.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheets, err := sheetParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for name, part := range sheets {
		charts, err := sheetCharts(&r.Reader, part)
		if err != nil {
			return nil, err
		}
		if len(charts) > 0 {
			result[name] = charts
		}
	}
	return result, nil
}

func sheetCharts(r *zip.Reader, sheetPart string) ([]models.Chart, error) {
	rels, err := readRels(r, sheetPart)
	if err != nil {
		return nil, err
	}

	var charts []models.Chart
	for _, rel := range rels {
		if !relType(rel, "/drawing") {
			continue
		}
		drawing := resolveTarget(sheetPart, rel.Target)
		found, err := drawingCharts(r, drawing)
		if err != nil {
			return nil, err
		}
		charts = append(charts, found...)
	}
	return charts, nil
}

// drawingCharts returns the charts anchored in a drawing, in anchor order.
func drawingCharts(r *zip.Reader, drawing string) ([]models.Chart, error) {
	data, err := readPart(r, drawing)
	if err != nil || data == nil {
		return nil, err
	}
	rels, err := readRels(r, drawing)
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string)
	for _, rel := range rels {
		if relType(rel, "/chart") {
			targets[rel.ID] = resolveTarget(drawing, rel.Target)
		}
	}

	var charts []models.Chart
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "chart" {
			continue
		}
		part, ok := targets[attr(se, "id")]
		if !ok {
			continue
		}
		content, err := readPart(r, part)
		if err != nil {
			return nil, err
		}
		if content != nil {
			charts = append(charts, parseChart(content))
		}
	}
	return charts, nil
}

// parseChart reads the type, title and series references of a chart part.
func parseChart(data []byte) models.Chart {
	var (
		chart models.Chart
		stack []string
		title strings.Builder
	)

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			switch name := t.Name.Local; {
			case chartTypes[name] != "" && chart.Type == "":
				chart.Type = chartTypes[name]
			case name == "barDir" && attr(t, "val") == "col" && chart.Type == "Bar":
				chart.Type = "Column"
			case name == "ser":
				chart.Series = append(chart.Series, models.ChartSeries{})
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := string(t)
			switch top := stack[len(stack)-1]; {
			case top == "f" && inside(stack, "ser") && len(chart.Series) > 0:
				s := &chart.Series[len(chart.Series)-1]
				switch {
				case inside(stack, "tx"):
					s.Name = strings.TrimSpace(text)
				case inside(stack, "cat"), inside(stack, "xVal"):
					s.Categories = strings.TrimSpace(text)
				case inside(stack, "val"), inside(stack, "yVal"):
					s.Values = strings.TrimSpace(text)
				}
			case top == "t" && inside(stack, "title") && !inAxis(stack):
				title.WriteString(text)
			}
		}
	}

	chart.Title = strings.TrimSpace(title.String())
	if chart.Type == "" {
		chart.Type = "unknown"
	}
	return chart
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func inside(stack []string, name string) bool {
	for _, s := range stack {
		if s == name {
			return true
		}
	}
	return false
}

func inAxis(stack []string) bool {
	return inside(stack, "valAx") || inside(stack, "catAx") ||
		inside(stack, "dateAx") || inside(stack, "serAx")
}

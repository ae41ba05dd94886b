package handlers

import (
	"errors"
	"math"
	"net/http"
	"sort"

	apierrors "github.com/vdhanush11/medical-billing-denial-analysis/internal/errors"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/repositories"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/labstack/echo/v4"
)

const (
	// chartTopN bounds the per-code charts. More bars than this stops
	// being readable on one screen.
	chartTopN = 10

	chartWidth  = "620px"
	chartHeight = "380px"
)

// ChartHandler renders the chart pages for stored datasets
type ChartHandler struct {
	datasetService services.DatasetServiceInterface
}

// NewChartHandler creates a new chart handler
func NewChartHandler(datasetService services.DatasetServiceInterface) *ChartHandler {
	return &ChartHandler{datasetService: datasetService}
}

// RenderCharts renders the denial-analysis chart page for one dataset.
//
// Method: GET /dashboard/datasets/:id/charts
//
// Path parameters:
//   - id: Dataset UUID
//
// Success Response: 200 OK
//   - HTML page with six charts: denial rate by CPT code, denied claims by
//     CPT code, denial rate by payer, denial rate by provider, lost revenue
//     by payer, and a CPT x payer denial-rate heatmap
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID
//   - 404: DATASET_002 dataset not found
func (h *ChartHandler) RenderCharts(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	dataset, err := h.datasetService.GetDataset(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDatasetNotFound) {
			return SendError(c, apierrors.DatasetNotFound)
		}
		return SendSystemError(c, err)
	}

	report := dataset.Report

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = "Denial analysis: " + dataset.FileName
	page.AddCharts(
		h.codeRateBar(report),
		h.codeCountBar(report),
		h.payerRateBar(report),
		h.providerRateBar(report),
		h.payerLostRevenueBar(report),
		h.codePayerHeatmap(report),
	)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return page.Render(c.Response())
}

// codeRateBar charts the top codes by denial rate.
func (h *ChartHandler) codeRateBar(report *models.AnalysisReport) *charts.Bar {
	bar := newBarChart("Denial rate by CPT code", "Top codes, denial rate in %")

	codes := report.TopCodes(chartTopN)
	labels := make([]string, 0, len(codes))
	values := make([]opts.BarData, 0, len(codes))
	for _, row := range codes {
		labels = append(labels, row.CPTCode)
		values = append(values, opts.BarData{Value: ratePercent(row.DenialRate)})
	}

	bar.SetXAxis(labels).AddSeries("denial rate %", values)
	return bar
}

// codeCountBar charts the top codes by denied-claim count. The report sorts
// codes by rate, so this re-ranks a copy by count.
func (h *ChartHandler) codeCountBar(report *models.AnalysisReport) *charts.Bar {
	bar := newBarChart("Denied claims by CPT code", "Top codes, denied-claim count")

	codes := make([]models.CodeSummary, len(report.Codes))
	copy(codes, report.Codes)
	sort.Slice(codes, func(i, j int) bool {
		if codes[i].DeniedClaims != codes[j].DeniedClaims {
			return codes[i].DeniedClaims > codes[j].DeniedClaims
		}
		return codes[i].CPTCode < codes[j].CPTCode
	})
	if len(codes) > chartTopN {
		codes = codes[:chartTopN]
	}

	labels := make([]string, 0, len(codes))
	values := make([]opts.BarData, 0, len(codes))
	for _, row := range codes {
		labels = append(labels, row.CPTCode)
		values = append(values, opts.BarData{Value: row.DeniedClaims})
	}

	bar.SetXAxis(labels).AddSeries("denied claims", values)
	return bar
}

// payerRateBar charts the denial rate per payer. Payer cardinality is small,
// so every payer is shown.
func (h *ChartHandler) payerRateBar(report *models.AnalysisReport) *charts.Bar {
	bar := newBarChart("Denial rate by payer", "Denial rate in %")

	labels := make([]string, 0, len(report.Payers))
	values := make([]opts.BarData, 0, len(report.Payers))
	for _, row := range report.Payers {
		labels = append(labels, row.Payer)
		values = append(values, opts.BarData{Value: ratePercent(row.DenialRate)})
	}

	bar.SetXAxis(labels).AddSeries("denial rate %", values)
	return bar
}

// providerRateBar charts the denial rate per provider.
func (h *ChartHandler) providerRateBar(report *models.AnalysisReport) *charts.Bar {
	bar := newBarChart("Denial rate by provider", "Denial rate in %")

	labels := make([]string, 0, len(report.Providers))
	values := make([]opts.BarData, 0, len(report.Providers))
	for _, row := range report.Providers {
		labels = append(labels, row.Provider)
		values = append(values, opts.BarData{Value: ratePercent(row.DenialRate)})
	}

	bar.SetXAxis(labels).AddSeries("denial rate %", values)
	return bar
}

// payerLostRevenueBar charts the billed amount tied up in denials per payer.
func (h *ChartHandler) payerLostRevenueBar(report *models.AnalysisReport) *charts.Bar {
	bar := newBarChart("Lost revenue by payer", "Billed amount on denied claims")

	labels := make([]string, 0, len(report.Payers))
	values := make([]opts.BarData, 0, len(report.Payers))
	for _, row := range report.Payers {
		labels = append(labels, row.Payer)
		values = append(values, opts.BarData{Value: row.LostRevenue.InexactFloat64()})
	}

	bar.SetXAxis(labels).AddSeries("lost revenue", values)
	return bar
}

// codePayerHeatmap renders the CPT x payer denial-rate matrix for the top
// codes.
func (h *ChartHandler) codePayerHeatmap(report *models.AnalysisReport) *charts.HeatMap {
	heatmap := charts.NewHeatMap()

	topCodes := report.TopCodes(chartTopN)
	codeLabels := make([]string, 0, len(topCodes))
	codeIndex := make(map[string]int, len(topCodes))
	for i, row := range topCodes {
		codeLabels = append(codeLabels, row.CPTCode)
		codeIndex[row.CPTCode] = i
	}

	payerLabels := make([]string, 0, len(report.Payers))
	payerIndex := make(map[string]int, len(report.Payers))
	for i, row := range report.Payers {
		payerLabels = append(payerLabels, row.Payer)
		payerIndex[row.Payer] = i
	}

	data := make([]opts.HeatMapData, 0, len(report.CodePayerCells))
	maxRate := 0.0
	for _, cell := range report.CodePayerCells {
		x, ok := codeIndex[cell.CPTCode]
		if !ok {
			continue
		}
		y, ok := payerIndex[cell.Group]
		if !ok {
			continue
		}

		rate := ratePercent(cell.DenialRate)
		if rate > maxRate {
			maxRate = rate
		}
		data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, rate}})
	}
	if maxRate == 0 {
		maxRate = 100
	}

	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Denial rate heatmap",
			Subtitle: "CPT code x payer, denial rate in %",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      codeLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      payerLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxRate),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
	)

	heatmap.AddSeries("denial rate %", data)
	return heatmap
}

// newBarChart builds a bar chart with the shared option set.
func newBarChart(title, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	return bar
}

// ratePercent converts a denial-rate fraction to a percentage rounded to two
// decimals, the scale the charts display. Empty buckets chart as zero.
func ratePercent(rate *float64) float64 {
	if rate == nil {
		return 0
	}
	return math.Round(*rate*10000) / 100
}

package dto

import (
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"
)

// Summary group names accepted by the summaries endpoint.
const (
	GroupCodes     = "codes"
	GroupPayers    = "payers"
	GroupProviders = "providers"
)

// ReportQuery contains query parameters for the full report endpoint.
type ReportQuery struct {
	TopN int `query:"top_n" validate:"omitempty,min=1,max=50"`
}

// SummaryParams selects one aggregate table of the report.
type SummaryParams struct {
	Group string `param:"group" validate:"required,report_group"`
	TopN  int    `query:"top_n" validate:"omitempty,min=1,max=50"`
}

// ClaimsQuery filters and paginates the normalized claim rows.
type ClaimsQuery struct {
	DeniedOnly bool   `query:"denied_only"`
	CPTCode    string `query:"cpt" validate:"omitempty,cpt_code"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset     int    `query:"offset" validate:"omitempty,min=0"`
}

// TotalsResponse carries the whole-dataset headline figures. Money renders
// as strings so amounts survive JSON without float drift; denial rates stay
// fractions in [0, 1] and are null when a bucket holds no claims.
type TotalsResponse struct {
	TotalClaims  int64    `json:"totalClaims"`
	DeniedClaims int64    `json:"deniedClaims"`
	DenialRate   *float64 `json:"denialRate"`
	TotalBilled  string   `json:"totalBilled"`
	LostRevenue  string   `json:"lostRevenue"`
}

// SummaryRowResponse is one row of an aggregate table. Key is the CPT code,
// payer, or provider depending on the group.
type SummaryRowResponse struct {
	Key          string   `json:"key"`
	TotalClaims  int64    `json:"totalClaims"`
	DeniedClaims int64    `json:"deniedClaims"`
	DenialRate   *float64 `json:"denialRate"`
	LostRevenue  string   `json:"lostRevenue"`
}

// SummaryTableResponse is one aggregate table of the report.
type SummaryTableResponse struct {
	Group string               `json:"group"`
	Rows  []SummaryRowResponse `json:"rows"`
}

// HeatmapCellResponse is one (CPT code, group) cell of a denial-rate matrix.
type HeatmapCellResponse struct {
	CPTCode      string   `json:"cptCode"`
	Group        string   `json:"group"`
	TotalClaims  int64    `json:"totalClaims"`
	DeniedClaims int64    `json:"deniedClaims"`
	DenialRate   *float64 `json:"denialRate"`
	LostRevenue  string   `json:"lostRevenue"`
}

// RootCauseResponse is the per-category classification summary row.
type RootCauseResponse struct {
	Category       string   `json:"category"`
	DeniedClaims   int64    `json:"deniedClaims"`
	ShareOfDenials float64  `json:"shareOfDenials"`
	LostRevenue    string   `json:"lostRevenue"`
	ExampleReasons []string `json:"exampleReasons,omitempty"`
}

// RootCausesResponse represents the response for the root-causes endpoint.
type RootCausesResponse struct {
	RootCauses  []RootCauseResponse `json:"rootCauses"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// RecommendationResponse is one corrective action. Category is empty for
// standing prevention strategies.
type RecommendationResponse struct {
	Category string `json:"category,omitempty"`
	Action   string `json:"action"`
}

// RecommendationsResponse bundles per-category remediations with the static
// prevention strategies.
type RecommendationsResponse struct {
	Remediations []RecommendationResponse `json:"remediations"`
	Prevention   []string                 `json:"prevention"`
}

// ReportResponse is the full denial analysis for one dataset.
type ReportResponse struct {
	Totals            TotalsResponse        `json:"totals"`
	Codes             []SummaryRowResponse  `json:"codes"`
	Payers            []SummaryRowResponse  `json:"payers"`
	Providers         []SummaryRowResponse  `json:"providers"`
	CodePayerCells    []HeatmapCellResponse `json:"codePayerCells"`
	CodeProviderCells []HeatmapCellResponse `json:"codeProviderCells"`
	RootCauses        []RootCauseResponse   `json:"rootCauses"`
	GeneratedAt       time.Time             `json:"generatedAt"`
}

// ClaimResponse is one normalized claim row.
type ClaimResponse struct {
	RowNumber     int        `json:"rowNumber"`
	CPTCode       string     `json:"cptCode"`
	Payer         string     `json:"payer"`
	Provider      string     `json:"provider"`
	BilledAmount  string     `json:"billedAmount"`
	PaymentAmount string     `json:"paymentAmount"`
	Denied        bool       `json:"denied"`
	DenialReason  string     `json:"denialReason,omitempty"`
	DenialDate    *time.Time `json:"denialDate,omitempty"`
}

// ClaimsPageInfo contains offset pagination metadata for claim listings.
type ClaimsPageInfo struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// ListClaimsResponse represents the response for listing claim rows.
type ListClaimsResponse struct {
	Claims     []ClaimResponse `json:"claims"`
	Pagination ClaimsPageInfo  `json:"pagination"`
}

// ToReportResponse converts an analysis report to its API representation.
// topN caps the per-code table and restricts both heatmaps to those codes;
// the payer and provider tables are small and returned whole.
func ToReportResponse(report *models.AnalysisReport, topN int) ReportResponse {
	topCodes := report.TopCodes(topN)

	keptCodes := make(map[string]bool, len(topCodes))
	for _, row := range topCodes {
		keptCodes[row.CPTCode] = true
	}

	return ReportResponse{
		Totals:            toTotalsResponse(report.Totals),
		Codes:             toCodeRows(topCodes),
		Payers:            toPayerRows(report.Payers),
		Providers:         toProviderRows(report.Providers),
		CodePayerCells:    toHeatmapCells(report.CodePayerCells, keptCodes),
		CodeProviderCells: toHeatmapCells(report.CodeProviderCells, keptCodes),
		RootCauses:        ToRootCauseResponses(report.RootCauses),
		GeneratedAt:       report.GeneratedAt,
	}
}

// ToSummaryTable extracts one aggregate table from the report. The group
// must already be validated.
func ToSummaryTable(report *models.AnalysisReport, group string, topN int) SummaryTableResponse {
	var rows []SummaryRowResponse

	switch group {
	case GroupCodes:
		rows = toCodeRows(report.TopCodes(topN))
	case GroupPayers:
		rows = capRows(toPayerRows(report.Payers), topN)
	case GroupProviders:
		rows = capRows(toProviderRows(report.Providers), topN)
	}

	return SummaryTableResponse{Group: group, Rows: rows}
}

// ToRootCauseResponses converts classification summaries for the API.
func ToRootCauseResponses(causes []models.RootCauseSummary) []RootCauseResponse {
	result := make([]RootCauseResponse, 0, len(causes))
	for _, cause := range causes {
		result = append(result, RootCauseResponse{
			Category:       cause.Category,
			DeniedClaims:   cause.DeniedClaims,
			ShareOfDenials: cause.ShareOfDenials,
			LostRevenue:    cause.LostRevenue.String(),
			ExampleReasons: cause.ExampleReasons,
		})
	}
	return result
}

// ToRecommendationResponses converts remediation actions for the API.
func ToRecommendationResponses(recommendations []models.Recommendation) []RecommendationResponse {
	result := make([]RecommendationResponse, 0, len(recommendations))
	for _, rec := range recommendations {
		result = append(result, RecommendationResponse{
			Category: rec.Category,
			Action:   rec.Action,
		})
	}
	return result
}

// ToClaimResponses converts normalized claim rows for the API.
func ToClaimResponses(claims []models.Claim) []ClaimResponse {
	result := make([]ClaimResponse, 0, len(claims))
	for i := range claims {
		claim := &claims[i]
		result = append(result, ClaimResponse{
			RowNumber:     claim.RowNumber,
			CPTCode:       claim.CPTCode,
			Payer:         claim.Payer,
			Provider:      claim.Provider,
			BilledAmount:  claim.BilledAmount.String(),
			PaymentAmount: claim.PaymentAmount.String(),
			Denied:        claim.Denied,
			DenialReason:  claim.DenialReason,
			DenialDate:    claim.DenialDate,
		})
	}
	return result
}

func toTotalsResponse(totals models.DatasetTotals) TotalsResponse {
	return TotalsResponse{
		TotalClaims:  totals.TotalClaims,
		DeniedClaims: totals.DeniedClaims,
		DenialRate:   totals.DenialRate,
		TotalBilled:  totals.TotalBilled.String(),
		LostRevenue:  totals.LostRevenue.String(),
	}
}

func toCodeRows(codes []models.CodeSummary) []SummaryRowResponse {
	rows := make([]SummaryRowResponse, 0, len(codes))
	for _, row := range codes {
		rows = append(rows, SummaryRowResponse{
			Key:          row.CPTCode,
			TotalClaims:  row.TotalClaims,
			DeniedClaims: row.DeniedClaims,
			DenialRate:   row.DenialRate,
			LostRevenue:  row.LostRevenue.String(),
		})
	}
	return rows
}

func toPayerRows(payers []models.PayerSummary) []SummaryRowResponse {
	rows := make([]SummaryRowResponse, 0, len(payers))
	for _, row := range payers {
		rows = append(rows, SummaryRowResponse{
			Key:          row.Payer,
			TotalClaims:  row.TotalClaims,
			DeniedClaims: row.DeniedClaims,
			DenialRate:   row.DenialRate,
			LostRevenue:  row.LostRevenue.String(),
		})
	}
	return rows
}

func toProviderRows(providers []models.ProviderSummary) []SummaryRowResponse {
	rows := make([]SummaryRowResponse, 0, len(providers))
	for _, row := range providers {
		rows = append(rows, SummaryRowResponse{
			Key:          row.Provider,
			TotalClaims:  row.TotalClaims,
			DeniedClaims: row.DeniedClaims,
			DenialRate:   row.DenialRate,
			LostRevenue:  row.LostRevenue.String(),
		})
	}
	return rows
}

func toHeatmapCells(cells []models.HeatmapCell, keptCodes map[string]bool) []HeatmapCellResponse {
	result := make([]HeatmapCellResponse, 0, len(cells))
	for _, cell := range cells {
		if !keptCodes[cell.CPTCode] {
			continue
		}
		result = append(result, HeatmapCellResponse{
			CPTCode:      cell.CPTCode,
			Group:        cell.Group,
			TotalClaims:  cell.TotalClaims,
			DeniedClaims: cell.DeniedClaims,
			DenialRate:   cell.DenialRate,
			LostRevenue:  cell.LostRevenue.String(),
		})
	}
	return result
}

func capRows(rows []SummaryRowResponse, topN int) []SummaryRowResponse {
	if topN < 1 {
		return []SummaryRowResponse{}
	}
	if topN > len(rows) {
		return rows
	}
	return rows[:topN]
}

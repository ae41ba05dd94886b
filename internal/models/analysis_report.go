package models

import "time"

// AnalysisReport is the full denial analysis for one dataset. It is computed
// once at ingest and kept alongside the dataset; re-uploading the same file
// recomputes everything from scratch.
type AnalysisReport struct {
	Totals            DatasetTotals      `json:"totals"`
	Codes             []CodeSummary      `json:"codes"`
	Payers            []PayerSummary     `json:"payers"`
	Providers         []ProviderSummary  `json:"providers"`
	CodePayerCells    []HeatmapCell      `json:"code_payer_cells"`
	CodeProviderCells []HeatmapCell      `json:"code_provider_cells"`
	RootCauses        []RootCauseSummary `json:"root_causes"`
	GeneratedAt       time.Time          `json:"generated_at"`
}

// TopCodes returns the first n per-code rows, which are already sorted by
// denial rate. n below 1 returns an empty slice.
func (r *AnalysisReport) TopCodes(n int) []CodeSummary {
	if n < 1 {
		return []CodeSummary{}
	}
	if n > len(r.Codes) {
		n = len(r.Codes)
	}
	return r.Codes[:n]
}

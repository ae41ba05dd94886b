package models

import "github.com/shopspring/decimal"

// DenialRate returns denied/total as a fraction in [0, 1], or nil when the
// bucket holds no claims. A nil rate renders as JSON null, never as zero.
func DenialRate(denied, total int64) *float64 {
	if total == 0 {
		return nil
	}
	rate := float64(denied) / float64(total)
	return &rate
}

// CodeSummary is the per-CPT-code aggregate row.
type CodeSummary struct {
	CPTCode      string          `json:"cpt_code"`
	TotalClaims  int64           `json:"total_claims"`
	DeniedClaims int64           `json:"denied_claims"`
	DenialRate   *float64        `json:"denial_rate"`
	LostRevenue  decimal.Decimal `json:"lost_revenue"`
}

// PayerSummary is the per-payer aggregate row.
type PayerSummary struct {
	Payer        string          `json:"payer"`
	TotalClaims  int64           `json:"total_claims"`
	DeniedClaims int64           `json:"denied_claims"`
	DenialRate   *float64        `json:"denial_rate"`
	LostRevenue  decimal.Decimal `json:"lost_revenue"`
}

// ProviderSummary is the per-provider aggregate row.
type ProviderSummary struct {
	Provider     string          `json:"provider"`
	TotalClaims  int64           `json:"total_claims"`
	DeniedClaims int64           `json:"denied_claims"`
	DenialRate   *float64        `json:"denial_rate"`
	LostRevenue  decimal.Decimal `json:"lost_revenue"`
}

// HeatmapCell is one (CPT code, group) bucket, where the group is a payer or
// a provider depending on which matrix the cell belongs to.
type HeatmapCell struct {
	CPTCode      string          `json:"cpt_code"`
	Group        string          `json:"group"`
	TotalClaims  int64           `json:"total_claims"`
	DeniedClaims int64           `json:"denied_claims"`
	DenialRate   *float64        `json:"denial_rate"`
	LostRevenue  decimal.Decimal `json:"lost_revenue"`
}

// DatasetTotals carries the whole-dataset headline figures.
type DatasetTotals struct {
	TotalClaims  int64           `json:"total_claims"`
	DeniedClaims int64           `json:"denied_claims"`
	DenialRate   *float64        `json:"denial_rate"`
	TotalBilled  decimal.Decimal `json:"total_billed"`
	LostRevenue  decimal.Decimal `json:"lost_revenue"`
}

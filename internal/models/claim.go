package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownBucket is the group claims fall into when the source file has no
// payer or provider value for them. Keeping them visible beats dropping rows.
const UnknownBucket = "Unknown"

// Claim is a single claim line after normalization. Amounts are decimals
// because billed charges feed revenue figures and must not drift.
type Claim struct {
	RowNumber     int             `json:"row_number"`
	CPTCode       string          `json:"cpt_code"`
	Payer         string          `json:"payer"`
	Provider      string          `json:"provider"`
	BilledAmount  decimal.Decimal `json:"billed_amount"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	Denied        bool            `json:"denied"`
	DenialReason  string          `json:"denial_reason,omitempty"`
	DenialDate    *time.Time      `json:"denial_date,omitempty"`
}

// NormalizedClaims is the loader's output: claim rows conforming to the
// canonical schema plus the header-resolution diagnostics shown on the
// dashboard.
type NormalizedClaims struct {
	Claims      []Claim
	Mapping     ColumnMapping
	SkippedRows int
}

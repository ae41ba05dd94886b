package models

import "github.com/shopspring/decimal"

// Root-cause categories for denied claims. The set is fixed: downstream
// remediation guidance and dashboard colors key off these exact strings.
const (
	RootCauseModifierIssue        = "modifier issue"
	RootCauseLCDNCDMismatch       = "LCD/NCD mismatch"
	RootCauseBundlingEdit         = "bundling edit"
	RootCauseMissingDocumentation = "missing documentation"
	RootCausePriorAuthorization   = "prior-authorization issue"
	RootCauseCredentialing        = "credentialing issue"
	RootCauseUnclassified         = "unclassified"
)

// AllRootCauses returns every category a denial can be classified into,
// in display order.
func AllRootCauses() []string {
	return []string{
		RootCauseModifierIssue,
		RootCauseLCDNCDMismatch,
		RootCauseBundlingEdit,
		RootCauseMissingDocumentation,
		RootCausePriorAuthorization,
		RootCauseCredentialing,
		RootCauseUnclassified,
	}
}

// IsValidRootCause checks if the given category is a recognized root cause
func IsValidRootCause(category string) bool {
	for _, c := range AllRootCauses() {
		if c == category {
			return true
		}
	}
	return false
}

// ClassificationResult is the outcome of classifying one denial reason.
type ClassificationResult struct {
	Category       string `json:"category"`
	RuleName       string `json:"rule_name,omitempty"`
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}

// RootCauseSummary aggregates a dataset's denied claims for one category.
type RootCauseSummary struct {
	Category       string          `json:"category"`
	DeniedClaims   int64           `json:"denied_claims"`
	ShareOfDenials float64         `json:"share_of_denials"`
	LostRevenue    decimal.Decimal `json:"lost_revenue"`
	ExampleReasons []string        `json:"example_reasons,omitempty"`
}

// Recommendation is a corrective action tied to a root-cause category. A
// blank category marks a standing prevention strategy.
type Recommendation struct {
	Category string `json:"category,omitempty"`
	Action   string `json:"action"`
}

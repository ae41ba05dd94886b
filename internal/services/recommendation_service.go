package services

import (
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"
)

type recommendationService struct {
	remediations map[string]string
	prevention   []string
}

// NewRecommendationService creates a new RecommendationServiceInterface instance
func NewRecommendationService() RecommendationServiceInterface {
	return &recommendationService{
		remediations: initRemediations(),
		prevention:   initPreventionStrategies(),
	}
}

// initRemediations maps each root-cause category to its corrective action.
func initRemediations() map[string]string {
	return map[string]string{
		models.RootCauseModifierIssue:        "Audit modifier usage on the affected codes and retrain coding staff on payer-specific modifier requirements before resubmitting.",
		models.RootCauseLCDNCDMismatch:       "Compare billed diagnoses against the applicable LCD/NCD coverage criteria and correct the diagnosis-to-procedure linkage before appeal.",
		models.RootCauseBundlingEdit:         "Run the affected claim pairs through NCCI edit checks and unbundle only where a documented exception applies.",
		models.RootCauseMissingDocumentation: "Pull the medical records for the denied encounters and resubmit with the documentation the payer requested.",
		models.RootCausePriorAuthorization:   "Verify authorization requirements at scheduling and backfill retro-authorization requests where the payer allows them.",
		models.RootCauseCredentialing:        "Confirm the rendering providers' enrollment and effective dates with each payer and hold claims until credentialing completes.",
		models.RootCauseUnclassified:         "Review a sample of the unclassified denial reasons manually and extend the classification rules with the recurring phrases.",
	}
}

// initPreventionStrategies returns the standing front-end prevention guidance.
// The list is ordered by where each control sits in the revenue cycle.
func initPreventionStrategies() []string {
	return []string{
		"Verify eligibility and plan-specific coverage at every visit, not only at intake.",
		"Obtain and document prior authorizations before the date of service.",
		"Scrub claims against payer edits and NCCI rules before first submission.",
		"Track denial rates per CPT code and payer weekly so spikes surface early.",
		"Keep provider credentialing and revalidation dates on a monitored calendar.",
		"Standardize documentation templates so medical necessity is captured at the point of care.",
	}
}

// PlanForRootCauses builds an ordered action plan from the root-cause summary.
// The input order is preserved so the plan leads with the highest-impact
// categories. Categories without denials are skipped.
func (s *recommendationService) PlanForRootCauses(rootCauses []models.RootCauseSummary) []models.Recommendation {
	plan := make([]models.Recommendation, 0, len(rootCauses))
	for _, rc := range rootCauses {
		if rc.DeniedClaims == 0 {
			continue
		}
		action, ok := s.remediations[rc.Category]
		if !ok {
			continue
		}
		plan = append(plan, models.Recommendation{
			Category: rc.Category,
			Action:   action,
		})
	}

	if len(plan) == 0 {
		plan = append(plan, models.Recommendation{
			Action: "No denials detected in this dataset. Maintain current billing controls and continue monitoring.",
		})
	}

	return plan
}

// PreventionStrategies returns the standing prevention guidance.
func (s *recommendationService) PreventionStrategies() []string {
	strategies := make([]string, len(s.prevention))
	copy(strategies, s.prevention)
	return strategies
}

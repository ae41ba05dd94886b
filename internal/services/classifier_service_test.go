package services

import (
	"testing"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RootCauseClassifierTestSuite struct {
	suite.Suite
	service *rootCauseClassifier
}

func TestRootCauseClassifierSuite(t *testing.T) {
	suite.Run(t, new(RootCauseClassifierTestSuite))
}

func (s *RootCauseClassifierTestSuite) SetupTest() {
	s.service = NewRootCauseClassifier().(*rootCauseClassifier)
}

// Keyword Matching Tests

func (s *RootCauseClassifierTestSuite) TestClassify_KeywordMatches() {
	testCases := []struct {
		reason           string
		expectedCategory string
		description      string
	}{
		{"Missing modifier 25 on E/M service", models.RootCauseModifierIssue, "missing modifier"},
		{"MODIFIER 59 REQUIRED FOR DISTINCT SERVICE", models.RootCauseModifierIssue, "uppercase modifier"},
		{"Service not covered per LCD policy L34567", models.RootCauseLCDNCDMismatch, "LCD policy"},
		{"Diagnosis does not meet ncd coverage criteria", models.RootCauseLCDNCDMismatch, "lowercase NCD"},
		{"Procedure bundled with primary service", models.RootCauseBundlingEdit, "bundled procedure"},
		{"Denied per NCCI edit 12345", models.RootCauseBundlingEdit, "NCCI edit"},
		{"Medical records not received; documentation required", models.RootCauseMissingDocumentation, "documentation required"},
		{"Missing Documentation of medical necessity", models.RootCauseMissingDocumentation, "mixed case documentation"},
		{"No prior auth on file", models.RootCausePriorAuthorization, "abbreviated auth"},
		{"Authorization expired before date of service", models.RootCausePriorAuthorization, "authorization expired"},
		{"Provider not credentialed with plan", models.RootCauseCredentialing, "not credentialed"},
		{"Rendering provider credentialing pending", models.RootCauseCredentialing, "credentialing pending"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			result := s.service.Classify(tc.reason)
			s.Equal(tc.expectedCategory, result.Category, "Reason %q should classify as %s", tc.reason, tc.expectedCategory)
			s.NotEmpty(result.RuleName, "Matched reason should carry its rule name")
			s.NotEmpty(result.MatchedKeyword, "Matched reason should carry the matched keyword")
		})
	}
}

func (s *RootCauseClassifierTestSuite) TestClassify_FirstRuleWins() {
	testCases := []struct {
		reason           string
		expectedCategory string
		description      string
	}{
		{"Modifier missing and no prior authorization on file", models.RootCauseModifierIssue, "modifier beats authorization"},
		{"Bundled service lacks supporting documentation", models.RootCauseBundlingEdit, "bundling beats documentation"},
		{"LCD mismatch, NCCI edit also applies", models.RootCauseLCDNCDMismatch, "coverage policy beats bundling"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			result := s.service.Classify(tc.reason)
			s.Equal(tc.expectedCategory, result.Category, "Rule order should decide overlapping matches")
		})
	}
}

func (s *RootCauseClassifierTestSuite) TestClassify_Unclassified() {
	unmatchedReasons := []string{
		"Timely filing limit exceeded",
		"Duplicate claim submission",
		"Patient not eligible on date of service",
	}

	for _, reason := range unmatchedReasons {
		result := s.service.Classify(reason)
		s.Equal(models.RootCauseUnclassified, result.Category, "Reason %q should stay unclassified", reason)
		s.Empty(result.RuleName)
		s.Empty(result.MatchedKeyword)
	}
}

func (s *RootCauseClassifierTestSuite) TestClassify_EmptyReason() {
	for _, reason := range []string{"", "   ", "\t\n"} {
		result := s.service.Classify(reason)
		s.Equal(models.RootCauseUnclassified, result.Category, "Blank reason should be unclassified")
		s.Empty(result.RuleName)
		s.Empty(result.MatchedKeyword)
	}
}

func (s *RootCauseClassifierTestSuite) TestClassify_Deterministic() {
	reason := "No prior auth on file"

	first := s.service.Classify(reason)
	for i := 0; i < 3; i++ {
		result := s.service.Classify(reason)
		s.Equal(first, result, "Same reason must classify identically on every call")
	}
}

func (s *RootCauseClassifierTestSuite) TestClassify_ReportsMatchedKeyword() {
	result := s.service.Classify("No prior auth on file")

	s.Equal(models.RootCausePriorAuthorization, result.Category)
	s.Equal("authorization", result.RuleName)
	s.Equal("auth", result.MatchedKeyword)
}

func (s *RootCauseClassifierTestSuite) TestRuleOrder() {
	expected := []string{
		"modifier",
		"coverage_policy",
		"bundling",
		"documentation",
		"authorization",
		"credentialing",
	}

	s.Equal(expected, s.service.RuleOrder())
}

// Root-Cause Summary Tests

func (s *RootCauseClassifierTestSuite) TestSummarizeRootCauses_BucketsByCategory() {
	claims := []models.Claim{
		deniedTestClaim("Missing modifier 25", 100.00),
		deniedTestClaim("Modifier 59 required", 150.00),
		deniedTestClaim("Invalid modifier combination", 50.00),
		deniedTestClaim("No prior auth on file", 200.00),
		deniedTestClaim("Authorization expired", 300.00),
		deniedTestClaim("Timely filing limit exceeded", 75.00),
		paidTestClaim(500.00),
		paidTestClaim(250.00),
	}

	summaries := s.service.SummarizeRootCauses(claims)

	s.Len(summaries, 3, "Only categories with denials should appear")

	s.Equal(models.RootCauseModifierIssue, summaries[0].Category)
	s.Equal(int64(3), summaries[0].DeniedClaims)
	s.InDelta(0.5, summaries[0].ShareOfDenials, 0.0001)
	s.True(summaries[0].LostRevenue.Equal(decimal.NewFromFloat(300.00)),
		"Lost revenue should sum billed amounts of the bucket's denials, got %s", summaries[0].LostRevenue)

	s.Equal(models.RootCausePriorAuthorization, summaries[1].Category)
	s.Equal(int64(2), summaries[1].DeniedClaims)
	s.True(summaries[1].LostRevenue.Equal(decimal.NewFromFloat(500.00)))

	s.Equal(models.RootCauseUnclassified, summaries[2].Category)
	s.Equal(int64(1), summaries[2].DeniedClaims)
}

func (s *RootCauseClassifierTestSuite) TestSummarizeRootCauses_SharesSumToOne() {
	claims := []models.Claim{
		deniedTestClaim("Missing modifier 25", 100.00),
		deniedTestClaim("No prior auth on file", 200.00),
		deniedTestClaim("Documentation not received", 300.00),
		deniedTestClaim("Unmapped reason text", 400.00),
	}

	summaries := s.service.SummarizeRootCauses(claims)

	total := 0.0
	for _, summary := range summaries {
		total += summary.ShareOfDenials
	}
	s.InDelta(1.0, total, 0.0001, "Shares across categories should sum to one")
}

func (s *RootCauseClassifierTestSuite) TestSummarizeRootCauses_ExampleReasonsCappedAndDistinct() {
	claims := []models.Claim{
		deniedTestClaim("Missing modifier 25", 10.00),
		deniedTestClaim("Missing modifier 25", 10.00),
		deniedTestClaim("Modifier 59 required", 10.00),
		deniedTestClaim("Invalid modifier combination", 10.00),
		deniedTestClaim("Modifier not allowed with procedure", 10.00),
	}

	summaries := s.service.SummarizeRootCauses(claims)

	s.Require().Len(summaries, 1)
	s.Len(summaries[0].ExampleReasons, 3, "Examples are capped at three")

	seen := make(map[string]bool)
	for _, example := range summaries[0].ExampleReasons {
		s.False(seen[example], "Example %q should appear once", example)
		seen[example] = true
	}
	s.Contains(summaries[0].ExampleReasons, "Missing modifier 25", "First distinct reason should be kept")
}

func (s *RootCauseClassifierTestSuite) TestSummarizeRootCauses_NoDenials() {
	claims := []models.Claim{
		paidTestClaim(100.00),
		paidTestClaim(200.00),
	}

	summaries := s.service.SummarizeRootCauses(claims)
	s.Empty(summaries)
}

func (s *RootCauseClassifierTestSuite) TestSummarizeRootCauses_TiesSortByCategoryName() {
	claims := []models.Claim{
		deniedTestClaim("Missing modifier 25", 10.00),
		deniedTestClaim("No prior auth on file", 10.00),
	}

	summaries := s.service.SummarizeRootCauses(claims)

	s.Require().Len(summaries, 2)
	s.Equal(models.RootCauseModifierIssue, summaries[0].Category, "Equal counts fall back to name order")
	s.Equal(models.RootCausePriorAuthorization, summaries[1].Category)
}

// Similarity Helper Tests

func (s *RootCauseClassifierTestSuite) TestCalculateSimilarity() {
	testCases := []struct {
		a           string
		b           string
		minExpected float64
		maxExpected float64
		description string
	}{
		{"cptcode", "cptcode", 1.0, 1.0, "identical strings"},
		{"cptcode", "cptcod", 0.85, 0.99, "one deletion"},
		{"procedurecode", "procedurecodes", 0.9, 0.99, "one insertion"},
		{"payer", "provider", 0.0, 0.5, "different words"},
		{"", "", 1.0, 1.0, "both empty"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			score := calculateSimilarity(tc.a, tc.b)
			s.GreaterOrEqual(score, tc.minExpected)
			s.LessOrEqual(score, tc.maxExpected)
		})
	}
}

func (s *RootCauseClassifierTestSuite) TestNormalizeForMatching() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"CPT Code", "cptcode"},
		{"denial_reason", "denialreason"},
		{"Payer-Name", "payername"},
		{"Billed.Amount", "billedamount"},
		{"provider's name", "providersname"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, normalizeForMatching(tc.input))
	}
}

// Test Helpers

func deniedTestClaim(reason string, billed float64) models.Claim {
	return models.Claim{
		CPTCode:      "99213",
		Payer:        "Aetna",
		Provider:     "Dr. " + gofakeit.LastName(),
		BilledAmount: decimal.NewFromFloat(billed),
		Denied:       true,
		DenialReason: reason,
	}
}

func paidTestClaim(billed float64) models.Claim {
	return models.Claim{
		CPTCode:       "99214",
		Payer:         "Cigna",
		Provider:      "Dr. " + gofakeit.LastName(),
		BilledAmount:  decimal.NewFromFloat(billed),
		PaymentAmount: decimal.NewFromFloat(billed * 0.8).Round(2),
	}
}

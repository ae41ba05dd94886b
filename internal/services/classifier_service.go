package services

import (
	"sort"
	"strings"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/shopspring/decimal"
)

// maxExampleReasons caps how many distinct raw reasons a category summary
// carries for display.
const maxExampleReasons = 3

type rootCauseClassifier struct {
	rules []classificationRule
}

type classificationRule struct {
	name     string
	category string
	keywords []string
}

// NewRootCauseClassifier creates a new RootCauseClassifierInterface instance
func NewRootCauseClassifier() RootCauseClassifierInterface {
	return &rootCauseClassifier{
		rules: initClassificationRules(),
	}
}

// initClassificationRules builds the rule table in match priority order. The
// first rule with any keyword present in the normalized reason wins, so a
// reason mentioning both a modifier and an authorization lands on the
// modifier rule.
func initClassificationRules() []classificationRule {
	return []classificationRule{
		{
			name:     "modifier",
			category: models.RootCauseModifierIssue,
			keywords: []string{"modifier"},
		},
		{
			name:     "coverage_policy",
			category: models.RootCauseLCDNCDMismatch,
			keywords: []string{"lcd", "ncd"},
		},
		{
			name:     "bundling",
			category: models.RootCauseBundlingEdit,
			keywords: []string{"bundl", "ncci"},
		},
		{
			name:     "documentation",
			category: models.RootCauseMissingDocumentation,
			keywords: []string{"document"},
		},
		{
			name:     "authorization",
			category: models.RootCausePriorAuthorization,
			keywords: []string{"auth"},
		},
		{
			name:     "credentialing",
			category: models.RootCauseCredentialing,
			keywords: []string{"credential"},
		},
	}
}

// Classify assigns a denial reason to a root-cause category. Matching is
// deterministic: the same reason always classifies identically.
func (s *rootCauseClassifier) Classify(denialReason string) models.ClassificationResult {
	normalized := normalizeReason(denialReason)
	if normalized == "" {
		return models.ClassificationResult{Category: models.RootCauseUnclassified}
	}

	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if containsIgnoreCase(normalized, keyword) {
				return models.ClassificationResult{
					Category:       rule.category,
					RuleName:       rule.name,
					MatchedKeyword: keyword,
				}
			}
		}
	}

	return models.ClassificationResult{Category: models.RootCauseUnclassified}
}

// SummarizeRootCauses buckets a dataset's denied claims by category. Lost
// revenue per category is the sum of billed amounts over its denied claims.
func (s *rootCauseClassifier) SummarizeRootCauses(claims []models.Claim) []models.RootCauseSummary {
	type bucket struct {
		count    int64
		lost     decimal.Decimal
		examples []string
		seen     map[string]bool
	}

	buckets := make(map[string]*bucket)
	var totalDenied int64

	for i := range claims {
		claim := &claims[i]
		if !claim.Denied {
			continue
		}
		totalDenied++

		result := s.Classify(claim.DenialReason)
		b := buckets[result.Category]
		if b == nil {
			b = &bucket{lost: decimal.Zero, seen: make(map[string]bool)}
			buckets[result.Category] = b
		}
		b.count++
		b.lost = b.lost.Add(claim.BilledAmount)

		reason := strings.TrimSpace(claim.DenialReason)
		if reason != "" && !b.seen[reason] && len(b.examples) < maxExampleReasons {
			b.seen[reason] = true
			b.examples = append(b.examples, reason)
		}
	}

	summaries := make([]models.RootCauseSummary, 0, len(buckets))
	for category, b := range buckets {
		share := 0.0
		if totalDenied > 0 {
			share = float64(b.count) / float64(totalDenied)
		}
		summaries = append(summaries, models.RootCauseSummary{
			Category:       category,
			DeniedClaims:   b.count,
			ShareOfDenials: share,
			LostRevenue:    b.lost,
			ExampleReasons: b.examples,
		})
	}

	// Largest buckets first; ties break alphabetically for stable output
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].DeniedClaims != summaries[j].DeniedClaims {
			return summaries[i].DeniedClaims > summaries[j].DeniedClaims
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries
}

// RuleOrder returns the rule names in match priority order
func (s *rootCauseClassifier) RuleOrder() []string {
	names := make([]string, 0, len(s.rules))
	for _, rule := range s.rules {
		names = append(names, rule.name)
	}
	return names
}

func normalizeReason(reason string) string {
	reason = strings.ToLower(strings.TrimSpace(reason))
	return strings.Join(strings.Fields(reason), " ")
}

// calculateSimilarity returns a normalized similarity score between 0 and 1
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	matrix := createMatrix(s1, s2)
	initializeFirstRowAndColumn(s1, s2, matrix)
	fillMatrix(s1, s2, matrix)

	return matrix[len(s1)][len(s2)]
}

func createMatrix(s1 string, s2 string) [][]int {
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	return matrix
}

func initializeFirstRowAndColumn(s1 string, s2 string, matrix [][]int) {
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}
}

func fillMatrix(s1 string, s2 string, matrix [][]int) {
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = calculateMinValue(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}
}

func calculateMinValue(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}

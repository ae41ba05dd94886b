package services

import (
	"log/slog"
	"sort"
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/shopspring/decimal"
)

type analysisService struct {
	classifier RootCauseClassifierInterface
}

// NewAnalysisService creates a new AnalysisServiceInterface instance
func NewAnalysisService(classifier RootCauseClassifierInterface) AnalysisServiceInterface {
	return &analysisService{
		classifier: classifier,
	}
}

// BuildReport computes the full denial-rate report for a normalized dataset.
// Every table is recomputed from the claim rows; nothing is incremental.
func (s *analysisService) BuildReport(claims []models.Claim) (*models.AnalysisReport, error) {
	if len(claims) == 0 {
		return nil, ErrEmptyDataset
	}

	report := &models.AnalysisReport{
		Totals:            buildTotals(claims),
		Codes:             buildCodeSummaries(claims),
		Payers:            buildPayerSummaries(claims),
		Providers:         buildProviderSummaries(claims),
		CodePayerCells:    buildHeatmapCells(claims, func(c *models.Claim) string { return c.Payer }),
		CodeProviderCells: buildHeatmapCells(claims, func(c *models.Claim) string { return c.Provider }),
		RootCauses:        s.classifier.SummarizeRootCauses(claims),
		GeneratedAt:       time.Now().UTC(),
	}

	slog.Info("analysis report generated",
		"claims", report.Totals.TotalClaims,
		"denied", report.Totals.DeniedClaims,
		"codes", len(report.Codes),
		"payers", len(report.Payers),
		"providers", len(report.Providers),
		"root_causes", len(report.RootCauses),
	)

	return report, nil
}

// aggregateBucket accumulates claim counts and amounts for one group key.
type aggregateBucket struct {
	total  int64
	denied int64
	billed decimal.Decimal
	lost   decimal.Decimal
}

func (b *aggregateBucket) add(claim *models.Claim) {
	b.total++
	b.billed = b.billed.Add(claim.BilledAmount)
	if claim.Denied {
		b.denied++
		b.lost = b.lost.Add(claim.BilledAmount)
	}
}

func bucketBy(claims []models.Claim, key func(*models.Claim) string) map[string]*aggregateBucket {
	buckets := make(map[string]*aggregateBucket)
	for i := range claims {
		claim := &claims[i]
		k := key(claim)
		b := buckets[k]
		if b == nil {
			b = &aggregateBucket{billed: decimal.Zero, lost: decimal.Zero}
			buckets[k] = b
		}
		b.add(claim)
	}
	return buckets
}

func buildTotals(claims []models.Claim) models.DatasetTotals {
	totals := models.DatasetTotals{
		TotalBilled: decimal.Zero,
		LostRevenue: decimal.Zero,
	}
	for i := range claims {
		claim := &claims[i]
		totals.TotalClaims++
		totals.TotalBilled = totals.TotalBilled.Add(claim.BilledAmount)
		if claim.Denied {
			totals.DeniedClaims++
			totals.LostRevenue = totals.LostRevenue.Add(claim.BilledAmount)
		}
	}
	totals.DenialRate = models.DenialRate(totals.DeniedClaims, totals.TotalClaims)
	return totals
}

func buildCodeSummaries(claims []models.Claim) []models.CodeSummary {
	buckets := bucketBy(claims, func(c *models.Claim) string { return c.CPTCode })

	summaries := make([]models.CodeSummary, 0, len(buckets))
	for code, b := range buckets {
		summaries = append(summaries, models.CodeSummary{
			CPTCode:      code,
			TotalClaims:  b.total,
			DeniedClaims: b.denied,
			DenialRate:   models.DenialRate(b.denied, b.total),
			LostRevenue:  b.lost,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return rankLess(
			summaries[i].DenialRate, summaries[j].DenialRate,
			summaries[i].DeniedClaims, summaries[j].DeniedClaims,
			summaries[i].CPTCode, summaries[j].CPTCode,
		)
	})
	return summaries
}

func buildPayerSummaries(claims []models.Claim) []models.PayerSummary {
	buckets := bucketBy(claims, func(c *models.Claim) string { return c.Payer })

	summaries := make([]models.PayerSummary, 0, len(buckets))
	for payer, b := range buckets {
		summaries = append(summaries, models.PayerSummary{
			Payer:        payer,
			TotalClaims:  b.total,
			DeniedClaims: b.denied,
			DenialRate:   models.DenialRate(b.denied, b.total),
			LostRevenue:  b.lost,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return rankLess(
			summaries[i].DenialRate, summaries[j].DenialRate,
			summaries[i].DeniedClaims, summaries[j].DeniedClaims,
			summaries[i].Payer, summaries[j].Payer,
		)
	})
	return summaries
}

func buildProviderSummaries(claims []models.Claim) []models.ProviderSummary {
	buckets := bucketBy(claims, func(c *models.Claim) string { return c.Provider })

	summaries := make([]models.ProviderSummary, 0, len(buckets))
	for provider, b := range buckets {
		summaries = append(summaries, models.ProviderSummary{
			Provider:     provider,
			TotalClaims:  b.total,
			DeniedClaims: b.denied,
			DenialRate:   models.DenialRate(b.denied, b.total),
			LostRevenue:  b.lost,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return rankLess(
			summaries[i].DenialRate, summaries[j].DenialRate,
			summaries[i].DeniedClaims, summaries[j].DeniedClaims,
			summaries[i].Provider, summaries[j].Provider,
		)
	})
	return summaries
}

// buildHeatmapCells aggregates (CPT code, group) pairs, where the group is a
// payer or a provider. Cells sort by code then group so the rendered matrix
// is stable across requests.
func buildHeatmapCells(claims []models.Claim, group func(*models.Claim) string) []models.HeatmapCell {
	type pairKey struct {
		code  string
		group string
	}

	buckets := make(map[pairKey]*aggregateBucket)
	for i := range claims {
		claim := &claims[i]
		k := pairKey{code: claim.CPTCode, group: group(claim)}
		b := buckets[k]
		if b == nil {
			b = &aggregateBucket{billed: decimal.Zero, lost: decimal.Zero}
			buckets[k] = b
		}
		b.add(claim)
	}

	cells := make([]models.HeatmapCell, 0, len(buckets))
	for k, b := range buckets {
		cells = append(cells, models.HeatmapCell{
			CPTCode:      k.code,
			Group:        k.group,
			TotalClaims:  b.total,
			DeniedClaims: b.denied,
			DenialRate:   models.DenialRate(b.denied, b.total),
			LostRevenue:  b.lost,
		})
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].CPTCode != cells[j].CPTCode {
			return cells[i].CPTCode < cells[j].CPTCode
		}
		return cells[i].Group < cells[j].Group
	})
	return cells
}

// rankLess orders summary rows: denial rate descending, then denial count
// descending, then key ascending. Equal inputs always rank identically.
func rankLess(rateI, rateJ *float64, deniedI, deniedJ int64, keyI, keyJ string) bool {
	ri := rankRate(rateI)
	rj := rankRate(rateJ)
	if ri != rj {
		return ri > rj
	}
	if deniedI != deniedJ {
		return deniedI > deniedJ
	}
	return keyI < keyJ
}

// rankRate sorts nil rates below any real rate.
func rankRate(rate *float64) float64 {
	if rate == nil {
		return -1
	}
	return *rate
}

package services

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type sampleClaimsGenerator struct {
	cptPool        []string
	payerPool      []string
	providerPool   []string
	reasonPool     []string
	chargeRanges   map[string][2]float64
	highRiskCodes  map[string]bool
	payerRiskBoost map[string]float64
	rng            *rand.Rand
}

const (
	defaultSampleRows   = 500
	providerPoolSize    = 10
	baseDenialChance    = 0.12
	highRiskDenialBoost = 0.20
	minPaymentRatio     = 0.55
	paymentRatioSpread  = 0.40
	sampleDateRangeDays = 180
	firstSampleDataRow  = 2
)

// sampleCSVHeader deliberately uses messy real-world header names so the
// generated file exercises the loader's alias matching end to end.
var sampleCSVHeader = []string{
	"CPT Code",
	"Insurance Company",
	"Physician Name",
	"Billed Amount",
	"Payment Amount",
	"Denial Reason",
	"Denial Date",
}

// NewSampleClaimsGenerator creates a new sample claims generator
func NewSampleClaimsGenerator() SampleClaimsGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	faker := gofakeit.New(0)

	return &sampleClaimsGenerator{
		cptPool:        initializeCPTPool(),
		payerPool:      initializePayerPool(),
		providerPool:   initializeProviderPool(faker),
		reasonPool:     initializeDenialReasonPool(),
		chargeRanges:   initializeChargeRanges(),
		highRiskCodes:  initializeHighRiskCodes(),
		payerRiskBoost: initializePayerRiskBoost(),
		rng:            rand.New(source),
	}
}

// initializeCPTPool returns a pool of common outpatient CPT codes
func initializeCPTPool() []string {
	return []string{
		// Evaluation & management
		"99203", "99204", "99213", "99214", "99215", "99285",

		// Labs & diagnostics
		"80053", "85025", "36415", "71046", "93000",

		// Procedures
		"10060", "20610", "29881", "45378", "64483",

		// Therapy
		"97110", "97140", "90834", "11721",
	}
}

// initializePayerPool returns a pool of common payers
func initializePayerPool() []string {
	return []string{
		"Medicare",
		"Medicaid",
		"Blue Cross Blue Shield",
		"UnitedHealthcare",
		"Aetna",
		"Cigna",
		"Humana",
		"Tricare",
	}
}

// initializeProviderPool generates rendering provider names
func initializeProviderPool(faker *gofakeit.Faker) []string {
	providers := make([]string, 0, providerPoolSize)
	for i := 0; i < providerPoolSize; i++ {
		providers = append(providers, "Dr. "+faker.FirstName()+" "+faker.LastName())
	}
	return providers
}

// initializeDenialReasonPool returns denial reasons covering every root-cause
// category plus a few phrasings no rule matches.
func initializeDenialReasonPool() []string {
	return []string{
		// Modifier issues
		"Missing modifier 25 on E/M service",
		"Modifier 59 required for distinct procedural service",

		// Coverage policy
		"Service not covered per LCD policy L34567",
		"Diagnosis does not meet NCD coverage criteria",

		// Bundling
		"Procedure bundled under NCCI edit with primary service",
		"Payment included in allowance for another bundled service",

		// Documentation
		"Medical records not received; documentation required",
		"Missing documentation of medical necessity",

		// Authorization
		"No prior authorization on file",
		"Authorization expired before date of service",

		// Credentialing
		"Provider not credentialed with plan on date of service",
		"Rendering provider enrollment pending",

		// Intentionally unmatched by the rule set
		"Timely filing limit exceeded",
		"Duplicate claim submission",
		"Patient not eligible on date of service",
	}
}

// initializeChargeRanges maps each CPT code to a realistic charge range
func initializeChargeRanges() map[string][2]float64 {
	return map[string][2]float64{
		"99203": {100.00, 180.00},
		"99204": {160.00, 260.00},
		"99213": {75.00, 140.00},
		"99214": {110.00, 200.00},
		"99215": {150.00, 280.00},
		"99285": {400.00, 900.00},
		"80053": {25.00, 60.00},
		"85025": {15.00, 40.00},
		"36415": {8.00, 20.00},
		"71046": {60.00, 150.00},
		"93000": {40.00, 90.00},
		"10060": {150.00, 350.00},
		"20610": {120.00, 280.00},
		"29881": {2500.00, 5500.00},
		"45378": {900.00, 2200.00},
		"64483": {800.00, 1800.00},
		"97110": {45.00, 95.00},
		"97140": {40.00, 85.00},
		"90834": {90.00, 170.00},
		"11721": {50.00, 110.00},
	}
}

// initializeHighRiskCodes flags codes whose denial odds run above baseline
func initializeHighRiskCodes() map[string]bool {
	return map[string]bool{
		"29881": true,
		"45378": true,
		"64483": true,
		"97110": true,
		"99215": true,
	}
}

// initializePayerRiskBoost adjusts denial odds per payer
func initializePayerRiskBoost() map[string]float64 {
	return map[string]float64{
		"Medicaid":         0.10,
		"UnitedHealthcare": 0.06,
		"Medicare":         -0.04,
	}
}

// GenerateClaims generates a batch of synthetic claims with realistic denial
// patterns. A non-positive count falls back to the default batch size.
func (g *sampleClaimsGenerator) GenerateClaims(count int) []models.Claim {
	if count <= 0 {
		count = defaultSampleRows
	}

	claims := make([]models.Claim, 0, count)
	for i := 0; i < count; i++ {
		cptCode := g.cptPool[g.rng.Intn(len(g.cptPool))]
		payer := g.payerPool[g.rng.Intn(len(g.payerPool))]
		provider := g.providerPool[g.rng.Intn(len(g.providerPool))]
		billed := g.generateCharge(cptCode)

		claim := models.Claim{
			RowNumber:    firstSampleDataRow + i,
			CPTCode:      cptCode,
			Payer:        payer,
			Provider:     provider,
			BilledAmount: billed,
		}

		if g.rollDenied(cptCode, payer) {
			claim.Denied = true
			claim.DenialReason = g.SelectDenialReason()
			claim.PaymentAmount = decimal.Zero
			denialDate := g.generateServiceDate()
			claim.DenialDate = &denialDate
		} else {
			claim.PaymentAmount = g.generatePayment(billed)
		}

		claims = append(claims, claim)
	}

	return claims
}

// GenerateCSV renders a generated batch as a CSV upload body
func (g *sampleClaimsGenerator) GenerateCSV(count int) []byte {
	claims := g.GenerateClaims(count)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(sampleCSVHeader)
	for i := range claims {
		claim := &claims[i]
		denialDate := ""
		if claim.DenialDate != nil {
			denialDate = claim.DenialDate.Format("2006-01-02")
		}
		_ = w.Write([]string{
			claim.CPTCode,
			claim.Payer,
			claim.Provider,
			claim.BilledAmount.StringFixed(2),
			claim.PaymentAmount.StringFixed(2),
			claim.DenialReason,
			denialDate,
		})
	}
	w.Flush()

	return buf.Bytes()
}

// GetCPTPool returns the CPT code pool
func (g *sampleClaimsGenerator) GetCPTPool() []string {
	pool := make([]string, len(g.cptPool))
	copy(pool, g.cptPool)
	return pool
}

// GetPayerPool returns the payer pool
func (g *sampleClaimsGenerator) GetPayerPool() []string {
	pool := make([]string, len(g.payerPool))
	copy(pool, g.payerPool)
	return pool
}

// SelectDenialReason selects a random denial reason from the pool
func (g *sampleClaimsGenerator) SelectDenialReason() string {
	return g.reasonPool[g.rng.Intn(len(g.reasonPool))]
}

// rollDenied decides whether a claim is denied. High-risk codes and strict
// payers push the odds up so the generated report has visible hot spots.
func (g *sampleClaimsGenerator) rollDenied(cptCode, payer string) bool {
	chance := baseDenialChance
	if g.highRiskCodes[cptCode] {
		chance += highRiskDenialBoost
	}
	chance += g.payerRiskBoost[payer]

	return g.rng.Float64() < chance
}

func (g *sampleClaimsGenerator) generateCharge(cptCode string) decimal.Decimal {
	r, exists := g.chargeRanges[cptCode]
	if !exists {
		r = [2]float64{50.00, 200.00}
	}
	amount := r[0] + g.rng.Float64()*(r[1]-r[0])
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *sampleClaimsGenerator) generatePayment(billed decimal.Decimal) decimal.Decimal {
	ratio := minPaymentRatio + g.rng.Float64()*paymentRatioSpread
	return billed.Mul(decimal.NewFromFloat(ratio)).Round(2)
}

func (g *sampleClaimsGenerator) generateServiceDate() time.Time {
	daysBack := g.rng.Intn(sampleDateRangeDays)
	date := time.Now().UTC().AddDate(0, 0, -daysBack)
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

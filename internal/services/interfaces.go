package services

import (
	"context"
	"io"
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/google/uuid"
)

// LoaderServiceInterface defines the contract for parsing uploaded claims
// files into normalized claim rows
type LoaderServiceInterface interface {
	// LoadClaims parses a CSV or Excel export, resolves its headers against
	// the canonical schema and returns the normalized claim rows
	LoadClaims(fileName string, r io.Reader) (*models.NormalizedClaims, error)
}

// RootCauseClassifierInterface defines the interface for denial root-cause
// classification operations
type RootCauseClassifierInterface interface {
	// Classify assigns a single denial reason to a root-cause category
	Classify(denialReason string) models.ClassificationResult

	// SummarizeRootCauses buckets a dataset's denied claims by category
	SummarizeRootCauses(claims []models.Claim) []models.RootCauseSummary

	// RuleOrder returns the rule names in match priority order
	RuleOrder() []string
}

// AnalysisServiceInterface computes denial statistics from normalized claims
type AnalysisServiceInterface interface {
	// BuildReport computes the full denial-rate report for a dataset
	BuildReport(claims []models.Claim) (*models.AnalysisReport, error)
}

// RecommendationServiceInterface provides remediation guidance for denial
// root causes
type RecommendationServiceInterface interface {
	PlanForRootCauses(rootCauses []models.RootCauseSummary) []models.Recommendation
	PreventionStrategies() []string
}

// DatasetServiceInterface orchestrates the ingest pipeline and dataset access
type DatasetServiceInterface interface {
	IngestUpload(ctx context.Context, fileName string, size int64, r io.Reader) (*models.Dataset, error)
	GetDataset(id uuid.UUID) (*models.Dataset, error)
	LatestDataset() (*models.Dataset, error)
	ListDatasets() []models.DatasetMeta
	DeleteDataset(ctx context.Context, id uuid.UUID) error
}

// SampleClaimsGeneratorInterface generates realistic claims data for demos
// and testing
type SampleClaimsGeneratorInterface interface {
	GenerateClaims(count int) []models.Claim
	GenerateCSV(count int) []byte
	GetCPTPool() []string
	GetPayerPool() []string
	SelectDenialReason() string
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type IngestLoggerInterface interface {
	LogUploadStarted(ctx context.Context, fileName string, sizeBytes int64)
	LogUploadCompleted(ctx context.Context, datasetID uuid.UUID, rows, skippedRows int, durationMs int64)
	LogUploadFailed(ctx context.Context, fileName string, errorMsg string, durationMs int64)
	LogDatasetDeleted(ctx context.Context, datasetID uuid.UUID)
	LogSampleGenerated(ctx context.Context, rows int, sizeBytes int)
}

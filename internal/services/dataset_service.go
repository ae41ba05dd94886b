package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/repositories"

	"github.com/google/uuid"
)

var (
	// ErrIngestBusy is returned when an upload arrives while another one is
	// still being processed. Ingest is deliberately serialized.
	ErrIngestBusy = errors.New("another upload is already being processed")
	// ErrFileTooLarge is returned when the uploaded file exceeds the size cap.
	ErrFileTooLarge = errors.New("uploaded file exceeds the size limit")
)

type datasetService struct {
	loader      LoaderServiceInterface
	analyzer    AnalysisServiceInterface
	repo        repositories.DatasetRepositoryInterface
	metrics     MetricsRecorderInterface
	ingestLog   IngestLoggerInterface
	maxFileSize int64
	ingestMu    sync.Mutex
}

// NewDatasetService creates a new DatasetServiceInterface instance
func NewDatasetService(
	loader LoaderServiceInterface,
	analyzer AnalysisServiceInterface,
	repo repositories.DatasetRepositoryInterface,
	metrics MetricsRecorderInterface,
	ingestLog IngestLoggerInterface,
	maxFileSize int64,
) DatasetServiceInterface {
	return &datasetService{
		loader:      loader,
		analyzer:    analyzer,
		repo:        repo,
		metrics:     metrics,
		ingestLog:   ingestLog,
		maxFileSize: maxFileSize,
	}
}

// IngestUpload parses an uploaded claims file, builds its analysis report and
// stores the resulting dataset. Only one ingest runs at a time; a second
// concurrent upload fails fast with ErrIngestBusy instead of queueing.
func (s *datasetService) IngestUpload(ctx context.Context, fileName string, size int64, r io.Reader) (*models.Dataset, error) {
	if !s.ingestMu.TryLock() {
		s.recordFailure("busy", fileFormat(fileName))
		return nil, ErrIngestBusy
	}
	defer s.ingestMu.Unlock()

	start := time.Now()
	format := fileFormat(fileName)
	s.ingestLog.LogUploadStarted(ctx, fileName, size)

	if s.maxFileSize > 0 && size > s.maxFileSize {
		err := fmt.Errorf("%w (%d bytes, limit %d)", ErrFileTooLarge, size, s.maxFileSize)
		s.failUpload(ctx, fileName, format, err, start)
		return nil, err
	}

	normalized, err := s.loader.LoadClaims(fileName, r)
	if err != nil {
		s.failUpload(ctx, fileName, format, err, start)
		return nil, err
	}

	report, err := s.analyzer.BuildReport(normalized.Claims)
	if err != nil {
		s.failUpload(ctx, fileName, format, err, start)
		return nil, err
	}

	dataset := &models.Dataset{
		ID:          uuid.New(),
		FileName:    fileName,
		FileSize:    size,
		UploadedAt:  time.Now().UTC(),
		RowCount:    len(normalized.Claims),
		SkippedRows: normalized.SkippedRows,
		Claims:      normalized.Claims,
		Mapping:     normalized.Mapping,
		Report:      report,
	}
	s.repo.Store(dataset)

	s.metrics.IncrementCounter("claims.upload.success", map[string]string{"format": format})
	s.metrics.RecordProcessingTime("claims.ingest", time.Since(start))
	s.metrics.RecordGauge("datasets.in_memory", float64(s.repo.Count()), nil)
	s.metrics.RecordGauge("claims.last_upload.rows", float64(dataset.RowCount), nil)
	s.ingestLog.LogUploadCompleted(ctx, dataset.ID, dataset.RowCount, dataset.SkippedRows, time.Since(start).Milliseconds())

	return dataset, nil
}

// GetDataset returns the dataset with the given ID.
func (s *datasetService) GetDataset(id uuid.UUID) (*models.Dataset, error) {
	return s.repo.FindByID(id)
}

// LatestDataset returns the most recently uploaded dataset.
func (s *datasetService) LatestDataset() (*models.Dataset, error) {
	return s.repo.Latest()
}

// ListDatasets returns metadata for every stored dataset, newest first.
func (s *datasetService) ListDatasets() []models.DatasetMeta {
	return s.repo.List()
}

// DeleteDataset removes a stored dataset.
func (s *datasetService) DeleteDataset(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.ingestLog.LogDatasetDeleted(ctx, id)
	s.metrics.RecordGauge("datasets.in_memory", float64(s.repo.Count()), nil)
	return nil
}

func (s *datasetService) failUpload(ctx context.Context, fileName, format string, err error, start time.Time) {
	s.recordFailure(failureReason(err), format)
	s.ingestLog.LogUploadFailed(ctx, fileName, err.Error(), time.Since(start).Milliseconds())
}

func (s *datasetService) recordFailure(reason, format string) {
	s.metrics.IncrementCounter("claims.upload.failed", map[string]string{
		"reason": reason,
		"format": format,
	})
}

// failureReason collapses ingest errors into a small label set for metrics.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrSchemaCPTUnresolved),
		errors.Is(err, ErrSchemaDenialFlagUnresolved),
		errors.Is(err, ErrSchemaHeaderNotFound):
		return "schema"
	case errors.Is(err, ErrMalformedFile):
		return "malformed"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrEmptyDataset):
		return "empty"
	case errors.Is(err, ErrFileTooLarge):
		return "too_large"
	default:
		return "other"
	}
}

func fileFormat(fileName string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

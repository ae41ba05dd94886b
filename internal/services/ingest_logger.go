package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// IngestLogger provides structured logging for dataset lifecycle events
type IngestLogger struct {
	logger *slog.Logger
}

// NewIngestLogger creates a new ingest logger
func NewIngestLogger(logger *slog.Logger) IngestLoggerInterface {
	return &IngestLogger{
		logger: logger,
	}
}

// LogUploadStarted logs the start of a claims file upload
func (il *IngestLogger) LogUploadStarted(ctx context.Context, fileName string, sizeBytes int64) {
	il.logger.InfoContext(ctx, "claims upload started",
		slog.String("event_type", "claims_upload_started"),
		slog.String("file_name", fileName),
		slog.Int64("size_bytes", sizeBytes),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogUploadCompleted logs a successfully ingested dataset
func (il *IngestLogger) LogUploadCompleted(ctx context.Context, datasetID uuid.UUID, rows, skippedRows int, durationMs int64) {
	il.logger.InfoContext(ctx, "claims upload completed",
		slog.String("event_type", "claims_upload_completed"),
		slog.String("dataset_id", datasetID.String()),
		slog.Int("rows", rows),
		slog.Int("skipped_rows", skippedRows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogUploadFailed logs a failed claims file upload
func (il *IngestLogger) LogUploadFailed(ctx context.Context, fileName string, errorMsg string, durationMs int64) {
	il.logger.WarnContext(ctx, "claims upload failed",
		slog.String("event_type", "claims_upload_failed"),
		slog.String("file_name", fileName),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogDatasetDeleted logs dataset deletion
func (il *IngestLogger) LogDatasetDeleted(ctx context.Context, datasetID uuid.UUID) {
	il.logger.InfoContext(ctx, "dataset deleted",
		slog.String("event_type", "dataset_deleted"),
		slog.String("dataset_id", datasetID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogSampleGenerated logs generation of a synthetic sample dataset
func (il *IngestLogger) LogSampleGenerated(ctx context.Context, rows int, sizeBytes int) {
	il.logger.InfoContext(ctx, "sample dataset generated",
		slog.String("event_type", "sample_dataset_generated"),
		slog.Int("rows", rows),
		slog.Int("size_bytes", sizeBytes),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// Helper functions

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value("trace_id").(string); ok {
		return traceID
	}
	return ""
}

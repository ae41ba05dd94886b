package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/dto"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services"

	"github.com/labstack/echo/v4"
)

const maxSampleRows = 5000

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	datasetService services.DatasetServiceInterface
	ingestLog      services.IngestLoggerInterface
	generator      services.SampleClaimsGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	datasetService services.DatasetServiceInterface,
	ingestLog services.IngestLoggerInterface,
) *DevHandler {
	return &DevHandler{
		datasetService: datasetService,
		ingestLog:      ingestLog,
		generator:      services.NewSampleClaimsGenerator(),
	}
}

// GenerateSampleDataset fabricates a realistic claims file and runs it
// through the full ingest pipeline, exactly as an uploaded file would be.
//
// Method: POST /api/v1/dev/sample-dataset
// Environment: Development only
//
// Query parameters:
//   - rows: Number of claim rows to generate (default: 500, max: 5000)
//
// Success Response: 201 Created
//   - dataset: metadata + column mapping for the generated file
//   - rows: number of claim rows ingested
//
// Error Responses:
//   - 409: Another upload is being processed
//   - 500: Generation or ingest failed
func (h *DevHandler) GenerateSampleDataset(c echo.Context) error {
	rows := getIntQueryParam(c, "rows", 0)
	if rows < 0 {
		rows = 0
	}
	if rows > maxSampleRows {
		rows = maxSampleRows
	}

	csvBytes := h.generator.GenerateCSV(rows)
	fileName := fmt.Sprintf("sample-claims-%s.csv", time.Now().UTC().Format("20060102-150405"))

	dataset, err := h.datasetService.IngestUpload(
		c.Request().Context(),
		fileName,
		int64(len(csvBytes)),
		bytes.NewReader(csvBytes),
	)
	if err != nil {
		if errors.Is(err, services.ErrIngestBusy) {
			return echo.NewHTTPError(http.StatusConflict, "another upload is being processed")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "sample dataset ingest failed")
	}

	h.ingestLog.LogSampleGenerated(c.Request().Context(), dataset.RowCount, len(csvBytes))

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "sample dataset generated",
		"dataset": dto.ToDatasetResponse(dataset),
		"rows":    dataset.RowCount,
	})
}

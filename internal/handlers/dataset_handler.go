package handlers

import (
	"errors"
	"net/http"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/dto"
	apierrors "github.com/vdhanush11/medical-billing-denial-analysis/internal/errors"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/repositories"
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/services"

	"github.com/labstack/echo/v4"
)

// DatasetHandler handles dataset upload and lifecycle requests
type DatasetHandler struct {
	datasetService services.DatasetServiceInterface
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasetService services.DatasetServiceInterface) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// UploadDataset ingests a claims export and returns the stored dataset with
// its denial analysis.
//
// Method: POST /api/v1/datasets
// Content-Type: multipart/form-data
//
// Form fields:
//   - file: CSV or Excel (.xlsx) claims export (required)
//
// Success Response: 201 Created
//   - dataset: metadata + column-mapping diagnostics
//   - report: full denial analysis (top-10 code table)
//
// Error Responses:
//   - 400: PARSE_001 malformed file or PARSE_004 missing file field
//   - 409: DATASET_004 another upload is still being processed
//   - 413: PARSE_003 file exceeds the size cap
//   - 415: PARSE_002 unsupported file format
//   - 422: SCHEMA_001/SCHEMA_002/SCHEMA_003 unresolvable headers or
//     DATASET_001 no usable rows
//   - 500: SYSTEM_001 internal error
func (h *DatasetHandler) UploadDataset(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, apierrors.ParseMissingFile)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return SendError(c, apierrors.ParseMalformedFile, apierrors.WithDetails("uploaded file could not be opened"))
	}
	defer src.Close()

	dataset, err := h.datasetService.IngestUpload(c.Request().Context(), fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		return h.handleIngestError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.UploadResponse{
		Dataset: dto.ToDatasetResponse(dataset),
		Report:  dto.ToReportResponse(dataset.Report, defaultTopN),
	})
}

// ListDatasets lists metadata for every dataset held in memory, newest first.
//
// Method: GET /api/v1/datasets
//
// Success Response: 200 OK
//   - datasets: array of dataset metadata
//   - count: number of datasets
func (h *DatasetHandler) ListDatasets(c echo.Context) error {
	metas := h.datasetService.ListDatasets()

	datasets := make([]dto.DatasetMetaResponse, 0, len(metas))
	for _, meta := range metas {
		datasets = append(datasets, dto.ToDatasetMetaResponse(meta))
	}

	return c.JSON(http.StatusOK, dto.ListDatasetsResponse{
		Datasets: datasets,
		Count:    len(datasets),
	})
}

// GetLatestDataset returns the most recently uploaded dataset.
//
// Method: GET /api/v1/datasets/latest
//
// Success Response: 200 OK
//   - dataset metadata + column-mapping diagnostics
//
// Error Responses:
//   - 404: DATASET_005 no dataset has been uploaded yet
func (h *DatasetHandler) GetLatestDataset(c echo.Context) error {
	dataset, err := h.datasetService.LatestDataset()
	if err != nil {
		if errors.Is(err, repositories.ErrNoDatasets) {
			return SendError(c, apierrors.DatasetNoneLoaded)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToDatasetResponse(dataset))
}

// GetDataset returns one dataset by ID.
//
// Method: GET /api/v1/datasets/:id
//
// Path parameters:
//   - id: Dataset UUID
//
// Success Response: 200 OK
//   - dataset metadata + column-mapping diagnostics
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID
//   - 404: DATASET_002 dataset not found
func (h *DatasetHandler) GetDataset(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	dataset, err := h.datasetService.GetDataset(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDatasetNotFound) {
			return SendError(c, apierrors.DatasetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToDatasetResponse(dataset))
}

// DeleteDataset drops a dataset from memory.
//
// Method: DELETE /api/v1/datasets/:id
//
// Path parameters:
//   - id: Dataset UUID
//
// Success Response: 200 OK
//   - message: confirmation
//
// Error Responses:
//   - 400: DATASET_003 invalid dataset ID
//   - 404: DATASET_002 dataset not found
func (h *DatasetHandler) DeleteDataset(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return SendError(c, apierrors.DatasetInvalidID)
	}

	if err := h.datasetService.DeleteDataset(c.Request().Context(), id); err != nil {
		if errors.Is(err, repositories.ErrDatasetNotFound) {
			return SendError(c, apierrors.DatasetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "dataset deleted",
	})
}

// handleIngestError maps pipeline failures onto the API error codes.
func (h *DatasetHandler) handleIngestError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrSchemaCPTUnresolved):
		return SendError(c, apierrors.SchemaCPTUnresolved, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrSchemaDenialFlagUnresolved):
		return SendError(c, apierrors.SchemaDenialFlagUnresolved, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrSchemaHeaderNotFound):
		return SendError(c, apierrors.SchemaHeaderNotFound)
	case errors.Is(err, services.ErrUnsupportedFormat):
		return SendError(c, apierrors.ParseUnsupportedFormat)
	case errors.Is(err, services.ErrMalformedFile):
		return SendError(c, apierrors.ParseMalformedFile, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrEmptyDataset):
		return SendError(c, apierrors.DatasetEmpty)
	case errors.Is(err, services.ErrFileTooLarge):
		return SendError(c, apierrors.ParseFileTooLarge, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrIngestBusy):
		return SendError(c, apierrors.DatasetIngestBusy)
	default:
		return SendSystemError(c, err)
	}
}

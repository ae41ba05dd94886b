package dto

import (
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/google/uuid"
)

// DatasetResponse is the API view of one stored dataset, including the
// column-mapping diagnostics shown on the dashboard after an upload.
type DatasetResponse struct {
	ID          uuid.UUID       `json:"id"`
	FileName    string          `json:"fileName"`
	FileSize    int64           `json:"fileSize"`
	UploadedAt  time.Time       `json:"uploadedAt"`
	RowCount    int             `json:"rowCount"`
	SkippedRows int             `json:"skippedRows"`
	Mapping     MappingResponse `json:"mapping"`
}

// DatasetMetaResponse is the listing view, without mapping diagnostics.
type DatasetMetaResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	UploadedAt  time.Time `json:"uploadedAt"`
	RowCount    int       `json:"rowCount"`
	SkippedRows int       `json:"skippedRows"`
}

// ListDatasetsResponse represents the response for listing datasets
type ListDatasetsResponse struct {
	Datasets []DatasetMetaResponse `json:"datasets"`
	Count    int                   `json:"count"`
}

// ColumnBindingResponse shows how one source column resolved to a canonical
// claim field. Similarity is 1.0 for an exact alias hit.
type ColumnBindingResponse struct {
	Field        string  `json:"field"`
	SourceHeader string  `json:"sourceHeader"`
	MatchedAlias string  `json:"matchedAlias"`
	Similarity   float64 `json:"similarity"`
}

// MappingResponse is the header-resolution diagnostic block for a dataset.
type MappingResponse struct {
	HeaderRow int                     `json:"headerRow"`
	Bindings  []ColumnBindingResponse `json:"bindings"`
	Unmapped  []string                `json:"unmapped,omitempty"`
}

// UploadResponse is returned by the upload endpoint: the stored dataset plus
// its freshly computed denial analysis.
type UploadResponse struct {
	Dataset DatasetResponse `json:"dataset"`
	Report  ReportResponse  `json:"report"`
}

// ToDatasetResponse converts a dataset model to its API representation.
func ToDatasetResponse(dataset *models.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:          dataset.ID,
		FileName:    dataset.FileName,
		FileSize:    dataset.FileSize,
		UploadedAt:  dataset.UploadedAt,
		RowCount:    dataset.RowCount,
		SkippedRows: dataset.SkippedRows,
		Mapping:     ToMappingResponse(dataset.Mapping),
	}
}

// ToDatasetMetaResponse converts dataset metadata to its API representation.
func ToDatasetMetaResponse(meta models.DatasetMeta) DatasetMetaResponse {
	return DatasetMetaResponse{
		ID:          meta.ID,
		FileName:    meta.FileName,
		FileSize:    meta.FileSize,
		UploadedAt:  meta.UploadedAt,
		RowCount:    meta.RowCount,
		SkippedRows: meta.SkippedRows,
	}
}

// ToMappingResponse flattens the binding map into canonical field order so
// the JSON is stable across requests.
func ToMappingResponse(mapping models.ColumnMapping) MappingResponse {
	bindings := make([]ColumnBindingResponse, 0, len(mapping.Bindings))
	for _, field := range models.CanonicalFields() {
		binding, ok := mapping.Bindings[field]
		if !ok {
			continue
		}
		bindings = append(bindings, ColumnBindingResponse{
			Field:        string(field),
			SourceHeader: binding.SourceHeader,
			MatchedAlias: binding.MatchedAlias,
			Similarity:   binding.Similarity,
		})
	}

	return MappingResponse{
		HeaderRow: mapping.HeaderRow,
		Bindings:  bindings,
		Unmapped:  mapping.Unmapped,
	}
}

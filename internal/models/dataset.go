package models

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is one uploaded claims file together with everything derived from
// it. Datasets live only in memory; restarting the server clears them.
type Dataset struct {
	ID          uuid.UUID       `json:"id"`
	FileName    string          `json:"file_name"`
	FileSize    int64           `json:"file_size"`
	UploadedAt  time.Time       `json:"uploaded_at"`
	RowCount    int             `json:"row_count"`
	SkippedRows int             `json:"skipped_rows"`
	Claims      []Claim         `json:"-"`
	Mapping     ColumnMapping   `json:"mapping"`
	Report      *AnalysisReport `json:"-"`
}

// DatasetMeta is the listing view of a dataset, without the claim rows.
type DatasetMeta struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
	RowCount    int       `json:"row_count"`
	SkippedRows int       `json:"skipped_rows"`
}

// Meta returns the listing view of the dataset.
func (d *Dataset) Meta() DatasetMeta {
	return DatasetMeta{
		ID:          d.ID,
		FileName:    d.FileName,
		FileSize:    d.FileSize,
		UploadedAt:  d.UploadedAt,
		RowCount:    d.RowCount,
		SkippedRows: d.SkippedRows,
	}
}

// DeniedClaims returns only the denied rows, preserving file order.
func (d *Dataset) DeniedClaims() []Claim {
	denied := make([]Claim, 0, len(d.Claims))
	for _, claim := range d.Claims {
		if claim.Denied {
			denied = append(denied, claim)
		}
	}
	return denied
}

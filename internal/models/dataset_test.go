package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDataset_Meta(t *testing.T) {
	uploadedAt := time.Now().UTC()
	dataset := Dataset{
		ID:          uuid.New(),
		FileName:    "claims_q3.csv",
		FileSize:    2048,
		UploadedAt:  uploadedAt,
		RowCount:    120,
		SkippedRows: 4,
		Claims:      []Claim{{CPTCode: "99213"}},
	}

	meta := dataset.Meta()

	assert.Equal(t, dataset.ID, meta.ID)
	assert.Equal(t, "claims_q3.csv", meta.FileName)
	assert.Equal(t, int64(2048), meta.FileSize)
	assert.Equal(t, uploadedAt, meta.UploadedAt)
	assert.Equal(t, 120, meta.RowCount)
	assert.Equal(t, 4, meta.SkippedRows)
}

func TestDataset_DeniedClaims(t *testing.T) {
	dataset := Dataset{
		Claims: []Claim{
			{RowNumber: 2, CPTCode: "99213", Denied: true, BilledAmount: decimal.NewFromInt(150)},
			{RowNumber: 3, CPTCode: "99214", Denied: false},
			{RowNumber: 4, CPTCode: "97110", Denied: true},
		},
	}

	denied := dataset.DeniedClaims()

	assert.Len(t, denied, 2)
	assert.Equal(t, 2, denied[0].RowNumber)
	assert.Equal(t, 4, denied[1].RowNumber)
}

func TestDataset_DeniedClaims_Empty(t *testing.T) {
	dataset := Dataset{
		Claims: []Claim{
			{RowNumber: 2, CPTCode: "99213", Denied: false},
		},
	}

	assert.Empty(t, dataset.DeniedClaims())
}

package repositories

import (
	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/google/uuid"
)

// DatasetRepositoryInterface defines the contract for dataset storage operations.
// The only implementation is in-memory; datasets do not survive a restart and
// that is the intended lifecycle for this tool.
type DatasetRepositoryInterface interface {
	Store(dataset *models.Dataset)
	FindByID(id uuid.UUID) (*models.Dataset, error)
	Latest() (*models.Dataset, error)
	List() []models.DatasetMeta
	Delete(id uuid.UUID) error
	Count() int
}

package repositories

import (
	"errors"
	"sort"
	"sync"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/google/uuid"
)

// Storage errors
var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrNoDatasets      = errors.New("no datasets loaded")
)

// datasetRepository holds uploaded datasets in process memory, keyed by ID.
type datasetRepository struct {
	mu       sync.RWMutex
	datasets map[uuid.UUID]*models.Dataset
}

// NewDatasetRepository creates an empty in-memory dataset store
func NewDatasetRepository() DatasetRepositoryInterface {
	return &datasetRepository{
		datasets: make(map[uuid.UUID]*models.Dataset),
	}
}

// Store inserts or replaces a dataset
func (r *datasetRepository) Store(dataset *models.Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.datasets[dataset.ID] = dataset
}

// FindByID returns the dataset with the given ID
func (r *datasetRepository) FindByID(id uuid.UUID) (*models.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dataset, ok := r.datasets[id]
	if !ok {
		return nil, ErrDatasetNotFound
	}
	return dataset, nil
}

// Latest returns the most recently uploaded dataset
func (r *datasetRepository) Latest() (*models.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *models.Dataset
	for _, dataset := range r.datasets {
		if latest == nil || dataset.UploadedAt.After(latest.UploadedAt) {
			latest = dataset
		}
	}
	if latest == nil {
		return nil, ErrNoDatasets
	}
	return latest, nil
}

// List returns metadata for all held datasets, newest first. Ties on upload
// time break by ID so repeated calls render identically.
func (r *datasetRepository) List() []models.DatasetMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()

	metas := make([]models.DatasetMeta, 0, len(r.datasets))
	for _, dataset := range r.datasets {
		metas = append(metas, dataset.Meta())
	}

	sort.Slice(metas, func(i, j int) bool {
		if !metas[i].UploadedAt.Equal(metas[j].UploadedAt) {
			return metas[i].UploadedAt.After(metas[j].UploadedAt)
		}
		return metas[i].ID.String() < metas[j].ID.String()
	})

	return metas
}

// Delete removes a dataset
func (r *datasetRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.datasets[id]; !ok {
		return ErrDatasetNotFound
	}
	delete(r.datasets, id)
	return nil
}

// Count returns the number of datasets currently held
func (r *datasetRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.datasets)
}

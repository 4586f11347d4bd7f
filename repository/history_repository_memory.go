package repository

import (
	"context"
	"sync"

	"toolbox-api/domain"
)

// HistoryRepositoryMemory is an in-memory implementation of HistoryRepository.
type HistoryRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.CalculationRecord
}

// NewHistoryRepositoryMemory creates a new in-memory history repository.
func NewHistoryRepositoryMemory() *HistoryRepositoryMemory {
	return &HistoryRepositoryMemory{
		data: []domain.CalculationRecord{},
	}
}

// Save stores the calculation in memory.
func (r *HistoryRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.data {
		if sameCombination(existing, record) {
			return domain.ErrDuplicateCalculation
		}
	}
	r.data = append(r.data, record)
	return nil
}

// List returns the saved calculations, oldest first.
func (r *HistoryRepositoryMemory) List(_ context.Context) ([]domain.CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.CalculationRecord, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *HistoryRepositoryMemory) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = []domain.CalculationRecord{}
	return nil
}

package repository

import (
	"context"

	"toolbox-api/domain"
)

// HistoryRepository stores saved fixed-fee calculations. Save returns
// domain.ErrDuplicateCalculation when a record with the same fee rate, term
// and rate type already exists.
type HistoryRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	List(ctx context.Context) ([]domain.CalculationRecord, error)
	Clear(ctx context.Context) error
}

func sameCombination(a, b domain.CalculationRecord) bool {
	return a.FeeRate == b.FeeRate && a.Term == b.Term && a.RateType == b.RateType
}

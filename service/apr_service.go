package service

import (
	"context"
	"fmt"

	"toolbox-api/domain"
	"toolbox-api/repository"
)

// APRService exposes the APR solver with results memoized by input.
type APRService struct {
	cache          repository.CacheRepository
	periodsPerYear int
	bounds         domain.SolverBounds
}

// NewAPRService creates an APRService. periodsPerYear is used when a
// request leaves it unset; cache may be nil.
func NewAPRService(cache repository.CacheRepository, periodsPerYear int) *APRService {
	if periodsPerYear <= 0 {
		periodsPerYear = MonthsPerYear
	}
	return &APRService{
		cache:          cache,
		periodsPerYear: periodsPerYear,
		bounds:         DefaultBounds(),
	}
}

func (s *APRService) Solve(ctx context.Context, input domain.APRInput) (domain.APRResult, error) {
	if input.PeriodsPerYear == 0 {
		input.PeriodsPerYear = s.periodsPerYear
	}
	terms := domain.LoanTerms{
		Principal:       input.Principal,
		PeriodicPayment: input.PeriodicPayment,
		Periods:         input.Periods,
	}
	if err := ValidateLoanTerms(terms); err != nil {
		return domain.APRResult{}, err
	}

	key := fmt.Sprintf("apr:%v:%v:%d:%d", input.Principal, input.PeriodicPayment, input.Periods, input.PeriodsPerYear)
	return memoize(ctx, s.cache, key, func() (domain.APRResult, error) {
		apr, result, err := SolveAnnual(terms, input.PeriodsPerYear, s.bounds)
		if err != nil {
			return domain.APRResult{}, err
		}
		return domain.APRResult{AnnualPercentageRate: apr, Solver: result}, nil
	})
}

package service

import (
	"context"
	"fmt"
	"math"

	"toolbox-api/domain"
	"toolbox-api/repository"
)

type LoanService struct {
	cache repository.CacheRepository
}

// NewLoanService creates a new LoanService. cache may be nil.
func NewLoanService(cache repository.CacheRepository) *LoanService {
	return &LoanService{cache: cache}
}

func validateLoanInput(input domain.LoanInput) (months float64, err error) {
	if !isFinite(input.LoanAmount) || input.LoanAmount <= 0 {
		return 0, domain.Invalid("loanAmount", "must be a positive number")
	}
	if input.LoanAmount > MaxLoanAmount {
		return 0, domain.Invalid("loanAmount", "exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if !isFinite(input.InterestRate) || input.InterestRate < 0 {
		return 0, domain.Invalid("interestRate", "must not be negative")
	}
	if input.InterestRate > MaxInterestRate {
		return 0, domain.Invalid("interestRate", "exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if !isFinite(input.AdditionalFees) || input.AdditionalFees < 0 {
		return 0, domain.Invalid("additionalFees", "must not be negative")
	}
	if !isFinite(input.LoanTerm) || input.LoanTerm <= 0 {
		return 0, domain.Invalid("loanTerm", "must be a positive number")
	}

	switch input.TermUnit {
	case "years", "":
		months = input.LoanTerm * MonthsPerYear
	case "months":
		months = input.LoanTerm
	default:
		return 0, domain.Invalid("termUnit", "unknown unit %q", input.TermUnit)
	}
	if months > MaxPeriods {
		return 0, domain.Invalid("loanTerm", "cannot exceed %d months", MaxPeriods)
	}

	switch input.CompoundingFrequency {
	case "monthly", "quarterly", "annually", "":
	default:
		return 0, domain.Invalid("compoundingFrequency", "unknown frequency %q", input.CompoundingFrequency)
	}
	return months, nil
}

// CalculateLoan prices an amortized loan and its simplified APR. Results
// are memoized by input.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {
	months, err := validateLoanInput(input)
	if err != nil {
		return domain.LoanResult{}, err
	}

	key := fmt.Sprintf("loan:%v:%v:%v:%v:%v", input.LoanAmount, input.InterestRate, months,
		input.AdditionalFees, input.CompoundingFrequency)
	return memoize(ctx, s.cache, key, func() (domain.LoanResult, error) {
		return calculateLoan(input, months), nil
	})
}

func calculateLoan(input domain.LoanInput, months float64) domain.LoanResult {
	principal := input.LoanAmount
	rate := input.InterestRate / 100

	var payment float64
	if rate == 0 {
		payment = principal / months
	} else {
		monthlyRate := rate / MonthsPerYear
		growth := math.Pow(1+monthlyRate, months)
		payment = principal * (monthlyRate * growth) / (growth - 1)
	}

	totalPayment := payment * months
	totalInterest := totalPayment - principal

	// Simplified APR: total cost over principal per year, no time weighting.
	totalCost := totalPayment + input.AdditionalFees
	apr := ((totalCost - principal) / principal) / (months / MonthsPerYear) * 100

	return domain.LoanResult{
		APR:            apr,
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		TotalPayment:   totalPayment,
		EffectiveRate:  EffectiveAnnualRate(rate, input.CompoundingFrequency) * 100,
	}
}

// EffectiveAnnualRate converts a nominal annual rate (fraction) to the
// effective annual rate for the compounding frequency.
func EffectiveAnnualRate(nominal float64, frequency string) float64 {
	switch frequency {
	case "quarterly":
		return math.Pow(1+nominal/4, 4) - 1
	case "annually":
		return nominal
	default:
		return math.Pow(1+nominal/MonthsPerYear, MonthsPerYear) - 1
	}
}

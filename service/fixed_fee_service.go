package service

import (
	"context"
	"log"
	"time"

	"toolbox-api/domain"
	"toolbox-api/repository"
)

type FixedFeeService struct {
	history repository.HistoryRepository
	now     func() time.Time
}

func NewFixedFeeService(history repository.HistoryRepository) *FixedFeeService {
	return &FixedFeeService{history: history, now: time.Now}
}

func validateFixedFeeInput(input domain.FixedFeeInput) error {
	if !isFinite(input.LoanAmount) || input.LoanAmount <= 0 {
		return domain.Invalid("loanAmount", "must be a positive number")
	}
	if input.LoanAmount > MaxLoanAmount {
		return domain.Invalid("loanAmount", "exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if !isFinite(input.FeeRate) || input.FeeRate <= 0 {
		return domain.Invalid("feeRate", "must be a positive number")
	}
	if input.TermMonths <= 0 {
		return domain.Invalid("termMonths", "must be a positive number")
	}
	if input.TermMonths > MaxPeriods {
		return domain.Invalid("termMonths", "cannot exceed %d months", MaxPeriods)
	}
	if input.RateType != "annual" && input.RateType != "monthly" {
		return domain.Invalid("rateType", "must be \"annual\" or \"monthly\", got %q", input.RateType)
	}
	return nil
}

// Calculate prices a straight-line loan whose fee accrues linearly on the
// original principal, and solves its APR from the resulting cash flows.
func (s *FixedFeeService) Calculate(input domain.FixedFeeInput) (domain.FixedFeeResult, error) {
	if err := validateFixedFeeInput(input); err != nil {
		return domain.FixedFeeResult{}, err
	}

	principal := input.LoanAmount
	term := float64(input.TermMonths)

	annualFeeRate := input.FeeRate / 100
	monthlyFeeRate := input.FeeRate / 100 / MonthsPerYear
	if input.RateType == "monthly" {
		annualFeeRate = input.FeeRate / 100 * MonthsPerYear
		monthlyFeeRate = input.FeeRate / 100
	}

	totalFees := principal * annualFeeRate * (term / MonthsPerYear)
	monthlyPrincipal := principal / term
	monthlyFee := totalFees / term
	monthlyPayment := monthlyPrincipal + monthlyFee

	terms := domain.LoanTerms{
		Principal:       principal,
		PeriodicPayment: monthlyPayment,
		Periods:         input.TermMonths,
	}
	apr, solved, err := SolveAnnual(terms, MonthsPerYear, DefaultBounds())
	if err != nil {
		return domain.FixedFeeResult{}, err
	}

	return domain.FixedFeeResult{
		LoanAPR:           apr,
		MCACost:           principal + totalFees,
		MonthlyPayment:    monthlyPayment,
		TotalInterestPaid: totalFees,
		AnnualFeeRate:     annualFeeRate * 100,
		MonthlyFeeRate:    monthlyFeeRate * 100,
		EffectiveMCARate:  (annualFeeRate / MonthsPerYear) / (1 + annualFeeRate*term/MonthsPerYear) * 100,
		Solver:            solved,
		PaymentSchedule:   straightLineSchedule(principal, monthlyPrincipal, monthlyFee, input.TermMonths),
	}, nil
}

func straightLineSchedule(principal, monthlyPrincipal, monthlyFee float64, months int) []domain.PaymentScheduleEntry {
	schedule := make([]domain.PaymentScheduleEntry, 0, months)
	remaining := principal
	for month := 1; month <= months; month++ {
		remaining -= monthlyPrincipal
		schedule = append(schedule, domain.PaymentScheduleEntry{
			Month:            month,
			PrincipalPayment: monthlyPrincipal,
			FeePayment:       monthlyFee,
			TotalPayment:     monthlyPrincipal + monthlyFee,
			RemainingBalance: max(0, RoundMoney(remaining)),
		})
	}
	return schedule
}

// Save calculates input and stores it in history.
func (s *FixedFeeService) Save(
	ctx context.Context,
	input domain.FixedFeeInput,
) (domain.CalculationRecord, error) {
	result, err := s.Calculate(input)
	if err != nil {
		return domain.CalculationRecord{}, err
	}

	record := domain.CalculationRecord{
		FeeRate:        input.FeeRate,
		Term:           input.TermMonths,
		RateType:       input.RateType,
		LoanAmount:     input.LoanAmount,
		LoanAPR:        result.LoanAPR,
		MCACost:        result.MCACost,
		MonthlyPayment: result.MonthlyPayment,
		Timestamp:      s.now().UTC(),
	}
	if err := s.history.Save(ctx, record); err != nil {
		return domain.CalculationRecord{}, err
	}
	log.Printf("Saved fixed-fee calculation: %.4f%% %s over %d months", input.FeeRate, input.RateType, input.TermMonths)
	return record, nil
}

func (s *FixedFeeService) History(ctx context.Context) ([]domain.CalculationRecord, error) {
	return s.history.List(ctx)
}

func (s *FixedFeeService) ClearHistory(ctx context.Context) error {
	return s.history.Clear(ctx)
}

package domain

import "time"

type FixedFeeInput struct {
	LoanAmount float64
	FeeRate    float64 // percent
	TermMonths int
	RateType   string // "annual", "monthly"
}

type PaymentScheduleEntry struct {
	Month            int
	PrincipalPayment float64
	FeePayment       float64
	TotalPayment     float64
	RemainingBalance float64
}

type FixedFeeResult struct {
	LoanAPR           float64
	MCACost           float64
	MonthlyPayment    float64
	TotalInterestPaid float64
	AnnualFeeRate     float64
	MonthlyFeeRate    float64
	EffectiveMCARate  float64
	Solver            SolverResult
	PaymentSchedule   []PaymentScheduleEntry
}

// CalculationRecord is a saved fixed-fee calculation.
type CalculationRecord struct {
	FeeRate        float64
	Term           int
	RateType       string
	LoanAmount     float64
	LoanAPR        float64
	MCACost        float64
	MonthlyPayment float64
	Timestamp      time.Time
}

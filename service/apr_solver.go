package service

import (
	"math"

	"toolbox-api/domain"
)

// DefaultBounds returns the bracket used by SolveAPR: 0.01% to 500% per
// period, stopping at 1e-8 or after 100 halvings.
func DefaultBounds() domain.SolverBounds {
	return domain.SolverBounds{
		Low:           DefaultLowRate,
		High:          DefaultHighRate,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// ValidateLoanTerms rejects terms the solver cannot price.
func ValidateLoanTerms(terms domain.LoanTerms) error {
	if !isFinite(terms.Principal) || terms.Principal <= 0 {
		return domain.Invalid("principal", "must be a positive number, got %v", terms.Principal)
	}
	if !isFinite(terms.PeriodicPayment) || terms.PeriodicPayment <= 0 {
		return domain.Invalid("periodicPayment", "must be a positive number, got %v", terms.PeriodicPayment)
	}
	if terms.Periods < 1 {
		return domain.Invalid("periods", "must be at least 1, got %d", terms.Periods)
	}
	if terms.Periods > MaxPeriods {
		return domain.Invalid("periods", "cannot exceed %d, got %d", MaxPeriods, terms.Periods)
	}
	return nil
}

func validateBounds(b domain.SolverBounds) error {
	if !isFinite(b.Low) || !isFinite(b.High) || b.Low <= -1 || b.Low >= b.High {
		return domain.Invalid("bounds", "need -1 < low < high, got [%v, %v]", b.Low, b.High)
	}
	if !isFinite(b.Tolerance) || b.Tolerance <= 0 {
		return domain.Invalid("tolerance", "must be positive, got %v", b.Tolerance)
	}
	if b.MaxIterations < 1 {
		return domain.Invalid("maxIterations", "must be at least 1, got %d", b.MaxIterations)
	}
	return nil
}

// NPV is the net present value of the payment stream at periodicRate, the
// principal counted as the initial outflow.
func NPV(terms domain.LoanTerms, periodicRate float64) float64 {
	npv := -terms.Principal
	growth := 1.0
	for t := 1; t <= terms.Periods; t++ {
		growth *= 1 + periodicRate
		npv += terms.PeriodicPayment / growth
	}
	return npv
}

// SimpleRate is the periodic rate of total interest spread evenly over
// principal and term. It can be negative when payments do not cover the
// principal.
func SimpleRate(terms domain.LoanTerms) float64 {
	totalInterest := terms.PeriodicPayment*float64(terms.Periods) - terms.Principal
	return totalInterest / (terms.Principal * float64(terms.Periods))
}

// Annualize converts a periodic rate to an annual percentage.
func Annualize(periodicRate float64, periodsPerYear int) float64 {
	return periodicRate * float64(periodsPerYear) * 100
}

// Solve finds the periodic rate where NPV is zero by bisection over bounds.
// When the bracket does not contain a sign change the simple rate is
// returned with Fallback set.
func Solve(terms domain.LoanTerms, bounds domain.SolverBounds) (domain.SolverResult, error) {
	if err := ValidateLoanTerms(terms); err != nil {
		return domain.SolverResult{}, err
	}
	if err := validateBounds(bounds); err != nil {
		return domain.SolverResult{}, err
	}

	low, high := bounds.Low, bounds.High
	npvLow, npvHigh := NPV(terms, low), NPV(terms, high)

	switch {
	case npvLow == 0:
		return domain.SolverResult{PeriodicRate: low, Converged: true}, nil
	case npvHigh == 0:
		return domain.SolverResult{PeriodicRate: high, Converged: true}, nil
	case npvLow*npvHigh > 0:
		return domain.SolverResult{PeriodicRate: SimpleRate(terms), Fallback: true}, nil
	}

	for i := 1; i <= bounds.MaxIterations; i++ {
		mid := (low + high) / 2
		npvMid := NPV(terms, mid)
		if math.Abs(npvMid) < bounds.Tolerance {
			return domain.SolverResult{PeriodicRate: mid, Converged: true, IterationsUsed: i}, nil
		}

		if npvLow*npvMid < 0 {
			high = mid
		} else {
			low, npvLow = mid, npvMid
		}

		if math.Abs(high-low) < bounds.Tolerance {
			return domain.SolverResult{PeriodicRate: (low + high) / 2, Converged: true, IterationsUsed: i}, nil
		}
	}

	return domain.SolverResult{
		PeriodicRate:   (low + high) / 2,
		IterationsUsed: bounds.MaxIterations,
	}, nil
}

// SolveAnnual runs Solve and annualizes the rate. A non-finite or negative
// rate is replaced by the simple rate, and by 0 if that is unusable too, so
// the returned percentage is always finite and non-negative.
func SolveAnnual(
	terms domain.LoanTerms,
	periodsPerYear int,
	bounds domain.SolverBounds,
) (float64, domain.SolverResult, error) {
	if periodsPerYear <= 0 {
		return 0, domain.SolverResult{}, domain.Invalid("periodsPerYear", "must be positive, got %d", periodsPerYear)
	}

	result, err := Solve(terms, bounds)
	if err != nil {
		return 0, domain.SolverResult{}, err
	}

	apr := Annualize(result.PeriodicRate, periodsPerYear)
	if !isFinite(apr) || apr < 0 {
		result.Fallback = true
		result.PeriodicRate = SimpleRate(terms)
		apr = Annualize(result.PeriodicRate, periodsPerYear)
	}
	if !isFinite(apr) || apr < 0 {
		result.PeriodicRate = 0
		apr = 0
	}
	return apr, result, nil
}

// SolveAPR returns the annual percentage rate of a loan of principal repaid
// by periods equal payments, periodsPerYear of them per year.
func SolveAPR(principal, periodicPayment float64, periods, periodsPerYear int) (float64, error) {
	terms := domain.LoanTerms{
		Principal:       principal,
		PeriodicPayment: periodicPayment,
		Periods:         periods,
	}
	apr, _, err := SolveAnnual(terms, periodsPerYear, DefaultBounds())
	return apr, err
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package domain

// LoanTerms describes a stream of equal payments repaying a principal.
type LoanTerms struct {
	Principal       float64
	PeriodicPayment float64
	Periods         int
}

// SolverBounds is the bracket and stopping rule for the APR bisection.
// Low and High are periodic rates, not annual ones.
type SolverBounds struct {
	Low           float64
	High          float64
	Tolerance     float64
	MaxIterations int
}

type SolverResult struct {
	PeriodicRate   float64
	Converged      bool
	IterationsUsed int
	Fallback       bool // simple-rate approximation was used
}

type APRInput struct {
	Principal       float64
	PeriodicPayment float64
	Periods         int
	PeriodsPerYear  int
}

type APRResult struct {
	AnnualPercentageRate float64
	Solver               SolverResult
}

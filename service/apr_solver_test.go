package service

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox-api/domain"
)

// annuityPayment is the level payment repaying principal over periods at rate.
func annuityPayment(principal, rate float64, periods int) float64 {
	return principal * rate / (1 - math.Pow(1+rate, -float64(periods)))
}

func TestSolveAPR_FixedFeeScenario(t *testing.T) {
	principal := 100000.0
	totalFees := principal * 0.125 * (24.0 / 12.0)
	payment := principal/24 + totalFees/24
	require.InDelta(t, 5208.33, payment, 0.005)

	apr, err := SolveAPR(principal, payment, 24, 12)
	require.NoError(t, err)
	assert.InDelta(t, 22.415, apr, 1e-3)

	terms := domain.LoanTerms{Principal: principal, PeriodicPayment: payment, Periods: 24}
	result, err := Solve(terms, DefaultBounds())
	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.False(t, result.Fallback)
	assert.LessOrEqual(t, result.IterationsUsed, DefaultMaxIterations)
	assert.InDelta(t, 0, NPV(terms, result.PeriodicRate), 0.05, "rate should zero the NPV")
}

func TestSolve_RoundTrip(t *testing.T) {
	for _, rate := range []float64{0.01, 0.02, 0.05, 0.25} {
		for _, periods := range []int{12, 36, 60, 360} {
			payment := annuityPayment(10000, rate, periods)
			terms := domain.LoanTerms{Principal: 10000, PeriodicPayment: payment, Periods: periods}

			result, err := Solve(terms, DefaultBounds())
			require.NoError(t, err)
			require.True(t, result.Converged)
			assert.InEpsilon(t, rate, result.PeriodicRate, 1e-6, "rate %v over %d periods", rate, periods)
		}
	}
}

func TestSolve_SinglePeriodClosedForm(t *testing.T) {
	terms := domain.LoanTerms{Principal: 1000, PeriodicPayment: 1100, Periods: 1}

	result, err := Solve(terms, DefaultBounds())
	require.NoError(t, err)
	assert.InDelta(t, 1100.0/1000.0-1, result.PeriodicRate, DefaultTolerance)

	apr, err := SolveAPR(1000, 1100, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, apr, 1e-5)
}

func TestSolve_UnbracketedUsesSimpleRate(t *testing.T) {
	// root at 0.005% per period, below the 0.01% lower bound
	terms := domain.LoanTerms{Principal: 1000, PeriodicPayment: 1000.05, Periods: 1}

	result, err := Solve(terms, DefaultBounds())
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.False(t, result.Converged)
	assert.Zero(t, result.IterationsUsed)
	assert.InDelta(t, 0.00005, result.PeriodicRate, 1e-12)

	apr, err := SolveAPR(1000, 1000.05, 1, 12)
	require.NoError(t, err)
	assert.InDelta(t, 0.06, apr, 1e-9)
}

func TestSolveAPR_PaymentBelowBreakEven(t *testing.T) {
	terms := domain.LoanTerms{Principal: 10000, PeriodicPayment: 10, Periods: 12}

	result, err := Solve(terms, DefaultBounds())
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Less(t, result.PeriodicRate, 0.0, "simple rate is negative before post-solve validation")

	apr, solved, err := SolveAnnual(terms, 12, DefaultBounds())
	require.NoError(t, err)
	assert.Zero(t, apr)
	assert.Zero(t, solved.PeriodicRate)
	assert.True(t, solved.Fallback)
}

func TestSolve_StopsAtMaxIterations(t *testing.T) {
	terms := domain.LoanTerms{Principal: 10000, PeriodicPayment: annuityPayment(10000, 0.01, 36), Periods: 36}
	bounds := DefaultBounds()
	bounds.MaxIterations = 3

	result, err := Solve(terms, bounds)
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, 3, result.IterationsUsed)
	// three halvings of [0.0001, 5] leave [0.0001, 0.6250875]
	assert.InDelta(t, (0.0001+0.6250875)/2, result.PeriodicRate, 1e-9)
}

func TestSolve_Validation(t *testing.T) {
	tests := []struct {
		name  string
		terms domain.LoanTerms
		field string
	}{
		{"zero principal", domain.LoanTerms{Principal: 0, PeriodicPayment: 100, Periods: 12}, "principal"},
		{"negative principal", domain.LoanTerms{Principal: -5, PeriodicPayment: 100, Periods: 12}, "principal"},
		{"NaN principal", domain.LoanTerms{Principal: math.NaN(), PeriodicPayment: 100, Periods: 12}, "principal"},
		{"negative payment", domain.LoanTerms{Principal: 1000, PeriodicPayment: -100, Periods: 12}, "periodicPayment"},
		{"infinite payment", domain.LoanTerms{Principal: 1000, PeriodicPayment: math.Inf(1), Periods: 12}, "periodicPayment"},
		{"zero periods", domain.LoanTerms{Principal: 1000, PeriodicPayment: 100, Periods: 0}, "periods"},
		{"too many periods", domain.LoanTerms{Principal: 1000, PeriodicPayment: 100, Periods: MaxPeriods + 1}, "periods"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.terms, DefaultBounds())
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
			assert.Equal(t, tt.field, ve.Field)

			_, err = SolveAPR(tt.terms.Principal, tt.terms.PeriodicPayment, tt.terms.Periods, 12)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestSolve_InvalidBounds(t *testing.T) {
	terms := domain.LoanTerms{Principal: 1000, PeriodicPayment: 100, Periods: 12}

	for _, b := range []domain.SolverBounds{
		{Low: 1, High: 0.5, Tolerance: 1e-8, MaxIterations: 100},
		{Low: -2, High: 0.5, Tolerance: 1e-8, MaxIterations: 100},
		{Low: 0.1, High: 0.5, Tolerance: 0, MaxIterations: 100},
		{Low: 0.1, High: 0.5, Tolerance: 1e-8, MaxIterations: 0},
	} {
		_, err := Solve(terms, b)
		assert.True(t, domain.IsValidationError(err), "bounds %+v", b)
	}
}

func TestSolveAPR_InvalidPeriodsPerYear(t *testing.T) {
	_, err := SolveAPR(1000, 100, 12, 0)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "periodsPerYear", ve.Field)
}

func TestSolveAPR_AlwaysFiniteAndNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		principal := 1 + rng.Float64()*1_000_000
		payment := 0.01 + rng.Float64()*principal
		periods := 1 + rng.Intn(MaxPeriods)
		perYear := []int{1, 4, 12, 52}[rng.Intn(4)]

		apr, err := SolveAPR(principal, payment, periods, perYear)
		require.NoError(t, err)
		require.False(t, math.IsNaN(apr) || math.IsInf(apr, 0), "non-finite APR for %v/%v/%d", principal, payment, periods)
		require.GreaterOrEqual(t, apr, 0.0)
	}
}

func TestNPV(t *testing.T) {
	terms := domain.LoanTerms{Principal: 200, PeriodicPayment: 110, Periods: 2}
	assert.InDelta(t, 20, NPV(terms, 0), 1e-12)
	assert.InDelta(t, -200+100+110/1.21, NPV(terms, 0.1), 1e-9)
}

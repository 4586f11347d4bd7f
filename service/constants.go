package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billion
	MaxInterestRate = 1000.0          // 1000% per year
	MaxPeriods      = 1000            // upper bound for any term, in periods
	MonthsPerYear   = 12

	// APR bisection defaults, periodic rates.
	DefaultLowRate       = 0.0001 // 0.01% per period
	DefaultHighRate      = 5.0    // 500% per period
	DefaultTolerance     = 1e-8
	DefaultMaxIterations = 100

	MaxUUIDCount      = 100
	MaxJSONIndent     = 8
	DefaultJSONIndent = 2
	MaxTextLength     = 10 << 20 // 10 MiB
)

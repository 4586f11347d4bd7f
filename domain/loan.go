package domain

type LoanInput struct {
	LoanAmount           float64
	InterestRate         float64 // annual, in percent
	LoanTerm             float64
	TermUnit             string // "months", "years"
	AdditionalFees       float64
	CompoundingFrequency string // "monthly", "quarterly", "annually"
}

type LoanResult struct {
	APR            float64
	MonthlyPayment float64
	TotalInterest  float64
	TotalPayment   float64
	EffectiveRate  float64
}

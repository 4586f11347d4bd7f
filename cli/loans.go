package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/redis/go-redis/v9"

	"toolbox-api/domain"
	"toolbox-api/renderer"
	"toolbox-api/repository"
	"toolbox-api/service"
)

type aprCmd struct {
	principal      float64
	payment        float64
	periods        int
	periodsPerYear int
}

func (*aprCmd) Name() string     { return "apr" }
func (*aprCmd) Synopsis() string { return "solve the APR of a loan repaid by equal payments" }
func (*aprCmd) Usage() string {
	return `toolbox apr -principal <amount> -payment <amount> -periods <n> [-per-year <n>]

  Finds the periodic rate at which the payments repay the principal and
  annualizes it.
`
}

func (c *aprCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Amount borrowed")
	f.Float64Var(&c.payment, "payment", 0, "Payment made every period")
	f.IntVar(&c.periods, "periods", 0, "Number of payments")
	f.IntVar(&c.periodsPerYear, "per-year", service.MonthsPerYear, "Payments per year")
}

func (c *aprCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := domain.APRInput{
		Principal:       c.principal,
		PeriodicPayment: c.payment,
		Periods:         c.periods,
		PeriodsPerYear:  c.periodsPerYear,
	}
	result, err := service.NewAPRService(nil, c.periodsPerYear).Solve(ctx, input)
	if err != nil {
		return fail("solving APR", err)
	}
	printMarkdown(renderer.APR(input, result))
	return subcommands.ExitSuccess
}

type fixedFeeCmd struct {
	amount   float64
	rate     float64
	term     int
	rateType string
	schedule bool

	redisAddr   string
	redisPrefix string
	save        bool
	history     bool
	clear       bool
}

func (*fixedFeeCmd) Name() string     { return "fixed-fee" }
func (*fixedFeeCmd) Synopsis() string { return "price a fixed-fee loan and its true APR" }
func (*fixedFeeCmd) Usage() string {
	return `toolbox fixed-fee -amount <amount> -rate <percent> -term <months> [-type annual|monthly] [-schedule]
toolbox fixed-fee -redis <host:port> -save -amount ...
toolbox fixed-fee -redis <host:port> -history | -clear

  Computes the straight-line payments of a loan charged a flat fee on the
  original principal, and the APR those payments really cost. With -redis,
  calculations can be saved to and listed from the shared history.
`
}

func (c *fixedFeeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Loan amount")
	f.Float64Var(&c.rate, "rate", 0, "Fee rate in percent")
	f.IntVar(&c.term, "term", 0, "Term in months")
	f.StringVar(&c.rateType, "type", "annual", "Fee rate period (annual, monthly)")
	f.BoolVar(&c.schedule, "schedule", false, "Print the monthly payment schedule")
	f.StringVar(&c.redisAddr, "redis", "", "Redis address holding the calculation history")
	f.StringVar(&c.redisPrefix, "redis-prefix", "toolbox:", "Key prefix, the same as the server's redis.prefix")
	f.BoolVar(&c.save, "save", false, "Save the calculation to the history")
	f.BoolVar(&c.history, "history", false, "List the saved calculations")
	f.BoolVar(&c.clear, "clear", false, "Delete the saved calculations")
}

func (c *fixedFeeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	needsHistory := c.save || c.history || c.clear
	if needsHistory && c.redisAddr == "" {
		fmt.Fprintln(stderr, "Error: -save, -history and -clear need -redis")
		return subcommands.ExitUsageError
	}

	var history repository.HistoryRepository
	if needsHistory {
		client := redis.NewClient(&redis.Options{Addr: c.redisAddr})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			fmt.Fprintf(stderr, "Error connecting to redis at %s: %v\n", c.redisAddr, err)
			return subcommands.ExitFailure
		}
		history = repository.NewHistoryRepositoryRedis(client, c.redisPrefix)
	}
	svc := service.NewFixedFeeService(history)

	switch {
	case c.clear:
		if err := svc.ClearHistory(ctx); err != nil {
			return fail("clearing history", err)
		}
		fmt.Fprintln(stdout, "History cleared.")
		return subcommands.ExitSuccess
	case c.history:
		records, err := svc.History(ctx)
		if err != nil {
			return fail("listing history", err)
		}
		printMarkdown(renderer.History(records, *currency))
		return subcommands.ExitSuccess
	}

	input := domain.FixedFeeInput{
		LoanAmount: c.amount,
		FeeRate:    c.rate,
		TermMonths: c.term,
		RateType:   c.rateType,
	}
	result, err := svc.Calculate(input)
	if err != nil {
		return fail("calculating fixed fee", err)
	}
	if c.save {
		if _, err := svc.Save(ctx, input); err != nil {
			return fail("saving calculation", err)
		}
	}
	printMarkdown(renderer.FixedFee(result, *currency, c.schedule))
	return subcommands.ExitSuccess
}

type loanAPRCmd struct {
	amount      float64
	rate        float64
	term        float64
	unit        string
	fees        float64
	compounding string
}

func (*loanAPRCmd) Name() string     { return "loan-apr" }
func (*loanAPRCmd) Synopsis() string { return "price an amortized loan" }
func (*loanAPRCmd) Usage() string {
	return `toolbox loan-apr -amount <amount> -rate <percent> -term <n> [-unit months|years] [-fees <amount>] [-compounding <freq>]
`
}

func (c *loanAPRCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Loan amount")
	f.Float64Var(&c.rate, "rate", 0, "Nominal annual interest rate in percent")
	f.Float64Var(&c.term, "term", 0, "Loan term")
	f.StringVar(&c.unit, "unit", "years", "Term unit (months, years)")
	f.Float64Var(&c.fees, "fees", 0, "Additional up-front fees")
	f.StringVar(&c.compounding, "compounding", "monthly", "Compounding frequency (monthly, quarterly, annually)")
}

func (c *loanAPRCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := service.NewLoanService(nil).CalculateLoan(ctx, domain.LoanInput{
		LoanAmount:           c.amount,
		InterestRate:         c.rate,
		LoanTerm:             c.term,
		TermUnit:             c.unit,
		AdditionalFees:       c.fees,
		CompoundingFrequency: c.compounding,
	})
	if err != nil {
		return fail("calculating loan", err)
	}
	printMarkdown(renderer.Loan(result, *currency))
	return subcommands.ExitSuccess
}

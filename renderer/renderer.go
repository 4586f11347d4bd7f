// Package renderer turns tool results into Markdown documents for the CLI.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"toolbox-api/domain"
	"toolbox-api/service"
)

// money formats amount in currency, falling back to two decimals for
// currencies go-money does not know.
func money(amount float64, currency string) string {
	s, err := service.FormatCurrency(amount, currency)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
	return s
}

func APR(input domain.APRInput, r domain.APRResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("APR")
	doc.PlainText(fmt.Sprintf("Annual percentage rate: **%s**", service.FormatPercentage(r.AnnualPercentageRate, 4)))

	method := "bisection"
	if r.Solver.Fallback {
		method = "simple-rate approximation"
	}
	doc.Table(md.TableSet{
		Header: []string{"Principal", "Payment", "Periods", "Per year", "Periodic rate", "Method", "Iterations"},
		Rows: [][]string{{
			strconv.FormatFloat(input.Principal, 'f', 2, 64),
			strconv.FormatFloat(input.PeriodicPayment, 'f', 2, 64),
			strconv.Itoa(input.Periods),
			strconv.Itoa(input.PeriodsPerYear),
			service.FormatPercentage(r.Solver.PeriodicRate*100, 6),
			method,
			strconv.Itoa(r.Solver.IterationsUsed),
		}},
	})
	return doc.String()
}

func Loan(r domain.LoanResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("APR Calculator")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"APR", service.FormatPercentage(r.APR, 2)},
			{"Monthly payment", money(r.MonthlyPayment, currency)},
			{"Total interest", money(r.TotalInterest, currency)},
			{"Total payment", money(r.TotalPayment, currency)},
			{"Effective annual rate", service.FormatPercentage(r.EffectiveRate, 2)},
		},
	})
	return doc.String()
}

// FixedFee renders the summary and, when withSchedule is set, every payment.
func FixedFee(r domain.FixedFeeResult, currency string, withSchedule bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fixed Fee Calculator")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Loan APR", service.FormatPercentage(r.LoanAPR, 4)},
			{"MCA cost", money(r.MCACost, currency)},
			{"Monthly payment", money(r.MonthlyPayment, currency)},
			{"Total fees", money(r.TotalInterestPaid, currency)},
			{"Annual fee rate", service.FormatPercentage(r.AnnualFeeRate, 4)},
			{"Monthly fee rate", service.FormatPercentage(r.MonthlyFeeRate, 4)},
			{"Effective MCA rate", service.FormatPercentage(r.EffectiveMCARate, 4)},
		},
	})
	if r.Solver.Fallback {
		doc.PlainText("The APR is a simple-rate approximation: the rate fell outside the solver's search range.")
	}

	if withSchedule {
		rows := make([][]string, 0, len(r.PaymentSchedule))
		for _, e := range r.PaymentSchedule {
			rows = append(rows, []string{
				strconv.Itoa(e.Month),
				money(e.PrincipalPayment, currency),
				money(e.FeePayment, currency),
				money(e.TotalPayment, currency),
				money(e.RemainingBalance, currency),
			})
		}
		doc.H2("Payment Schedule")
		doc.Table(md.TableSet{
			Header: []string{"Month", "Principal", "Fee", "Total", "Remaining"},
			Rows:   rows,
		})
	}
	return doc.String()
}

func History(records []domain.CalculationRecord, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Calculation History")
	if len(records) == 0 {
		doc.PlainText("No saved calculations.")
		return doc.String()
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Timestamp.Format("2006-01-02 15:04"),
			service.FormatPercentage(rec.FeeRate, 4) + " " + rec.RateType,
			strconv.Itoa(rec.Term),
			service.FormatPercentage(rec.LoanAPR, 4),
			money(rec.MCACost, currency),
			money(rec.MonthlyPayment, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Saved", "Fee rate", "Term", "APR", "MCA cost", "Monthly payment"},
		Rows:   rows,
	})
	return doc.String()
}

func TextStats(s domain.TextStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Text Statistics")
	doc.Table(md.TableSet{
		Header: []string{"Characters", "No spaces", "Words", "Lines", "Paragraphs", "Sentences"},
		Rows: [][]string{{
			strconv.Itoa(s.Characters),
			strconv.Itoa(s.CharactersNoSpaces),
			strconv.Itoa(s.Words),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Paragraphs),
			strconv.Itoa(s.Sentences),
		}},
	})
	return doc.String()
}

func JSONStats(s domain.JSONStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("JSON Statistics")
	doc.Table(md.TableSet{
		Header: []string{"Characters", "Bytes", "Keys", "Values", "Objects", "Arrays"},
		Rows: [][]string{{
			strconv.Itoa(s.Characters),
			strconv.Itoa(s.Size),
			strconv.Itoa(s.Keys),
			strconv.Itoa(s.Values),
			strconv.Itoa(s.Objects),
			strconv.Itoa(s.Arrays),
		}},
	})
	return doc.String()
}

func Color(c domain.ColorResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Color " + c.Hex)
	doc.BulletList(
		"HEX: "+c.Hex,
		fmt.Sprintf("RGB: rgb(%d, %d, %d)", c.RGB.R, c.RGB.G, c.RGB.B),
		fmt.Sprintf("HSL: hsl(%d, %d%%, %d%%)", c.HSL.H, c.HSL.S, c.HSL.L),
	)
	return doc.String()
}

func Tools(r domain.ToolSearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tools")
	rows := make([][]string, 0, len(r.Tools))
	for _, t := range r.Tools {
		rows = append(rows, []string{t.Name, t.Category, t.Description, t.Path})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Category", "Description", "Endpoint"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Showing %d of %d tools", len(r.Tools), r.Total))
	return doc.String()
}

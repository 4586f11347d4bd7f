package service

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// RoundMoney rounds value half away from zero to cents.
func RoundMoney(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// FormatCurrency renders amount in the currency's display format, e.g. "$1,234.56" for USD.
func FormatCurrency(amount float64, code string) (string, error) {
	cur := money.GetCurrency(code)
	if cur == nil {
		return "", fmt.Errorf("unknown currency %q", code)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart()), nil
}

// FormatPercentage renders rate (already in percent) with the given precision.
func FormatPercentage(rate float64, places int) string {
	return fmt.Sprintf("%.*f%%", places, rate)
}

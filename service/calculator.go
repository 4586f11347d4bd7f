package service

import (
	"strconv"
	"strings"
	"unicode"

	"toolbox-api/domain"
)

type calcToken struct {
	op    byte // 0 for a number
	value float64
}

func tokenize(expr string) ([]calcToken, error) {
	expr = strings.NewReplacer("×", "*", "÷", "/", "−", "-").Replace(expr)

	var tokens []calcToken
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case strings.IndexByte("+-*/", c) >= 0 &&
			!(c == '-' && (len(tokens) == 0 || tokens[len(tokens)-1].op != 0)):
			tokens = append(tokens, calcToken{op: c})
			i++
		case c == '-' || c == '.' || unicode.IsDigit(rune(c)):
			j := i + 1
			for j < len(expr) && (expr[j] == '.' || unicode.IsDigit(rune(expr[j])) ||
				expr[j] == 'e' || expr[j] == 'E' ||
				((expr[j] == '+' || expr[j] == '-') && (expr[j-1] == 'e' || expr[j-1] == 'E'))) {
				j++
			}
			v, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, domain.Invalid("expression", "bad number %q", expr[i:j])
			}
			tokens = append(tokens, calcToken{value: v})
			i = j
		default:
			return nil, domain.Invalid("expression", "unexpected character %q", c)
		}
	}
	return tokens, nil
}

// Calculate evaluates expr the way a pocket calculator does: each operator
// applies to the running total as soon as its right operand is entered, so
// "2 + 3 * 4" is 20.
func Calculate(expr string) (domain.CalculatorResult, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return domain.CalculatorResult{}, err
	}
	if len(tokens) == 0 {
		return domain.CalculatorResult{}, domain.Invalid("expression", "must not be empty")
	}
	if len(tokens)%2 == 0 {
		return domain.CalculatorResult{}, domain.Invalid("expression", "must end with a number")
	}

	for i, tok := range tokens {
		if (i%2 == 0) != (tok.op == 0) {
			return domain.CalculatorResult{}, domain.Invalid("expression", "operators and numbers must alternate")
		}
	}

	total := tokens[0].value
	for i := 1; i < len(tokens); i += 2 {
		total, err = applyOperation(total, tokens[i+1].value, tokens[i].op)
		if err != nil {
			return domain.CalculatorResult{}, err
		}
	}
	if !isFinite(total) {
		return domain.CalculatorResult{}, domain.Invalid("expression", "result is not a finite number")
	}
	return domain.CalculatorResult{Expression: strings.TrimSpace(expr), Value: total}, nil
}

func applyOperation(a, b float64, op byte) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, domain.Invalid("expression", "division by zero")
		}
		return a / b, nil
	}
	return b, nil
}

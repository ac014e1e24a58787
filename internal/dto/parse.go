package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	FieldProfitTarget = "profit target"
	FieldStopLoss     = "stop loss"
	FieldLimitPrice   = "limit price"
	FieldTradeSize    = "trade size"
)

// ParseDecimal reads a decimal number such as "100", "0.03" or "1e-2".
func ParseDecimal(field, input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewParseError(field, s, err)
	}
	return d, nil
}

// ParsePositiveDecimal is ParseDecimal that also rejects zero and negative values.
func ParsePositiveDecimal(field, input string) (decimal.Decimal, error) {
	d, err := ParseDecimal(field, input)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be greater than 0, got %s", ErrInvalidArgument, field, d)
	}
	return d, nil
}

// ParseOrderSize reads a positive whole number of units.
func ParseOrderSize(input string) (int64, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewParseError(FieldTradeSize, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0, got %d", ErrInvalidArgument, FieldTradeSize, n)
	}
	return n, nil
}

package common

import (
	"fmt"

	"github.com/interchained/itcpay/constants"
	"github.com/shopspring/decimal"
)

// QuantizeAmount truncates an amount to the on-chain precision of 8
// fractional digits, always rounding toward zero. Truncation guarantees
// the sum of quantized portions never exceeds the amount they were
// derived from.
func QuantizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Truncate(constants.COIN_DECIMALS)
}

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(constants.COIN_DECIMALS) + " ITC"
}

func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", value, err)
	}
	return amount, nil
}

func ShortenAddress(address string) string {
	total := len(address)
	if total <= 13 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:5], address[total-5:])
}

func ToStringEmptyIfZero[T comparable](value T) string {
	var zero T
	if value == zero {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

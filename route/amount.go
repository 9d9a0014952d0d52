package route

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// displayPrecision is the number of decimal places shown for token amounts.
const displayPrecision = 6

// ParseAmount converts a human readable amount like "10.5" into its fixed point representation.
func ParseAmount(human string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(human))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", human)
	}
	if d.Sign() <= 0 {
		return nil, errors.Errorf("amount must be positive, got %s", human)
	}

	scaled := d.Shift(decimals)
	if !scaled.IsInteger() {
		return nil, errors.Errorf("amount %s has more than %d decimals", human, decimals)
	}

	return scaled.BigInt(), nil
}

// FormatAmount divides amount by 10^decimals and rounds for display.
func FormatAmount(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).Round(displayPrecision).String()
}

func amountValue(amount *big.Int, decimals int32) float64 {
	if amount == nil {
		return 0
	}
	return decimal.NewFromBigInt(amount, -decimals).InexactFloat64()
}

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/cardcore/internal/constants"
	"github.com/shopspring/decimal"
)

var ErrAmountOutOfRange = errors.New("amount out of range")

var maxAmount = decimal.RequireFromString(constants.MaxAmount)

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(constants.AmountScale)
}

// ParseAmount accepts "150", "150.5" and "150.50". Extra fractional digits are
// kept so the processor can reject them as an invalid amount. Exponent
// notation is not accepted.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return decimal.Zero, fmt.Errorf("amount can't be empty")
	}
	if strings.ContainsAny(amountStr, "eE") {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return amount, nil
}

// ToCents converts an amount with at most two fractional digits to cents.
// Amounts whose cents do not fit in an int64 yield ErrAmountOutOfRange.
func ToCents(amount decimal.Decimal) (int64, error) {
	if !InAmountDigits(amount) {
		return 0, fmt.Errorf("%w: too many digits", ErrAmountOutOfRange)
	}
	cents := amount.Shift(constants.AmountScale).Truncate(0).BigInt()
	if !cents.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrAmountOutOfRange, FormatAmount(amount))
	}
	return cents.Int64(), nil
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -constants.AmountScale)
}

// InAmountDigits reports whether the coefficient and exponent of amount are
// small enough for cheap arithmetic. It only inspects the representation.
func InAmountDigits(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	if exp > constants.MaxAmountDigits || exp < -constants.MaxAmountDigits {
		return false
	}
	return amount.NumDigits() <= constants.MaxAmountDigits
}

// InAmountRange reports whether amount is at most MaxAmount in magnitude.
func InAmountRange(amount decimal.Decimal) bool {
	return InAmountDigits(amount) && amount.Abs().LessThanOrEqual(maxAmount)
}

// CompactAmount renders amount without expanding its exponent when it is out
// of the normal digit range. decimal.NewFromString reads both forms back.
func CompactAmount(amount decimal.Decimal) string {
	if InAmountDigits(amount) {
		return amount.String()
	}
	return amount.Coefficient().String() + "e" + strconv.Itoa(int(amount.Exponent()))
}

// HasCentPrecision reports whether amount fits in whole cents.
func HasCentPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(constants.AmountScale))
}

// MaskCardID keeps the last four characters of a card id.
func MaskCardID(cardID string) string {
	if len(cardID) <= 4 {
		return cardID
	}
	return strings.Repeat("*", len(cardID)-4) + cardID[len(cardID)-4:]
}

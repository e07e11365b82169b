package domain

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for every amount that fails parsing or range checks.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrAmountOverflow is returned when adding two amounts would leave the int64 range.
var ErrAmountOverflow = errors.New("amount overflow")

const (
	// MinWholeUnits and MaxWholeUnits are exclusive bounds on the whole-unit part of a
	// parsed amount, so that whole*100 plus the fractional part always fits in an int64.
	MinWholeUnits int64 = math.MinInt64 / 100
	MaxWholeUnits int64 = math.MaxInt64 / 100
)

var (
	amountPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]{2})?$`)
	minWhole      = decimal.NewFromInt(MinWholeUnits)
	maxWhole      = decimal.NewFromInt(MaxWholeUnits)
)

// MoneyAmount is a fixed-point amount stored as a count of minor units (pence).
// The zero value is 0.00.
type MoneyAmount struct {
	minor int64
}

// ZeroAmount is 0.00.
var ZeroAmount = MoneyAmount{}

// MinAmount and MaxAmount are the extremes ParseMoneyAmount accepts. Add keeps its
// results inside them so every balance formats to a string that parses back.
var (
	MinAmount = MoneyAmount{minor: (MinWholeUnits+1)*100 - 99}
	MaxAmount = MoneyAmount{minor: (MaxWholeUnits-1)*100 + 99}
)

// NewMoneyAmount builds an amount from minor units.
func NewMoneyAmount(minorUnits int64) MoneyAmount {
	return MoneyAmount{minor: minorUnits}
}

// ParseMoneyAmount parses a whole number ("12", "-3") or a number with exactly two
// fractional digits ("12.34", "-0.50"). The sign applies to the whole value.
func ParseMoneyAmount(s string) (MoneyAmount, error) {
	if !amountPattern.MatchString(s) {
		return MoneyAmount{}, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return MoneyAmount{}, ErrInvalidAmount
	}

	whole := d.Truncate(0)
	if whole.LessThanOrEqual(minWhole) || whole.GreaterThanOrEqual(maxWhole) {
		return MoneyAmount{}, ErrInvalidAmount
	}

	return MoneyAmount{minor: d.Shift(2).IntPart()}, nil
}

// MinorUnits returns the amount in pence.
func (a MoneyAmount) MinorUnits() int64 {
	return a.minor
}

// Decimal returns the amount in whole units as a decimal.
func (a MoneyAmount) Decimal() decimal.Decimal {
	return decimal.New(a.minor, -2)
}

func (a MoneyAmount) IsPositiveNonZero() bool {
	return a.minor > 0
}

func (a MoneyAmount) IsNegative() bool {
	return a.minor < 0
}

func (a MoneyAmount) IsZero() bool {
	return a.minor == 0
}

// Negate flips the sign. Negating the smallest int64 saturates at the largest.
func (a MoneyAmount) Negate() MoneyAmount {
	if a.minor == math.MinInt64 {
		return MoneyAmount{minor: math.MaxInt64}
	}
	return MoneyAmount{minor: -a.minor}
}

// Add returns a+b, or ErrAmountOverflow if the sum leaves [MinAmount, MaxAmount].
func (a MoneyAmount) Add(b MoneyAmount) (MoneyAmount, error) {
	sum := a.minor + b.minor
	if (b.minor > 0 && sum < a.minor) || (b.minor < 0 && sum > a.minor) {
		return a, ErrAmountOverflow
	}
	result := MoneyAmount{minor: sum}
	if result.Cmp(MaxAmount) > 0 || result.Cmp(MinAmount) < 0 {
		return a, ErrAmountOverflow
	}
	return result, nil
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or greater than b.
func (a MoneyAmount) Cmp(b MoneyAmount) int {
	switch {
	case a.minor < b.minor:
		return -1
	case a.minor > b.minor:
		return 1
	default:
		return 0
	}
}

// String renders the amount with exactly two fractional digits, e.g. "-12.05".
func (a MoneyAmount) String() string {
	sign := ""
	magnitude := uint64(a.minor)
	if a.minor < 0 {
		sign = "-"
		magnitude = uint64(-(a.minor + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%02d", sign, magnitude/100, magnitude%100)
}

// MarshalJSON writes the amount as a bare JSON number with two decimals.
func (a MoneyAmount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts only JSON numbers in the format ParseMoneyAmount understands.
func (a *MoneyAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] == '"' {
		return ErrInvalidAmount
	}

	parsed, err := ParseMoneyAmount(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

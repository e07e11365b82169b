package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountHolder struct {
	Amount domain.MoneyAmount `json:"amount"`
}

func TestMoneyAmount_String(t *testing.T) {
	tests := []struct {
		pence int64
		want  string
	}{
		{0, "0.00"},
		{12, "0.12"},
		{1234, "12.34"},
		{7777, "77.77"},
		{-12, "-0.12"},
		{-1234, "-12.34"},
		{-7777, "-77.77"},
		{-5, "-0.05"},
		{1200, "12.00"},
		{math.MaxInt64, "92233720368547758.07"},
		{math.MinInt64, "-92233720368547758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewMoneyAmount(tt.pence).String())
		})
	}
}

func TestParseMoneyAmount_Valid(t *testing.T) {
	tests := []struct {
		in    string
		pence int64
	}{
		{"0", 0},
		{"0.00", 0},
		{"-0", 0},
		{"0.01", 1},
		{"-0.01", -1},
		{"-0.50", -50},
		{"67", 6700},
		{"-67", -6700},
		{"67.89", 6789},
		{"-67.89", -6789},
		{"007.50", 750},
		{"-92233720368547757", -9223372036854775700},
		{"-92233720368547757.99", -9223372036854775799},
		{"92233720368547757", 9223372036854775700},
		{"92233720368547757.99", 9223372036854775799},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseMoneyAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, domain.NewMoneyAmount(tt.pence), got)
		})
	}
}

func TestParseMoneyAmount_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"10.0",
		"10.",
		".50",
		"10.001",
		"1.234",
		"0.0a",
		"+1.00",
		"1e2",
		"1.00e0",
		" 1.00",
		"abc",
		"--1",
		"-92233720368547758",
		"92233720368547758",
		"92233720368547758.01",
		"-92233720368547758.01",
		"99999999999999999999999999",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParseMoneyAmount(in)
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		})
	}
}

func TestMoneyAmount_RoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 99, -99, 100, -100, 599, -300, 123456789,
		9223372036854775799, -9223372036854775799,
		9223372036854775700, -9223372036854775700,
	}

	for _, v := range values {
		amount := domain.NewMoneyAmount(v)
		parsed, err := domain.ParseMoneyAmount(amount.String())
		require.NoError(t, err, amount.String())
		assert.Equal(t, amount, parsed)
	}
}

func TestMoneyAmount_JSON(t *testing.T) {
	out, err := json.Marshal(amountHolder{Amount: domain.NewMoneyAmount(-1200)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":-12.00}`, string(out))
	assert.Equal(t, `{"amount":-12.00}`, string(out))

	var h amountHolder
	require.NoError(t, json.Unmarshal([]byte(`{"amount":5.99}`), &h))
	assert.Equal(t, domain.NewMoneyAmount(599), h.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount":3}`), &h))
	assert.Equal(t, domain.NewMoneyAmount(300), h.Amount)

	err = json.Unmarshal([]byte(`{"amount":10.0}`), &h)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	err = json.Unmarshal([]byte(`{"amount":"1.00"}`), &h)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	err = json.Unmarshal([]byte(`{"amount":92233720368547758}`), &h)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestMoneyAmount_Predicates(t *testing.T) {
	assert.True(t, domain.NewMoneyAmount(1).IsPositiveNonZero())
	assert.False(t, domain.ZeroAmount.IsPositiveNonZero())
	assert.False(t, domain.NewMoneyAmount(-1).IsPositiveNonZero())

	assert.True(t, domain.NewMoneyAmount(-1).IsNegative())
	assert.False(t, domain.ZeroAmount.IsNegative())
	assert.True(t, domain.ZeroAmount.IsZero())

	assert.Equal(t, domain.NewMoneyAmount(-300), domain.NewMoneyAmount(300).Negate())
	assert.Equal(t, domain.NewMoneyAmount(math.MaxInt64), domain.NewMoneyAmount(math.MinInt64).Negate())

	assert.Equal(t, -1, domain.NewMoneyAmount(1).Cmp(domain.NewMoneyAmount(2)))
	assert.Equal(t, 0, domain.NewMoneyAmount(2).Cmp(domain.NewMoneyAmount(2)))
	assert.Equal(t, 1, domain.NewMoneyAmount(3).Cmp(domain.NewMoneyAmount(2)))

	assert.Equal(t, "-12.34", domain.NewMoneyAmount(-1234).Decimal().StringFixed(2))
}

func TestMoneyAmount_Add(t *testing.T) {
	sum, err := domain.NewMoneyAmount(599).Add(domain.NewMoneyAmount(-300))
	require.NoError(t, err)
	assert.Equal(t, domain.NewMoneyAmount(299), sum)

	_, err = domain.NewMoneyAmount(math.MaxInt64).Add(domain.NewMoneyAmount(1))
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)

	_, err = domain.NewMoneyAmount(math.MinInt64).Add(domain.NewMoneyAmount(-1))
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)
}

func TestMoneyAmount_AddStaysParseable(t *testing.T) {
	assert.Equal(t, "92233720368547757.99", domain.MaxAmount.String())
	assert.Equal(t, "-92233720368547757.99", domain.MinAmount.String())

	for _, bound := range []domain.MoneyAmount{domain.MinAmount, domain.MaxAmount} {
		parsed, err := domain.ParseMoneyAmount(bound.String())
		require.NoError(t, err)
		assert.Equal(t, bound, parsed)
	}

	sum, err := domain.MaxAmount.Add(domain.ZeroAmount)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxAmount, sum)

	sum, err = domain.MinAmount.Add(domain.MaxAmount)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	// Fits in an int64 but would format as an unparseable 92233720368547758.07.
	_, err = domain.NewMoneyAmount(9223372036854775799).Add(domain.NewMoneyAmount(8))
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)

	_, err = domain.MaxAmount.Add(domain.NewMoneyAmount(1))
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)

	_, err = domain.MinAmount.Add(domain.NewMoneyAmount(-1))
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)
}

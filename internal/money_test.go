package internal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"service-exchangerate/internal"
)

func TestConvertMoney(t *testing.T) {
	tests := []struct {
		amount int64
		rate   string
		want   string
	}{
		{amount: 100, rate: "1.186864", want: "118.68640000"},
		{amount: 100, rate: "1.186206", want: "118.62060000"},
		{amount: 1, rate: "0.123456789", want: "0.12345678"},
		{amount: 3, rate: "0.333333333", want: "0.99999999"},
		{amount: 0, rate: "1.5", want: "0.00000000"},
		{amount: -2, rate: "1.25", want: "-2.50000000"},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			got, err := internal.ConvertMoney(tt.amount, tt.rate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertMoney_InvalidRate(t *testing.T) {
	_, err := internal.ConvertMoney(100, "abc")
	require.Error(t, err)
}

func TestConvertMoney_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amount := rapid.Int64Range(0, 1_000_000).Draw(t, "amount")
		units := rapid.Int64Range(0, 10_000_000_000).Draw(t, "units")
		rate := decimal.New(units, -8)

		got, err := internal.ConvertMoney(amount, rate.String())
		if err != nil {
			t.Fatal(err)
		}

		// a rate with at most 8 fractional digits times an integer is exact
		want := decimal.NewFromInt(amount).Mul(rate)
		parsed, err := decimal.NewFromString(got)
		if err != nil {
			t.Fatal(err)
		}
		if !parsed.Equal(want) {
			t.Fatalf("%d x %s = %s, want %s", amount, rate, got, want)
		}
	})
}

package internal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits of converted amounts.
const MoneyScale = 8

// ConvertMoney multiplies amount by rate exactly and truncates the product to
// MoneyScale digits: 100 x "1.186864" is "118.68640000".
func ConvertMoney(amount int64, rate string) (string, error) {
	r, err := decimal.NewFromString(strings.TrimSpace(rate))
	if err != nil {
		return "", fmt.Errorf("invalid rate %q: %w", rate, err)
	}
	return decimal.NewFromInt(amount).Mul(r).Truncate(MoneyScale).StringFixed(MoneyScale), nil
}

func convertQuotes(amount int64, quotes Quotes) (Quotes, error) {
	var out Quotes
	for pair, rate := range quotes.All() {
		converted, err := ConvertMoney(amount, rate)
		if err != nil {
			return Quotes{}, fmt.Errorf("convert %s: %w", pair, err)
		}
		out.Set(pair, converted)
	}
	return out, nil
}

package internal

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// CurrencyCode is a 3-letter currency identifier such as "GBP". The client passes
// it to exchangerate.host as is; only outer surfaces normalise user input.
type CurrencyCode string

var errEmptyCurrency = errors.New("currency code is empty")

// NewCurrencyCode trims and upper-cases user input.
func NewCurrencyCode(s string) (CurrencyCode, error) {
	ccy := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if ccy == "" {
		return "", errEmptyCurrency
	}
	return ccy, nil
}

func (c CurrencyCode) String() string { return string(c) }

// Pair returns the quote key used by the service, e.g. "GBPEUR".
func (c CurrencyCode) Pair(target CurrencyCode) string { return string(c) + string(target) }

func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), "\"")
	ccy, err := NewCurrencyCode(s)
	if err != nil {
		return err
	}
	*c = ccy
	return nil
}

// Targets is either a single target currency or a list of them. A single target
// yields a bare value, a list yields a map keyed by currency pair.
type Targets struct {
	codes []CurrencyCode
	many  bool
}

func Single(code CurrencyCode) Targets {
	return Targets{codes: []CurrencyCode{code}}
}

func Many(codes ...CurrencyCode) Targets {
	return Targets{codes: append([]CurrencyCode(nil), codes...), many: true}
}

// ParseTargets reads "EUR" as Single and "EUR,USD" as Many.
func ParseTargets(s string) (Targets, error) {
	if !strings.Contains(s, ",") {
		ccy, err := NewCurrencyCode(s)
		if err != nil {
			return Targets{}, err
		}
		return Single(ccy), nil
	}

	parts := strings.Split(s, ",")
	codes := make([]CurrencyCode, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		ccy, err := NewCurrencyCode(p)
		if err != nil {
			return Targets{}, err
		}
		codes = append(codes, ccy)
	}
	if len(codes) == 0 {
		return Targets{}, errEmptyCurrency
	}
	return Many(codes...), nil
}

func (t Targets) IsSingle() bool { return !t.many }

func (t Targets) Codes() []CurrencyCode { return append([]CurrencyCode(nil), t.codes...) }

// AsMany returns the same currencies as a list.
func (t Targets) AsMany() Targets { return Many(t.codes...) }

// Joined is the comma separated value of the "currencies" query parameter.
func (t Targets) Joined() string {
	strs := make([]string, len(t.codes))
	for i, c := range t.codes {
		strs[i] = string(c)
	}
	return strings.Join(strs, ",")
}

// single returns the only target of a Single value.
func (t Targets) single() CurrencyCode {
	if len(t.codes) == 0 {
		return ""
	}
	return t.codes[0]
}

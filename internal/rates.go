package internal

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	PathList       = "list"
	PathLive       = "live"
	PathHistorical = "historical"
	PathTimeframe  = "timeframe"
)

// RequestBuilder sends one request to exchangerate.host and returns the decoded
// envelope, or a *ServiceError for a failed one.
type RequestBuilder interface {
	SetOptions(patch OptionsPatch)
	MakeRequest(ctx context.Context, path string, params QueryParams) (*Envelope, error)
}

// QuoteResult holds a single value when the request targeted one currency and
// a map keyed by currency pair when it targeted a list.
type QuoteResult struct {
	single bool
	value  string
	quotes Quotes
}

func singleResult(v string) QuoteResult { return QuoteResult{single: true, value: v} }

func manyResult(q Quotes) QuoteResult { return QuoteResult{quotes: q} }

func (r QuoteResult) IsSingle() bool { return r.single }

// Value is the result of a Single request.
func (r QuoteResult) Value() string { return r.value }

// Quotes is the result of a Many request.
func (r QuoteResult) Quotes() Quotes { return r.quotes }

func (r QuoteResult) MarshalJSON() ([]byte, error) {
	if r.single {
		return json.Marshal(r.value)
	}
	return r.quotes.MarshalJSON()
}

// ExchangeRate is the client facade: it validates dates, builds the queries and
// reshapes the responses.
type ExchangeRate struct {
	requests RequestBuilder
}

func NewExchangeRate(requests RequestBuilder) *ExchangeRate {
	return &ExchangeRate{requests: requests}
}

func (s *ExchangeRate) SetServiceOptions(patch OptionsPatch) {
	s.requests.SetOptions(patch)
}

// Currencies lists the supported currencies, code to name.
func (s *ExchangeRate) Currencies(ctx context.Context) (Currencies, error) {
	env, err := s.requests.MakeRequest(ctx, PathList, QueryParams{})
	if err != nil {
		return Currencies{}, err
	}
	return env.Currencies()
}

// ExchangeRate returns the rate from one currency to one or more others, for
// today or for date.
func (s *ExchangeRate) ExchangeRate(ctx context.Context, from CurrencyCode, to Targets, date *Date) (QuoteResult, error) {
	if date != nil {
		if err := ValidateDate(*date); err != nil {
			return QuoteResult{}, err
		}
	}

	q := NewQueryParams(
		"source", from.String(),
		"currencies", to.Joined(),
	)
	path := PathLive
	if date != nil {
		q.Set("date", date.String())
		path = PathHistorical
	}

	env, err := s.requests.MakeRequest(ctx, path, q)
	if err != nil {
		return QuoteResult{}, err
	}
	quotes, err := env.Quotes()
	if err != nil {
		return QuoteResult{}, err
	}

	if to.IsSingle() {
		pair := from.Pair(to.single())
		rate, ok := quotes.Get(pair)
		if !ok {
			return QuoteResult{}, fmt.Errorf("%s: %w", pair, ErrQuoteNotFound)
		}
		return singleResult(rate), nil
	}
	return manyResult(quotes), nil
}

// ExchangeRateBetweenDateRange returns the rates of every day from start to end.
func (s *ExchangeRate) ExchangeRateBetweenDateRange(ctx context.Context, from CurrencyCode, to Targets, start, end Date) (Timeframe, error) {
	if err := ValidateStartAndEndDates(start, end); err != nil {
		return Timeframe{}, err
	}

	q := NewQueryParams(
		"source", from.String(),
		"currencies", to.Joined(),
		"start_date", start.String(),
		"end_date", end.String(),
	)

	env, err := s.requests.MakeRequest(ctx, PathTimeframe, q)
	if err != nil {
		return Timeframe{}, err
	}
	return env.Timeframe()
}

// Convert converts amount using today's rate, or the rate of date.
func (s *ExchangeRate) Convert(ctx context.Context, amount int64, from CurrencyCode, to Targets, date *Date) (QuoteResult, error) {
	if date != nil {
		if err := ValidateDate(*date); err != nil {
			return QuoteResult{}, err
		}
	}

	rates, err := s.ExchangeRate(ctx, from, to, date)
	if err != nil {
		return QuoteResult{}, err
	}

	if rates.IsSingle() {
		converted, err := ConvertMoney(amount, rates.Value())
		if err != nil {
			return QuoteResult{}, err
		}
		return singleResult(converted), nil
	}

	converted, err := convertQuotes(amount, rates.Quotes())
	if err != nil {
		return QuoteResult{}, err
	}
	return manyResult(converted), nil
}

// ConvertBetweenDateRange converts amount with the rates of every day from start
// to end.
func (s *ExchangeRate) ConvertBetweenDateRange(ctx context.Context, amount int64, from CurrencyCode, to Targets, start, end Date) (Timeframe, error) {
	rates, err := s.ExchangeRateBetweenDateRange(ctx, from, to.AsMany(), start, end)
	if err != nil {
		return Timeframe{}, err
	}

	var out Timeframe
	for date, quotes := range rates.All() {
		converted, err := convertQuotes(amount, quotes)
		if err != nil {
			return Timeframe{}, fmt.Errorf("%s: %w", date, err)
		}
		out.Set(date, converted)
	}
	return out, nil
}

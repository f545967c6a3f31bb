package internal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ArchivedRate is one stored quote.
type ArchivedRate struct {
	BaseCCY   CurrencyCode
	QuoteCCY  CurrencyCode
	Rate      decimal.Decimal
	AsOfDate  Date
	FetchedAt time.Time
}

// QuoteArchive keeps a history of fetched quotes. The facade never reads it.
type QuoteArchive interface {
	UpsertRates(ctx context.Context, base CurrencyCode, asOfDate Date, rates map[CurrencyCode]decimal.Decimal) error
	ListArchived(ctx context.Context, base, quote CurrencyCode, from, to Date) ([]ArchivedRate, error)
}

// ArchiveResult describes one archive run.
type ArchiveResult struct {
	Base     CurrencyCode
	AsOfDate Date
	Rates    map[CurrencyCode]decimal.Decimal
}

// Archiver fetches live quotes for a fixed source and targets and stores them.
type Archiver struct {
	rates   *ExchangeRate
	archive QuoteArchive
	source  CurrencyCode
	symbols []CurrencyCode
}

func NewArchiver(rates *ExchangeRate, archive QuoteArchive, source CurrencyCode, symbols []CurrencyCode) *Archiver {
	return &Archiver{
		rates:   rates,
		archive: archive,
		source:  source,
		symbols: append([]CurrencyCode(nil), symbols...),
	}
}

func (a *Archiver) Run(ctx context.Context) (*ArchiveResult, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := a.rates.ExchangeRate(reqCtx, a.source, Many(a.symbols...), nil)
	if err != nil {
		return nil, fmt.Errorf("live rates: %w", err)
	}

	typedRates := make(map[CurrencyCode]decimal.Decimal, res.Quotes().Len())
	for pair, rateStr := range res.Quotes().All() {
		quote, ok := strings.CutPrefix(pair, a.source.String())
		if !ok || quote == "" {
			return nil, fmt.Errorf("invalid quote pair %q for source %s", pair, a.source)
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(rateStr))
		if err != nil {
			return nil, fmt.Errorf("invalid rate %s=%q: %w", pair, rateStr, err)
		}
		typedRates[CurrencyCode(quote)] = rate
	}

	asOf := Today()
	if err := a.archive.UpsertRates(reqCtx, a.source, asOf, typedRates); err != nil {
		return nil, fmt.Errorf("save rates: %w", err)
	}

	return &ArchiveResult{Base: a.source, AsOfDate: asOf, Rates: typedRates}, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"service-exchangerate/internal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CurrencyStorage struct {
	pgpool *pgxpool.Pool
}

var _ internal.QuoteArchive = (*CurrencyStorage)(nil)

func NewCurrencyStorage(pgpool *pgxpool.Pool) *CurrencyStorage {
	return &CurrencyStorage{pgpool: pgpool}
}

func (c *CurrencyStorage) UpsertRates(
	ctx context.Context,
	base internal.CurrencyCode,
	asOfDate internal.Date,
	rates map[internal.CurrencyCode]decimal.Decimal,
) error {
	baseStr := strings.ToUpper(strings.TrimSpace(base.String()))
	if baseStr == "" {
		return fmt.Errorf("base currency is empty")
	}
	if asOfDate.IsZero() {
		return fmt.Errorf("as_of_date is empty")
	}

	tx, err := c.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for quote, rate := range rates {
		quoteStr := strings.ToUpper(strings.TrimSpace(quote.String()))

		if quoteStr == "" || quoteStr == baseStr {
			continue
		}

		_, err := tx.Exec(ctx, `
insert into currency_rate (base_ccy, quote_ccy, as_of_date, rate, fetched_at)
values ($1, $2, $3::date, $4::numeric, now())
on conflict (base_ccy, quote_ccy, as_of_date)
do update set
  rate = excluded.rate,
  fetched_at = now();
`, baseStr, quoteStr, asOfDate.Time, rate.String())
		if err != nil {
			return fmt.Errorf("upsert %s/%s=%q @%s: %w", baseStr, quoteStr, rate.String(), asOfDate, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListArchived returns stored quotes of one pair between two dates, oldest first.
func (c *CurrencyStorage) ListArchived(
	ctx context.Context,
	base, quote internal.CurrencyCode,
	from, to internal.Date,
) ([]internal.ArchivedRate, error) {
	baseStr := strings.ToUpper(strings.TrimSpace(base.String()))
	quoteStr := strings.ToUpper(strings.TrimSpace(quote.String()))
	if baseStr == "" || quoteStr == "" {
		return nil, errors.New("base and quote currencies are required")
	}

	rows, err := c.pgpool.Query(ctx, `
select
  base_ccy,
  quote_ccy,
  rate::text,
  as_of_date,
  fetched_at
from currency_rate
where base_ccy = $1 and quote_ccy = $2 and as_of_date between $3::date and $4::date
order by as_of_date;
`, baseStr, quoteStr, from.Time, to.Time)
	if err != nil {
		return nil, fmt.Errorf("query archived rates: %w", err)
	}
	defer rows.Close()

	var out []internal.ArchivedRate
	for rows.Next() {
		var r internal.ArchivedRate
		var bRaw, qRaw, rateText string
		var asOf time.Time

		if err := rows.Scan(&bRaw, &qRaw, &rateText, &asOf, &r.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		r.BaseCCY = internal.CurrencyCode(strings.TrimSpace(bRaw))
		r.QuoteCCY = internal.CurrencyCode(strings.TrimSpace(qRaw))

		rateText = strings.TrimSpace(rateText)
		if rateText == "" {
			return nil, fmt.Errorf("empty rate for %s/%s", r.BaseCCY, r.QuoteCCY)
		}
		rate, err := decimal.NewFromString(rateText)
		if err != nil {
			return nil, fmt.Errorf("parse rate %s/%s=%q: %w", r.BaseCCY, r.QuoteCCY, rateText, err)
		}
		r.Rate = rate
		r.AsOfDate = internal.DateOf(asOf)

		out = append(out, r)
	}
	return out, rows.Err()
}

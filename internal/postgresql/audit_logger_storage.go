package postgresql

import (
	"context"
	"fmt"
	"service-exchangerate/internal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestLogStorage struct {
	pgpool *pgxpool.Pool
}

func NewRequestLogStorage(pgpool *pgxpool.Pool) *RequestLogStorage {
	return &RequestLogStorage{pgpool: pgpool}
}

func (s *RequestLogStorage) Insert(ctx context.Context, requestID uuid.UUID, path string, status *int, dateAsOf *internal.Date) error {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "unknown"
	}

	var asOf *time.Time
	if dateAsOf != nil && !dateAsOf.IsZero() {
		t := dateAsOf.Time
		asOf = &t
	}

	_, err := s.pgpool.Exec(ctx, `
insert into request_log (request_id, path, status, date_as_of)
values ($1, $2, $3, $4::date);
`, requestID.String(), path, status, asOf)
	if err != nil {
		return fmt.Errorf("insert request_log: %w", err)
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"service-exchangerate/internal"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type APIKeyStorage struct {
	pool *pgxpool.Pool
}

var _ internal.APIKeyRepository = (*APIKeyStorage)(nil)

func NewAPIKeyStorage(pool *pgxpool.Pool) *APIKeyStorage {
	return &APIKeyStorage{pool: pool}
}

func (s *APIKeyStorage) GetStatusByHash(ctx context.Context, keyHash string) (exists bool, isActive bool, err error) {
	keyHash = strings.TrimSpace(keyHash)
	if keyHash == "" {
		return false, false, nil
	}

	err = s.pool.QueryRow(ctx, `
select is_active
from api_keys
where key_hash = $1;
`, keyHash).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("select api_keys: %w", err)
	}

	return true, isActive, nil
}

// Insert stores a new active key hash.
func (s *APIKeyStorage) Insert(ctx context.Context, keyHash string) error {
	keyHash = strings.TrimSpace(keyHash)
	if keyHash == "" {
		return errors.New("key hash is empty")
	}

	_, err := s.pool.Exec(ctx, `
insert into api_keys (key_hash, is_active)
values ($1, true);
`, keyHash)
	if err != nil {
		return fmt.Errorf("insert api_keys: %w", err)
	}
	return nil
}

// SetActive enables or revokes a key. It reports whether the key exists.
func (s *APIKeyStorage) SetActive(ctx context.Context, keyHash string, active bool) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
update api_keys
set is_active = $2
where key_hash = $1;
`, strings.TrimSpace(keyHash), active)
	if err != nil {
		return false, fmt.Errorf("update api_keys: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

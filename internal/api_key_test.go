package internal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-exchangerate/internal"
)

// memKeyRepo keeps key hashes in memory.
type memKeyRepo struct {
	active map[string]bool
	err    error
}

func newMemKeyRepo() *memKeyRepo { return &memKeyRepo{active: map[string]bool{}} }

func (m *memKeyRepo) GetStatusByHash(_ context.Context, keyHash string) (bool, bool, error) {
	if m.err != nil {
		return false, false, m.err
	}
	active, ok := m.active[keyHash]
	return ok, active, nil
}

func (m *memKeyRepo) Insert(_ context.Context, keyHash string) error {
	if m.err != nil {
		return m.err
	}
	m.active[keyHash] = true
	return nil
}

func (m *memKeyRepo) SetActive(_ context.Context, keyHash string, active bool) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.active[keyHash]; !ok {
		return false, nil
	}
	m.active[keyHash] = active
	return true, nil
}

func TestAPIKeys_Lifecycle(t *testing.T) {
	repo := newMemKeyRepo()
	keys := internal.NewAPIKeys(repo, " s3cret ")
	ctx := context.Background()

	raw, err := keys.Issue(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.Len(t, repo.active, 1)
	for hash := range repo.active {
		assert.Len(t, hash, 64)
		assert.NotContains(t, hash, raw)
	}

	exists, active, err := keys.Validate(ctx, " "+raw+" ")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, active)

	require.NoError(t, keys.Revoke(ctx, raw))
	exists, active, err = keys.Validate(ctx, raw)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.False(t, active)

	require.ErrorIs(t, keys.Revoke(ctx, "never-issued"), internal.ErrAPIKeyNotFound)

	exists, _, err = keys.Validate(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAPIKeys_SecretMatters(t *testing.T) {
	repo := newMemKeyRepo()
	ctx := context.Background()

	raw, err := internal.NewAPIKeys(repo, "one").Issue(ctx)
	require.NoError(t, err)

	exists, _, err := internal.NewAPIKeys(repo, "two").Validate(ctx, raw)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAPIKeys_RepoError(t *testing.T) {
	repo := newMemKeyRepo()
	repo.err = errors.New("db down")
	keys := internal.NewAPIKeys(repo, "s")

	_, err := keys.Issue(context.Background())
	require.ErrorIs(t, err, repo.err)
	require.ErrorIs(t, keys.Revoke(context.Background(), "k"), repo.err)
}

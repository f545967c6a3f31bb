package internal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-exchangerate/internal"
)

type auditInsert struct {
	requestID uuid.UUID
	path      string
	status    *int
	dateAsOf  *internal.Date
}

type fakeAuditStorage struct {
	inserts []auditInsert
	err     error
}

func (f *fakeAuditStorage) Insert(_ context.Context, requestID uuid.UUID, path string, status *int, dateAsOf *internal.Date) error {
	f.inserts = append(f.inserts, auditInsert{requestID: requestID, path: path, status: status, dateAsOf: dateAsOf})
	return f.err
}

func TestStorageAuditLogger_LogRequest(t *testing.T) {
	storage := &fakeAuditStorage{}
	l := internal.NewStorageAuditLogger(storage)

	id := uuid.New()
	status := 200
	require.NoError(t, l.LogRequest(context.Background(), id, " /api/v1/rate/ ", &status, &oct19))
	require.NoError(t, l.LogRequest(context.Background(), id, "/", nil, nil))

	require.Len(t, storage.inserts, 2)
	assert.Equal(t, id, storage.inserts[0].requestID)
	assert.Equal(t, "api/v1/rate", storage.inserts[0].path)
	assert.Equal(t, 200, *storage.inserts[0].status)
	assert.Equal(t, "unknown", storage.inserts[1].path)
}

func TestStorageAuditLogger_Error(t *testing.T) {
	storage := &fakeAuditStorage{err: errors.New("insert failed")}
	err := internal.NewStorageAuditLogger(storage).LogRequest(context.Background(), uuid.New(), "rate", nil, nil)
	require.ErrorIs(t, err, storage.err)
}

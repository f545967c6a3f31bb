package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RequestAuditLogger records every API request served.
type RequestAuditLogger interface {
	LogRequest(ctx context.Context, requestID uuid.UUID, path string, status *int, dateAsOf *Date) error
}

type AuditLogStorage interface {
	Insert(ctx context.Context, requestID uuid.UUID, path string, status *int, dateAsOf *Date) error
}

func NewStorageAuditLogger(storage AuditLogStorage) *StorageAuditLogger {
	return &StorageAuditLogger{auditLogStorage: storage}
}

type StorageAuditLogger struct {
	auditLogStorage AuditLogStorage
}

func (l *StorageAuditLogger) LogRequest(ctx context.Context, requestID uuid.UUID, endpoint string, status *int, dateAsOf *Date) error {
	p := strings.TrimSpace(endpoint)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "unknown"
	}

	if err := l.auditLogStorage.Insert(ctx, requestID, p, status, dateAsOf); err != nil {
		return fmt.Errorf("audit %s: %w", p, err)
	}
	return nil
}

// NopAuditLogger is used when no database is configured.
type NopAuditLogger struct{}

func (NopAuditLogger) LogRequest(context.Context, uuid.UUID, string, *int, *Date) error { return nil }

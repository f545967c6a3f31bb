package internal

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrAPIKeyNotFound is returned when revoking a key that was never issued.
var ErrAPIKeyNotFound = errors.New("api key not found")

// APIKeyRepository stores key hashes; raw keys never reach it.
type APIKeyRepository interface {
	GetStatusByHash(ctx context.Context, keyHash string) (exists bool, isActive bool, err error)
	Insert(ctx context.Context, keyHash string) error
	SetActive(ctx context.Context, keyHash string, active bool) (bool, error)
}

// APIKeys issues, checks and revokes the keys guarding the HTTP API.
type APIKeys struct {
	repo   APIKeyRepository
	secret []byte
}

func NewAPIKeys(repo APIKeyRepository, encodingKey string) *APIKeys {
	return &APIKeys{repo: repo, secret: []byte(strings.TrimSpace(encodingKey))}
}

// Validate satisfies middleware.APIKeyValidator.
func (k *APIKeys) Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return false, false, nil
	}
	return k.repo.GetStatusByHash(ctx, k.hash(rawKey))
}

// Issue creates an active key and returns it. It is not recoverable later.
func (k *APIKeys) Issue(ctx context.Context) (string, error) {
	rawKey := uuid.NewString()
	if err := k.repo.Insert(ctx, k.hash(rawKey)); err != nil {
		return "", fmt.Errorf("issue api key: %w", err)
	}
	return rawKey, nil
}

func (k *APIKeys) Revoke(ctx context.Context, rawKey string) error {
	found, err := k.repo.SetActive(ctx, k.hash(strings.TrimSpace(rawKey)), false)
	if err != nil {
		return fmt.Errorf("revoke api key: %w", err)
	}
	if !found {
		return ErrAPIKeyNotFound
	}
	return nil
}

// hash is the hex HMAC-SHA256 of rawKey.
func (k *APIKeys) hash(rawKey string) string {
	mac := hmac.New(sha256.New, k.secret)
	_, _ = mac.Write([]byte(rawKey))
	return hex.EncodeToString(mac.Sum(nil))
}

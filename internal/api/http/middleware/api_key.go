package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"service-exchangerate/internal/logger"
	"service-exchangerate/internal/models"
	"strings"
)

const APIKeyHeader = "X-API-Key"

type APIKeyValidator interface {
	Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error)
}

func APIKeyAuth(store APIKeyValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if key == "" {
				writeBizErr(w, http.StatusUnauthorized, models.CodeAPIKeyMissing, "missing "+APIKeyHeader)
				return
			}

			exists, active, err := store.Validate(r.Context(), key)
			if err != nil {
				logger.Log.Error().Err(err).Str("path", r.URL.Path).Msg("api key validation failed")
				writeBizErr(w, http.StatusInternalServerError, models.CodeInternal, "internal error")
				return
			}
			if !exists {
				writeBizErr(w, http.StatusUnauthorized, models.CodeAPIKeyInvalid, "invalid api key")
				return
			}
			if !active {
				writeBizErr(w, http.StatusForbidden, models.CodeAPIKeyExpired, "api key is expired")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeBizErr(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.BusinessError{Code: code, Message: msg})
}

package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/s21platform/messaging-service/internal/config"
	api "github.com/s21platform/messaging-service/internal/generated"
	"github.com/s21platform/messaging-service/internal/model"
	"github.com/s21platform/messaging-service/internal/pkg/apperr"
)

const bearerPrefix = "Bearer "

type TokenVerifier interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}

// AuthInterceptorHTTP resolves the caller identity from the bearer token and
// stores it under config.KeyUUID. Requests without a valid token never reach next.
func AuthInterceptorHTTP(next http.Handler, verifier TokenVerifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			writeUnauthorized(w, "missing or invalid token")
			return
		}

		claims, err := verifier.ValidateAccessToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			writeUnauthorized(w, apperr.MessageOf(err))
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

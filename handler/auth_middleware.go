package handler

import (
	"context"
	"net/http"
	"rpbank/common"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/service"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// AuthMiddleware resolves the bearer token into the caller's claims.
func AuthMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil).Send(w)
				return
			}

			claims, err := auth.ParseToken(headerParts[1])
			if err != nil {
				common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCapability lets the request through when the caller holds any of caps.
// It must run after AuthMiddleware.
func RequireCapability(caps ...model.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !claims.Has(caps...) {
				identity := ""
				if ok {
					identity = claims.Identity
				}
				logger.Log.WithFields(logrus.Fields{
					"identity": identity,
					"required": caps,
					"path":     r.URL.Path,
				}).Warn("Capability check failed")
				common.NewAppError(http.StatusForbidden, "Access denied. Missing capability.", nil).Send(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*model.AppClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*model.AppClaims)
	return claims, ok && claims != nil
}

func callerOf(r *http.Request) (*model.AppClaims, *common.AppError) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		return nil, common.NewAppError(http.StatusUnauthorized, "Missing caller identity", nil)
	}
	return claims, nil
}

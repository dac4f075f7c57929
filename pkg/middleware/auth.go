package middleware

import (
	"net/http"
	"strings"

	"movie-logbook/internal/data/repository"
	"movie-logbook/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the UUID session token carried as a bearer token.
// Websocket clients cannot set headers, so a token query parameter is
// accepted as fallback.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || parts[0] != "Bearer" {
					utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
					return
				}
				token = parts[1]
			} else {
				token = r.URL.Query().Get("token")
			}

			if token == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

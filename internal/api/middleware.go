package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/emanuelsistemas/drive/internal/auth"
	"github.com/emanuelsistemas/drive/internal/drive"
)

type contextKey string

const userContextKey = contextKey("user")

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		tokenString := headerParts[1]

		claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserFromContext(ctx context.Context) *auth.AppClaims {
	if claims, ok := ctx.Value(userContextKey).(*auth.AppClaims); ok {
		return claims
	}
	return nil
}

// actorFromContext translates JWT claims into the core's actor value. A nil
// result makes the core reject the mutation, so a missing token can never
// reach persistence.
func actorFromContext(ctx context.Context) *drive.Actor {
	claims := GetUserFromContext(ctx)
	if claims == nil {
		return nil
	}
	return &drive.Actor{ID: claims.UserID, Email: claims.Email}
}

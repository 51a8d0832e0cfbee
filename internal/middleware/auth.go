package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/config"
)

type contextKey string

// UsernameKey carries the authenticated username through the request
// context.
const UsernameKey contextKey = "username"

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "session"

// SessionGate requires an authenticated session on every route except
// the configured allow-list. Routes are matched by their mux route name,
// so exempting a new page is a config change, not a code change.
func SessionGate(cfg *config.Config) mux.MiddlewareFunc {
	public := make(map[string]bool, len(cfg.PublicRoutes))
	for _, name := range cfg.PublicRoutes {
		public[name] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route := mux.CurrentRoute(r); route != nil && public[route.GetName()] {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

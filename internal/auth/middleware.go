package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// Middleware verifies a Bearer JWT (HS256) signed by the upstream identity
// service and injects the resulting claims into the request context.
func Middleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			tokenStr := strings.TrimPrefix(header, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				http.Error(w, "token missing subject", http.StatusUnauthorized)
				return
			}
			email, _ := claims["email"].(string)
			name, _ := claims["name"].(string)

			ctx := WithUserClaims(r.Context(), &UserClaims{UID: sub, Email: email, Name: name})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocalDevMiddleware skips token verification and takes the user from the
// X-User-ID header. Local development only.
func LocalDevMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := r.Header.Get("X-User-ID")
			if uid == "" {
				uid = "local-dev-user"
			}
			ctx := WithUserClaims(r.Context(), &UserClaims{
				UID:   uid,
				Email: uid + "@local.dev",
				Name:  "Local Dev User",
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SecretProvider supplies the HMAC key used to verify bearer tokens.
type SecretProvider func() []byte

// Authenticate wraps next, requiring a valid bearer token on mutating
// requests. Reads pass through unauthenticated.
func Authenticate(secret SecretProvider, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodGet {
			next.ServeHTTP(w, req)
			return
		}
		auth := req.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return secret(), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !parsed.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// Package http exposes token issue and validation endpoints.
package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SecretProvider supplies the HMAC key used to sign and verify tokens.
type SecretProvider func() []byte

type Handler struct {
	secretProvider SecretProvider
}

func New(secretProvider SecretProvider) *Handler {
	return &Handler{secretProvider: secretProvider}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type validateResponse struct {
	Username string `json:"username"`
}

// HandleToken issues a signed token for the supplied credentials.
func (h *Handler) HandleToken(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	username, password := req.FormValue("username"), req.FormValue("password")
	if !validCredentials(username, password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"iat":      time.Now().Unix(),
	})
	tokenString, err := token.SignedString(h.secretProvider())
	if err != nil {
		log.Printf("Token signing error: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(tokenResponse{Token: tokenString}); err != nil {
		log.Printf("Response encode error: %v\n", err)
	}
}

func validCredentials(username string, password string) bool {
	if username == "" || password == "" {
		return false
	}

	return true
}

// HandleValidate verifies a token and returns the username claim.
func (h *Handler) HandleValidate(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	token, err := jwt.Parse(
		req.FormValue("token"),
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return h.secretProvider(), nil
		},
	)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	var username string
	if v, ok := claims["username"]; ok {
		if u, ok := v.(string); ok {
			username = u
		}
	}

	if err := json.NewEncoder(w).Encode(validateResponse{Username: username}); err != nil {
		log.Printf("Response encode error: %v\n", err)
	}
}

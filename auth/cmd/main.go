package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	httphandler "github.com/okovalenko/filmfortoday/auth/internal/handler/http"
)

func main() {
	port := 8084
	log.Printf("Starting the auth service on port %d", port)

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		secret = "test-secrets"
	}

	h := httphandler.New(func() []byte {
		return []byte(secret)
	})
	http.HandleFunc("/token", h.HandleToken)
	http.HandleFunc("/token/validate", h.HandleValidate)
	if err := http.ListenAndServe(fmt.Sprintf(":%v", port), nil); err != nil {
		panic(err)
	}
}

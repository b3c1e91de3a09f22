// Command devtoken emite um bearer token para chamar a API localmente.
//
//	go run ./cmd/devtoken -sub user-1 -email dev@example.com
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/auth"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/config"
)

func main() {
	sub := flag.String("sub", "dev-user", "user id (sub claim)")
	email := flag.String("email", "", "email claim")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	token, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry).Issue(*sub, *email)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(os.Stdout, token)
}

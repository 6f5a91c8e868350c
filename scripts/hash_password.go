package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/khoahotran/portfolio-cms/pkg/auth"
)

// Prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	if password == "" {
		log.Fatal("usage: go run ./scripts/hash_password.go <password> (or set ADMIN_PASSWORD)")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	fmt.Println(hash)
}

package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/jeel735/rewear/config"
	"github.com/jeel735/rewear/pkg/helpers"
)

// seed creates one admin and one regular account for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	accounts := []struct {
		email, username, password, role string
	}{
		{"admin@rewear.local", "admin", "admin12345", "admin"},
		{"demo@rewear.local", "demoUser", "password123", "user"},
	}

	for _, a := range accounts {
		hash, err := helpers.HashPassword(a.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, username, password_hash, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET username=EXCLUDED.username, role=EXCLUDED.role
			RETURNING id
		`, a.email, a.username, hash, a.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed %s: %v", a.email, err)
		}
		fmt.Printf("seeded %s: id=%s email=%s password=%s\n", a.role, id, a.email, a.password)
	}
}

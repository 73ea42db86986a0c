package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mesto-app/mesto-api/config"
	"github.com/mesto-app/mesto-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "explorer@mesto.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id::text
	`, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	cards := []struct {
		name string
		link string
	}{
		{"Карачаевск", "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/karachaevsk.jpg"},
		{"Гора Эльбрус", "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/elbrus.jpg"},
		{"Домбай", "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/dombai.jpg"},
	}
	for _, card := range cards {
		var cardID string
		err := db.QueryRow(`
			INSERT INTO cards (name, link, owner_id)
			VALUES ($1, $2, $3)
			RETURNING id::text
		`, card.name, card.link, userID).Scan(&cardID)
		if err != nil {
			log.Fatalf("failed to seed card %q: %v", card.name, err)
		}
		fmt.Printf("seeded card: id=%s name=%s\n", cardID, card.name)
	}
}

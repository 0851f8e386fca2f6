// seed inserts a test user and a few sample files into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/StudenikinNikolay/filecloud/internal/auth"
	"github.com/StudenikinNikolay/filecloud/internal/infrastructure/postgres"
)

const (
	seedUsername = "user1"
	seedPassword = "123pwd"
)

type fileSpec struct {
	name        string
	contentType string
	content     string
}

var files = []fileSpec{
	{"notes.txt", "text/plain", "remember to rotate the JWT secret\n"},
	{"hello.html", "text/html", "<h1>hello</h1>\n"},
	{"data.json", "application/json", `{"answer": 42}` + "\n"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()`,
		seedUsername, hash,
	)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var inserted, skipped int
	for _, spec := range files {
		tag, err := pool.Exec(ctx, `
			INSERT INTO files (name, content_type, size, content)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING`,
			spec.name, spec.contentType, int64(len(spec.content)), []byte(spec.content),
		)
		if err != nil {
			log.Fatalf("insert file %s: %v", spec.name, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:          %s / %s\n", seedUsername, seedPassword)
	fmt.Printf("  Files created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"login\":\"%s\",\"password\":\"%s\"}'\n", seedUsername, seedPassword)
	fmt.Println("    # → {\"token\":\"eyJ...\"}")
	fmt.Println()
	fmt.Println("  Step 2 — list files with the token:")
	fmt.Println()
	fmt.Println("    export TOKEN=eyJ...")
	fmt.Println("    curl -s 'http://localhost:8080/list?limit=10' -H \"auth-token: Bearer $TOKEN\"")
	fmt.Println()
	fmt.Println("  Step 3 — download one:")
	fmt.Println()
	fmt.Println("    curl -s 'http://localhost:8080/file?filename=notes.txt' -H \"auth-token: Bearer $TOKEN\"")
}

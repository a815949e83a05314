// seed creates a few users with known tokens and some sample entries in the
// local dev database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ErlanBelekov/rideboard/internal/infrastructure/postgres"
)

type userSpec struct {
	surname string
	email   string
	token   string
}

type entrySpec struct {
	owner   string // token of the owning user
	title   string
	message string
	typ     string
	seats   int
}

var users = []userSpec{
	{"Muster", "max.muster@schule.local", "abc123"},
	{"Schmidt", "lena.schmidt@schule.local", "def456"},
	{"Yilmaz", "can.yilmaz@schule.local", "ghi789"},
}

var entries = []entrySpec{
	{"abc123", "Mitfahrt Berlin", "Fahre Freitag nach Berlin, 3 Plätze frei", "Angebot", 3},
	{"def456", "Suche Fahrt nach Hamburg", "Brauche am Wochenende eine Mitfahrgelegenheit", "Anfrage", 0},
	{"ghi789", "Täglich zur Schule", "Fahre jeden Morgen um 7:15 ab Bahnhof", "Angebot", 2},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set (run: direnv allow)")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL, 2)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	userIDs := make(map[string]int64, len(users))
	for _, u := range users {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO users (surname, email, status, token)
			VALUES ($1, $2, 'active', $3)
			ON CONFLICT (email) DO UPDATE SET token = EXCLUDED.token
			RETURNING id`,
			u.surname, u.email, u.token,
		).Scan(&id)
		if err != nil {
			log.Fatalf("upsert user %s: %v", u.email, err)
		}
		userIDs[u.token] = id
	}

	var inserted, skipped int
	for _, e := range entries {
		tag, err := pool.Exec(ctx, `
			INSERT INTO entries (title, message, type, seats, user_id)
			SELECT $1::text, $2::text, $3::text, $4::int, $5::bigint
			WHERE NOT EXISTS (SELECT 1 FROM entries WHERE title = $1 AND user_id = $5)`,
			e.title, e.message, e.typ, e.seats, userIDs[e.owner],
		)
		if err != nil {
			log.Fatalf("insert entry %q: %v", e.title, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	for _, u := range users {
		fmt.Printf("  %-8s  token: %s\n", u.surname, u.token)
	}
	fmt.Printf("  Entries created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1: start a session (valid for 10 minutes of inactivity):")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:3000/login/abc123")
	fmt.Println("    # → {\"ok\":true}")
	fmt.Println()
	fmt.Println("  Step 2: list and create entries:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:3000/entries -H 'Authorization: Bearer abc123'")
	fmt.Println("    curl -s -X POST http://localhost:3000/entries \\")
	fmt.Println("      -H 'Authorization: Bearer abc123' -H 'Content-Type: application/json' \\")
	fmt.Println("      -d '{\"titel\":\"Mitfahrt Köln\",\"nachricht\":\"Noch 2 Plätze\",\"typ\":\"Angebot\",\"sitzplaetze\":2}'")
	fmt.Println()
	fmt.Println("  Step 3: contact the owner of an entry:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:3000/entries/1/contact -H 'Authorization: Bearer abc123'")
}

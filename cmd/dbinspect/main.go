// Package main provides a read-only inspector for the BookNote database.
//
// Usage:
//
//	DATA_PATH=~/BookNote/data go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/booknoteapp/booknote-server/internal/domain"
)

type registryRecord struct {
	Revision int64            `json:"revision"`
	SavedAt  time.Time        `json:"savedAt"`
	Registry *domain.Registry `json:"registry"`
}

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/BookNote/data")
	}
	dbPath := filepath.Join(dataPath, "badger")

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	var raw []byte
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("registry:main"))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		log.Fatalf("No registry document found: %v", err)
	}

	var rec registryRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		log.Fatalf("Registry document is corrupt: %v", err)
	}

	fmt.Printf("Revision: %d\n", rec.Revision)
	fmt.Printf("Saved at: %s\n", rec.SavedAt.Format(time.RFC3339))
	fmt.Printf("Document size: %d bytes\n", len(raw))
	fmt.Println()

	if rec.Registry == nil {
		fmt.Println("Registry is empty.")
		return
	}

	for _, name := range rec.Registry.Names() {
		lib := rec.Registry.Get(name)
		if lib == nil {
			continue
		}

		fmt.Printf("Library: %s\n", name)
		fmt.Printf("  Books: %d\n", len(lib.Books))
		fmt.Printf("  Chapters: %d\n", len(lib.Chapters))
		fmt.Printf("  Notes: %d\n", len(lib.Details))
		fmt.Printf("  Genres: %v\n", lib.UsedGenres())

		for i, b := range lib.Books {
			if i >= 5 {
				fmt.Printf("  ... and %d more books\n", len(lib.Books)-5)
				break
			}
			fmt.Printf("    [%d] %s - %s (%s, %dp)\n", b.ID, b.Title, b.Author, b.Status, b.TotalPages)
		}
		fmt.Println()
	}
}

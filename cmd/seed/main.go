// Package main provides a tool to seed the database with sample reading data.
//
// This creates a library with a few books, chapters and notes so the UI has
// something to show during development.
//
// Usage:
//
//	DATA_PATH=~/BookNote/data go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/service"
	"github.com/booknoteapp/booknote-server/internal/session"
	"github.com/booknoteapp/booknote-server/internal/storage"
	"github.com/booknoteapp/booknote-server/internal/store"
)

type seedBook struct {
	title      string
	author     string
	totalPages int
	status     string
	category   []string
	chapters   []seedChapter
}

type seedChapter struct {
	title string
	notes []seedNote
}

type seedNote struct {
	title     string
	startPage int
	endPage   int
	content   string
}

var books = []seedBook{
	{
		title:      "데미안",
		author:     "헤르만 헤세",
		totalPages: 248,
		status:     "읽는 중",
		category:   []string{"소설"},
		chapters: []seedChapter{
			{
				title: "두 세계",
				notes: []seedNote{
					{title: "밝은 세계와 어두운 세계", startPage: 9, endPage: 34, content: "싱클레어가 두 세계 사이에서 흔들린다."},
				},
			},
			{title: "카인"},
		},
	},
	{
		title:      "사피엔스",
		author:     "유발 하라리",
		totalPages: 636,
		status:     "대기 중",
		category:   []string{"역사"},
	},
}

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/BookNote/data")
	}

	dbPath := filepath.Join(dataPath, "badger")
	fmt.Printf("Opening database at: %s\n", dbPath)

	adapter, err := storage.OpenBadger(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	st := store.New(adapter, nil, store.NewNoopEmitter())
	defer st.Close()

	ctx := context.Background()
	if err := st.Load(ctx); err != nil {
		log.Fatalf("Failed to load registry: %v", err)
	}

	if !st.SetupRequired() {
		log.Fatal("Registry already has libraries; refusing to seed over existing data.")
	}

	machine := session.NewMachine(st)
	libraries := service.NewLibraryService(st, machine, store.NewNoopEmitter(), nil)

	if _, err := libraries.Setup(ctx, "나의 서재"); err != nil {
		log.Fatalf("Failed to create library: %v", err)
	}

	for _, sb := range books {
		book, err := st.CreateBook()
		if err != nil {
			log.Fatalf("Failed to create book: %v", err)
		}

		book.Title = sb.title
		book.Author = sb.author
		book.TotalPages = sb.totalPages
		book.Status = sb.status
		book.Category = sb.category
		if _, err := st.UpdateBook(*book); err != nil {
			log.Fatalf("Failed to update book: %v", err)
		}

		for _, sc := range sb.chapters {
			chapter, err := st.CreateChapter(book.ID)
			if err != nil {
				log.Fatalf("Failed to create chapter: %v", err)
			}
			chapter.Title = sc.title
			if _, err := st.UpdateChapter(*chapter); err != nil {
				log.Fatalf("Failed to update chapter: %v", err)
			}

			for _, sn := range sc.notes {
				seedDetail(st, chapter, sn)
			}
		}

		fmt.Printf("Seeded book: %s (%d chapters)\n", sb.title, len(sb.chapters))
	}

	receipt, err := st.Save(ctx)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	fmt.Printf("Done. Saved revision %d (%s)\n", receipt.Revision, receipt.ID)
}

func seedDetail(st *store.Store, chapter *domain.Chapter, sn seedNote) {
	detail, err := st.CreateDetail(chapter.ID)
	if err != nil {
		log.Fatalf("Failed to create note: %v", err)
	}
	detail.Title = sn.title
	detail.StartPage = sn.startPage
	detail.EndPage = sn.endPage
	detail.Content = sn.content
	if _, err := st.UpdateDetail(*detail); err != nil {
		log.Fatalf("Failed to update note: %v", err)
	}
}

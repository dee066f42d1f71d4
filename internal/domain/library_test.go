package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLibrary() *Library {
	lib := NewLibrary("Alice")
	lib.Books = append(lib.Books, Book{ID: 1, Title: "새로운 책", TotalPages: 300, Status: "대기 중", Category: []string{}})
	lib.Chapters = append(lib.Chapters, Chapter{ID: 10, BookID: 1, Index: "1", Title: "새로운 챕터 1"})
	return lib
}

func TestProgress(t *testing.T) {
	t.Run("zero without pages", func(t *testing.T) {
		lib := testLibrary()
		lib.Books[0].TotalPages = 0
		lib.Details = append(lib.Details, Detail{ID: 100, ChapterID: 10, StartPage: 1, EndPage: 10, Content: "hello"})
		assert.Equal(t, 0, lib.Progress(1))

		lib.Books[0].TotalPages = -5
		assert.Equal(t, 0, lib.Progress(1))
	})

	t.Run("zero without written details", func(t *testing.T) {
		lib := testLibrary()
		assert.Equal(t, 0, lib.Progress(1))

		// Whitespace-only content does not count as written.
		lib.Details = append(lib.Details, Detail{ID: 100, ChapterID: 10, StartPage: 1, EndPage: 10, Content: "   \n\t"})
		assert.Equal(t, 0, lib.Progress(1))
	})

	t.Run("zero for unknown book", func(t *testing.T) {
		lib := testLibrary()
		assert.Equal(t, 0, lib.Progress(999))
	})

	t.Run("rounded page share", func(t *testing.T) {
		lib := testLibrary()
		lib.Details = append(lib.Details, Detail{ID: 100, ChapterID: 10, Index: "1", Title: "세부 항목 1", StartPage: 1, EndPage: 10, Content: "hello"})

		// 10 written pages out of 300 -> round(3.33) = 3.
		assert.Equal(t, 3, lib.Progress(1))
	})

	t.Run("monotone and clamped", func(t *testing.T) {
		lib := testLibrary()
		prev := lib.Progress(1)
		for i := range 10 {
			lib.Details = append(lib.Details, Detail{
				ID:        int64(100 + i),
				ChapterID: 10,
				StartPage: 1,
				EndPage:   50,
				Content:   "note",
			})
			cur := lib.Progress(1)
			assert.GreaterOrEqual(t, cur, prev)
			assert.LessOrEqual(t, cur, 100)
			prev = cur
		}
		assert.Equal(t, 100, prev)
	})

	t.Run("details under foreign chapters excluded", func(t *testing.T) {
		lib := testLibrary()
		lib.Books = append(lib.Books, Book{ID: 2, Title: "다른 책", TotalPages: 100})
		lib.Chapters = append(lib.Chapters, Chapter{ID: 20, BookID: 2, Index: "1", Title: "1장"})
		lib.Details = append(lib.Details, Detail{ID: 100, ChapterID: 20, StartPage: 1, EndPage: 50, Content: "다른 책의 노트"})

		assert.Equal(t, 0, lib.Progress(1))
		assert.Equal(t, 50, lib.Progress(2))
	})
}

func TestUsedGenres(t *testing.T) {
	lib := NewLibrary("Alice")
	lib.CustomGenres = []string{"소설", "에세이"}
	lib.Books = []Book{
		{ID: 1, Category: []string{"소설", "고전"}},
		{ID: 2, Category: []string{"", "과학"}},
		{ID: 3, Category: []string{}},
	}

	// Custom genres first, then book categories in first-seen order,
	// deduplicated, empties dropped.
	assert.Equal(t, []string{"소설", "에세이", "고전", "과학"}, lib.UsedGenres())
}

func TestAddCustomGenre(t *testing.T) {
	lib := NewLibrary("Alice")
	lib.AddCustomGenre("소설")
	lib.AddCustomGenre("소설")
	lib.AddCustomGenre("")
	lib.AddCustomGenre("역사")
	assert.Equal(t, []string{"소설", "역사"}, lib.CustomGenres)
}

func TestLibraryClone(t *testing.T) {
	lib := testLibrary()
	lib.Books[0].Category = []string{"소설"}

	clone := lib.Clone()
	clone.Books[0].Title = "changed"
	clone.Books[0].Category[0] = "changed"
	clone.Chapters[0].Title = "changed"

	assert.Equal(t, "새로운 책", lib.Books[0].Title)
	assert.Equal(t, "소설", lib.Books[0].Category[0])
	assert.Equal(t, "새로운 챕터 1", lib.Chapters[0].Title)
}

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/session"
	"github.com/booknoteapp/booknote-server/internal/storage"
	"github.com/booknoteapp/booknote-server/internal/store"
)

type services struct {
	store      *store.Store
	machine    *session.Machine
	library    *LibraryService
	books      *BookService
	chapters   *ChapterService
	notes      *NoteService
	spell      *SpellService
	search     *SearchService
	navigation *NavigationService
}

func newServices(t *testing.T) *services {
	t.Helper()
	adapter, err := storage.OpenBadger(filepath.Join(t.TempDir(), "db"), nil)
	require.NoError(t, err)
	st := store.New(adapter, nil, store.NewNoopEmitter())
	t.Cleanup(func() { st.Close() })

	machine := session.NewMachine(st)
	return &services{
		store:      st,
		machine:    machine,
		library:    NewLibraryService(st, machine, store.NewNoopEmitter(), nil),
		books:      NewBookService(st, machine, nil),
		chapters:   NewChapterService(st, nil),
		notes:      NewNoteService(st, nil),
		spell:      NewSpellService(st, 0, nil),
		search:     NewSearchService(st, machine, nil),
		navigation: NewNavigationService(machine, nil),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSetupCreatesAndSaves(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()

	state := svc.library.State()
	assert.True(t, state.SetupRequired)

	receipt, err := svc.library.Setup(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.Revision)

	state = svc.library.State()
	assert.False(t, state.SetupRequired)
	assert.Equal(t, "Alice", state.Active)
	assert.Equal(t, []string{"Alice"}, state.Names)
}

func TestSwitchResetsNavigation(t *testing.T) {
	svc := newServices(t)
	require.NoError(t, svc.library.Create("Alice"))

	book, err := svc.books.Create()
	require.NoError(t, err)
	_, err = svc.navigation.OpenBook(book.ID)
	require.NoError(t, err)

	require.NoError(t, svc.library.Create("Bob"))
	assert.Equal(t, session.State{View: session.ViewShelf}, svc.navigation.State())

	require.NoError(t, svc.library.Switch("Alice"))
	assert.Equal(t, session.State{View: session.ViewShelf}, svc.navigation.State())
}

func TestBookPartialUpdate(t *testing.T) {
	svc := newServices(t)
	require.NoError(t, svc.library.Create("Alice"))
	book, err := svc.books.Create()
	require.NoError(t, err)

	updated, err := svc.books.Update(book.ID, BookUpdate{
		Title:  strPtr("데미안"),
		Status: strPtr("읽는 중"),
	})
	require.NoError(t, err)
	assert.Equal(t, "데미안", updated.Title)
	assert.Equal(t, "읽는 중", updated.Status)
	// Untouched fields keep their defaults.
	assert.Equal(t, 300, updated.TotalPages)

	_, err = svc.books.Update(999, BookUpdate{Title: strPtr("x")})
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestDeleteBookResetsNavigation(t *testing.T) {
	svc := newServices(t)
	require.NoError(t, svc.library.Create("Alice"))
	book, err := svc.books.Create()
	require.NoError(t, err)
	_, err = svc.navigation.OpenBook(book.ID)
	require.NoError(t, err)

	require.NoError(t, svc.books.Delete(book.ID))
	assert.Equal(t, session.State{View: session.ViewShelf}, svc.navigation.State())
}

func TestListBooksWithProgress(t *testing.T) {
	svc := newServices(t)
	require.NoError(t, svc.library.Create("Alice"))
	book, err := svc.books.Create()
	require.NoError(t, err)
	chapter, err := svc.chapters.Create(book.ID)
	require.NoError(t, err)
	note, err := svc.notes.Create(chapter.ID)
	require.NoError(t, err)

	_, err = svc.notes.Update(note.ID, NoteUpdate{
		StartPage: intPtr(1),
		EndPage:   intPtr(60),
		Content:   strPtr("정리한 내용"),
	})
	require.NoError(t, err)

	books, err := svc.books.List()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 20, books[0].Progress)
}

func TestSpellCheckAndApply(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	require.NoError(t, svc.library.Create("Alice"))
	book, err := svc.books.Create()
	require.NoError(t, err)
	chapter, err := svc.chapters.Create(book.ID)
	require.NoError(t, err)
	note, err := svc.notes.Create(chapter.ID)
	require.NoError(t, err)

	// Empty content cannot be checked.
	_, err = svc.spell.Check(ctx, note.ID)
	assert.True(t, errors.Is(err, errors.ErrValidation))

	_, err = svc.notes.Update(note.ID, NoteUpdate{Content: strPtr("어떡해 재밋다")})
	require.NoError(t, err)

	result, err := svc.spell.Check(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "어떡해 재밋다", result.Original)
	assert.Equal(t, "어떻게 해 재밌다", result.Corrected)

	require.NoError(t, svc.spell.Apply(note.ID, result.Corrected))
	got, err := svc.notes.Get(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "어떻게 해 재밌다", got.Content)
}

func TestSpellCheckHonorsContext(t *testing.T) {
	svc := newServices(t)
	require.NoError(t, svc.library.Create("Alice"))
	book, err := svc.books.Create()
	require.NoError(t, err)
	chapter, err := svc.chapters.Create(book.ID)
	require.NoError(t, err)
	note, err := svc.notes.Create(chapter.ID)
	require.NoError(t, err)
	_, err = svc.notes.Update(note.ID, NoteUpdate{Content: strPtr("어떡해")})
	require.NoError(t, err)

	slow := NewSpellService(svc.store, time.Minute, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = slow.Check(ctx, note.ID)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNoteVideo(t *testing.T) {
	svc := newServices(t)
	require.NoError(t, svc.library.Create("Alice"))
	book, err := svc.books.Create()
	require.NoError(t, err)
	chapter, err := svc.chapters.Create(book.ID)
	require.NoError(t, err)
	note, err := svc.notes.Create(chapter.ID)
	require.NoError(t, err)

	info, err := svc.notes.SetVideo(note.ID, "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", info.VideoID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", info.EmbedURL)

	// Unrecognized URLs are stored but do not resolve to an embed.
	info, err = svc.notes.SetVideo(note.ID, "https://example.com/talk")
	require.NoError(t, err)
	assert.Empty(t, info.VideoID)
	assert.Empty(t, info.EmbedURL)
	assert.Equal(t, "https://example.com/talk", info.VideoURL)
}

func TestSearchJump(t *testing.T) {
	svc := newServices(t)
	require.NoError(t, svc.library.Create("Alice"))
	book, err := svc.books.Create()
	require.NoError(t, err)
	_, err = svc.books.Update(book.ID, BookUpdate{Title: strPtr("데미안")})
	require.NoError(t, err)

	results, err := svc.search.Search("데미안")
	require.NoError(t, err)
	require.Len(t, results, 1)

	state, err := svc.search.Jump(results[0].Target, results[0].ID)
	require.NoError(t, err)
	assert.Equal(t, session.ViewChapters, state.View)
	assert.Equal(t, book.ID, state.BookID)

	_, err = svc.search.Jump("bogus", 1)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	adapter, err := storage.OpenBadger(filepath.Join(t.TempDir(), "db"), nil)
	require.NoError(t, err)
	s := New(adapter, nil, NewNoopEmitter())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetupFlow(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Load(context.Background()))

	assert.True(t, s.SetupRequired())
	_, err := s.ListBooks()
	assert.True(t, errors.Is(err, errors.ErrConflict))

	require.NoError(t, s.CreateLibrary("Alice"))
	assert.False(t, s.SetupRequired())
	assert.Equal(t, "Alice", s.ActiveLibrary())
	assert.Equal(t, []string{"Alice"}, s.LibraryNames())
}

func TestCreateLibraryValidation(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateLibrary("Alice"))

	assert.True(t, errors.Is(s.CreateLibrary("   "), errors.ErrValidation))
	assert.True(t, errors.Is(s.CreateLibrary("Alice"), errors.ErrAlreadyExists))
	// Names are trimmed before the duplicate check.
	assert.True(t, errors.Is(s.CreateLibrary("  Alice  "), errors.ErrAlreadyExists))
}

func TestSwitchLibraryPreservesUnsavedEdits(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateLibrary("Alice"))

	book, err := s.CreateBook()
	require.NoError(t, err)
	book.Title = "수정된 제목"
	_, err = s.UpdateBook(*book)
	require.NoError(t, err)

	require.NoError(t, s.CreateLibrary("Bob"))
	assert.Equal(t, "Bob", s.ActiveLibrary())
	books, err := s.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, books)

	// Switching back restores the unsaved edit made before the switch.
	require.NoError(t, s.SwitchLibrary("Alice"))
	books, err = s.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "수정된 제목", books[0].Title)
}

func TestSwitchLibraryUnknown(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateLibrary("Alice"))
	assert.True(t, errors.Is(s.SwitchLibrary("Nobody"), errors.ErrNotFound))
	assert.Equal(t, "Alice", s.ActiveLibrary())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	adapter, err := storage.OpenBadger(filepath.Join(dir, "db"), nil)
	require.NoError(t, err)
	s := New(adapter, nil, NewNoopEmitter())

	require.NoError(t, s.CreateLibrary("Alice"))
	book, err := s.CreateBook()
	require.NoError(t, err)
	require.NoError(t, s.CreateLibrary("Bob"))

	receipt, err := s.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.Revision)
	require.NoError(t, s.Close())

	adapter, err = storage.OpenBadger(filepath.Join(dir, "db"), nil)
	require.NoError(t, err)
	s = New(adapter, nil, NewNoopEmitter())
	defer s.Close()
	require.NoError(t, s.Load(ctx))

	// The first library created becomes active after a load.
	assert.Equal(t, "Alice", s.ActiveLibrary())
	assert.Equal(t, []string{"Alice", "Bob"}, s.LibraryNames())
	got, err := s.GetBook(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "새로운 책", got.Title)
}

func TestSaveWithoutLibrary(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save(context.Background())
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateLibrary("Alice"))
	_, err := s.CreateBook()
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Get("Alice").Books[0].Title = "changed"

	books, err := s.ListBooks()
	require.NoError(t, err)
	assert.Equal(t, "새로운 책", books[0].Title)
}

func TestNextIDStrictlyIncreasing(t *testing.T) {
	s := newTestStore(t)
	prev := int64(0)
	for range 100 {
		id := s.nextID()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestGenres(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateLibrary("Alice"))

	assert.True(t, errors.Is(s.AddGenre(" "), errors.ErrValidation))
	require.NoError(t, s.AddGenre("소설"))
	require.NoError(t, s.AddGenre("소설")) // duplicate is a no-op
	require.NoError(t, s.AddGenre("에세이"))

	book, err := s.CreateBook()
	require.NoError(t, err)
	book.Category = []string{"역사"}
	_, err = s.UpdateBook(*book)
	require.NoError(t, err)

	genres, err := s.UsedGenres()
	require.NoError(t, err)
	assert.Equal(t, []string{"소설", "에세이", "역사"}, genres)
}

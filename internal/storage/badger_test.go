package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
)

func openTestBadger(t *testing.T) *BadgerAdapter {
	t.Helper()
	a, err := OpenBadger(filepath.Join(t.TempDir(), "db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func testRegistry() *domain.Registry {
	reg := domain.NewRegistry()
	lib := domain.NewLibrary("Alice")
	lib.Books = append(lib.Books, domain.Book{ID: 1, Title: "새로운 책", TotalPages: 300, Status: "대기 중", Category: []string{}})
	reg.Put(lib)
	reg.Put(domain.NewLibrary("Bob"))
	return reg
}

func TestBadgerLoadAbsent(t *testing.T) {
	a := openTestBadger(t)

	_, err := a.Load(context.Background())
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestBadgerSaveLoadRoundTrip(t *testing.T) {
	a := openTestBadger(t)
	ctx := context.Background()

	receipt, err := a.Save(ctx, testRegistry())
	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.Revision)
	assert.NotEmpty(t, receipt.ID)
	assert.False(t, receipt.SavedAt.IsZero())

	got, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, got.Names())
	assert.Equal(t, "새로운 책", got.Get("Alice").Books[0].Title)
}

func TestBadgerRevisionIncrements(t *testing.T) {
	a := openTestBadger(t)
	ctx := context.Background()
	reg := testRegistry()

	for want := int64(1); want <= 3; want++ {
		receipt, err := a.Save(ctx, reg)
		require.NoError(t, err)
		assert.Equal(t, want, receipt.Revision)
	}
}

func TestBadgerCorruptDocumentTreatedAsAbsent(t *testing.T) {
	a := openTestBadger(t)

	require.NoError(t, a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(registryKey, []byte("not json"))
	}))

	_, err := a.Load(context.Background())
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

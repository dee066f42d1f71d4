package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoundTrip(t *testing.T) {
	reg := NewRegistry()

	alice := NewLibrary("Alice")
	alice.Books = append(alice.Books, Book{ID: 1, Title: "새로운 책", Author: "김작가", TotalPages: 300, Status: "대기 중", Category: []string{"소설"}})
	alice.Chapters = append(alice.Chapters, Chapter{ID: 10, BookID: 1, Index: "1", Title: "새로운 챕터 1"})
	alice.Details = append(alice.Details, Detail{ID: 100, ChapterID: 10, Index: "1", Title: "세부 항목 1", StartPage: 1, EndPage: 10, Content: "hello"})
	alice.CustomGenres = []string{"소설", "에세이"}
	reg.Put(alice)

	reg.Put(NewLibrary("Bob"))
	reg.Put(NewLibrary("Carol"))

	data, err := json.Marshal(reg)
	require.NoError(t, err)

	var got Registry
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, got.Names())
	assert.Equal(t, alice.Books, got.Get("Alice").Books)
	assert.Equal(t, alice.Chapters, got.Get("Alice").Chapters)
	assert.Equal(t, alice.Details, got.Get("Alice").Details)
	assert.Equal(t, alice.CustomGenres, got.Get("Alice").CustomGenres)
	assert.Empty(t, got.Get("Bob").Books)
}

func TestRegistryOrderPreservedAcrossManyLibraries(t *testing.T) {
	// Map iteration order would scramble this; key order in the document
	// must win.
	names := []string{"zeta", "alpha", "mu", "베타", "01", "aa"}
	reg := NewRegistry()
	for _, n := range names {
		reg.Put(NewLibrary(n))
	}

	data, err := json.Marshal(reg)
	require.NoError(t, err)

	var got Registry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, names, got.Names())
}

func TestRegistryUnmarshalMissingCollections(t *testing.T) {
	// Older saves may omit collections entirely; they load as empty.
	var got Registry
	require.NoError(t, json.Unmarshal([]byte(`{"Alice":{}}`), &got))

	lib := got.Get("Alice")
	require.NotNil(t, lib)
	assert.NotNil(t, lib.Books)
	assert.NotNil(t, lib.Chapters)
	assert.NotNil(t, lib.Details)
	assert.NotNil(t, lib.CustomGenres)
}

func TestRegistryUnmarshalRejectsNonObject(t *testing.T) {
	var got Registry
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &got))
}

func TestRegistryPutReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Put(NewLibrary("Alice"))
	reg.Put(NewLibrary("Bob"))

	updated := NewLibrary("Alice")
	updated.Books = append(updated.Books, Book{ID: 1, Title: "x"})
	reg.Put(updated)

	assert.Equal(t, []string{"Alice", "Bob"}, reg.Names())
	assert.Len(t, reg.Get("Alice").Books, 1)
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	require.NoError(t, s.CreateLibrary("Alice"))

	book, err := s.CreateBook()
	require.NoError(t, err)
	book.Title = "데미안"
	book.Author = "헤르만 헤세"
	_, err = s.UpdateBook(*book)
	require.NoError(t, err)

	chapter, err := s.CreateChapter(book.ID)
	require.NoError(t, err)
	chapter.Title = "새는 알에서 나오려고 투쟁한다"
	_, err = s.UpdateChapter(*chapter)
	require.NoError(t, err)

	detail, err := s.CreateDetail(chapter.ID)
	require.NoError(t, err)
	detail.Title = "첫 문장"
	detail.Content = "데미안을 읽고 쓴 메모"
	_, err = s.UpdateDetail(*detail)
	require.NoError(t, err)

	return s
}

func TestSearchBlankQuery(t *testing.T) {
	s := searchFixture(t)

	for _, q := range []string{"", "   ", "\t"} {
		results, err := s.Search(q)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestSearchGroupsAndOrder(t *testing.T) {
	s := searchFixture(t)

	// "데미안" appears in a book title and a detail's content.
	results, err := s.Search("데미안")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, ResultTypeBook, results[0].Type)
	assert.Equal(t, "데미안", results[0].Title)
	assert.Equal(t, "헤르만 헤세", results[0].Desc)
	assert.Equal(t, ResultTypeDetail, results[1].Type)
	assert.Equal(t, "첫 문장", results[1].Title)
}

func TestSearchMatchesAuthor(t *testing.T) {
	s := searchFixture(t)

	results, err := s.Search("헤세")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "book", results[0].Target)
}

func TestSearchCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateLibrary("Alice"))
	book, err := s.CreateBook()
	require.NoError(t, err)
	book.Title = "The Great Gatsby"
	_, err = s.UpdateBook(*book)
	require.NoError(t, err)

	for _, q := range []string{"great", "GREAT", "gReAt"} {
		results, err := s.Search(q)
		require.NoError(t, err)
		require.Len(t, results, 1, "query %q", q)
	}
}

func TestSearchResultCarriesParentIDs(t *testing.T) {
	s := searchFixture(t)

	results, err := s.Search("투쟁")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ResultTypeChapter, results[0].Type)
	assert.Positive(t, results[0].BookID)
	assert.Equal(t, "데미안", results[0].Desc)

	results, err = s.Search("문장")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Positive(t, results[0].ChapterID)
}

func TestSearchOrphanedEntities(t *testing.T) {
	s := searchFixture(t)

	// Delete the book; its chapter stays searchable but loses the
	// resolvable parent description.
	books, err := s.ListBooks()
	require.NoError(t, err)
	require.NoError(t, s.DeleteBook(books[0].ID))

	results, err := s.Search("투쟁")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "소속 불명", results[0].Desc)
}

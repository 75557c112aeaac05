package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

// newTestRepository returns an initialized repository backed by a file in a
// temp directory.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	r := NewRepository(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, r.Initialize(context.Background()))
	t.Cleanup(func() { r.Close() })
	return r
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	books, verses, err := r.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 66, books)
	assert.Equal(t, len(seedVerses), verses)

	require.NoError(t, r.Initialize(ctx))

	books2, verses2, err := r.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, books, books2)
	assert.Equal(t, verses, verses2)
}

func TestInitializeReopensExistingDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	first := NewRepository(path)
	require.NoError(t, first.Initialize(ctx))
	require.NoError(t, first.Close())

	second := NewRepository(path)
	require.NoError(t, second.Initialize(ctx))
	defer second.Close()

	books, verses, err := second.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 66, books)
	assert.Equal(t, len(seedVerses), verses)
}

func TestInitializeFailureWrapsErrCatalogInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nested", "catalog.db")
	r := NewRepository(path)

	err := r.Initialize(context.Background())
	require.ErrorIs(t, err, types.ErrCatalogInit)

	_, err = r.Books(context.Background())
	assert.ErrorIs(t, err, types.ErrCatalogNotInitialized, "failed initialize leaves repository unusable")
}

func TestQueriesBeforeInitializeFail(t *testing.T) {
	ctx := context.Background()
	r := NewRepository(":memory:")

	calls := map[string]func() error{
		"Books": func() error { _, err := r.Books(ctx); return err },
		"BooksByTestament": func() error {
			_, err := r.BooksByTestament(ctx, types.TestamentOld)
			return err
		},
		"Book":        func() error { _, err := r.Book(ctx, 1); return err },
		"BookByName":  func() error { _, err := r.BookByName(ctx, "Genesis"); return err },
		"Chapters":    func() error { _, err := r.Chapters(ctx, 1); return err },
		"Chapter":     func() error { _, err := r.Chapter(ctx, 1, 1); return err },
		"Verse":       func() error { _, err := r.Verse(ctx, 1, 1, 1); return err },
		"Search":      func() error { _, err := r.Search(ctx, "God"); return err },
		"RandomVerse": func() error { _, err := r.RandomVerse(ctx); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), types.ErrCatalogNotInitialized)
		})
	}
}

func TestQueriesAfterCloseFail(t *testing.T) {
	r := NewRepository(":memory:")
	require.NoError(t, r.Initialize(context.Background()))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "close is idempotent")

	_, err := r.Books(context.Background())
	assert.ErrorIs(t, err, types.ErrCatalogNotInitialized)
}

func TestMemoryCatalog(t *testing.T) {
	r := NewRepository(":memory:")
	require.NoError(t, r.Initialize(context.Background()))
	defer r.Close()

	books, err := r.Books(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 66)
}

func TestBooks(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	books, err := r.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 66)
	for i, b := range books {
		assert.Equal(t, i+1, b.ID, "books are ordered by id")
	}
	assert.Equal(t, types.Book{ID: 1, Name: "Genesis", Testament: types.TestamentOld, ChapterCount: 50}, books[0])
	assert.Equal(t, types.Book{ID: 66, Name: "Revelation", Testament: types.TestamentNew, ChapterCount: 22}, books[65])
}

func TestBooksByTestamentPartitionsBooks(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	all, err := r.Books(ctx)
	require.NoError(t, err)
	old, err := r.BooksByTestament(ctx, types.TestamentOld)
	require.NoError(t, err)
	nt, err := r.BooksByTestament(ctx, types.TestamentNew)
	require.NoError(t, err)

	assert.Len(t, old, 39)
	assert.Len(t, nt, 27)
	for _, b := range old {
		assert.Equal(t, types.TestamentOld, b.Testament)
	}
	for _, b := range nt {
		assert.Equal(t, types.TestamentNew, b.Testament)
	}
	assert.Equal(t, all, append(append([]types.Book{}, old...), nt...))
}

func TestBooksByTestamentRejectsUnknown(t *testing.T) {
	r := newTestRepository(t)
	_, err := r.BooksByTestament(context.Background(), "apocrypha")
	assert.ErrorIs(t, err, types.ErrInvalidTestament)
}

func TestBookLookups(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	b, err := r.Book(ctx, 43)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "John", b.Name)

	b, err = r.Book(ctx, 67)
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = r.BookByName(ctx, "  song of solomon ")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 22, b.ID)

	b, err = r.BookByName(ctx, "Maccabees")
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestChaptersListsOnlySeededChapters(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	tests := []struct {
		name   string
		bookID int
		want   []int
	}{
		{name: "psalms", bookID: 19, want: []int{23, 91}},
		{name: "matthew", bookID: 40, want: []int{1, 5, 6}},
		{name: "genesis", bookID: 1, want: []int{1}},
		{name: "book without verses", bookID: 2, want: []int{}},
		{name: "unknown book", bookID: 99, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Chapters(ctx, tt.bookID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChapter(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	ch, err := r.Chapter(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, ch.Book)
	assert.Equal(t, 1, ch.Chapter)
	require.NotEmpty(t, ch.Verses)

	first := ch.Verses[0]
	assert.Equal(t, 1, first.Verse)
	assert.Equal(t, "In the beginning God created the heaven and the earth.", first.Text)
	assert.Equal(t, "Genesis", first.BookName)

	for i := 1; i < len(ch.Verses); i++ {
		assert.Less(t, ch.Verses[i-1].Verse, ch.Verses[i].Verse, "verses ordered by number")
	}
}

func TestChapterWithoutVersesIsEmpty(t *testing.T) {
	ch, err := newTestRepository(t).Chapter(context.Background(), 2, 20)
	require.NoError(t, err)
	require.NotNil(t, ch)
	assert.NotNil(t, ch.Verses)
	assert.Empty(t, ch.Verses)
}

func TestVerse(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)
	books, err := r.Books(ctx)
	require.NoError(t, err)

	for i, sv := range seedVerses {
		v, err := r.Verse(ctx, sv.book, sv.chapter, sv.verse)
		require.NoError(t, err)
		require.NotNil(t, v, "seeded verse %d:%d:%d", sv.book, sv.chapter, sv.verse)
		assert.Equal(t, i+1, v.ID)
		assert.Equal(t, sv.text, v.Text)
		assert.Equal(t, books[sv.book-1].Name, v.BookName)
	}
}

func TestVerseNotSeededReturnsNil(t *testing.T) {
	v, err := newTestRepository(t).Verse(context.Background(), 1, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	t.Run("LORD finds psalms before proverbs", func(t *testing.T) {
		got, err := r.Search(ctx, "LORD")
		require.NoError(t, err)

		var psalms, proverbsIdx, lastPsalm int
		proverbsIdx = -1
		for i, v := range got {
			if v.Book == 19 {
				psalms++
				lastPsalm = i
			}
			if v.Book == 20 && proverbsIdx < 0 {
				proverbsIdx = i
			}
		}
		assert.GreaterOrEqual(t, psalms, 3)
		require.GreaterOrEqual(t, proverbsIdx, 0)
		assert.Less(t, lastPsalm, proverbsIdx)
	})

	t.Run("results ordered by reference", func(t *testing.T) {
		got, err := r.Search(ctx, "God")
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			a, b := got[i-1], got[i]
			before := a.Book < b.Book ||
				(a.Book == b.Book && a.Chapter < b.Chapter) ||
				(a.Book == b.Book && a.Chapter == b.Chapter && a.Verse < b.Verse)
			assert.True(t, before, "%s before %s", a.VerseID(), b.VerseID())
		}
	})

	t.Run("ignores ascii case", func(t *testing.T) {
		upper, err := r.Search(ctx, "SHEPHERD")
		require.NoError(t, err)
		lower, err := r.Search(ctx, "shepherd")
		require.NoError(t, err)
		assert.Equal(t, upper, lower)
		assert.NotEmpty(t, upper)
	})

	t.Run("empty keyword returns every verse", func(t *testing.T) {
		got, err := r.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, got, len(seedVerses))
	})

	t.Run("wildcards match literally", func(t *testing.T) {
		got, err := r.Search(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = r.Search(ctx, "_")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		got, err := r.Search(ctx, "zebra")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestRandomVerse(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	for i := 0; i < 20; i++ {
		v, err := r.RandomVerse(ctx)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.NotEmpty(t, v.BookName)

		seeded, err := r.Verse(ctx, v.Book, v.Chapter, v.Verse)
		require.NoError(t, err)
		assert.Equal(t, seeded, v)
	}
}

func TestRandomVerseOnEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	_, err := r.db.ExecContext(ctx, "DELETE FROM verses")
	require.NoError(t, err)

	_, err = r.RandomVerse(ctx)
	assert.ErrorIs(t, err, types.ErrNoVerses)
}

package types

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Testament partitions the 66 books into old (39) and new (27).
type Testament string

// Testament values as stored in the catalog.
const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// Valid reports whether t is one of the two known testaments.
func (t Testament) Valid() bool {
	return t == TestamentOld || t == TestamentNew
}

// Book is a static catalog entry. IDs run from 1 (Genesis) to 66 (Revelation).
type Book struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Testament    Testament `json:"testament"`
	ChapterCount int       `json:"chapter_count"`
}

// Verse is a seeded verse joined with its book name.
type Verse struct {
	ID       int    `json:"id"`
	Book     int    `json:"book"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
	BookName string `json:"book_name"`
}

// VerseID returns the composite "book-chapter-verse" key used by annotations.
func (v Verse) VerseID() string {
	return VerseID(v.Book, v.Chapter, v.Verse)
}

// Chapter holds the seeded verses of one chapter, ordered by verse number.
// Verses is empty, not nil, when nothing is seeded for the chapter.
type Chapter struct {
	Book    int     `json:"book"`
	Chapter int     `json:"chapter"`
	Verses  []Verse `json:"verses"`
}

// Catalog answers read-only queries against the static book and verse set.
// Every query returns ErrCatalogNotInitialized until Initialize succeeds.
type Catalog interface {
	// Initialize creates the schema and upserts the seed data. Safe to call
	// more than once. Failures wrap ErrCatalogInit.
	Initialize(ctx context.Context) error

	// Books returns all books ordered by id.
	Books(ctx context.Context) ([]Book, error)

	// BooksByTestament returns the books of one testament ordered by id.
	BooksByTestament(ctx context.Context, t Testament) ([]Book, error)

	// Book returns the book with the given id, or nil when there is none.
	Book(ctx context.Context, id int) (*Book, error)

	// BookByName returns the book with the given name (case-insensitive),
	// or nil when there is none.
	BookByName(ctx context.Context, name string) (*Book, error)

	// Chapters returns the distinct chapter numbers that have at least one
	// seeded verse, ascending. The result may be shorter than ChapterCount.
	Chapters(ctx context.Context, bookID int) ([]int, error)

	// Chapter returns the verses of a chapter ordered by verse number.
	Chapter(ctx context.Context, bookID, chapter int) (*Chapter, error)

	// Verse returns a single verse, or nil when it is not seeded.
	Verse(ctx context.Context, bookID, chapter, verse int) (*Verse, error)

	// Search returns verses whose text contains keyword, ignoring ASCII case,
	// ordered by book, chapter, verse.
	Search(ctx context.Context, keyword string) ([]Verse, error)

	// RandomVerse returns a uniformly chosen verse. Returns ErrNoVerses when
	// the catalog is empty.
	RandomVerse(ctx context.Context) (*Verse, error)
}

// Catalog errors.
var (
	ErrCatalogInit           = errors.New("catalog initialization failed")
	ErrCatalogNotInitialized = errors.New("catalog is not initialized")
	ErrNoVerses              = errors.New("no verses in catalog")
	ErrInvalidTestament      = errors.New("invalid testament")
	ErrBookNotFound          = errors.New("book not found")
	ErrInvalidVerseID        = errors.New("invalid verse id")
)

// VerseID formats the composite annotation key for a verse.
func VerseID(book, chapter, verse int) string {
	return fmt.Sprintf("%d-%d-%d", book, chapter, verse)
}

// ParseVerseID splits a "book-chapter-verse" key into its parts.
// Returns ErrInvalidVerseID unless all three parts are positive integers.
func ParseVerseID(id string) (book, chapter, verse int, err error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidVerseID, id)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 1 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidVerseID, id)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

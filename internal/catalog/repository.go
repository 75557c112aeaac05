// Package catalog implements the verse repository: a SQLite store seeded from
// an embedded table of 66 books and a curated set of KJV verses.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/lamp/internal/log"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

// Repository implements types.Catalog. The zero value is not usable; call
// NewRepository and then Initialize.
type Repository struct {
	mu     sync.RWMutex
	path   string
	db     *sql.DB
	logger *slog.Logger
}

var _ types.Catalog = (*Repository)(nil)

// NewRepository returns an uninitialized repository backed by the SQLite
// database at path. Use ":memory:" for a throwaway catalog.
func NewRepository(path string) *Repository {
	return &Repository{
		path:   path,
		logger: log.WithComponent("catalog"),
	}
}

// Initialize opens the database on first use, creates the schema, and upserts
// the seed data. Calling it again re-applies the seed without duplicating
// rows. Every failure wraps types.ErrCatalogInit.
func (r *Repository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	db := r.db
	if db == nil {
		var err error
		db, err = sql.Open("sqlite", r.path)
		if err != nil {
			return fmt.Errorf("%w: opening %s: %w", types.ErrCatalogInit, r.path, err)
		}
		// One connection keeps ":memory:" databases coherent across queries.
		db.SetMaxOpenConns(1)
	}

	if err := prepareSchema(ctx, db); err != nil {
		if r.db == nil {
			db.Close()
		}
		return fmt.Errorf("%w: %w", types.ErrCatalogInit, err)
	}
	if err := seedCatalog(ctx, db); err != nil {
		if r.db == nil {
			db.Close()
		}
		return fmt.Errorf("%w: %w", types.ErrCatalogInit, err)
	}

	r.db = db
	r.logger.Debug("catalog initialized",
		slog.String("path", r.path),
		slog.Int("books", len(seedBooks)),
		slog.Int("verses", len(seedVerses)))
	return nil
}

func prepareSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// Close releases the database. Queries after Close return
// types.ErrCatalogNotInitialized. Idempotent.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// conn returns the open database or ErrCatalogNotInitialized. The caller must
// hold r.mu.
func (r *Repository) conn() (*sql.DB, error) {
	if r.db == nil {
		return nil, types.ErrCatalogNotInitialized
	}
	return r.db, nil
}

// Books returns all books ordered by id.
func (r *Repository) Books(ctx context.Context) ([]types.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, name, testament, chapter_count FROM books ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	return scanBooks(rows)
}

// BooksByTestament returns the books of t ordered by id.
func (r *Repository) BooksByTestament(ctx context.Context, t types.Testament) ([]types.Book, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidTestament, t)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, name, testament, chapter_count FROM books WHERE testament = ? ORDER BY id",
		string(t))
	if err != nil {
		return nil, fmt.Errorf("querying %s testament books: %w", t, err)
	}
	return scanBooks(rows)
}

// Book returns the book with id, or nil when there is none.
func (r *Repository) Book(ctx context.Context, id int) (*types.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		"SELECT id, name, testament, chapter_count FROM books WHERE id = ?", id)
	return scanBook(row)
}

// BookByName returns the book whose name matches, ignoring case and
// surrounding space, or nil when there is none.
func (r *Repository) BookByName(ctx context.Context, name string) (*types.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		"SELECT id, name, testament, chapter_count FROM books WHERE name = ? COLLATE NOCASE",
		strings.TrimSpace(name))
	return scanBook(row)
}

// Chapters returns the chapter numbers of bookID that have seeded verses.
func (r *Repository) Chapters(ctx context.Context, bookID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT DISTINCT chapter FROM verses WHERE book = ? ORDER BY chapter", bookID)
	if err != nil {
		return nil, fmt.Errorf("querying chapters of book %d: %w", bookID, err)
	}
	defer rows.Close()

	chapters := []int{}
	for rows.Next() {
		var ch int
		if err := rows.Scan(&ch); err != nil {
			return nil, fmt.Errorf("scanning chapter: %w", err)
		}
		chapters = append(chapters, ch)
	}
	return chapters, rows.Err()
}

// Chapter returns the verses of one chapter. A chapter with no seeded verses
// yields an empty verse list, not an error.
func (r *Repository) Chapter(ctx context.Context, bookID, chapter int) (*types.Chapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		verseSelect+" WHERE v.book = ? AND v.chapter = ? ORDER BY v.verse",
		bookID, chapter)
	if err != nil {
		return nil, fmt.Errorf("querying chapter %d:%d: %w", bookID, chapter, err)
	}
	verses, err := scanVerses(rows)
	if err != nil {
		return nil, err
	}
	return &types.Chapter{Book: bookID, Chapter: chapter, Verses: verses}, nil
}

// Verse returns one verse, or nil when it is not seeded.
func (r *Repository) Verse(ctx context.Context, bookID, chapter, verse int) (*types.Verse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		verseSelect+" WHERE v.book = ? AND v.chapter = ? AND v.verse = ?",
		bookID, chapter, verse)
	v, err := scanVerse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying verse %d:%d:%d: %w", bookID, chapter, verse, err)
	}
	return v, nil
}

// likeEscaper makes LIKE wildcards in a keyword match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns verses whose text contains keyword. Matching is SQLite LIKE:
// case-insensitive for ASCII letters. An empty keyword matches every verse.
func (r *Repository) Search(ctx context.Context, keyword string) ([]types.Verse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	pattern := "%" + likeEscaper.Replace(keyword) + "%"
	rows, err := db.QueryContext(ctx,
		verseSelect+` WHERE v.text LIKE ? ESCAPE '\' ORDER BY v.book, v.chapter, v.verse`,
		pattern)
	if err != nil {
		return nil, fmt.Errorf("searching verses: %w", err)
	}
	return scanVerses(rows)
}

// RandomVerse returns a uniformly chosen verse.
func (r *Repository) RandomVerse(ctx context.Context) (*types.Verse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, verseSelect+" ORDER BY RANDOM() LIMIT 1")
	v, err := scanVerse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNoVerses
	}
	if err != nil {
		return nil, fmt.Errorf("selecting random verse: %w", err)
	}
	return v, nil
}

// Counts returns the number of books and verses in the catalog.
func (r *Repository) Counts(ctx context.Context) (books, verses int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	db, err := r.conn()
	if err != nil {
		return 0, 0, err
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&books); err != nil {
		return 0, 0, fmt.Errorf("counting books: %w", err)
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM verses").Scan(&verses); err != nil {
		return 0, 0, fmt.Errorf("counting verses: %w", err)
	}
	return books, verses, nil
}

func scanBook(row *sql.Row) (*types.Book, error) {
	var b types.Book
	var testament string
	err := row.Scan(&b.ID, &b.Name, &testament, &b.ChapterCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning book: %w", err)
	}
	b.Testament = types.Testament(testament)
	return &b, nil
}

func scanBooks(rows *sql.Rows) ([]types.Book, error) {
	defer rows.Close()

	books := []types.Book{}
	for rows.Next() {
		var b types.Book
		var testament string
		if err := rows.Scan(&b.ID, &b.Name, &testament, &b.ChapterCount); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		b.Testament = types.Testament(testament)
		books = append(books, b)
	}
	return books, rows.Err()
}

// scanVerse returns sql.ErrNoRows unwrapped so callers can map it.
func scanVerse(row *sql.Row) (*types.Verse, error) {
	var v types.Verse
	if err := row.Scan(&v.ID, &v.Book, &v.Chapter, &v.Verse, &v.Text, &v.BookName); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVerses(rows *sql.Rows) ([]types.Verse, error) {
	defer rows.Close()

	verses := []types.Verse{}
	for rows.Next() {
		var v types.Verse
		if err := rows.Scan(&v.ID, &v.Book, &v.Chapter, &v.Verse, &v.Text, &v.BookName); err != nil {
			return nil, fmt.Errorf("scanning verse: %w", err)
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

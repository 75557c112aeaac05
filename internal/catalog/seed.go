package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// seedCatalog upserts every seed book and verse inside one transaction.
// Verse ids are positional, so re-seeding replaces rows instead of adding
// new ones.
func seedCatalog(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	bookStmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO books (id, name, testament, chapter_count) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing book insert: %w", err)
	}
	defer bookStmt.Close()

	for _, b := range seedBooks {
		if _, err := bookStmt.ExecContext(ctx, b.ID, b.Name, string(b.Testament), b.ChapterCount); err != nil {
			return fmt.Errorf("seeding book %s: %w", b.Name, err)
		}
	}

	verseStmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO verses (id, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing verse insert: %w", err)
	}
	defer verseStmt.Close()

	for i, v := range seedVerses {
		if _, err := verseStmt.ExecContext(ctx, i+1, v.book, v.chapter, v.verse, v.text); err != nil {
			return fmt.Errorf("seeding verse %d:%d:%d: %w", v.book, v.chapter, v.verse, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

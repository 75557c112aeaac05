package types

import "context"

// Highlight marks a verse with a color. A verse may carry several highlights.
type Highlight struct {
	ID        string `json:"id"`
	VerseID   string `json:"verseId"`
	Color     string `json:"color"`
	Timestamp int64  `json:"timestamp"` // Milliseconds since the Unix epoch.
}

// Note is free text attached to a verse.
type Note struct {
	ID        string `json:"id"`
	VerseID   string `json:"verseId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Bookmark copies the verse content at save time; later catalog changes are
// not reflected.
type Bookmark struct {
	ID        string `json:"id"`
	VerseID   string `json:"verseId"`
	BookName  string `json:"bookName"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// HistoryItem records a verse visit. The history holds at most one item per
// VerseID, most recent first.
type HistoryItem struct {
	ID        string `json:"id"`
	VerseID   string `json:"verseId"`
	BookName  string `json:"bookName"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Annotations is the user annotation store. Getters never fail: unreadable
// persisted data yields an empty list. Mutations return persistence errors.
type Annotations interface {
	SaveHighlight(ctx context.Context, verseID, color string) (Highlight, error)
	Highlights(ctx context.Context) []Highlight
	RemoveHighlight(ctx context.Context, id string) error
	ToggleHighlight(ctx context.Context, verseID, color string) (bool, error)
	IsHighlighted(ctx context.Context, verseID string) bool

	SaveNote(ctx context.Context, verseID, text string) (Note, error)
	Notes(ctx context.Context) []Note
	NotesForVerse(ctx context.Context, verseID string) []Note
	UpdateNote(ctx context.Context, id, text string) error
	RemoveNote(ctx context.Context, id string) error

	SaveBookmark(ctx context.Context, verseID, bookName string, chapter, verse int, text string) (Bookmark, error)
	Bookmarks(ctx context.Context) []Bookmark
	RemoveBookmark(ctx context.Context, id string) error
	ToggleBookmark(ctx context.Context, v Verse) (bool, error)
	IsBookmarked(ctx context.Context, verseID string) bool

	AddToHistory(ctx context.Context, verseID, bookName string, chapter, verse int, text string) error
	History(ctx context.Context) []HistoryItem
	ClearHistory(ctx context.Context) error

	ClearAll(ctx context.Context) error
}

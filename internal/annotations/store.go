// Package annotations implements the user annotation store: highlights,
// notes, bookmarks and reading history, each persisted as one JSON array
// under a fixed key of a kv.Store.
package annotations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/lamp/internal/kv"
	"github.com/mesh-intelligence/lamp/internal/log"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

// DefaultHighlightColor is the color used when a caller toggles a highlight
// without choosing one.
const DefaultHighlightColor = "#FFD700"

// Options configures a Store. Zero values select the defaults.
type Options struct {
	HistoryLimit int              // Defaults to types.DefaultHistoryLimit.
	Now          func() time.Time // Defaults to time.Now.
	NewID        func() string    // Defaults to UUID v7 strings.
	Logger       *slog.Logger     // Defaults to the "annotations" component logger.
}

// Store implements types.Annotations.
//
// Every mutation reads the whole collection, changes it in memory, and writes
// it back. Mutations are serialized by a mutex, so concurrent callers in one
// process cannot lose each other's updates. Separate processes sharing a data
// directory still can.
type Store struct {
	mu           sync.Mutex
	kv           kv.Store
	historyLimit int
	now          func() time.Time
	newID        func() string
	logger       *slog.Logger
}

var _ types.Annotations = (*Store)(nil)

// New returns a Store persisting to store.
func New(store kv.Store, opts Options) *Store {
	s := &Store{
		kv:           store,
		historyLimit: opts.HistoryLimit,
		now:          opts.Now,
		newID:        opts.NewID,
		logger:       opts.Logger,
	}
	if s.historyLimit <= 0 {
		s.historyLimit = types.DefaultHistoryLimit
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = generateUUID
	}
	if s.logger == nil {
		s.logger = log.WithComponent("annotations")
	}
	return s
}

// generateUUID generates a UUID v7, which sorts by creation time.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (s *Store) timestamp() int64 {
	return s.now().UnixMilli()
}

// load reads the collection under key. A missing or unreadable value, or one
// that is not a JSON array, yields an empty collection. Records that fail
// their schema are skipped and the rest are kept. Failures are logged, never
// returned.
func load[T any](ctx context.Context, s *Store, key string) []T {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return []T{}
	}
	if err != nil {
		s.logger.Warn("reading collection failed", slog.String("key", key), slog.Any("err", err))
		return []T{}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("discarding malformed collection", slog.String("key", key), slog.Any("err", err))
		return []T{}
	}

	records := make([]T, 0, len(raw))
	for i, item := range raw {
		var record T
		err := validate(key, item)
		if err == nil {
			err = json.Unmarshal(item, &record)
		}
		if err != nil {
			s.logger.Warn("skipping malformed record",
				slog.String("key", key), slog.Int("index", i), slog.Any("err", err))
			continue
		}
		records = append(records, record)
	}
	return records
}

// save replaces the collection under key.
func save[T any](ctx context.Context, s *Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Highlights

// SaveHighlight appends a highlight. Existing highlights of the same verse
// are kept.
func (s *Store) SaveHighlight(ctx context.Context, verseID, color string) (types.Highlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveHighlightLocked(ctx, verseID, color)
}

func (s *Store) saveHighlightLocked(ctx context.Context, verseID, color string) (types.Highlight, error) {
	highlights := load[types.Highlight](ctx, s, KeyHighlights)
	h := types.Highlight{
		ID:        s.newID(),
		VerseID:   verseID,
		Color:     color,
		Timestamp: s.timestamp(),
	}
	highlights = append(highlights, h)
	if err := save(ctx, s, KeyHighlights, highlights); err != nil {
		return types.Highlight{}, err
	}
	return h, nil
}

// Highlights returns every highlight in insertion order.
func (s *Store) Highlights(ctx context.Context) []types.Highlight {
	return load[types.Highlight](ctx, s, KeyHighlights)
}

// RemoveHighlight deletes the highlight with id. Unknown ids are ignored.
func (s *Store) RemoveHighlight(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	highlights := load[types.Highlight](ctx, s, KeyHighlights)
	i := slices.IndexFunc(highlights, func(h types.Highlight) bool { return h.ID == id })
	if i < 0 {
		return nil
	}
	return save(ctx, s, KeyHighlights, slices.Delete(highlights, i, i+1))
}

// ToggleHighlight removes the first highlight of verseID if there is one,
// otherwise saves a new one with color. It reports whether the verse is
// highlighted afterwards, which stays true while duplicates remain.
func (s *Store) ToggleHighlight(ctx context.Context, verseID, color string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	highlights := load[types.Highlight](ctx, s, KeyHighlights)
	onVerse := func(h types.Highlight) bool { return h.VerseID == verseID }
	i := slices.IndexFunc(highlights, onVerse)
	if i >= 0 {
		remaining := slices.Delete(highlights, i, i+1)
		if err := save(ctx, s, KeyHighlights, remaining); err != nil {
			return true, err
		}
		return slices.ContainsFunc(remaining, onVerse), nil
	}
	if color == "" {
		color = DefaultHighlightColor
	}
	if _, err := s.saveHighlightLocked(ctx, verseID, color); err != nil {
		return false, err
	}
	return true, nil
}

// IsHighlighted reports whether verseID has at least one highlight.
func (s *Store) IsHighlighted(ctx context.Context, verseID string) bool {
	return slices.ContainsFunc(s.Highlights(ctx), func(h types.Highlight) bool { return h.VerseID == verseID })
}

// Notes

// SaveNote appends a note.
func (s *Store) SaveNote(ctx context.Context, verseID, text string) (types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := load[types.Note](ctx, s, KeyNotes)
	n := types.Note{
		ID:        s.newID(),
		VerseID:   verseID,
		Text:      text,
		Timestamp: s.timestamp(),
	}
	notes = append(notes, n)
	if err := save(ctx, s, KeyNotes, notes); err != nil {
		return types.Note{}, err
	}
	return n, nil
}

// Notes returns every note in insertion order.
func (s *Store) Notes(ctx context.Context) []types.Note {
	return load[types.Note](ctx, s, KeyNotes)
}

// NotesForVerse returns the notes attached to verseID.
func (s *Store) NotesForVerse(ctx context.Context, verseID string) []types.Note {
	notes := s.Notes(ctx)
	return slices.DeleteFunc(notes, func(n types.Note) bool { return n.VerseID != verseID })
}

// UpdateNote replaces the text of the note with id in place. The timestamp
// keeps the creation time. Unknown ids are ignored.
func (s *Store) UpdateNote(ctx context.Context, id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := load[types.Note](ctx, s, KeyNotes)
	i := slices.IndexFunc(notes, func(n types.Note) bool { return n.ID == id })
	if i < 0 {
		return nil
	}
	notes[i].Text = text
	return save(ctx, s, KeyNotes, notes)
}

// RemoveNote deletes the note with id. Unknown ids are ignored.
func (s *Store) RemoveNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := load[types.Note](ctx, s, KeyNotes)
	i := slices.IndexFunc(notes, func(n types.Note) bool { return n.ID == id })
	if i < 0 {
		return nil
	}
	return save(ctx, s, KeyNotes, slices.Delete(notes, i, i+1))
}

// Bookmarks

// SaveBookmark appends a bookmark carrying a copy of the verse content.
func (s *Store) SaveBookmark(ctx context.Context, verseID, bookName string, chapter, verse int, text string) (types.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveBookmarkLocked(ctx, verseID, bookName, chapter, verse, text)
}

func (s *Store) saveBookmarkLocked(ctx context.Context, verseID, bookName string, chapter, verse int, text string) (types.Bookmark, error) {
	bookmarks := load[types.Bookmark](ctx, s, KeyBookmarks)
	b := types.Bookmark{
		ID:        s.newID(),
		VerseID:   verseID,
		BookName:  bookName,
		Chapter:   chapter,
		Verse:     verse,
		Text:      text,
		Timestamp: s.timestamp(),
	}
	bookmarks = append(bookmarks, b)
	if err := save(ctx, s, KeyBookmarks, bookmarks); err != nil {
		return types.Bookmark{}, err
	}
	return b, nil
}

// Bookmarks returns every bookmark in insertion order.
func (s *Store) Bookmarks(ctx context.Context) []types.Bookmark {
	return load[types.Bookmark](ctx, s, KeyBookmarks)
}

// RemoveBookmark deletes the bookmark with id. Unknown ids are ignored.
func (s *Store) RemoveBookmark(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks := load[types.Bookmark](ctx, s, KeyBookmarks)
	i := slices.IndexFunc(bookmarks, func(b types.Bookmark) bool { return b.ID == id })
	if i < 0 {
		return nil
	}
	return save(ctx, s, KeyBookmarks, slices.Delete(bookmarks, i, i+1))
}

// ToggleBookmark removes the first bookmark of v if there is one, otherwise
// bookmarks v. It reports whether v is bookmarked afterwards, which stays
// true while duplicates remain.
func (s *Store) ToggleBookmark(ctx context.Context, v types.Verse) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	verseID := v.VerseID()
	bookmarks := load[types.Bookmark](ctx, s, KeyBookmarks)
	onVerse := func(b types.Bookmark) bool { return b.VerseID == verseID }
	i := slices.IndexFunc(bookmarks, onVerse)
	if i >= 0 {
		remaining := slices.Delete(bookmarks, i, i+1)
		if err := save(ctx, s, KeyBookmarks, remaining); err != nil {
			return true, err
		}
		return slices.ContainsFunc(remaining, onVerse), nil
	}
	if _, err := s.saveBookmarkLocked(ctx, verseID, v.BookName, v.Chapter, v.Verse, v.Text); err != nil {
		return false, err
	}
	return true, nil
}

// IsBookmarked reports whether verseID has a bookmark.
func (s *Store) IsBookmarked(ctx context.Context, verseID string) bool {
	return slices.ContainsFunc(s.Bookmarks(ctx), func(b types.Bookmark) bool { return b.VerseID == verseID })
}

// History

// AddToHistory records a visit: any earlier entry for verseID is dropped, the
// new entry goes to the front, and the list is cut to the history limit. The
// whole change lands in a single write.
func (s *Store) AddToHistory(ctx context.Context, verseID, bookName string, chapter, verse int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := load[types.HistoryItem](ctx, s, KeyHistory)
	history = slices.DeleteFunc(history, func(h types.HistoryItem) bool { return h.VerseID == verseID })

	item := types.HistoryItem{
		ID:        s.newID(),
		VerseID:   verseID,
		BookName:  bookName,
		Chapter:   chapter,
		Verse:     verse,
		Text:      text,
		Timestamp: s.timestamp(),
	}
	history = append([]types.HistoryItem{item}, history...)
	if len(history) > s.historyLimit {
		history = history[:s.historyLimit]
	}
	return save(ctx, s, KeyHistory, history)
}

// History returns visits, most recent first.
func (s *Store) History(ctx context.Context) []types.HistoryItem {
	return load[types.HistoryItem](ctx, s, KeyHistory)
}

// ClearHistory deletes the history collection.
func (s *Store) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, KeyHistory); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// ClearAll deletes all four collections. Every key is attempted; the errors
// are joined.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, key := range Keys {
		if err := s.kv.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("clearing %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

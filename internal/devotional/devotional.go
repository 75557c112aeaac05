// Package devotional builds the daily devotional view and formats verse
// references for display.
package devotional

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

// Daily pairs a verse with the prayer shown beneath it.
type Daily struct {
	Verse  types.Verse `json:"verse"`
	Prayer string      `json:"prayer"`
}

// VerseSource supplies random verses.
type VerseSource interface {
	RandomVerse(ctx context.Context) (*types.Verse, error)
}

// VerseOfTheDay picks a random verse from source and attaches its prayer.
func VerseOfTheDay(ctx context.Context, source VerseSource) (Daily, error) {
	v, err := source.RandomVerse(ctx)
	if err != nil {
		return Daily{}, fmt.Errorf("picking verse of the day: %w", err)
	}
	return Daily{Verse: *v, Prayer: Prayer(*v)}, nil
}

var prayers = [...]string{
	"Lord, help me to understand and apply this truth in my daily life.",
	"Father, may this verse guide my thoughts and actions today.",
	"God, thank you for this reminder of your love and wisdom.",
	"Heavenly Father, help me to live according to your word.",
	"Lord, may this scripture strengthen my faith and trust in you.",
	"Father, guide me to share this truth with others who need it.",
	"God, help me to meditate on this verse throughout the day.",
	"Lord, may this word be a lamp to my feet and a light to my path.",
}

// Prayer returns the prayer for v. The same verse always gets the same
// prayer.
func Prayer(v types.Verse) string {
	i := v.ID % len(prayers)
	if i < 0 {
		i += len(prayers)
	}
	return prayers[i]
}

// FormatReference renders v as "John 3:16".
func FormatReference(v types.Verse) string {
	return fmt.Sprintf("%s %d:%d", v.BookName, v.Chapter, v.Verse)
}

// FormatVerseText renders v as its verse number followed by its text.
func FormatVerseText(v types.Verse) string {
	return fmt.Sprintf("%d %s", v.Verse, v.Text)
}

// TestamentName returns the display name of t.
func TestamentName(t types.Testament) string {
	if t == types.TestamentOld {
		return "Old Testament"
	}
	return "New Testament"
}

// Abbreviation returns the short form of bookName, or bookName itself when
// it has none.
func Abbreviation(bookName string) string {
	if abbr, ok := abbreviations[bookName]; ok {
		return abbr
	}
	return bookName
}

// ParseReference splits a reference such as "1 John 3:16" or "Psalms 23"
// into book name, chapter and verse. Verse is 0 when the reference names a
// whole chapter.
func ParseReference(ref string) (bookName string, chapter, verse int, err error) {
	ref = strings.TrimSpace(ref)
	i := strings.LastIndexByte(ref, ' ')
	if i <= 0 {
		return "", 0, 0, fmt.Errorf("%w: %q", types.ErrInvalidReference, ref)
	}
	bookName = strings.TrimSpace(ref[:i])
	loc := ref[i+1:]

	chapterPart, versePart, hasVerse := strings.Cut(loc, ":")
	chapter, err = strconv.Atoi(chapterPart)
	if err != nil || chapter < 1 {
		return "", 0, 0, fmt.Errorf("%w: bad chapter in %q", types.ErrInvalidReference, ref)
	}
	if hasVerse {
		verse, err = strconv.Atoi(versePart)
		if err != nil || verse < 1 {
			return "", 0, 0, fmt.Errorf("%w: bad verse in %q", types.ErrInvalidReference, ref)
		}
	}
	return bookName, chapter, verse, nil
}

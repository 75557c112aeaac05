package devotional

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

var john316 = types.Verse{
	ID:       9,
	Book:     43,
	Chapter:  3,
	Verse:    16,
	Text:     "For God so loved the world",
	BookName: "John",
}

type fixedSource struct {
	verse *types.Verse
	err   error
}

func (f fixedSource) RandomVerse(context.Context) (*types.Verse, error) {
	return f.verse, f.err
}

func TestVerseOfTheDay(t *testing.T) {
	daily, err := VerseOfTheDay(context.Background(), fixedSource{verse: &john316})
	require.NoError(t, err)
	assert.Equal(t, john316, daily.Verse)
	assert.Equal(t, Prayer(john316), daily.Prayer)
}

func TestVerseOfTheDayPropagatesErrors(t *testing.T) {
	_, err := VerseOfTheDay(context.Background(), fixedSource{err: types.ErrNoVerses})
	assert.ErrorIs(t, err, types.ErrNoVerses)
}

func TestPrayerIsStablePerVerse(t *testing.T) {
	assert.Equal(t, prayers[1], Prayer(types.Verse{ID: 9}))
	assert.Equal(t, prayers[0], Prayer(types.Verse{ID: 8}))
	assert.Equal(t, Prayer(john316), Prayer(john316))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "John 3:16", FormatReference(john316))
	assert.Equal(t, "16 For God so loved the world", FormatVerseText(john316))
	assert.Equal(t, "Old Testament", TestamentName(types.TestamentOld))
	assert.Equal(t, "New Testament", TestamentName(types.TestamentNew))
}

func TestAbbreviation(t *testing.T) {
	assert.Len(t, abbreviations, 66)
	assert.Equal(t, "Gen", Abbreviation("Genesis"))
	assert.Equal(t, "1 Chron", Abbreviation("1 Chronicles"))
	assert.Equal(t, "Phlm", Abbreviation("Philemon"))
	assert.Equal(t, "Tobit", Abbreviation("Tobit"))
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		ref     string
		book    string
		chapter int
		verse   int
		wantErr bool
	}{
		{ref: "John 3:16", book: "John", chapter: 3, verse: 16},
		{ref: "1 John 3:16", book: "1 John", chapter: 3, verse: 16},
		{ref: "Song of Solomon 2:4", book: "Song of Solomon", chapter: 2, verse: 4},
		{ref: "  Psalms 23 ", book: "Psalms", chapter: 23},
		{ref: "John", wantErr: true},
		{ref: "John three:16", wantErr: true},
		{ref: "John 3:", wantErr: true},
		{ref: "John 0:1", wantErr: true},
		{ref: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			book, chapter, verse, err := ParseReference(tt.ref)
			if tt.wantErr {
				assert.True(t, errors.Is(err, types.ErrInvalidReference), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.book, book)
			assert.Equal(t, tt.chapter, chapter)
			assert.Equal(t, tt.verse, verse)
		})
	}
}

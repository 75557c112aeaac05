package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerseID(t *testing.T) {
	assert.Equal(t, "43-3-16", VerseID(43, 3, 16))
	v := Verse{Book: 1, Chapter: 1, Verse: 1}
	assert.Equal(t, "1-1-1", v.VerseID())
}

func TestParseVerseID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    [3]int
		wantErr bool
	}{
		{name: "valid id", id: "19-23-1", want: [3]int{19, 23, 1}},
		{name: "round trips VerseID", id: VerseID(66, 21, 4), want: [3]int{66, 21, 4}},
		{name: "too few parts", id: "19-23", wantErr: true},
		{name: "too many parts", id: "19-23-1-2", wantErr: true},
		{name: "non numeric", id: "john-3-16", wantErr: true},
		{name: "zero chapter", id: "43-0-16", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, c, v, err := ParseVerseID(tt.id)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidVerseID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, [3]int{b, c, v})
		})
	}
}

func TestTestamentValid(t *testing.T) {
	assert.True(t, TestamentOld.Valid())
	assert.True(t, TestamentNew.Valid())
	assert.False(t, Testament("apocrypha").Valid())
	assert.False(t, Testament("").Valid())
}

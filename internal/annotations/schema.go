package annotations

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Persisted collection keys.
const (
	KeyHighlights = "bible_highlights"
	KeyNotes      = "bible_notes"
	KeyBookmarks  = "bible_bookmarks"
	KeyHistory    = "bible_history"
)

// Keys lists every collection key.
var Keys = []string{KeyHighlights, KeyNotes, KeyBookmarks, KeyHistory}

const highlightSchema = `{
  "type": "object",
  "required": ["id", "verseId", "color", "timestamp"],
  "properties": {
    "id": {"type": "string"},
    "verseId": {"type": "string"},
    "color": {"type": "string"},
    "timestamp": {"type": "integer"}
  }
}`

const noteSchema = `{
  "type": "object",
  "required": ["id", "verseId", "text", "timestamp"],
  "properties": {
    "id": {"type": "string"},
    "verseId": {"type": "string"},
    "text": {"type": "string"},
    "timestamp": {"type": "integer"}
  }
}`

// passageSchema covers bookmarks and history items, which share a shape.
const passageSchema = `{
  "type": "object",
  "required": ["id", "verseId", "bookName", "chapter", "verse", "text", "timestamp"],
  "properties": {
    "id": {"type": "string"},
    "verseId": {"type": "string"},
    "bookName": {"type": "string"},
    "chapter": {"type": "integer"},
    "verse": {"type": "integer"},
    "text": {"type": "string"},
    "timestamp": {"type": "integer"}
  }
}`

// schemas maps each collection key to the compiled JSON schema of one of its
// records.
var schemas = map[string]*gojsonschema.Schema{
	KeyHighlights: mustSchema(highlightSchema),
	KeyNotes:      mustSchema(noteSchema),
	KeyBookmarks:  mustSchema(passageSchema),
	KeyHistory:    mustSchema(passageSchema),
}

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compiling collection schema: %v", err))
	}
	return s
}

// validate checks one persisted record against the schema for key.
func validate(key string, data []byte) error {
	schema, ok := schemas[key]
	if !ok {
		return fmt.Errorf("no schema for %s", key)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	if !result.Valid() {
		errs := result.Errors()
		return fmt.Errorf("%s does not match schema: %s (%d problems)", key, errs[0], len(errs))
	}
	return nil
}

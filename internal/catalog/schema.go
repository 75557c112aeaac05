package catalog

// Schema DDL for the catalog tables. Every statement is safe to re-run.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS books (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    testament TEXT NOT NULL,
    chapter_count INTEGER NOT NULL
);`

	createVerses = `CREATE TABLE IF NOT EXISTS verses (
    id INTEGER PRIMARY KEY,
    book INTEGER NOT NULL,
    chapter INTEGER NOT NULL,
    verse INTEGER NOT NULL,
    text TEXT NOT NULL,
    FOREIGN KEY (book) REFERENCES books(id)
);`
)

// Index DDL for lookups by reference and by testament.
const (
	idxVersesRef      = `CREATE UNIQUE INDEX IF NOT EXISTS idx_verses_ref ON verses(book, chapter, verse);`
	idxBooksTestament = `CREATE INDEX IF NOT EXISTS idx_books_testament ON books(testament);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createBooks,
	createVerses,
	idxVersesRef,
	idxBooksTestament,
}

// verseSelect joins each verse with its book name. Callers append WHERE and
// ORDER BY clauses.
const verseSelect = `SELECT v.id, v.book, v.chapter, v.verse, v.text, b.name
FROM verses v
JOIN books b ON v.book = b.id`

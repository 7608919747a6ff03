package search

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sahilm/fuzzy"

	"github.com/mattsolo1/nbc/pkg/frontmatter"
	"github.com/mattsolo1/nbc/pkg/models"
)

// Index is the SQLite-backed note store. It serves both roles the
// completion engine needs: ranked full-text search over note content
// and the flat set of hierarchical tags currently in use.
type Index struct {
	db     *sql.DB
	useFTS bool
}

// NewIndex opens (or creates) the index at dbPath. ":memory:" gives a
// throwaway in-memory store.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		db.Close()
		return nil, err
	}

	return idx, nil
}

// init creates the database schema
func (idx *Index) init() error {
	// First, check if FTS5 is available
	idx.useFTS = idx.checkFTS5Support()

	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT,
		content TEXT,
		raw_body TEXT,
		created_at TIMESTAMP,
		modified_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS note_tags (
		note_id TEXT,
		tag TEXT,
		PRIMARY KEY (note_id, tag)
	);

	CREATE INDEX IF NOT EXISTS idx_notes_title ON notes(title);
	CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag);
	`

	if _, err := idx.db.Exec(schema); err != nil {
		return err
	}

	if idx.useFTS {
		ftsSchema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
			id UNINDEXED,
			title,
			content,
			tokenize = 'porter unicode61'
		);
		`

		if _, err := idx.db.Exec(ftsSchema); err != nil {
			// If FTS creation fails, disable FTS and continue
			idx.useFTS = false
		}
	}

	return nil
}

// checkFTS5Support checks if FTS5 module is available
func (idx *Index) checkFTS5Support() bool {
	_, err := idx.db.Exec("CREATE VIRTUAL TABLE IF NOT EXISTS fts5_test USING fts5(content)")
	if err != nil {
		return false
	}

	_, _ = idx.db.Exec("DROP TABLE IF EXISTS fts5_test")
	return true
}

// Upsert indexes or reindexes a note, keyed by id. Title falls back to
// the frontmatter title when the note carries none; tags are collected
// from frontmatter and inline #tag tokens in the body.
func (idx *Index) Upsert(note models.Note) error {
	if note.ID == "" {
		return fmt.Errorf("upsert note: empty id")
	}

	title := note.Title
	content := frontmatter.Strip(note.RawBody)
	fm, body, err := frontmatter.Parse(note.RawBody)
	if err == nil && fm != nil && title == "" {
		title = fm.Title
	}

	tags := append([]string{}, note.Tags...)
	if err == nil && fm != nil {
		tags = append(tags, fm.Tags...)
	}
	tags = append(tags, models.InlineTags(body)...)

	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if idx.useFTS {
		if _, err = tx.Exec("DELETE FROM notes_fts WHERE id = ?", note.ID); err != nil {
			return err
		}
	}

	if _, err = tx.Exec("DELETE FROM notes WHERE id = ?", note.ID); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM note_tags WHERE note_id = ?", note.ID); err != nil {
		return err
	}

	if idx.useFTS {
		_, err = tx.Exec(`
			INSERT INTO notes_fts (id, title, content)
			VALUES (?, ?, ?)
		`, note.ID, title, content)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		INSERT INTO notes (id, title, content, raw_body, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, note.ID, title, content, note.RawBody, note.CreatedAt, note.ModifiedAt)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, tag := range tags {
		if !models.IsValidTagPath(tag) || seen[tag] {
			continue
		}
		seen[tag] = true
		if _, err = tx.Exec("INSERT INTO note_tags (note_id, tag) VALUES (?, ?)", note.ID, tag); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Search performs a ranked full-text search. An empty query returns no
// results. Ranking belongs to the store: FTS5 rank when available, a
// fuzzy title match with a content-substring fallback otherwise.
func (idx *Index) Search(query string, limit int) ([]models.Note, error) {
	if limit <= 0 {
		limit = 50
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if idx.useFTS {
		return idx.searchWithFTS(query, limit)
	}
	return idx.searchWithoutFTS(query, limit)
}

// searchWithFTS performs search using FTS5
func (idx *Index) searchWithFTS(query string, limit int) ([]models.Note, error) {
	rows, err := idx.db.Query(`
		SELECT n.id, n.title, n.raw_body, n.created_at, n.modified_at
		FROM notes_fts f
		JOIN notes n ON f.id = n.id
		WHERE notes_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, matchExpression(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

// matchExpression quotes each query term as a prefix token so user
// input cannot be misread as FTS5 query syntax.
func matchExpression(query string) string {
	terms := strings.Fields(query)
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ReplaceAll(term, `"`, `""`)
		quoted = append(quoted, `"`+term+`"*`)
	}
	return strings.Join(quoted, " ")
}

// searchWithoutFTS ranks by fuzzy title match, then by content
// substring for notes the title pass missed.
func (idx *Index) searchWithoutFTS(query string, limit int) ([]models.Note, error) {
	rows, err := idx.db.Query(`
		SELECT id, title, raw_body, created_at, modified_at
		FROM notes
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all, err := scanNotes(rows)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(all))
	for i, n := range all {
		titles[i] = n.Title
	}

	var results []models.Note
	included := make(map[string]bool)
	for _, m := range fuzzy.Find(query, titles) {
		note := all[m.Index]
		results = append(results, note)
		included[note.ID] = true
	}

	lower := strings.ToLower(query)
	for _, n := range all {
		if included[n.ID] {
			continue
		}
		if strings.Contains(strings.ToLower(frontmatter.Strip(n.RawBody)), lower) {
			results = append(results, n)
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	var results []models.Note
	for rows.Next() {
		var note models.Note
		var title sql.NullString
		err := rows.Scan(&note.ID, &title, &note.RawBody, &note.CreatedAt, &note.ModifiedAt)
		if err != nil {
			return nil, err
		}
		note.Title = title.String
		results = append(results, note)
	}
	return results, rows.Err()
}

// Tags returns every distinct tag path currently in use, sorted.
func (idx *Index) Tags() ([]string, error) {
	rows, err := idx.db.Query("SELECT DISTINCT tag FROM note_tags")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(tags)
	return tags, nil
}

// Get fetches a single note by id.
func (idx *Index) Get(id string) (*models.Note, error) {
	row := idx.db.QueryRow(`
		SELECT id, title, raw_body, created_at, modified_at
		FROM notes WHERE id = ?
	`, id)

	var note models.Note
	var title sql.NullString
	err := row.Scan(&note.ID, &title, &note.RawBody, &note.CreatedAt, &note.ModifiedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	note.Title = title.String
	return &note, nil
}

// Close closes the underlying database.
func (idx *Index) Close() error {
	return idx.db.Close()
}

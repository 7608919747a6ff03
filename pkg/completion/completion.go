// Package completion implements the contextual completion engine: three
// providers (natural-language dates, hierarchical tags, cross-note
// wikilinks) and the dispatcher that routes cursor context to them.
package completion

import (
	"github.com/mattsolo1/nbc/pkg/editor"
	"github.com/mattsolo1/nbc/pkg/models"
)

// Context is the immutable snapshot a provider sees per trigger: the
// document text and the cursor offset. A provider derives its matched
// token by testing a pattern ending at Cursor.
type Context struct {
	Text   string
	Cursor int
}

// Prefix returns the text before the cursor.
func (c Context) Prefix() string {
	if c.Cursor < 0 {
		return ""
	}
	if c.Cursor > len(c.Text) {
		return c.Text
	}
	return c.Text[:c.Cursor]
}

// Sink is the slice of the text-editing widget an option's Apply may
// touch: a short read-ahead and one atomic replace-and-reselect.
type Sink interface {
	SliceText(from, to int) string
	Dispatch(ch editor.Change)
}

// Option is one completion candidate. Apply is the only place a
// provider mutates state and must act exactly once; a nil Apply means
// plain insertion of Label at the result anchor is the default action.
type Option struct {
	Label  string
	Detail string
	Apply  func(sink Sink, from, to int)
}

// Result is a provider's answer for one trigger. Anchor is the left
// boundary of the replaceable span and never exceeds the trigger
// cursor. SuppressFilter tells the client not to narrow the options
// further: the provider (or its store) already ranked them.
type Result struct {
	Anchor         int
	Options        []Option
	SuppressFilter bool
}

// Provider produces zero or one Result per trigger. A nil Result means
// the trigger pattern did not match; it is never an error signal.
type Provider interface {
	Name() string
	Complete(c Context) *Result
}

// NoteStore is the note collection boundary. Search returns notes in
// store-ranked order; Upsert is idempotent by id.
type NoteStore interface {
	Search(query string, limit int) ([]models.Note, error)
	Upsert(note models.Note) error
}

// TagIndex exposes the flat set of distinct hierarchical tag paths
// currently in use.
type TagIndex interface {
	Tags() ([]string, error)
}

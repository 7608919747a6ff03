package completion

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/mattsolo1/nbc/pkg/editor"
	"github.com/mattsolo1/nbc/pkg/frontmatter"
	"github.com/mattsolo1/nbc/pkg/models"
)

var notePattern = regexp.MustCompile(`\[\[[^\]|]*$`)

// maxNoteResults caps how many store matches become options per trigger.
const maxNoteResults = 5

// NoteProvider searches the note store for an open [[ query and offers
// the top matches plus, for a non-empty query, a create-new-note
// action.
//
// New note ids are the creation timestamp in milliseconds, stringified.
// Two create actions inside the same millisecond would collide; the
// scheme is kept as-is and the clock is injectable so the window is at
// least observable.
type NoteProvider struct {
	store NoteStore
	now   func() time.Time
}

// NewNoteProvider creates the provider. now may be nil, in which case
// time.Now derives created-note ids.
func NewNoteProvider(store NoteStore, now func() time.Time) *NoteProvider {
	if now == nil {
		now = time.Now
	}
	return &NoteProvider{store: store, now: now}
}

func (p *NoteProvider) Name() string { return "note" }

// Complete implements Provider.
func (p *NoteProvider) Complete(c Context) *Result {
	prefix := c.Prefix()
	loc := notePattern.FindStringIndex(prefix)
	if loc == nil {
		return nil
	}
	from := loc[0]
	query := prefix[from+2:]

	// A failing search is the store's problem to surface; here it is
	// indistinguishable from no matches.
	notes, _ := p.store.Search(query, maxNoteResults)
	if len(notes) > maxNoteResults {
		notes = notes[:maxNoteResults]
	}

	options := make([]Option, 0, len(notes)+1)
	for _, note := range notes {
		options = append(options, p.linkOption(note))
	}
	if query != "" {
		options = append(options, p.createOption(query))
	}
	if len(options) == 0 {
		return nil
	}

	return &Result{
		Anchor:         from,
		Options:        options,
		SuppressFilter: true,
	}
}

func (p *NoteProvider) linkOption(note models.Note) Option {
	content := frontmatter.Strip(note.RawBody)
	insert := "[[" + note.ID + "]]"
	if note.Title != "" {
		insert = "[[" + note.ID + "|" + note.Title + "]]"
	}
	return Option{
		Label:  content,
		Detail: content,
		Apply: func(sink Sink, from, to int) {
			end := consumedEnd(sink, to)
			sink.Dispatch(editor.Change{
				From:   from,
				To:     end,
				Insert: insert,
				Cursor: from + len(insert),
			})
		},
	}
}

func (p *NoteProvider) createOption(query string) Option {
	return Option{
		Label: fmt.Sprintf("Create new note %q", query),
		Apply: func(sink Sink, from, to int) {
			id := strconv.FormatInt(p.now().UnixMilli(), 10)
			// Store commit first, then the document edit: the link must
			// not point at a note the store never saw.
			_ = p.store.Upsert(models.Note{
				ID:      id,
				RawBody: "# " + query + "\n\n#inbox",
			})
			insert := "[[" + id + "|" + query + "]]"
			end := consumedEnd(sink, to)
			sink.Dispatch(editor.Change{
				From:   from,
				To:     end,
				Insert: insert,
				Cursor: from + len(insert),
			})
		},
	}
}

// Package editor models the text-editing widget boundary: an in-memory
// document with a selection, a single atomic mutation entry point, and
// synchronous change observers. Offsets are byte offsets into the text.
package editor

// Selection is an {anchor, head} pair. Anchor and head may be in either
// order; Range normalizes them.
type Selection struct {
	Anchor int `json:"anchor"`
	Head   int `json:"head"`
}

// Range returns the selection bounds with from <= to.
func (s Selection) Range() (from, to int) {
	if s.Anchor <= s.Head {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}

// Empty reports whether the selection is collapsed to a cursor.
func (s Selection) Empty() bool {
	return s.Anchor == s.Head
}

// Change is one atomic replace-and-reselect transaction: the text in
// [From, To) is replaced by Insert and the selection collapses to Cursor.
type Change struct {
	From   int
	To     int
	Insert string
	Cursor int
}

// Document is an ordered text buffer plus the current selection. All
// mutations go through Dispatch or SetSelection; it is meant for a
// single-goroutine event loop and is not safe for concurrent use.
type Document struct {
	text      string
	sel       Selection
	observers []func(*Document)
}

// NewDocument creates a document with the cursor at the start.
func NewDocument(text string) *Document {
	return &Document{text: text}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.text)
}

// Selection returns the current selection.
func (d *Document) Selection() Selection {
	return d.sel
}

// SelectedText returns the text covered by the current selection,
// "" when collapsed.
func (d *Document) SelectedText() string {
	from, to := d.sel.Range()
	return d.SliceText(from, to)
}

// SliceText returns the text in [from, to), clamped to the document
// bounds. Out-of-range requests return the in-range portion rather
// than panicking; callers use this for short lookaheads past a match.
func (d *Document) SliceText(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(d.text) {
		to = len(d.text)
	}
	if from >= to {
		return ""
	}
	return d.text[from:to]
}

// SetSelection moves the selection without touching the text. Offsets
// are clamped to the document bounds.
func (d *Document) SetSelection(anchor, head int) {
	d.sel = Selection{Anchor: d.clamp(anchor), Head: d.clamp(head)}
}

// Dispatch applies one Change atomically: the replacement and the
// resulting cursor placement commit together, then every observer is
// invoked once with the post-commit document.
func (d *Document) Dispatch(ch Change) {
	from := d.clamp(ch.From)
	to := d.clamp(ch.To)
	if to < from {
		from, to = to, from
	}
	d.text = d.text[:from] + ch.Insert + d.text[to:]
	cursor := d.clamp(ch.Cursor)
	d.sel = Selection{Anchor: cursor, Head: cursor}
	for _, fn := range d.observers {
		fn(d)
	}
}

// OnChange registers an observer called synchronously after each
// committed Change.
func (d *Document) OnChange(fn func(*Document)) {
	d.observers = append(d.observers, fn)
}

func (d *Document) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(d.text) {
		return len(d.text)
	}
	return off
}

package editor

import "regexp"

var urlPattern = regexp.MustCompile(`^https?://`)

// PasteEvent carries the plain-text clipboard payload of a paste. A
// missing payload is represented as "".
type PasteEvent struct {
	Text string
}

// PasteObserver is notified once per paste, after any transformer-side
// change has been dispatched, whether or not the paste was transformed.
type PasteObserver func(ev PasteEvent, doc *Document)

// PasteTransformer intercepts paste events before default insertion and
// rewrites absolute-URL pastes into markdown links.
type PasteTransformer struct {
	observer PasteObserver
}

// NewPasteTransformer creates a transformer. observer may be nil.
func NewPasteTransformer(observer PasteObserver) *PasteTransformer {
	return &PasteTransformer{observer: observer}
}

// Handle processes one paste against the document. It returns true when
// the paste was consumed (the caller must suppress default insertion)
// and false when default handling should proceed.
//
// A payload starting with http:// or https:// replaces the selection
// with "[selected](url)", or with the bare URL when the selection is
// collapsed, and leaves the cursor after the inserted text. Anything
// else is left to the default paste path.
func (p *PasteTransformer) Handle(ev PasteEvent, doc *Document) bool {
	handled := false
	if urlPattern.MatchString(ev.Text) {
		from, to := doc.Selection().Range()
		selected := doc.SelectedText()
		insert := ev.Text
		if selected != "" {
			insert = "[" + selected + "](" + ev.Text + ")"
		}
		doc.Dispatch(Change{
			From:   from,
			To:     to,
			Insert: insert,
			Cursor: from + len(insert),
		})
		handled = true
	}
	if p.observer != nil {
		p.observer(ev, doc)
	}
	return handled
}

package editor

import "testing"

func TestPasteURLWrapsSelection(t *testing.T) {
	doc := NewDocument("see foo here")
	doc.SetSelection(4, 7) // "foo"

	tr := NewPasteTransformer(nil)
	handled := tr.Handle(PasteEvent{Text: "https://example.com"}, doc)

	if !handled {
		t.Fatal("Handle() = false, want true for URL paste")
	}
	want := "see [foo](https://example.com) here"
	if doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}
	wantCursor := len("see [foo](https://example.com)")
	if sel := doc.Selection(); sel.Anchor != wantCursor || sel.Head != wantCursor {
		t.Errorf("Selection() = %+v, want collapsed at %d", sel, wantCursor)
	}
}

func TestPasteURLCollapsedSelectionInsertsBareURL(t *testing.T) {
	doc := NewDocument("link: ")
	doc.SetSelection(6, 6)

	tr := NewPasteTransformer(nil)
	if !tr.Handle(PasteEvent{Text: "http://example.com"}, doc) {
		t.Fatal("Handle() = false, want true")
	}
	if doc.Text() != "link: http://example.com" {
		t.Errorf("Text() = %q, want bare URL with no brackets", doc.Text())
	}
}

func TestPasteNonURLLeavesDocumentAlone(t *testing.T) {
	doc := NewDocument("unchanged")
	doc.SetSelection(0, 9)

	tr := NewPasteTransformer(nil)
	if tr.Handle(PasteEvent{Text: "just some text"}, doc) {
		t.Fatal("Handle() = true, want false for non-URL paste")
	}
	if doc.Text() != "unchanged" {
		t.Errorf("Text() = %q, want %q", doc.Text(), "unchanged")
	}
}

func TestPasteObserverCalledOncePerPaste(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"url paste", "https://example.com"},
		{"plain paste", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("")
			calls := 0
			var seen PasteEvent
			tr := NewPasteTransformer(func(ev PasteEvent, d *Document) {
				calls++
				seen = ev
			})

			tr.Handle(PasteEvent{Text: tt.text}, doc)

			if calls != 1 {
				t.Errorf("observer called %d times, want 1", calls)
			}
			if seen.Text != tt.text {
				t.Errorf("observer saw %q, want %q", seen.Text, tt.text)
			}
		})
	}
}

func TestPasteObserverSeesTransformedDocument(t *testing.T) {
	doc := NewDocument("")
	var textAtObserve string
	tr := NewPasteTransformer(func(ev PasteEvent, d *Document) {
		textAtObserve = d.Text()
	})

	tr.Handle(PasteEvent{Text: "https://example.com"}, doc)

	if textAtObserve != "https://example.com" {
		t.Errorf("observer ran before transform committed: saw %q", textAtObserve)
	}
}

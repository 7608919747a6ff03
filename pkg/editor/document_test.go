package editor

import "testing"

func TestSelectionRange(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		wantFrom int
		wantTo   int
	}{
		{"forward", Selection{Anchor: 2, Head: 5}, 2, 5},
		{"backward", Selection{Anchor: 5, Head: 2}, 2, 5},
		{"collapsed", Selection{Anchor: 3, Head: 3}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.sel.Range()
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("Range() = (%d, %d), want (%d, %d)", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestDispatchReplacesAndReselects(t *testing.T) {
	doc := NewDocument("hello world")
	doc.Dispatch(Change{From: 6, To: 11, Insert: "there", Cursor: 11})

	if doc.Text() != "hello there" {
		t.Errorf("Text() = %q, want %q", doc.Text(), "hello there")
	}
	if sel := doc.Selection(); sel.Anchor != 11 || sel.Head != 11 {
		t.Errorf("Selection() = %+v, want collapsed at 11", sel)
	}
}

func TestDispatchObserversSeeCommittedState(t *testing.T) {
	doc := NewDocument("abc")

	var observedText string
	var observedSel Selection
	calls := 0
	doc.OnChange(func(d *Document) {
		calls++
		observedText = d.Text()
		observedSel = d.Selection()
	})

	doc.Dispatch(Change{From: 0, To: 3, Insert: "xyz!", Cursor: 4})

	if calls != 1 {
		t.Fatalf("observer called %d times, want 1", calls)
	}
	// The observer must never see the replacement without the new
	// selection: both commit as one transaction.
	if observedText != "xyz!" {
		t.Errorf("observer saw text %q, want %q", observedText, "xyz!")
	}
	if observedSel.Anchor != 4 || observedSel.Head != 4 {
		t.Errorf("observer saw selection %+v, want collapsed at 4", observedSel)
	}
}

func TestSliceTextClamps(t *testing.T) {
	doc := NewDocument("ab")
	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{"in range", 0, 2, "ab"},
		{"past end", 1, 10, "b"},
		{"fully past end", 5, 7, ""},
		{"negative from", -1, 1, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.SliceText(tt.from, tt.to); got != tt.want {
				t.Errorf("SliceText(%d, %d) = %q, want %q", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSetSelectionClamps(t *testing.T) {
	doc := NewDocument("ab")
	doc.SetSelection(-3, 99)
	if sel := doc.Selection(); sel.Anchor != 0 || sel.Head != 2 {
		t.Errorf("Selection() = %+v, want {0 2}", sel)
	}
}

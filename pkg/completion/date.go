package completion

import (
	"regexp"
	"time"

	"github.com/mattsolo1/nbc/pkg/dates"
	"github.com/mattsolo1/nbc/pkg/editor"
)

// datePattern matches either a bare word run or an open wikilink prefix
// ending at the cursor.
var datePattern = regexp.MustCompile(`(\[\[[^\]|]*|\w+)$`)

// DateProvider offers one normalized [[YYYY-MM-DD]] suggestion when the
// token before the cursor parses as a natural-language date.
type DateProvider struct {
	parser dates.Parser
	now    func() time.Time
}

// NewDateProvider creates the provider. now may be nil, in which case
// time.Now anchors the relative-distance detail.
func NewDateProvider(parser dates.Parser, now func() time.Time) *DateProvider {
	if now == nil {
		now = time.Now
	}
	return &DateProvider{parser: parser, now: now}
}

func (p *DateProvider) Name() string { return "date" }

// Complete implements Provider.
func (p *DateProvider) Complete(c Context) *Result {
	prefix := c.Prefix()
	loc := datePattern.FindStringIndex(prefix)
	if loc == nil {
		return nil
	}
	from := loc[0]

	query := prefix[from:]
	if len(query) >= 2 && query[:2] == "[[" {
		query = query[2:]
	}
	if query == "" {
		return nil
	}

	d, ok := p.parser.Parse(query)
	if !ok {
		return nil
	}

	insert := "[[" + dates.Canonical(d) + "]]"
	return &Result{
		Anchor: from,
		Options: []Option{{
			Label:  dates.Label(d),
			Detail: dates.Describe(d, p.now()),
			Apply: func(sink Sink, from, to int) {
				end := consumedEnd(sink, to)
				sink.Dispatch(editor.Change{
					From:   from,
					To:     end,
					Insert: insert,
					Cursor: from + len(insert),
				})
			},
		}},
		SuppressFilter: true,
	}
}

// Package dates wraps natural-language date parsing for the completion
// engine and derives the canonical and human-readable renderings of a
// parsed date.
package dates

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Parser converts free text to a calendar date. ok is false when the
// text contains no recognizable date expression; that is an ordinary
// no-match outcome, never an error.
type Parser interface {
	Parse(text string) (time.Time, bool)
}

// NaturalParser parses English natural-language dates ("tomorrow",
// "next friday", "in 3 days") relative to an injected clock.
type NaturalParser struct {
	w   *when.Parser
	now func() time.Time
}

// NewNaturalParser creates a parser. now may be nil, in which case
// time.Now is used.
func NewNaturalParser(now func() time.Time) *NaturalParser {
	if now == nil {
		now = time.Now
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &NaturalParser{w: w, now: now}
}

// Parse implements Parser.
func (p *NaturalParser) Parse(text string) (time.Time, bool) {
	r, err := p.w.Parse(text, p.now())
	if err != nil || r == nil {
		return time.Time{}, false
	}
	return r.Time, true
}

// Now returns the parser's reference time.
func (p *NaturalParser) Now() time.Time {
	return p.now()
}

// Canonical renders a date in the zero-padded YYYY-MM-DD form used
// inside wikilinks.
func Canonical(t time.Time) string {
	return t.Format("2006-01-02")
}

// Label renders a date as an absolute human-readable string.
func Label(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// Describe renders the distance between a date and a reference time as
// a relative phrase such as "1 day from now" or "2 days ago".
func Describe(t, ref time.Time) string {
	return humanize.RelTime(t, ref, "ago", "from now")
}

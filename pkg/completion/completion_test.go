package completion

import (
	"time"

	"github.com/mattsolo1/nbc/pkg/models"
)

func testNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

// Shared stub collaborators for provider tests.

type stubParser struct {
	dates map[string]time.Time
}

func (p *stubParser) Parse(text string) (time.Time, bool) {
	d, ok := p.dates[text]
	return d, ok
}

type stubStore struct {
	notes    []models.Note
	searches []string
	upserts  []models.Note
}

func (s *stubStore) Search(query string, limit int) ([]models.Note, error) {
	s.searches = append(s.searches, query)
	if query == "" {
		return nil, nil
	}
	if len(s.notes) > limit {
		return s.notes[:limit], nil
	}
	return s.notes, nil
}

func (s *stubStore) Upsert(note models.Note) error {
	s.upserts = append(s.upserts, note)
	return nil
}

type stubTags struct {
	tags []string
}

func (s *stubTags) Tags() ([]string, error) {
	return s.tags, nil
}

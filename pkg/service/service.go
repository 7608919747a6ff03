package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mattsolo1/nbc/pkg/completion"
	"github.com/mattsolo1/nbc/pkg/dates"
	"github.com/mattsolo1/nbc/pkg/editor"
	"github.com/mattsolo1/nbc/pkg/frontmatter"
	"github.com/mattsolo1/nbc/pkg/models"
	"github.com/mattsolo1/nbc/pkg/search"
)

// Service wires the note index, the completion providers and the paste
// transformer into one engine instance per editor session.
type Service struct {
	Index       *search.Index
	Dispatcher  *completion.Dispatcher
	Transformer *editor.PasteTransformer
	Config      *Config

	log *logrus.Logger
}

// Config holds service configuration
type Config struct {
	DataDir     string
	SearchLimit int
	Debug       bool
}

// New creates a new completion service backed by the index at
// DataDir/index.db.
func New(config *Config) (*Service, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if config.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	index, err := search.NewIndex(filepath.Join(config.DataDir, "index.db"))
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	parser := dates.NewNaturalParser(nil)
	dispatcher := completion.NewDispatcher(
		completion.NewDateProvider(parser, nil),
		completion.NewNoteProvider(index, nil),
		completion.NewTagProvider(index),
	)

	return &Service{
		Index:       index,
		Dispatcher:  dispatcher,
		Transformer: editor.NewPasteTransformer(nil),
		Config:      config,
		log:         logger,
	}, nil
}

// Complete runs one synchronous completion pass against a document
// snapshot.
func (s *Service) Complete(text string, cursor int) *completion.Result {
	return s.Dispatcher.Complete(completion.Context{Text: text, Cursor: cursor})
}

// Search queries the note index directly.
func (s *Service) Search(query string) ([]models.Note, error) {
	return s.Index.Search(query, s.Config.SearchLimit)
}

// Tags returns the current tag set.
func (s *Service) Tags() ([]string, error) {
	return s.Index.Tags()
}

// IndexDir walks dir and upserts every markdown file into the index.
// It returns the number of notes indexed.
func (s *Service) IndexDir(dir string) (int, error) {
	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		note, err := noteFromFile(path, string(data), info.ModTime())
		if err != nil {
			s.log.Warnf("skipping %s: %v", path, err)
			return nil
		}

		if err := s.Index.Upsert(*note); err != nil {
			return fmt.Errorf("index %s: %w", path, err)
		}
		s.log.Debugf("indexed %s as %s", path, note.ID)
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, nil
}

// Close releases the underlying index.
func (s *Service) Close() error {
	return s.Index.Close()
}

var titleCaser = cases.Title(language.English)

// noteFromFile builds a Note from an on-disk markdown file. The id and
// title come from frontmatter when present; otherwise the id is the
// filename slug and the title is derived from it.
func noteFromFile(path, content string, modified time.Time) (*models.Note, error) {
	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	if slug == "" {
		return nil, fmt.Errorf("empty filename slug")
	}

	note := &models.Note{
		ID:         slug,
		RawBody:    content,
		ModifiedAt: modified,
	}

	fm, _, err := frontmatter.Parse(content)
	if err != nil {
		return nil, err
	}
	if fm != nil {
		if fm.ID != "" {
			note.ID = fm.ID
		}
		note.Title = fm.Title
	}
	if note.Title == "" {
		note.Title = TitleFromSlug(slug)
	}
	return note, nil
}

// TitleFromSlug turns a filename slug like "meeting-notes_2024" into
// "Meeting Notes 2024".
func TitleFromSlug(slug string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return titleCaser.String(words)
}

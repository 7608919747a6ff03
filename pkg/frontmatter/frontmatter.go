package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)`)

// Frontmatter represents the structured metadata at the beginning of a note
type Frontmatter struct {
	ID       string   `yaml:"id,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Aliases  []string `yaml:"aliases,flow,omitempty"`
	Tags     []string `yaml:"tags,flow,omitempty"`
	Created  string   `yaml:"created,omitempty"`
	Modified string   `yaml:"modified,omitempty"`
}

// Parse extracts frontmatter from content and returns the parsed data and body
func Parse(content string) (*Frontmatter, string, error) {
	matches := frontmatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		// No frontmatter found
		return nil, content, nil
	}

	frontmatterStr := matches[1]
	bodyContent := matches[2]

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(frontmatterStr), &fm); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	if fm.Aliases == nil {
		fm.Aliases = []string{}
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	return &fm, bodyContent, nil
}

// Strip returns the displayable content of a note: the body with any
// frontmatter header removed and surrounding whitespace trimmed.
// A malformed header is left in place rather than guessed at.
func Strip(content string) string {
	_, body, err := Parse(content)
	if err != nil {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(body)
}

// Title returns the title for a note body: the frontmatter title when one
// is declared, otherwise "".
func Title(content string) string {
	fm, _, err := Parse(content)
	if err != nil || fm == nil {
		return ""
	}
	return fm.Title
}
